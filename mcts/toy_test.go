package mcts

import "fmt"

// toy is a game of fixed depth where every move is an int in [0, width). A
// playout always picks move 0, and the outcome is 2 when the first move of the
// game was fav, and 0 otherwise.
type toy struct {
	width, depth int
	fav          int
	path         []int
	rollouts     *int
}

func newToy(width, depth, fav int) *toy {
	return &toy{width: width, depth: depth, fav: fav, rollouts: new(int)}
}

func (s *toy) ExecMove(m int) *toy {
	path := make([]int, len(s.path), len(s.path)+1)
	copy(path, s.path)
	return &toy{width: s.width, depth: s.depth, fav: s.fav, path: append(path, m), rollouts: s.rollouts}
}

func (s *toy) LegalMoves() []int {
	if s.IsTerminal() {
		return nil
	}
	retVal := make([]int, s.width)
	for i := range retVal {
		retVal[i] = i
	}
	return retVal
}

func (s *toy) LastMove() int {
	if len(s.path) == 0 {
		panic("no moves played")
	}
	return s.path[len(s.path)-1]
}

func (s *toy) RandomMove() int { return 0 }

func (s *toy) Terminate() int32 {
	*s.rollouts++
	cur := s
	for !cur.IsTerminal() {
		cur = cur.ExecMove(cur.RandomMove())
	}
	if len(cur.path) > 0 && cur.path[0] == s.fav {
		return 2
	}
	return 0
}

func (s *toy) IsTerminal() bool { return len(s.path) >= s.depth }

func (s *toy) String() string { return fmt.Sprintf("toy%v", s.path) }

// stuck is a game that never ends and never offers a move.
type stuck struct{}

func (stuck) ExecMove(m int) stuck { return stuck{} }
func (stuck) LegalMoves() []int    { return nil }
func (stuck) LastMove() int        { return 0 }
func (stuck) RandomMove() int      { panic("no legal moves") }
func (stuck) Terminate() int32     { return 1 }
func (stuck) IsTerminal() bool     { return false }
