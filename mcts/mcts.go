// Package mcts implements a plain UCT search (Monte Carlo Tree Search with
// UCB1 selection) over any game that can simulate itself.
//
// The tree is stored as an arena of nodes addressed by index. A search owns its
// arena; nothing survives between two calls to Search.
package mcts

// State is the capability set a game must provide to be searched. M is the
// move type and S is the concrete state type, typically a pointer:
//
//	type Board struct { ... }
//	func (b *Board) ExecMove(m Move) *Board { ... }
//
// so that *Board satisfies State[Move, *Board].
type State[M any, S any] interface {
	// ExecMove returns the state reached by playing m. The receiver must not be modified.
	ExecMove(m M) S

	// LegalMoves lists every move playable from this state. It may be empty.
	LegalMoves() []M

	// LastMove returns the move that produced this state. It panics on a state with no moves played.
	LastMove() M

	// RandomMove returns one of LegalMoves, picked uniformly at random.
	RandomMove() M

	// Terminate plays random moves until the game ends, and returns the outcome value.
	// Larger is better for the side the search is played for.
	Terminate() int32

	// IsTerminal reports whether the game is over.
	IsTerminal() bool
}

// Search runs iterations rounds of selection, expansion, rollout and backpropagation
// from initial and returns the move with the best average score.
//
// Search panics when the root was never expanded: that happens when iterations is
// less than 2 or initial is terminal.
func Search[M any, S State[M, S]](initial S, iterations int) M {
	conf := DefaultConfig()
	conf.Budget = iterations
	t := New[M](initial, conf)
	t.Run(iterations)
	return t.BestMove()
}
