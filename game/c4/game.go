package c4

import (
	"fmt"
	"time"

	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/mcts"
	"golang.org/x/exp/rand"
)

var (
	_ game.State                     = &Game{}
	_ mcts.State[game.Single, *Game] = &Game{}
)

// Game is a game of connect N. Moves are columns. States are immutable.
type Game struct {
	b           *Board
	history     []game.PlayerMove
	nextToMove  game.Player
	perspective game.Player
	rand        *rand.Rand
}

// New creates a new game with a board of (rows,cols) and N to win (connect4 being 4 to win).
// Black moves first, and playouts are scored for Black.
func New(rows, cols, N int, seed uint64) *Game {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Game{
		b:           newBoard(rows, cols, N),
		history:     make([]game.PlayerMove, 0, rows*cols),
		nextToMove:  game.Player(game.Black),
		perspective: game.Player(game.Black),
		rand:        rand.New(rand.NewSource(seed)),
	}
}

// ConnectFour is the classic 6x7 board.
func ConnectFour(seed uint64) *Game { return New(6, 7, 4, seed) }

func (g *Game) Format(s fmt.State, c rune) { g.b.Format(s, c) }

func (g *Game) BoardSize() (int, int) { return g.b.rows, g.b.cols }

func (g *Game) Board() []game.Colour { return g.b.data }

func (g *Game) ToMove() game.Player { return g.nextToMove }

func (g *Game) MoveNumber() int { return len(g.history) }

func (g *Game) History() []game.PlayerMove { return g.history }

func (g *Game) Check(m game.PlayerMove) bool {
	if ended, _ := g.Ended(); ended {
		return false
	}
	_, _, err := g.b.check(m)
	return err == nil
}

// Apply returns the state after m. It panics if the column does not exist or is full.
func (g *Game) Apply(m game.PlayerMove) *Game {
	retVal := g.clone()
	retVal.place(m)
	return retVal
}

func (g *Game) place(m game.PlayerMove) {
	if err := g.b.apply(m); err != nil {
		panic(err)
	}
	g.history = append(g.history, m)
	g.nextToMove = game.Opponent(m.Player)
}

// WithPerspective returns a copy of the state that is scored for p.
func (g *Game) WithPerspective(p game.Player) *Game {
	retVal := g.clone()
	retVal.perspective = p
	return retVal
}

func (g *Game) Ended() (bool, game.Player) {
	if winner := g.b.checkWin(); winner != game.None {
		return true, game.Player(winner)
	}
	return game.IsFull(g.b.data), game.Player(game.None)
}

func (g *Game) clone() *Game {
	history := make([]game.PlayerMove, len(g.history), cap(g.history))
	copy(history, g.history)
	return &Game{
		b:           g.b.clone(),
		history:     history,
		nextToMove:  g.nextToMove,
		perspective: g.perspective,
		rand:        g.rand,
	}
}

func (g *Game) ExecMove(m game.Single) *Game {
	return g.Apply(game.PlayerMove{Player: g.nextToMove, Single: m})
}

// LegalMoves returns the columns that are not full, left to right.
func (g *Game) LegalMoves() []game.Single {
	if g.IsTerminal() {
		return nil
	}
	retVal := make([]game.Single, 0, g.b.cols)
	for col := 0; col < g.b.cols; col++ {
		if g.b.it[0][col] == game.None {
			retVal = append(retVal, game.Single(col))
		}
	}
	return retVal
}

func (g *Game) LastMove() game.Single {
	if len(g.history) == 0 {
		panic("no move has been played yet")
	}
	return g.history[len(g.history)-1].Single
}

func (g *Game) RandomMove() game.Single {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves left")
	}
	return moves[g.rand.Intn(len(moves))]
}

func (g *Game) Terminate() int32 {
	playout := g.clone()
	for !playout.IsTerminal() {
		playout.place(game.PlayerMove{Player: playout.nextToMove, Single: playout.RandomMove()})
	}
	_, winner := playout.Ended()
	return game.Outcome(winner, g.perspective)
}

func (g *Game) IsTerminal() bool {
	ended, _ := g.Ended()
	return ended
}
