package mnk

import (
	"fmt"
	"time"

	"github.com/gorgonia/uct/game"
	"golang.org/x/exp/rand"
)

var (
	Cross  = game.Player(game.Black)
	Nought = game.Player(game.White)
)

var _ game.State = &MNK{}

// MNK is a representation of M,N,K games - a game is played on a MxN board. K moves to win.
//
// An MNK is immutable once handed out: Apply and ExecMove return new states.
type MNK struct {
	board   []game.Colour
	m, n, k int

	nextToMove  game.Player
	perspective game.Player
	history     []game.PlayerMove

	// shared by every state derived from this one
	rand *rand.Rand
}

// Option configures a new game.
type Option func(*MNK)

// WithSeed seeds the random number generator used for random moves and playouts.
func WithSeed(seed uint64) Option {
	return func(g *MNK) { g.rand = rand.New(rand.NewSource(seed)) }
}

// WithRand makes the game draw its random moves from r.
func WithRand(r *rand.Rand) Option { return func(g *MNK) { g.rand = r } }

// WithFirst sets the player to move first. Cross moves first by default.
func WithFirst(p game.Player) Option { return func(g *MNK) { g.nextToMove = p } }

// WithPerspective sets the player whose outcome Terminate reports. Defaults to Cross.
func WithPerspective(p game.Player) Option { return func(g *MNK) { g.perspective = p } }

// New creates a new MNK game
func New(m, n, k int, opts ...Option) *MNK {
	retVal := &MNK{
		board:       make([]game.Colour, m*n),
		history:     make([]game.PlayerMove, 0, m*n),
		m:           m,
		n:           n,
		k:           k,
		nextToMove:  Cross,
		perspective: Cross,
	}
	for _, opt := range opts {
		opt(retVal)
	}
	if retVal.rand == nil {
		retVal.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return retVal
}

// TicTacToe creates a new MNK game for Tic Tac Toe
func TicTacToe(opts ...Option) *MNK { return New(3, 3, 3, opts...) }

func (g *MNK) Format(s fmt.State, c rune) {
	for i, c := range g.board {
		if i%g.n == 0 {
			fmt.Fprint(s, "⎢ ")
		}
		fmt.Fprintf(s, "%s ", c)
		if (i+1)%g.n == 0 {
			fmt.Fprint(s, "⎥\n")
		}
	}
}

func (g *MNK) BoardSize() (int, int) { return g.m, g.n }
func (g *MNK) Board() []game.Colour  { return g.board }

// K returns how many in a row win.
func (g *MNK) K() int { return g.k }

func (g *MNK) ToMove() game.Player { return g.nextToMove }

// Perspective returns the player Terminate scores for.
func (g *MNK) Perspective() game.Player { return g.perspective }

func (g *MNK) MoveNumber() int { return len(g.history) }

func (g *MNK) History() []game.PlayerMove { return g.history }

// Check returns true if m can be played: the game is still on and the cell exists and is empty.
func (g *MNK) Check(m game.PlayerMove) bool {
	if m.Single < 0 || int(m.Single) >= len(g.board) {
		return false
	}
	if g.board[int(m.Single)] != game.None {
		return false
	}
	ended, _ := g.Ended()
	return !ended
}

// Apply returns the state after m. It panics if the cell is outside the board or already taken.
func (g *MNK) Apply(m game.PlayerMove) *MNK {
	retVal := g.clone()
	retVal.place(m)
	return retVal
}

// place plays m in place.
func (g *MNK) place(m game.PlayerMove) {
	if m.Single < 0 || int(m.Single) >= len(g.board) {
		panic(fmt.Sprintf("move %d is outside of the %dx%d board", m.Single, g.m, g.n))
	}
	if g.board[int(m.Single)] != game.None {
		panic(fmt.Sprintf("field %d is already taken", m.Single))
	}
	g.board[int(m.Single)] = game.Colour(m.Player)
	g.history = append(g.history, m)
	g.nextToMove = game.Opponent(m.Player)
}

// WithPerspective returns a copy of the state that is scored for p.
func (g *MNK) WithPerspective(p game.Player) *MNK {
	retVal := g.clone()
	retVal.perspective = p
	return retVal
}

// Ended checks if the game has ended. If it has, who is the winner?
func (g *MNK) Ended() (ended bool, winner game.Player) {
	if g.isWinner(Cross) {
		return true, Cross
	}
	if g.isWinner(Nought) {
		return true, Nought
	}
	return game.IsFull(g.board), game.Player(game.None)
}

func (g *MNK) Eq(other *MNK) bool {
	if g.m != other.m || g.n != other.n || g.k != other.k || g.nextToMove != other.nextToMove {
		return false
	}
	for i := range g.board {
		if g.board[i] != other.board[i] {
			return false
		}
	}
	return true
}

func (g *MNK) clone() *MNK {
	retVal := &MNK{
		board:       make([]game.Colour, len(g.board)),
		history:     make([]game.PlayerMove, len(g.history), g.m*g.n),
		m:           g.m,
		n:           g.n,
		k:           g.k,
		nextToMove:  g.nextToMove,
		perspective: g.perspective,
		rand:        g.rand,
	}
	copy(retVal.board, g.board)
	copy(retVal.history, g.history)
	return retVal
}

func (g *MNK) isWinner(p game.Player) bool {
	return game.HasLine(g.board, g.m, g.n, g.k, game.Colour(p))
}
