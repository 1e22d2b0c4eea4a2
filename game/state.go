// Package game holds the types shared by the board games that can be searched.
package game

import (
	"fmt"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	default: // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Player represents a player. It's also a colour.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// Opponent returns the other player. None has no opponent.
func Opponent(p Player) Player {
	switch Colour(p) {
	case Black:
		return Player(White)
	case White:
		return Player(Black)
	}
	panic(fmt.Sprintf("%v has no opponent", p))
}

// Single represents a move as a single number. What the number means is up to the game:
// a cell in row major order for M,N,K games, a column for connect four.
//		- -1 represents the "pass" move
//		- -2 represents the "resignation" move
type Single int32

const (
	Pass   Single = -1
	Resign Single = -2
)

// IsResignation returns true when the coordinate represents a "resignation" move
func (c Single) IsResignation() bool { return c == Resign }

// IsPass returns true when the coordinate represents a "pass" move
func (c Single) IsPass() bool { return c == Pass }

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Single
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Single == other.Single
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%d", p.Player, p.Single) }

// Outcome values of a finished game, seen from one player.
const (
	Loss int32 = 0
	Draw int32 = 1
	Win  int32 = 2
)

// Outcome scores a finished game for the given player.
func Outcome(winner, perspective Player) int32 {
	switch {
	case Colour(winner) == None:
		return Draw
	case winner == perspective:
		return Win
	}
	return Loss
}

// State is any game that can be shown and refereed. Games that can be searched
// additionally implement mcts.State with Single as the move type.
type State interface {
	BoardSize() (int, int) // returns the board size (rows, cols)
	Board() []Colour       // returns the board state, row major
	ToMove() Player        // returns the next player to move
	MoveNumber() int       // returns count of moves so far that led to this point.
	History() []PlayerMove // returns the moves played so far

	Ended() (ended bool, winner Player) // has the game ended? if yes, then who's the winner?
	Check(m PlayerMove) bool            // check if the placement is legal
}

// MetaState is a game in progress, as seen by the output encoders.
type MetaState interface {
	Name() string // name of the game
	Epoch() int
	GameNumber() int
	Score(a Player) float64
	State() State
}
