package c4

import (
	"testing"

	"github.com/gorgonia/uct/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_Ended(t *testing.T) {
	X := game.Black
	O := game.White
	Z := game.None
	g := ConnectFour(1)
	data := g.b.data

	var a []game.Colour
	a = []game.Colour{
		X, Z, Z, Z, Z, Z, Z,
		O, Z, Z, Z, Z, Z, Z,
		O, Z, Z, Z, Z, Z, Z,
		X, Z, Z, Z, Z, Z, Z,
		O, O, Z, Z, X, Z, X,
		X, O, Z, O, X, Z, X,
	}
	copy(data, a)

	if ended, winner := g.Ended(); ended {
		t.Errorf("Game is not supposed to end! Winner: %v\n%v", winner, g)
	}

	// fullboard
	a = []game.Colour{
		X, O, X, O, X, O, X,
		O, O, X, O, X, O, O,
		X, X, X, O, X, O, X,
		O, X, O, X, O, X, O,
		X, O, O, X, O, O, X,
		X, X, O, X, O, X, X,
	}
	copy(data, a)

	if ended, winner := g.Ended(); !ended || (ended && winner != game.Player(Z)) {
		t.Errorf("Game is supposed to end with Winner = %v. Got %v\n%v", Z, winner, g)
	}

	// diagonal
	a = []game.Colour{
		X, Z, Z, Z, Z, Z, Z,
		O, Z, Z, Z, Z, Z, Z,
		O, Z, Z, X, Z, Z, Z,
		X, Z, X, Z, Z, Z, Z,
		O, X, Z, Z, X, Z, X,
		X, O, Z, O, X, Z, X,
	}
	copy(data, a)
	if ended, winner := g.Ended(); !ended || (ended && winner != game.Player(X)) {
		t.Errorf("Game is supposed to end with Winner = %v. Got %v\n%v", X, winner, g)
	}

	// diagonal2
	a = []game.Colour{
		X, Z, Z, Z, Z, Z, Z,
		O, Z, Z, Z, Z, Z, Z,
		O, X, Z, O, Z, Z, Z,
		X, Z, X, Z, Z, Z, Z,
		O, X, Z, X, X, Z, X,
		X, O, Z, O, X, Z, X,
	}
	copy(data, a)
	if ended, winner := g.Ended(); !ended || (ended && winner != game.Player(X)) {
		t.Errorf("Game is supposed to end with Winner = %v. Got %v\n%v", X, winner, g)
	}

	// vertical
	a = []game.Colour{
		X, Z, Z, Z, Z, Z, Z,
		O, Z, Z, Z, X, Z, Z,
		O, Z, Z, X, X, Z, Z,
		X, Z, Z, Z, X, Z, Z,
		O, X, Z, Z, X, Z, X,
		X, O, Z, O, O, Z, X,
	}
	copy(data, a)
	if ended, winner := g.Ended(); !ended || (ended && winner != game.Player(X)) {
		t.Errorf("Game is supposed to end with Winner = %v. Got %v\n%v", X, winner, g)
	}

	// horizontal
	a = []game.Colour{
		X, Z, Z, Z, Z, Z, Z,
		O, Z, Z, Z, Z, Z, Z,
		O, Z, Z, X, Z, Z, Z,
		X, Z, Z, Z, X, Z, Z,
		O, X, Z, Z, X, Z, X,
		O, X, X, X, X, Z, X,
	}
	copy(data, a)
	if ended, winner := g.Ended(); !ended || (ended && winner != game.Player(X)) {
		t.Errorf("Game is supposed to end with Winner = %v. Got %v\n%v", X, winner, g)
	}
}

func TestDrop(t *testing.T) {
	assert := assert.New(t)
	X, O, Z := game.Black, game.White, game.None
	g := New(3, 3, 3, 1)
	g2 := g.ExecMove(1).ExecMove(1).ExecMove(0)

	assert.Equal([]game.Colour{Z, Z, Z, Z, Z, Z, Z, Z, Z}, g.Board(), "the receiver is left untouched")
	assert.Equal([]game.Colour{
		Z, Z, Z,
		Z, O, Z,
		X, X, Z,
	}, g2.Board())
	assert.Equal(game.Single(0), g2.LastMove())
	assert.Equal(game.Player(O), g2.ToMove())
	assert.Equal(3, g2.MoveNumber())

	full := g2.ExecMove(1)
	assert.Equal([]game.Single{0, 2}, full.LegalMoves())
	assert.False(full.Check(game.PlayerMove{Player: game.Player(X), Single: 1}))
	require.Panics(t, func() { full.ExecMove(1) }, "column is full")
	require.Panics(t, func() { full.ExecMove(3) }, "column does not exist")
	require.Panics(t, func() { g.LastMove() })
}

func TestPlayout(t *testing.T) {
	assert := assert.New(t)
	g := ConnectFour(1337)
	for i := 0; i < 20; i++ {
		assert.Contains([]int32{game.Loss, game.Draw, game.Win}, g.Terminate())
	}
	assert.Equal(0, g.MoveNumber())

	// X wins along the bottom row
	won := g.ExecMove(0).ExecMove(0).ExecMove(1).ExecMove(1).ExecMove(2).ExecMove(2).ExecMove(3)
	assert.True(won.IsTerminal())
	assert.Empty(won.LegalMoves())
	assert.Equal(game.Win, won.Terminate())
	assert.Equal(game.Loss, won.WithPerspective(game.Player(game.White)).Terminate())
}
