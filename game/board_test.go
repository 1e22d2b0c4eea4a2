package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeIterator(t *testing.T) {
	assert := assert.New(t)
	board := make([]Colour, 6)
	it := MakeIterator(board, 2, 3)
	assert.Len(it, 2)
	assert.Len(it[0], 3)

	it[1][2] = Black
	assert.Equal(Black, board[5])
	assert.Panics(func() { _ = it[0][:4] }, "rows are capped")
	assert.Panics(func() { MakeIterator(board, 3, 3) })
}

func TestHasLine(t *testing.T) {
	X, O, Z := Black, White, None
	cases := []struct {
		name  string
		board []Colour
		c     Colour
		want  bool
	}{
		{"row", []Colour{
			Z, Z, Z, Z,
			X, X, X, O,
			Z, Z, Z, Z,
		}, X, true},
		{"row too short", []Colour{
			Z, Z, Z, Z,
			X, X, O, X,
			Z, Z, Z, Z,
		}, X, false},
		{"col", []Colour{
			Z, O, Z, Z,
			X, O, X, Z,
			Z, O, Z, Z,
		}, O, true},
		{"diagonal", []Colour{
			X, Z, Z, Z,
			Z, X, Z, Z,
			Z, Z, X, Z,
		}, X, true},
		{"anti diagonal", []Colour{
			Z, Z, Z, O,
			Z, Z, O, Z,
			Z, O, Z, Z,
		}, O, true},
		{"no wrap around", []Colour{
			Z, Z, X, X,
			X, Z, Z, Z,
			Z, Z, Z, Z,
		}, X, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HasLine(c.board, 3, 4, 3, c.c), c.name)
	}
}

func TestOutcome(t *testing.T) {
	assert := assert.New(t)
	x, o := Player(Black), Player(White)
	assert.Equal(Win, Outcome(x, x))
	assert.Equal(Loss, Outcome(o, x))
	assert.Equal(Draw, Outcome(Player(None), x))
	assert.Equal(o, Opponent(x))
	assert.Equal(x, Opponent(o))
	assert.Panics(func() { Opponent(Player(None)) })
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("X", fmt.Sprintf("%s", Black))
	assert.Equal("White", fmt.Sprintf("%v", Player(White)))
	assert.Equal("·", fmt.Sprintf("%s", None))
	assert.Equal("Black@4", fmt.Sprintf("%v", PlayerMove{Player(Black), 4}))
	assert.True(Pass.IsPass())
	assert.True(Resign.IsResignation())
}
