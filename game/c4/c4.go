// Package c4 implements connect N: discs drop to the lowest empty row of the chosen column.
package c4

import (
	"fmt"

	"github.com/gorgonia/uct/game"
	"github.com/pkg/errors"
)

type Board struct {
	data       []game.Colour
	it         [][]game.Colour
	rows, cols int
	n          int // how many to be considered a win?
}

func newBoard(rows, cols, n int) *Board {
	data := make([]game.Colour, rows*cols)
	return &Board{
		data: data,
		it:   game.MakeIterator(data, rows, cols),
		rows: rows,
		cols: cols,
		n:    n,
	}
}

func (b *Board) Format(s fmt.State, c rune) {
	for _, row := range b.it {
		fmt.Fprint(s, "⎢ ")
		for _, col := range row {
			fmt.Fprintf(s, "%s ", col)
		}
		fmt.Fprint(s, "⎥\n")
	}
}

func (b *Board) apply(m game.PlayerMove) error {
	row, col, err := b.check(m)
	if err != nil {
		return err
	}
	b.it[row][col] = game.Colour(m.Player)
	return nil
}

// check returns the cell a disc dropped in the move's column lands on.
func (b *Board) check(m game.PlayerMove) (row, col int, err error) {
	col = int(m.Single)
	if col < 0 || col >= b.cols {
		return -1, -1, errors.Errorf("column %d does not exist", col)
	}
	for row = b.rows - 1; row >= 0; row-- {
		if b.it[row][col] == game.None {
			return row, col, nil
		}
	}
	return -1, -1, errors.Errorf("column %d is full", col)
}

func (b *Board) clone() *Board {
	b2 := newBoard(b.rows, b.cols, b.n)
	copy(b2.data, b.data)
	return b2
}

func (b *Board) checkWin() game.Colour {
	for _, c := range []game.Colour{game.Black, game.White} {
		if game.HasLine(b.data, b.rows, b.cols, b.n, c) {
			return c
		}
	}
	return game.None
}
