package main

import (
	"bytes"

	"github.com/gorgonia/uct/game"
)

// display writes the board three fields to a row: "." for empty, "x" for the human, "o" for the computer.
func display(g game.State, human game.Player) string {
	var buf bytes.Buffer
	_, n := g.BoardSize()
	for i, c := range g.Board() {
		if i%n == 0 {
			buf.WriteByte('\n')
		}
		switch {
		case c == game.None:
			buf.WriteString(". ")
		case game.Player(c) == human:
			buf.WriteString("x ")
		default:
			buf.WriteString("o ")
		}
	}
	buf.WriteByte('\n')
	return buf.String()
}

// verdict is the final word on a finished game.
func verdict(winner, human game.Player) string {
	switch {
	case winner == game.Player(game.None):
		return "A draw it is. For now..."
	case winner == human:
		return "\n You won human, this cannot be!"
	}
	return "\n I won human, you will never defeat me!"
}

// session is the game in progress, as seen by the gif encoder.
type session struct {
	g    game.State
	name string
}

func (s *session) Name() string    { return s.name }
func (s *session) Epoch() int      { return 0 }
func (s *session) GameNumber() int { return 0 }
func (s *session) Score(p game.Player) float64 {
	if ended, winner := s.g.Ended(); ended && winner == p {
		return 1
	}
	return 0
}
func (s *session) State() game.State { return s.g }
