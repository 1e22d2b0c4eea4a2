package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/game/mnk"
	"github.com/pkg/errors"
)

var errBadInput = errors.New("Please enter a single digit between 1 and 9.")

// parseMove turns a field number, 1 to 9, into a cell index. It does not look at the board.
func parseMove(line string) (game.Single, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > 9 {
		return 0, errBadInput
	}
	return game.Single(idx - 1), nil
}

// readMove prompts until the human enters the number of a free field.
func readMove(r *bufio.Reader, w io.Writer, g *mnk.MNK) (game.Single, error) {
	for {
		fmt.Fprint(w, "Your move (1-9): ")
		line, err := r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, errors.WithMessage(err, "reading move")
		}
		m, perr := parseMove(line)
		switch {
		case perr != nil:
			fmt.Fprintln(w, perr)
		case !g.Check(game.PlayerMove{Player: g.ToMove(), Single: m}):
			fmt.Fprintf(w, "Field %d already taken!\n", m+1)
		default:
			return m, nil
		}
		if err == io.EOF {
			return 0, errors.WithMessage(err, "reading move")
		}
	}
}
