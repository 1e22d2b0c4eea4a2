package gtp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/game/mnk"
	"github.com/pkg/errors"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return strings.Join(cmds, "\n")
}

func quit(e *Engine) string { e.quit = true; return "" }

func clearBoard(e *Engine) string {
	m, n := e.g.BoardSize()
	e.reset(e.New(m, n, e.g.K()))
	return ""
}

func showboard(e *Engine) string { return fmt.Sprintf("\n%s", e.g) }

func undo(e *Engine, args []string) (string, error) {
	l := len(e.history)
	if l == 0 {
		return "", errors.New("cannot undo")
	}
	e.g = e.history[l-1]
	e.history = e.history[:l-1]
	return "", nil
}

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

// boardSize takes "N" for a square board, "M N", or "M N K". K is kept when not given.
func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"boardsize\"")
	}
	var sizes []int
	for i, a := range args {
		if i == 3 {
			break
		}
		v, err := strconv.Atoi(a)
		if err != nil {
			return "", errors.WithMessagef(err, "Unable to parse argument %d of boardsize", i+1)
		}
		sizes = append(sizes, v)
	}
	m, n, k := sizes[0], sizes[0], e.g.K()
	if len(sizes) > 1 {
		n = sizes[1]
	}
	if len(sizes) > 2 {
		k = sizes[2]
	}
	if m < 1 || n < 1 || n > len(columns) || k < 1 || (k > m && k > n) {
		return "", errors.Errorf("unacceptable size %dx%d with %d to win", m, n, k)
	}
	e.reset(e.New(m, n, k))
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	p, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	m, n := e.g.BoardSize()
	s, err := parseVertex(args[1], m, n)
	if err != nil {
		return "", err
	}
	move := game.PlayerMove{Player: p, Single: s}
	if !e.g.Check(move) {
		return "", errors.Errorf("illegal move %v", args[1])
	}
	e.apply(move)
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"genmove\"")
	}
	if e.Generate == nil {
		return "", errors.New("Unable to generate moves. No generator found")
	}
	p, err := parseColour(args[0])
	if err != nil {
		return "", err
	}
	if e.g.IsTerminal() {
		return "", errors.New("the game is over")
	}
	if e.g.ToMove() != p {
		return "", errors.Errorf("it is not %v's turn", p)
	}
	s := e.Generate(e.g.WithPerspective(p))
	e.apply(game.PlayerMove{Player: p, Single: s})
	m, n := e.g.BoardSize()
	return vertex(s, m, n), nil
}

// finalScore reports the result in the GTP manner: "B+", "W+" or "0".
func finalScore(e *Engine) string {
	ended, winner := e.g.Ended()
	switch {
	case !ended, winner == game.Player(game.None):
		return "0"
	case winner == mnk.Cross:
		return "B+"
	}
	return "W+"
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),
		"final_score":      stdlib(finalScore),

		"known_command": stdlib2(knownCommand),
		"boardsize":     stdlib2(boardSize),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
		"undo":          stdlib2(undo),
	}
}
