// Package gtp speaks a subset of the Go Text Protocol for M,N,K games.
//
// Vertices are written as a column letter followed by a row number, A1 being the
// bottom left corner. As in Go, the letter I is skipped.
package gtp

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

const columns = "abcdefghjklmnopqrstuvwxyz"

type Engine struct {
	g       *mnk.MNK
	history []*mnk.MNK // states before each move, for undo

	known map[string]Command

	ch   chan string
	ret  chan string
	quit bool

	// Generate picks a move for the player to move. The state passed in is scored for that player.
	Generate func(g *mnk.MNK) game.Single
	// New creates an empty board.
	New           func(m, n, k int) *mnk.MNK
	name, version string
}

func New(g *mnk.MNK, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	if g == nil {
		g = mnk.TicTacToe()
	}
	return &Engine{
		g:       g,
		known:   known,
		New:     func(m, n, k int) *mnk.MNK { return mnk.New(m, n, k) },
		name:    name,
		version: version,
	}
}

func (e *Engine) Start() (input, output chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// Run reads commands line by line from r and writes the responses to w, until
// quit is received or r is exhausted.
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		resp, ok := e.Exec(s.Text())
		if !ok {
			continue
		}
		if _, err := io.WriteString(w, resp); err != nil {
			return errors.WithStack(err)
		}
		if e.quit {
			return nil
		}
	}
	return errors.WithStack(s.Err())
}

// Exec runs a single command line. ok is false when the line holds no command.
func (e *Engine) Exec(cmd string) (resp string, ok bool) {
	id, x, args, err := e.parse(cmd)
	if x == nil && err == nil {
		return "", false
	}
	if err != nil {
		return handleErr(id, err), true
	}
	id, result, err := x.Do(id, args, e)
	return handleResult(id, result, err), true
}

func (e *Engine) State() *mnk.MNK { return e.g }

func (e *Engine) start() {
	defer close(e.ret)
	for cmd := range e.ch {
		resp, ok := e.Exec(cmd)
		if !ok {
			continue
		}
		e.ret <- resp
		if e.quit {
			return
		}
	}
}

func (e *Engine) apply(m game.PlayerMove) {
	e.history = append(e.history, e.g)
	e.g = e.g.Apply(m)
}

func (e *Engine) reset(g *mnk.MNK) {
	e.g = g
	e.history = e.history[:0]
}

// refer to this
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html#SECTION00030000000000000000
func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// set err to nil because ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // GNUGo some how does nothing when there are no tokens left. An ID may be passed in but it'll be ignored
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

// preprocess lowercases the line, and drops comments and control characters.
func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	a = strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 32 || r == 127:
			return -1
		}
		return r
	}, a)
	return strings.ToLower(strings.TrimSpace(a))
}

func parseColour(a string) (game.Player, error) {
	switch a {
	case "b", "black", "x":
		return mnk.Cross, nil
	case "w", "white", "o":
		return mnk.Nought, nil
	}
	return game.Player(game.None), errors.Errorf("Invalid colour %q", a)
}

// parseVertex converts a vertex such as "b3" into a cell of an m by n board.
func parseVertex(a string, m, n int) (game.Single, error) {
	if a == "pass" {
		return game.Pass, nil
	}
	if len(a) < 2 {
		return 0, errors.Errorf("Invalid vertex %q", a)
	}
	col := strings.IndexByte(columns, a[0])
	if col < 0 || col >= n {
		return 0, errors.Errorf("Invalid vertex %q: column out of range", a)
	}
	row, err := strconv.Atoi(a[1:])
	if err != nil {
		return 0, errors.WithMessagef(err, "Invalid vertex %q", a)
	}
	if row < 1 || row > m {
		return 0, errors.Errorf("Invalid vertex %q: row out of range", a)
	}
	return game.Single((m-row)*n + col), nil
}

// vertex is the inverse of parseVertex. Vertices are written in upper case.
func vertex(s game.Single, m, n int) string {
	switch {
	case s.IsPass():
		return "PASS"
	case s.IsResignation():
		return "resign"
	}
	row := m - int(s)/n
	col := int(s) % n
	return fmt.Sprintf("%c%d", columns[col]-'a'+'A', row)
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
