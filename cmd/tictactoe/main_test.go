package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/game/mnk"
	"github.com/gorgonia/uct/mcts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want game.Single
		ok   bool
	}{
		{"1\n", 0, true},
		{" 9 ", 8, true},
		{"5", 4, true},
		{"0", 0, false},
		{"10", 0, false},
		{"x", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := parseMove(c.in)
		if !c.ok {
			assert.Equal(t, errBadInput, err, "%q", c.in)
			continue
		}
		require.NoError(t, err, "%q", c.in)
		assert.Equal(t, c.want, got, "%q", c.in)
	}
}

func TestReadMove(t *testing.T) {
	g := mnk.TicTacToe().ExecMove(4)
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("hello\n5\n3\n"))
	m, err := readMove(in, &out, g)
	require.NoError(t, err)
	assert.Equal(t, game.Single(2), m)
	assert.Contains(t, out.String(), "Please enter a single digit between 1 and 9.")
	assert.Contains(t, out.String(), "Field 5 already taken!")

	_, err = readMove(bufio.NewReader(strings.NewReader("5")), &out, g)
	assert.Error(t, err, "input ends on a taken field")

	m, err = readMove(bufio.NewReader(strings.NewReader("7")), &out, g)
	require.NoError(t, err, "a last line without a newline still counts")
	assert.Equal(t, game.Single(6), m)
}

func TestStarting(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	p, err := starting("human", r, mnk.Cross, mnk.Nought)
	require.NoError(t, err)
	assert.Equal(t, mnk.Cross, p)

	p, err = starting("computer", r, mnk.Cross, mnk.Nought)
	require.NoError(t, err)
	assert.Equal(t, mnk.Nought, p)

	p, err = starting("random", r, mnk.Cross, mnk.Nought)
	require.NoError(t, err)
	assert.Contains(t, []game.Player{mnk.Cross, mnk.Nought}, p)

	_, err = starting("cat", r, mnk.Cross, mnk.Nought)
	assert.Error(t, err)
}

func TestDisplay(t *testing.T) {
	g := mnk.TicTacToe().ExecMove(0).ExecMove(4)
	assert.Equal(t, "\nx . . \n. o . \n. . . \n", display(g, mnk.Cross))
	assert.Equal(t, "\no . . \n. x . \n. . . \n", display(g, mnk.Nought))
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "A draw it is. For now...", verdict(game.Player(game.None), mnk.Cross))
	assert.Contains(t, verdict(mnk.Cross, mnk.Cross), "You won")
	assert.Contains(t, verdict(mnk.Nought, mnk.Cross), "I won")
}

func TestPlay(t *testing.T) {
	*first = "human"
	defer func() { *first = "random" }()

	// every field in order: taken ones are asked again, so the game always finishes
	in := strings.Repeat("1\n2\n3\n4\n5\n6\n7\n8\n9\n", 2)
	var out bytes.Buffer
	conf := mcts.Config{Budget: 500}
	require.NoError(t, play(strings.NewReader(in), &out, rand.New(rand.NewSource(7)), conf))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\n. . . \n. . . \n. . . \n"), s)
	assert.Contains(t, s, "\nx . . \n", "the human took the first field")
	lines := strings.Split(strings.TrimSpace(s), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	assert.Contains(t, []string{"A draw it is. For now...", "You won human, this cannot be!", "I won human, you will never defeat me!"}, last)
}

func TestRunGTP(t *testing.T) {
	in := strings.NewReader("play b b2\ngenmove w\nquit\n")
	var out bytes.Buffer
	require.NoError(t, runGTP(in, &out, rand.New(rand.NewSource(1)), mcts.Config{Budget: 200}))

	resp := strings.Split(out.String(), "\n\n")
	require.True(t, len(resp) >= 3, out.String())
	assert.Equal(t, "= ", resp[0])
	assert.Regexp(t, `^= [A-C][1-3]$`, resp[1])
	assert.NotEqual(t, "= B2", resp[1])
	assert.Equal(t, "= ", resp[2])
}
