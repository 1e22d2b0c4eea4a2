package uct

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/gorgonia/uct/game"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Arena plays games between two agents.
type Arena[S Playable[S]] struct {
	r       *rand.Rand
	initial S
	game    S
	A, B    *Agent[S]

	// state
	currentPlayer *Agent[S]
	buf           bytes.Buffer
	logger        zerolog.Logger
	enc           OutputEncoder
	Stats         Statistics

	name       string
	epoch      int
	gameNumber int
}

// NewArena makes an arena where a and b play g, over and over.
func NewArena[S Playable[S]](g S, a, b *Agent[S], conf Config) *Arena[S] {
	if conf.Name == "" {
		conf.Name = "UNKNOWN GAME"
	}
	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ar := &Arena[S]{
		r:       rand.New(rand.NewSource(seed)),
		initial: g,
		game:    g,
		A:       a,
		B:       b,
		enc:     conf.OutputEncoder,
		Stats:   makeStatistics(),
		name:    conf.Name,
	}
	ar.logger = zerolog.New(&ar.buf).With().Timestamp().Logger()
	return ar
}

// Play plays a game from the initial state, and returns the winner. If it is a draw, the returned colour is None.
//
// Errors only come from the output encoder. They do not stop the game.
func (a *Arena[S]) Play() (winner game.Player, err error) {
	if a.r.Intn(2) == 0 {
		a.A.Player = game.Player(game.Black)
		a.B.Player = game.Player(game.White)
	} else {
		a.A.Player = game.Player(game.White)
		a.B.Player = game.Player(game.Black)
	}
	a.game = a.initial
	a.currentPlayer = a.A
	if a.game.ToMove() != a.A.Player {
		a.currentPlayer = a.B
	}

	a.logger.Info().Int("game", a.gameNumber).Str("A", fmt.Sprintf("%v", a.A.Player)).Str("B", fmt.Sprintf("%v", a.B.Player)).Msg("Playing")
	var errs manyErr
	var ended bool
	for ended, winner = a.game.Ended(); !ended; ended, winner = a.game.Ended() {
		best := a.currentPlayer.Search(a.game)
		a.logger.Debug().Str("agent", a.currentPlayer.name).Int32("move", int32(best)).Msgf("Current Player: %v", a.currentPlayer.Player)
		a.game = a.game.ExecMove(best)
		a.switchPlayer()
		if a.enc != nil {
			if err := a.enc.Encode(a); err != nil {
				errs = append(errs, errors.WithMessagef(err, "encoding move %d", a.game.MoveNumber()))
			}
		}
	}

	var winningAgent *Agent[S]
	switch {
	case winner == game.Player(game.None):
		a.A.Draw++
		a.B.Draw++
	case winner == a.A.Player:
		a.A.Wins++
		a.B.Loss++
		winningAgent = a.A
	case winner == a.B.Player:
		a.B.Wins++
		a.A.Loss++
		winningAgent = a.B
	}
	name := "nobody"
	if winningAgent != nil {
		name = winningAgent.name
	}
	a.logger.Info().Int("game", a.gameNumber).Str("winner", name).Msgf("Winner %v", winner)
	if len(errs) > 0 {
		return winner, errs
	}
	return winner, nil
}

// Run plays n games, recording the cumulative results of both agents after every game.
func (a *Arena[S]) Run(n int) error {
	a.A.resetStats()
	a.B.resetStats()
	var errs manyErr
	for i := 0; i < n; i++ {
		a.gameNumber = i
		if _, err := a.Play(); err != nil {
			errs = append(errs, err)
		}
		a.Stats.update(a.A.name, a.A.Wins, a.A.Loss, a.A.Draw)
		a.Stats.update(a.B.name, a.B.Wins, a.B.Loss, a.B.Draw)
	}
	a.epoch++
	log.Info().Str("game", a.name).Int("games", n).
		Float32("A wins", a.A.Wins).Float32("B wins", a.B.Wins).Float32("draws", a.A.Draw).
		Msg("Done playing")
	if a.enc != nil {
		if err := a.enc.Flush(); err != nil {
			errs = append(errs, errors.WithMessage(err, "flushing output"))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (a *Arena[S]) Epoch() int      { return a.epoch }
func (a *Arena[S]) GameNumber() int { return a.gameNumber }
func (a *Arena[S]) Name() string    { return a.name }

// Score is 1 for a won game, -1 for a lost one, 0 otherwise.
func (a *Arena[S]) Score(p game.Player) float64 {
	ended, winner := a.game.Ended()
	switch {
	case !ended, winner == game.Player(game.None):
		return 0
	case winner == p:
		return 1
	}
	return -1
}

func (a *Arena[S]) State() game.State { return a.game }

// Current returns the state of the game being played.
func (a *Arena[S]) Current() S { return a.game }

// Log writes the arena's log, followed by the search logs of both agents.
func (a *Arena[S]) Log(w io.Writer) {
	fmt.Fprint(w, a.buf.String())
	for _, ag := range []*Agent[S]{a.A, a.B} {
		fmt.Fprintf(w, "\n%s:\n\n", ag.name)
		if t := ag.Tree(); t != nil {
			fmt.Fprintln(w, t.Log())
		}
	}
}

func (a *Arena[S]) switchPlayer() {
	switch a.currentPlayer {
	case a.A:
		a.currentPlayer = a.B
	case a.B:
		a.currentPlayer = a.A
	}
}
