// Command joshua makes the search play against itself, or against a random
// player, and reports how it went.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorgonia/uct"
	"github.com/gorgonia/uct/encoding/gif"
	"github.com/gorgonia/uct/encoding/mjpeg"
	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/game/c4"
	"github.com/gorgonia/uct/game/mnk"
	"github.com/gorgonia/uct/mcts"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	gameName = flag.String("game", "tictactoe", "tictactoe or connect4")
	games    = flag.Int("games", 10, "number of games to play")
	budget   = flag.Int("budget", 1000, "iterations per move")
	opponent = flag.String("opponent", "random", "mcts or random")
	seed     = flag.Uint64("seed", 0, "random seed. 0 seeds from the clock")
	csvFile  = flag.String("csv", "", "write the win rates to this file")
	gifFile  = flag.String("gif", "", "record every game into this animated gif")
	addr     = flag.String("http", "", "serve /ws (moves as JSON) and /stream (MJPEG) on this address")
	logFile  = flag.String("log", "", "write the arena log to this file")
	verbose  = flag.Bool("v", false, "debug logging")
)

// outputs sends every state to all of its encoders.
type outputs []uct.OutputEncoder

func (o outputs) Encode(ms game.MetaState) error {
	for _, enc := range o {
		if err := enc.Encode(ms); err != nil {
			return err
		}
	}
	return nil
}

func (o outputs) Flush() error {
	for _, enc := range o {
		if err := enc.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	conf := mcts.DefaultConfig()
	conf.Budget = *budget
	if !conf.IsValid() {
		log.Fatal().Int("budget", *budget).Msg("the budget must be at least 2")
	}

	var err error
	switch strings.ToLower(*gameName) {
	case "tictactoe", "ttt":
		err = run(mnk.TicTacToe(mnk.WithSeed(*seed)), "Tic Tac Toe", conf)
	case "connect4", "c4":
		err = run(c4.ConnectFour(*seed), "Connect Four", conf)
	default:
		err = errors.Errorf("unknown game %q", *gameName)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("joshua")
	}
}

func run[S uct.Playable[S]](g S, name string, conf mcts.Config) error {
	a, b, err := agents[S](*opponent, conf)
	if err != nil {
		return err
	}

	var out outputs
	var gifEnc *gif.Encoder
	if *gifFile != "" {
		gifEnc = gif.NewGifEncoder(300, 500)
		out = append(out, gifEnc)
	}
	if *addr != "" {
		ws := NewEncoder()
		stream := mjpeg.NewEncoder(300, 500)
		out = append(out, ws, stream)
		go serve(*addr, ws, stream)
	}

	arenaConf := uct.Config{Name: name, MCTSConf: conf, Seed: *seed}
	if len(out) > 0 {
		arenaConf.OutputEncoder = out
	}
	if gifEnc != nil {
		f, err := os.Create(*gifFile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		gifEnc.Writer = f
	}

	ar := uct.NewArena(g, a, b, arenaConf)
	if err := ar.Run(*games); err != nil {
		log.Error().Err(err).Msg("output")
	}
	log.Info().
		Str(a.Name(), ratio(a)).
		Str(b.Name(), ratio(b)).
		Msgf("%d games of %s", *games, name)

	if *csvFile != "" {
		if err := ar.Stats.Dump(*csvFile); err != nil {
			return errors.WithMessage(err, "dumping statistics")
		}
	}
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		ar.Log(f)
	}
	return nil
}

func agents[S uct.Playable[S]](opponent string, conf mcts.Config) (a, b *uct.Agent[S], err error) {
	a = uct.NewMCTSAgent[S]("joshua", conf)
	switch opponent {
	case "mcts":
		b = uct.NewMCTSAgent[S]("falken", conf)
	case "random":
		b = uct.NewRandomAgent[S]("random")
	default:
		return nil, nil, errors.Errorf("unknown opponent %q", opponent)
	}
	return a, b, nil
}

// ratio is wins/losses/draws.
func ratio[S uct.Playable[S]](a *uct.Agent[S]) string {
	return fmt.Sprintf("%v/%v/%v", a.Wins, a.Loss, a.Draw)
}

func serve(addr string, ws, stream http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/ws", ws)
	mux.Handle("/stream", stream)
	log.Info().Msgf("http://%s/stream", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("http")
	}
}
