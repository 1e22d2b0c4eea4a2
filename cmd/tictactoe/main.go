// Command tictactoe plays tic tac toe against a human on the terminal, or speaks
// the text protocol with -gtp.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gorgonia/uct/encoding/gif"
	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/game/mnk"
	"github.com/gorgonia/uct/gtp"
	"github.com/gorgonia/uct/mcts"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	budget  = flag.Int("budget", 10000, "iterations per computer move")
	seed    = flag.Uint64("seed", 0, "random seed. 0 seeds from the clock")
	first   = flag.String("first", "random", "who moves first: human, computer or random")
	dotFile = flag.String("dot", "", "write the tree of the computer's last search to this Graphviz file")
	gifFile = flag.String("gif", "", "record the game as an animated gif")
	gtpMode = flag.Bool("gtp", false, "speak the text protocol on stdin and stdout")
	verbose = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	conf := mcts.DefaultConfig()
	conf.Budget = *budget
	if !conf.IsValid() {
		log.Fatal().Int("budget", *budget).Msg("the budget must be at least 2")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewSource(*seed))
	log.Debug().Uint64("seed", *seed).Int("budget", conf.Budget).Msg("starting")

	var err error
	if *gtpMode {
		err = runGTP(os.Stdin, os.Stdout, r, conf)
	} else {
		err = play(os.Stdin, os.Stdout, r, conf)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("tictactoe")
	}
}

func runGTP(in io.Reader, out io.Writer, r *rand.Rand, conf mcts.Config) error {
	e := gtp.New(mnk.TicTacToe(mnk.WithRand(r)), "uct", "0.1", nil)
	e.New = func(m, n, k int) *mnk.MNK { return mnk.New(m, n, k, mnk.WithRand(r)) }
	e.Generate = func(g *mnk.MNK) game.Single {
		t := mcts.New[game.Single](g, conf)
		move := t.Search()
		log.Debug().Int("nodes", t.Nodes()).Int32("move", int32(move)).Msg("generated")
		return move
	}
	return e.Run(in, out)
}

func play(in io.Reader, out io.Writer, r *rand.Rand, conf mcts.Config) error {
	human, computer := mnk.Cross, mnk.Nought
	starter, err := starting(*first, r, human, computer)
	if err != nil {
		return err
	}
	g := mnk.TicTacToe(mnk.WithRand(r), mnk.WithFirst(starter), mnk.WithPerspective(computer))

	var enc *gif.Encoder
	if *gifFile != "" {
		enc = gif.NewGifEncoder(300, 500)
	}
	var last *mcts.MCTS[game.Single, *mnk.MNK]

	reader := bufio.NewReader(in)
	fmt.Fprintln(out, display(g, human))
	for !g.IsTerminal() {
		var move game.Single
		if g.ToMove() == human {
			if move, err = readMove(reader, out, g); err != nil {
				return err
			}
		} else {
			last = mcts.New[game.Single](g, conf)
			move = last.Search()
			log.Debug().Int("nodes", last.Nodes()).Uint32("visits", last.Root().Visits()).Msgf("computer plays %d", move+1)
		}
		g = g.ExecMove(move)
		fmt.Fprintln(out, display(g, human))
		if enc != nil {
			if err := enc.Encode(&session{g: g, name: "Tic Tac Toe"}); err != nil {
				return err
			}
		}
	}
	_, winner := g.Ended()
	fmt.Fprintln(out, verdict(winner, human))

	if enc != nil {
		if err := writeGif(enc, *gifFile); err != nil {
			return err
		}
	}
	if *dotFile != "" && last != nil {
		if err := os.WriteFile(*dotFile, []byte(last.ToDot()), 0644); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func starting(who string, r *rand.Rand, human, computer game.Player) (game.Player, error) {
	switch who {
	case "human":
		return human, nil
	case "computer":
		return computer, nil
	case "random":
		if r.Intn(2) == 0 {
			return human, nil
		}
		return computer, nil
	}
	return game.Player(game.None), errors.Errorf("unknown first player %q", who)
}

func writeGif(enc *gif.Encoder, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	enc.Writer = f
	return enc.Flush()
}
