// Package uct pits game playing agents against each other. Searching agents use
// the plain UCT search of package mcts, the others play at random.
package uct

import (
	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/mcts"
)

type Config struct {
	Name     string
	MCTSConf mcts.Config
	Seed     uint64 // seeds who plays which colour. 0 seeds from the clock

	// extensions
	OutputEncoder OutputEncoder
}

// Playable is a board game that can be searched, shown and refereed.
type Playable[S any] interface {
	game.State
	mcts.State[game.Single, S]

	// WithPerspective returns a copy of the state whose playouts are scored for p.
	WithPerspective(p game.Player) S
}

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// manyErr collects the errors of several independent steps.
type manyErr []error

func (err manyErr) Error() string {
	var msg string
	for i, e := range err {
		if i > 0 {
			msg += "; "
		}
		msg += e.Error()
	}
	return msg
}
