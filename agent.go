package uct

import (
	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/mcts"
)

// An Agent is a player. It either searches the game tree, or plays at random.
type Agent[S Playable[S]] struct {
	Player game.Player

	// Statistics
	Wins float32
	Loss float32
	Draw float32

	name string
	conf mcts.Config
	tree *mcts.MCTS[game.Single, S] // tree of the most recent search
}

// NewMCTSAgent creates an agent that searches with the given configuration for every move.
func NewMCTSAgent[S Playable[S]](name string, conf mcts.Config) *Agent[S] {
	return &Agent[S]{name: name, conf: conf}
}

// NewRandomAgent creates an agent that plays a random legal move.
func NewRandomAgent[S Playable[S]](name string) *Agent[S] {
	return &Agent[S]{name: name}
}

func (a *Agent[S]) Name() string { return a.name }

// IsRandom returns true if the agent does not search.
func (a *Agent[S]) IsRandom() bool { return a.conf.Budget == 0 }

// Search searches the game state from the agent's point of view and returns a suggested move.
func (a *Agent[S]) Search(g S) game.Single {
	if a.IsRandom() {
		return g.RandomMove()
	}
	a.tree = mcts.New[game.Single](g.WithPerspective(a.Player), a.conf)
	return a.tree.Search()
}

// Tree returns the tree built by the last search, or nil.
func (a *Agent[S]) Tree() *mcts.MCTS[game.Single, S] { return a.tree }

func (a *Agent[S]) resetStats() {
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
}
