package mnk

import (
	"github.com/gorgonia/uct/game"
	"github.com/gorgonia/uct/mcts"
)

var _ mcts.State[game.Single, *MNK] = &MNK{}

// ExecMove plays m for the player to move.
func (g *MNK) ExecMove(m game.Single) *MNK {
	return g.Apply(game.PlayerMove{Player: g.nextToMove, Single: m})
}

// LegalMoves returns the empty cells in row major order, or nothing once the game is over.
func (g *MNK) LegalMoves() []game.Single {
	if g.IsTerminal() {
		return nil
	}
	retVal := make([]game.Single, 0, len(g.board))
	for i, c := range g.board {
		if c == game.None {
			retVal = append(retVal, game.Single(i))
		}
	}
	return retVal
}

// LastMove returns the cell that was played last. It panics before the first move.
func (g *MNK) LastMove() game.Single {
	if len(g.history) == 0 {
		panic("no move has been played yet")
	}
	return g.history[len(g.history)-1].Single
}

// RandomMove picks one of the legal moves. It panics if there are none.
func (g *MNK) RandomMove() game.Single {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves left")
	}
	return moves[g.rand.Intn(len(moves))]
}

// Terminate plays random moves until the game is over and scores the result for the perspective player.
func (g *MNK) Terminate() int32 {
	playout := g.clone()
	for !playout.IsTerminal() {
		playout.place(game.PlayerMove{Player: playout.nextToMove, Single: playout.RandomMove()})
	}
	_, winner := playout.Ended()
	return game.Outcome(winner, g.perspective)
}

func (g *MNK) IsTerminal() bool {
	ended, _ := g.Ended()
	return ended
}
