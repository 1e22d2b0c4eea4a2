package mcts

import (
	"github.com/chewxy/math32"
)

// determineNextNode descends from the root, always taking the child with the
// greatest UCB1 value, until it reaches a node without children.
func (t *MCTS[M, S]) determineNextNode() naughty {
	current := naughty(0)
	for {
		n := t.nodeFromNaughty(current)
		if n.IsLeaf() {
			return current
		}
		current = t.bestBy(n, t.ucb1)
		t.log("\tselect %v", current)
	}
}

// processNode either rolls the leaf out or expands it. A leaf is rolled out the
// first time it is reached, and every time it is reached if the game is over there.
func (t *MCTS[M, S]) processNode(leaf naughty) {
	n := t.nodeFromNaughty(leaf)
	if n.IsNotVisited() || n.state.IsTerminal() {
		t.rollout(leaf)
		return
	}
	t.expand(leaf)
}

// expand adds one child per legal move. A state with no legal moves gains no
// children and stays a leaf.
func (t *MCTS[M, S]) expand(of naughty) {
	state := t.nodeFromNaughty(of).state
	moves := state.LegalMoves()
	for _, m := range moves {
		// appendChild may grow the arena, so the state is fetched before the loop.
		t.appendChild(of, state.ExecMove(m))
	}
	t.log("\texpand %v: %d children", of, len(moves))
}

// rollout plays the game out randomly from the node and credits the outcome to
// the node and every one of its ancestors.
func (t *MCTS[M, S]) rollout(of naughty) {
	n := t.nodeFromNaughty(of)
	v := n.state.Terminate()
	n.update(v)
	t.log("\trollout %v: %d", of, v)
	t.propagate(n.parent, v)
}

// propagate walks the parent links from the given node up to the root.
func (t *MCTS[M, S]) propagate(from naughty, v int32) {
	for current := from; current.isValid(); {
		n := t.nodeFromNaughty(current)
		n.update(v)
		current = n.parent
	}
}

// iterateOnce is a single select/expand/rollout/backpropagate cycle.
func (t *MCTS[M, S]) iterateOnce() {
	leaf := t.determineNextNode()
	t.processNode(leaf)
}

// Run performs exactly iterations cycles on the arena.
func (t *MCTS[M, S]) Run(iterations int) {
	for i := 0; i < iterations; i++ {
		t.log("Iteration %d", i)
		t.iterateOnce()
	}
}

// BestMove returns the move leading to the root child with the greatest average
// score. Children that were never visited rank below every visited child. Among
// equals the last child wins. BestMove panics if the root has no children.
func (t *MCTS[M, S]) BestMove() M {
	root := t.Root()
	if root.IsLeaf() {
		panic("cannot pick a move: the root has no children")
	}
	best := t.bestBy(root, finalScore[S])
	return t.nodeFromNaughty(best).state.LastMove()
}

// Search runs the configured budget and returns the best move.
func (t *MCTS[M, S]) Search() M {
	t.Run(t.Budget)
	return t.BestMove()
}

func finalScore[S any](n *Node[S]) float32 {
	if n.IsNotVisited() {
		return math32.Inf(-1)
	}
	return averageScore(n)
}
