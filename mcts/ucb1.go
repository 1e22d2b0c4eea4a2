package mcts

import (
	"fmt"

	"github.com/chewxy/math32"
)

// explorationWeight is the constant c in c * sqrt(ln N / n).
const explorationWeight = 2

// exploitationTerm is the average outcome of n. A node that has scored nothing
// yet is treated as maximally attractive, the same as a node never visited.
func exploitationTerm[S any](n *Node[S]) float32 {
	if n.score == 0 {
		return math32.MaxFloat32
	}
	return float32(n.score) / float32(n.visits)
}

// explorationNumerator is ln N(parent). It panics if the parent was never visited.
func (t *MCTS[M, S]) explorationNumerator(n *Node[S]) float32 {
	parent := t.parentOf(n)
	if parent.visits == 0 {
		panic(fmt.Sprintf("parent %d of node %d has no visits", parent.id, n.id))
	}
	return math32.Log(float32(parent.visits))
}

func explorationDenominator[S any](n *Node[S]) float32 { return float32(n.visits) }

// explorationTerm is c * sqrt(ln N(parent) / N(n)). It is +Inf for an unvisited node.
func (t *MCTS[M, S]) explorationTerm(n *Node[S]) float32 {
	return explorationWeight * math32.Sqrt(t.explorationNumerator(n)/explorationDenominator(n))
}

// ucb1 is the selection value of n. It panics on the root.
func (t *MCTS[M, S]) ucb1(n *Node[S]) float32 {
	return exploitationTerm(n) + t.explorationTerm(n)
}

// averageScore is used to pick the final move. Unvisited nodes are NaN.
func averageScore[S any](n *Node[S]) float32 {
	return float32(n.score) / float32(n.visits)
}
