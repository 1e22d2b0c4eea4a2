package mcts

import (
	"github.com/chewxy/math32"
)

// geq is a total order over float32 where NaN is greater than every number and
// equal to every other NaN.
func geq(a, b float32) bool {
	switch {
	case math32.IsNaN(a):
		return true
	case math32.IsNaN(b):
		return false
	}
	return a >= b
}

// argmax returns the index of the greatest value under geq. When several values
// tie, the last one wins. It returns -1 for an empty slice.
func argmax(a []float32) int {
	retVal := -1
	var max float32
	for i := range a {
		if retVal < 0 || geq(a[i], max) {
			max = a[i]
			retVal = i
		}
	}
	return retVal
}

// bestBy evaluates every child of n with eval and returns the winning child under argmax.
func (t *MCTS[M, S]) bestBy(n *Node[S], eval func(*Node[S]) float32) naughty {
	vals := make([]float32, len(n.children))
	for i, kid := range n.children {
		vals[i] = eval(t.nodeFromNaughty(kid))
	}
	i := argmax(vals)
	if i < 0 {
		return nilNode
	}
	return n.children[i]
}
