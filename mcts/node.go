package mcts

import (
	"fmt"
)

// Node is a vertex of the search tree. It holds the state reached by the moves
// from the root, and the accumulated outcome of the rollouts credited to it.
type Node[S any] struct {
	state  S
	visits uint32 // N(s) in the literature
	score  int32  // sum of rollout outcomes

	// naughty things
	id       naughty
	parent   naughty
	children []naughty
}

func (n *Node[S]) Format(s fmt.State, c rune) {
	switch c {
	case 's':
		fmt.Fprintf(s, "%v", n.state)
	default:
		fmt.Fprintf(s, "{NodeID: %v Parent: %v Score: %v Visits %v Children: %v}", n.id, n.parent, n.score, n.visits, n.children)
	}
}

// ID returns the index of the node in the arena.
func (n *Node[S]) ID() int { return int(n.id) }

// Parent returns the index of the parent node, or -1 for the root.
func (n *Node[S]) Parent() int { return int(n.parent) }

// State returns the game state this node represents.
func (n *Node[S]) State() S { return n.state }

func (n *Node[S]) Visits() uint32 { return n.visits }

func (n *Node[S]) Score() int32 { return n.score }

// Children returns the indices of the children, in expansion order.
func (n *Node[S]) Children() []int {
	retVal := make([]int, len(n.children))
	for i, kid := range n.children {
		retVal[i] = int(kid)
	}
	return retVal
}

// IsRoot returns true if the node has no parent
func (n *Node[S]) IsRoot() bool { return !n.parent.isValid() }

// IsLeaf returns true if the node hasn't been expanded
func (n *Node[S]) IsLeaf() bool { return len(n.children) == 0 }

// IsNotVisited returns true if this node hasn't ever been visited
func (n *Node[S]) IsNotVisited() bool { return n.visits == 0 }

// update credits one rollout outcome to the node.
func (n *Node[S]) update(v int32) {
	n.visits++
	n.score += v
}
