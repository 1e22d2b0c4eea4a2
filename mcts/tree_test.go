package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)
	g := newToy(3, 2, 0)
	tree := New[int](g, DefaultConfig())

	assert.Equal(1, tree.Nodes())
	root := tree.Root()
	assert.True(root.IsRoot())
	assert.True(root.IsLeaf())
	assert.True(root.IsNotVisited())
	assert.Equal(0, root.ID())
	assert.Equal(-1, root.Parent())
	assert.Equal(int32(0), root.Score())
	assert.Same(g, root.State())
}

func TestAppendChild(t *testing.T) {
	assert := assert.New(t)
	g := newToy(3, 2, 0)
	tree := New[int](g, DefaultConfig())

	a := tree.appendChild(0, g.ExecMove(0))
	b := tree.appendChild(0, g.ExecMove(1))
	c := tree.appendChild(a, g.ExecMove(0).ExecMove(2))

	assert.Equal(naughty(1), a)
	assert.Equal(naughty(2), b)
	assert.Equal(naughty(3), c)
	assert.Equal([]int{1, 2}, tree.Root().Children())
	assert.Equal([]int{3}, tree.Node(1).Children())
	assert.Equal(1, tree.Node(3).Parent())
	assert.False(tree.Node(3).IsRoot())
	assert.Equal(4, tree.Nodes())
}

func TestNodeFromNaughtyOutOfRange(t *testing.T) {
	tree := New[int](newToy(3, 2, 0), DefaultConfig())
	require.Panics(t, func() { tree.nodeFromNaughty(1) })
	require.Panics(t, func() { tree.Node(-1) })
}

func TestConfig(t *testing.T) {
	assert := assert.New(t)
	conf := DefaultConfig()
	assert.Equal(10000, conf.Budget)
	assert.True(conf.IsValid())

	conf.Budget = 1
	assert.False(conf.IsValid())
}
