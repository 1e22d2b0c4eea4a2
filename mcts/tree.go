package mcts

// Config is the structure to configure a search.
type Config struct {
	// Budget is the number of iterations a call to (*MCTS).Search runs.
	Budget int
}

func DefaultConfig() Config {
	return Config{
		Budget: 10000,
	}
}

// IsValid returns false when the budget can never expand the root: the first
// iteration always rolls the root out, so at least two are required.
func (c Config) IsValid() bool { return c.Budget >= 2 }

// MCTS is the arena of one search. The goal is to build MCTS without much pointer chasing.
// Nodes are only ever appended; an id stays valid for the lifetime of the arena.
type MCTS[M any, S State[M, S]] struct {
	Config

	// memory related fields
	nodes []Node[S]

	lumberjack
}

// New creates an arena holding only the root, built from the initial state.
func New[M any, S State[M, S]](initial S, conf Config) *MCTS[M, S] {
	capacity := conf.Budget
	if capacity < 1 {
		capacity = 1
	}
	retVal := &MCTS[M, S]{
		Config:     conf,
		nodes:      make([]Node[S], 0, capacity),
		lumberjack: makeLumberJack(),
	}
	retVal.alloc(nilNode, initial)
	return retVal
}

// alloc appends a new node to the arena and returns its id.
func (t *MCTS[M, S]) alloc(parent naughty, state S) naughty {
	id := naughty(len(t.nodes))
	t.nodes = append(t.nodes, Node[S]{
		state:  state,
		id:     id,
		parent: parent,
	})
	return id
}

// appendChild creates a node for state and registers it as the last child of parent.
func (t *MCTS[M, S]) appendChild(parent naughty, state S) naughty {
	kid := t.alloc(parent, state)
	p := t.nodeFromNaughty(parent)
	p.children = append(p.children, kid)
	return kid
}

// nodeFromNaughty returns the node at the given index. An out of range index panics.
func (t *MCTS[M, S]) nodeFromNaughty(ptr naughty) *Node[S] {
	return &t.nodes[int(ptr)]
}

// Nodes returns the number of nodes in the arena.
func (t *MCTS[M, S]) Nodes() int { return len(t.nodes) }

// Node returns the node with the given id. It panics when no such node exists.
func (t *MCTS[M, S]) Node(id int) *Node[S] { return t.nodeFromNaughty(naughty(id)) }

// Root returns the root node.
func (t *MCTS[M, S]) Root() *Node[S] { return t.nodeFromNaughty(0) }

// parentOf returns the parent of n. Calling it on the root panics.
func (t *MCTS[M, S]) parentOf(n *Node[S]) *Node[S] {
	if n.IsRoot() {
		panic("the root node has no parent")
	}
	return t.nodeFromNaughty(n.parent)
}
