package menu

// Kind discriminates the two node variants in the menu tree.
type Kind int

const (
	KindCategory Kind = iota
	KindCommand
)

// Colors carries optional per-category display overrides from the menu file.
type Colors struct {
	Background string
	Text       string
}

// Node is a single entry in the menu tree. A category owns an ordered list of
// children; a command is a leaf carrying the shell command to run. Child
// ordering is display order and is significant.
type Node struct {
	ID       string
	Label    string
	Kind     Kind
	Command  string
	Info     string
	Pause    bool
	Expanded bool
	Colors   *Colors
	Children []*Node
}

// IsCategory reports whether the node can hold children.
func (n *Node) IsCategory() bool {
	return n.Kind == KindCategory
}

// Tree owns the loaded menu hierarchy. The shape is fixed after load; only
// the Expanded flags mutate during a session. Parent links live in an id
// index rather than as node back-pointers, so the structure stays acyclic.
type Tree struct {
	root    *Node
	nodes   map[string]*Node
	parents map[string]string
}

// RootID is the identifier of the synthetic root node. The root itself is
// never rendered; projection starts from its children.
const RootID = "root"

// NewTree wraps the provided children in a synthetic root and indexes every
// node by id. Node IDs must already be unique; the loader guarantees this.
func NewTree(children []*Node) *Tree {
	root := &Node{ID: RootID, Kind: KindCategory, Expanded: true, Children: children}
	t := &Tree{
		root:    root,
		nodes:   make(map[string]*Node),
		parents: make(map[string]string),
	}
	t.index(root, "")
	return t
}

func (t *Tree) index(n *Node, parentID string) {
	t.nodes[n.ID] = n
	if parentID != "" {
		t.parents[n.ID] = parentID
	}
	for _, child := range n.Children {
		t.index(child, n.ID)
	}
}

// Root returns the synthetic root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Find locates a node by id.
func (t *Tree) Find(id string) (*Node, bool) {
	node, ok := t.nodes[id]
	return node, ok
}

// Parent returns the parent of the given node. The root and unknown ids have
// no parent.
func (t *Tree) Parent(id string) (*Node, bool) {
	parentID, ok := t.parents[id]
	if !ok {
		return nil, false
	}
	node, ok := t.nodes[parentID]
	return node, ok
}

// ToggleExpand flips a category's expanded flag and reports whether anything
// changed. Command nodes and unknown ids are safe no-ops.
func (t *Tree) ToggleExpand(id string) bool {
	node, ok := t.nodes[id]
	if !ok || !node.IsCategory() || node.ID == RootID {
		return false
	}
	node.Expanded = !node.Expanded
	return true
}

// Walk visits every node below the root depth-first in display order. The
// callback receives the node and its depth, with root children at depth 0.
func (t *Tree) Walk(fn func(n *Node, depth int)) {
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		fn(n, depth)
		for _, child := range n.Children {
			visit(child, depth+1)
		}
	}
	for _, child := range t.root.Children {
		visit(child, 0)
	}
}

// Commands returns every command node in display order, regardless of the
// current expansion state. The filter mode searches over this list.
func (t *Tree) Commands() []*Node {
	var commands []*Node
	t.Walk(func(n *Node, _ int) {
		if n.Kind == KindCommand {
			commands = append(commands, n)
		}
	})
	return commands
}

// Len reports the number of nodes below the root.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}
