package menu

// Row is one renderable line of the flattened menu. Rows are recomputed from
// scratch after every mutation and never cached.
type Row struct {
	Node  *Node
	Depth int
}

// VisibleRows flattens the expanded portion of the tree into display order:
// depth-first from the root, descending into a category only while it is
// expanded. Sibling order is preserved and a parent always immediately
// precedes its first visible child.
func VisibleRows(t *Tree) []Row {
	rows := make([]Row, 0, t.Len())
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		rows = append(rows, Row{Node: n, Depth: depth})
		if !n.IsCategory() || !n.Expanded {
			return
		}
		for _, child := range n.Children {
			visit(child, depth+1)
		}
	}
	for _, child := range t.root.Children {
		visit(child, 0)
	}
	return rows
}

// RowIndex locates a node id within the projected rows, or -1 when the node
// is hidden or unknown.
func RowIndex(rows []Row, id string) int {
	if id == "" {
		return -1
	}
	for i, row := range rows {
		if row.Node.ID == id {
			return i
		}
	}
	return -1
}

// VisibleAncestor walks up the parent index from id until it reaches a node
// present in rows. Collapsing a category makes that category itself the
// nearest visible ancestor of everything underneath it.
func (t *Tree) VisibleAncestor(rows []Row, id string) (string, bool) {
	for {
		parent, ok := t.Parent(id)
		if !ok {
			return "", false
		}
		if parent.ID == RootID {
			return "", false
		}
		if RowIndex(rows, parent.ID) >= 0 {
			return parent.ID, true
		}
		id = parent.ID
	}
}
