package viewport

// Node links one viewport to its neighbours in the tree.
type Node struct {
	Parent      ID
	FirstChild  ID
	NextSibling ID
}

// Tree is the parent/child structure derived from Container references.
type Tree struct {
	roots []ID
	nodes map[ID]Node
}

// buildTree links viewports in order. Children keep their relative order,
// which is also their paint order.
func buildTree(order []ID, viewports map[ID]*Viewport) Tree {
	t := Tree{nodes: make(map[ID]Node, len(order))}
	lastChild := make(map[ID]ID, len(order))
	for _, id := range order {
		t.nodes[id] = Node{}
	}
	for _, id := range order {
		parent := viewports[id].Container
		if _, ok := viewports[parent]; !ok || parent == id {
			t.roots = append(t.roots, id)
			continue
		}
		n := t.nodes[id]
		n.Parent = parent
		t.nodes[id] = n

		if prev, ok := lastChild[parent]; ok {
			p := t.nodes[prev]
			p.NextSibling = id
			t.nodes[prev] = p
		} else {
			p := t.nodes[parent]
			p.FirstChild = id
			t.nodes[parent] = p
		}
		lastChild[parent] = id
	}
	return t
}

// Roots returns the viewports without a live parent.
func (t Tree) Roots() []ID {
	return append([]ID(nil), t.roots...)
}

// Node returns the links of id.
func (t Tree) Node(id ID) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Parent returns the parent of id, NoID for roots and unknown IDs.
func (t Tree) Parent(id ID) ID {
	return t.nodes[id].Parent
}

// Children returns the children of id in paint order.
func (t Tree) Children(id ID) []ID {
	var out []ID
	for c := t.nodes[id].FirstChild; c != NoID; c = t.nodes[c].NextSibling {
		out = append(out, c)
	}
	return out
}

// Walk visits every viewport reachable from a root in pre-order. Returning
// false from fn skips that viewport's children.
func (t Tree) Walk(fn func(id ID, depth int) bool) {
	var visit func(id ID, depth int)
	visit = func(id ID, depth int) {
		if !fn(id, depth) {
			return
		}
		for c := t.nodes[id].FirstChild; c != NoID; c = t.nodes[c].NextSibling {
			visit(c, depth+1)
		}
	}
	for _, r := range t.roots {
		visit(r, 0)
	}
}
