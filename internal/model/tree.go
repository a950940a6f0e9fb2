package model

// FindFocused descends from n along the focus stack and returns the first
// node for which pred holds.
//
// At every level the first id of the node's focus stack selects the child to
// descend into, tiling children first, then floating ones. Nodes without a
// focus stack are searched depth-first over all their children in order, so
// hand-assembled trees without focus bookkeeping still resolve.
func (n *Node) FindFocused(pred func(*Node) bool) *Node {
	if pred(n) {
		return n
	}
	if len(n.Focus) == 0 {
		return n.searchChildren(pred)
	}
	next := n.Focus[0]
	for i := range n.Nodes {
		if n.Nodes[i].ID == next {
			return n.Nodes[i].FindFocused(pred)
		}
	}
	for i := range n.FloatingNodes {
		if n.FloatingNodes[i].ID == next {
			return n.FloatingNodes[i].FindFocused(pred)
		}
	}
	return nil
}

func (n *Node) searchChildren(pred func(*Node) bool) *Node {
	for i := range n.Nodes {
		if found := n.Nodes[i].FindFocused(pred); found != nil {
			return found
		}
	}
	for i := range n.FloatingNodes {
		if found := n.FloatingNodes[i].FindFocused(pred); found != nil {
			return found
		}
	}
	return nil
}

// FocusedNode returns the node holding input focus, or nil.
func (n *Node) FocusedNode() *Node {
	return n.FindFocused(func(c *Node) bool { return c.Focused })
}

// FocusedParent returns the node whose tiling children include the focused
// node, or nil. Floating windows have no such parent.
func (n *Node) FocusedParent() *Node {
	return n.FindFocused(func(c *Node) bool {
		for i := range c.Nodes {
			if c.Nodes[i].Focused {
				return true
			}
		}
		return false
	})
}

// FindMarked returns the first node carrying mark, or nil.
func (n *Node) FindMarked(mark string) *Node {
	if n.HasMark(mark) {
		return n
	}
	for i := range n.Nodes {
		if found := n.Nodes[i].FindMarked(mark); found != nil {
			return found
		}
	}
	for i := range n.FloatingNodes {
		if found := n.FloatingNodes[i].FindMarked(mark); found != nil {
			return found
		}
	}
	return nil
}
