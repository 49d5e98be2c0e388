package pathtree

import "sort"

// SortedChildren returns the direct children of node ordered by name.
// Map iteration order is never used for output.
func (node *Node) SortedChildren() []*Node {
	keys := make([]string, 0, len(node.Children))
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	children := make([]*Node, 0, len(keys))
	for _, key := range keys {
		children = append(children, node.Children[key])
	}
	return children
}

// Visitor is called for every node below the root in pre-order.
// depth is 0 for the root's direct children (the anchors).
// Returning false skips the node's subtree.
type Visitor func(node *Node, depth int) bool

// Walk visits the tree depth-first, siblings in lexicographic order.
// The root itself is not visited.
func (node *Node) Walk(visit Visitor) {
	node.walk(visit, 0)
}

func (node *Node) walk(visit Visitor, depth int) {
	for _, child := range node.SortedChildren() {
		if !visit(child, depth) {
			continue
		}
		child.walk(visit, depth+1)
	}
}
