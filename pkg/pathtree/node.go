package pathtree

import "strings"

// Separator splits a raw path into segments.
const Separator = "/"

// Node used for construct a tree-structure from 'a/b/c.txt' paths
type Node struct {
	Name     string
	Children map[string]*Node
	Path     string
}

func NewNode() *Node {
	return &Node{
		Children: make(map[string]*Node),
	}
}

// IsLeaf reports whether the node is a file or an empty directory.
func (node *Node) IsLeaf() bool {
	return len(node.Children) == 0
}

// AddPath splits a raw path on Separator and inserts it as is (no anchor lookup).
func (node *Node) AddPath(path string) {
	node.AddSegments(splitSegments(path))
}

// AddSegments walks the tree creating missing children, one per segment.
// Inserting the same segments twice leaves the tree unchanged.
func (node *Node) AddSegments(parts []string) {
	current := node
	for i, part := range parts {
		// Ensure the child exists
		if current.Children == nil {
			current.Children = make(map[string]*Node)
		}

		if _, exists := current.Children[part]; !exists {
			current.Children[part] = NewNode()
			current.Children[part].Name = part
		}
		current = current.Children[part]
		if current.Path == "" {
			current.Path = strings.Join(parts[:i+1], Separator)
		}
	}
}

// Lookup returns the node at the given segments, relative to node.
func (node *Node) Lookup(parts ...string) (*Node, bool) {
	current := node
	for _, part := range parts {
		next, ok := current.Children[part]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// CountLeaves returns the number of leaves below node (node itself excluded).
func (node *Node) CountLeaves() int {
	n := 0
	for _, child := range node.Children {
		if child.IsLeaf() {
			n++
			continue
		}
		n += child.CountLeaves()
	}
	return n
}

func splitSegments(path string) []string {
	if path == "" {
		return nil
	}
	raw := strings.Split(path, Separator)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return parts
}
