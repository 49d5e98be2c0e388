package preview

import "github.com/rivo/tview"

type TreeLinks struct {
	// key=child, value=parent
	ParentMap map[*tview.TreeNode]*tview.TreeNode
	// key=reference, value=node of the full tree holding it
	NodeMap map[*TreeData]*tview.TreeNode
}

func NewTreeLinks() *TreeLinks {
	return &TreeLinks{
		ParentMap: make(map[*tview.TreeNode]*tview.TreeNode),
		NodeMap:   make(map[*TreeData]*tview.TreeNode),
	}
}

func (t *TreeLinks) FillLinks(root *tview.TreeNode) {
	if data, err := extractTreeData(root); err == nil {
		t.NodeMap[data] = root
	}
	for _, c := range root.GetChildren() {
		t.ParentMap[c] = root
		t.FillLinks(c)
	}
}

// Reveal returns the full-tree node sharing the reference of node (which may
// belong to a filtered copy) and expands all of its ancestors.
func (t *TreeLinks) Reveal(node *tview.TreeNode) (*tview.TreeNode, bool) {
	data, err := extractTreeData(node)
	if err != nil {
		return nil, false
	}
	orig, ok := t.NodeMap[data]
	if !ok {
		return nil, false
	}
	for p, ok := t.ParentMap[orig]; ok; p, ok = t.ParentMap[p] {
		p.SetExpanded(true)
	}
	return orig, true
}
