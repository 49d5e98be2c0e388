package preview

import (
	"github.com/hashmap-kz/mdtree/pkg/pathtree"
	"github.com/rivo/tview"
)

// BuildTreeNodes converts the path tree into tview nodes under a root titled
// with title. Anchors and the root start expanded, directories collapsed.
func BuildTreeNodes(root *pathtree.Node, title string) *tview.TreeNode {
	rootNode := tview.NewTreeNode(title).
		SetReference(&TreeData{nodeType: nodeTypeRoot, node: root}).
		SetExpanded(true)

	for _, anchor := range root.SortedChildren() {
		anchorNode := tview.NewTreeNode(anchor.Name).
			SetReference(&TreeData{nodeType: nodeTypeAnchor, node: anchor}).
			SetExpanded(true)
		populateNodeWithChildren(anchorNode, anchor)
		rootNode.AddChild(anchorNode)
	}

	resetNodeColors(rootNode)
	return rootNode
}

func populateNodeWithChildren(parent *tview.TreeNode, node *pathtree.Node) {
	for _, child := range node.SortedChildren() {
		if child.IsLeaf() {
			parent.AddChild(tview.NewTreeNode(child.Name).
				SetReference(&TreeData{nodeType: nodeTypeFile, node: child}))
			continue
		}
		childNode := tview.NewTreeNode(child.Name + "/").
			SetReference(&TreeData{nodeType: nodeTypeDir, node: child}).
			SetExpanded(false)
		parent.AddChild(childNode)
		populateNodeWithChildren(childNode, child)
	}
}
