package preview

import (
	"strings"

	"github.com/rivo/tview"
)

var noMatchesText = "(no matches)"

// buildFilteredTree returns a copy of node holding only the nodes whose text
// contains searchTerm, plus their ancestors. searchTerm must be lower case.
func buildFilteredTree(node *tview.TreeNode, searchTerm string) *tview.TreeNode {
	if node == nil {
		return nil
	}

	data, err := extractTreeData(node)
	if err != nil {
		return nil
	}

	var matched bool
	selfMatched := !data.IsNodeType(nodeTypeRoot) &&
		strings.Contains(strings.ToLower(node.GetText()), searchTerm)
	if selfMatched {
		matched = true
	}

	// Recursively process children
	var matchingChildren []*tview.TreeNode
	for _, child := range node.GetChildren() {
		filteredChild := buildFilteredTree(child, searchTerm)
		if filteredChild != nil {
			matchingChildren = append(matchingChildren, filteredChild)
			matched = true // parent will be included if child matched
		}
	}

	if !matched {
		return nil
	}

	// Clone the current node, sharing its reference
	newNode := tview.NewTreeNode(node.GetText()).
		SetReference(node.GetReference()).
		SetExpanded(true). // Expand filtered nodes so user can see them
		SetColor(colorFor(data.nodeType))
	if selfMatched {
		newNode.SetColor(matchColor)
	}
	for _, child := range matchingChildren {
		newNode.AddChild(child)
	}
	return newNode
}

// filterTree returns the tree to display for searchTerm: root itself for an
// empty term, a placeholder node when nothing matches.
func filterTree(root *tview.TreeNode, searchTerm string) *tview.TreeNode {
	searchTerm = strings.TrimSpace(searchTerm)
	if searchTerm == "" {
		return root
	}
	filtered := buildFilteredTree(root, strings.ToLower(searchTerm))
	if filtered == nil {
		return tview.NewTreeNode(noMatchesText).
			SetReference(&TreeData{nodeType: nodeTypeRoot}).
			SetColor(noFocusColor)
	}
	return filtered
}

func showFilteredTree(uiState *UIState, searchTerm string) {
	// sub-views are closed, a filter always starts from the full tree
	for _, n := range uiState.navigationStack[1:] {
		_ = setInPreview(n, false)
	}
	uiState.navigationStack = uiState.navigationStack[:1]

	root := filterTree(uiState.rootNode, searchTerm)
	uiState.isInFilter = root != uiState.rootNode
	if !uiState.isInFilter {
		resetNodeColors(uiState.rootNode)
	}
	uiState.treeView.SetRoot(root).SetCurrentNode(root)
}
