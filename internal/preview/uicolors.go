package preview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	focusColor   = tcell.ColorSteelBlue
	noFocusColor = tcell.ColorLightGray
	matchColor   = tcell.ColorRed
)

func colorFor(nodeType TreeDataNodeType) tcell.Color {
	switch nodeType {
	case nodeTypeRoot:
		return tcell.ColorYellow
	case nodeTypeAnchor:
		return tcell.ColorGreen
	case nodeTypeDir:
		return tcell.ColorSteelBlue
	default:
		return tcell.ColorLightGray
	}
}

// Helper function to reset all node colors
func resetNodeColors(node *tview.TreeNode) {
	if node == nil {
		return
	}
	data, err := extractTreeData(node)
	if err != nil {
		return
	}
	node.SetColor(colorFor(data.nodeType))

	for _, child := range node.GetChildren() {
		resetNodeColors(child)
	}
}
