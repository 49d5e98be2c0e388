package preview

import (
	"fmt"

	"github.com/hashmap-kz/mdtree/pkg/pathtree"
	"github.com/rivo/tview"
)

type TreeDataNodeType string

var (
	nodeTypeRoot   TreeDataNodeType = "root"
	nodeTypeAnchor TreeDataNodeType = "anchor"
	nodeTypeDir    TreeDataNodeType = "directory"
	nodeTypeFile   TreeDataNodeType = "file"
)

// TreeData is used for store custom properties in *tview.TreeNode references
type TreeData struct {
	nodeType TreeDataNodeType

	// it means, that node is already opened in sub-view
	// do not add it to a stack view again and again
	inPreview bool

	node *pathtree.Node
}

func extractTreeData(node *tview.TreeNode) (*TreeData, error) {
	if data, ok := node.GetReference().(*TreeData); ok {
		return data, nil
	}
	return nil, fmt.Errorf("unexpected. get-ref failed: %v", node.GetText())
}

func setInPreview(node *tview.TreeNode, inPreview bool) error {
	data, err := extractTreeData(node)
	if err != nil {
		return err
	}
	data.inPreview = inPreview
	node.SetReference(data)
	return nil
}

func (d *TreeData) IsNodeType(nodeTypes ...TreeDataNodeType) bool {
	for _, t := range nodeTypes {
		if d.nodeType == t {
			return true
		}
	}
	return false
}
