package preview

import (
	"fmt"
	"io"
)

// Describe writes the details pane text for a node.
func Describe(w io.Writer, data *TreeData) error {
	if data == nil || data.node == nil {
		return fmt.Errorf("nothing to describe")
	}
	n := data.node

	if data.nodeType == nodeTypeRoot {
		_, err := fmt.Fprintf(w, "[yellow]anchors:[-] %d\n[yellow]leaves:[-]  %d\n",
			len(n.Children), n.CountLeaves())
		return err
	}

	if _, err := fmt.Fprintf(w, "[yellow]path:[-]  %s\n[yellow]kind:[-]  %s\n", n.Path, data.nodeType); err != nil {
		return err
	}
	if n.IsLeaf() {
		return nil
	}
	_, err := fmt.Fprintf(w, "[yellow]children:[-] %d\n[yellow]leaves:[-]   %d\n",
		len(n.Children), n.CountLeaves())
	return err
}
