package cmd

import (
	"errors"
	"fmt"

	"github.com/hashmap-kz/mdtree/internal/preview"
	"github.com/hashmap-kz/mdtree/pkg/pathtree"
	"github.com/spf13/cobra"
)

// the terminal belongs to the preview, logs go to a file
const defaultPreviewLogFile = "mdtree.log"

var (
	defaultPreviewRunner = preview.Run
	// previewRunner is replaced in tests
	previewRunner = defaultPreviewRunner
)

func newCmdPreview(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the tree interactively before writing it.",
		Example: `
mdtree preview
mdtree preview --input raw.txt --anchor "FINAL KIDS FILES"
`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			o.defaultLogFile = defaultPreviewLogFile
			if err := o.Complete(c.Flags()); err != nil {
				return err
			}
			defer o.Close()
			return o.RunPreview()
		},
	}
}

// RunPreview loads and builds the tree, then hands it to the terminal view.
func (o *Options) RunPreview() error {
	paths, err := pathtree.LoadLines(o.cfg.InputPath)
	if err != nil {
		if errors.Is(err, pathtree.ErrResourceNotFound) {
			return fmt.Errorf("%s not found", o.cfg.InputPath)
		}
		return err
	}
	root := pathtree.Build(paths, o.cfg.Anchor)
	o.logger.Debug("preview", "input", o.cfg.InputPath, "anchors", len(root.Children))
	return previewRunner(root, o.cfg.InputPath)
}
