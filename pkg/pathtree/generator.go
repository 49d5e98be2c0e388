package pathtree

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

type State string

var (
	StateNotStarted State = "not-started"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// Generator turns the configured input file into the rendered outline file.
// A Generator is meant for a single Run.
type Generator struct {
	cfg    Config
	logger *slog.Logger
	state  State
}

func NewGenerator(cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		cfg:    cfg,
		logger: logger,
		state:  StateNotStarted,
	}
}

func (g *Generator) State() State {
	return g.state
}

// Run loads, builds, renders and writes the tree. A missing input file is
// reported through the logger and is not returned as an error; nothing is
// written in that case.
func (g *Generator) Run() error {
	if err := g.run(); err != nil {
		g.state = StateFailed
		if errors.Is(err, ErrResourceNotFound) {
			g.logger.Error(fmt.Sprintf("%s not found", g.cfg.InputPath), "input", g.cfg.InputPath)
			return nil
		}
		return err
	}
	g.state = StateCompleted
	g.logger.Info(fmt.Sprintf("Tree generated in %s", g.cfg.OutputPath), "output", g.cfg.OutputPath)
	return nil
}

func (g *Generator) run() error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	paths, err := LoadLines(g.cfg.InputPath)
	if err != nil {
		return err
	}
	g.logger.Debug("input loaded", "input", g.cfg.InputPath, "lines", len(paths))

	root := Build(paths, g.cfg.Anchor)
	g.logger.Debug("tree built", "anchors", len(root.Children), "leaves", root.CountLeaves())

	content, err := g.render(root)
	if err != nil {
		return err
	}
	return writeFileAtomic(g.cfg.OutputPath, content)
}

func (g *Generator) render(root *Node) ([]byte, error) {
	md := []byte(RenderMarkdown(root))
	if g.cfg.Format == FormatHTML {
		return RenderHTML(md)
	}
	return md, nil
}

// writeFileAtomic replaces path with data, or leaves it untouched on failure.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
