package pathtree

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAnchor     = "PROJECT INSTRUCTIONS"
	DefaultInputPath  = "project_instructions_raw.txt"
	DefaultOutputPath = "project_instructions_tree.md"
)

type Format string

var (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Config holds everything a Generator run depends on.
type Config struct {
	// Anchor is the segment where the rendered sub-path of every entry starts.
	Anchor     string `toml:"anchor"`
	InputPath  string `toml:"input"`
	OutputPath string `toml:"output"`
	Format     Format `toml:"format"`
}

func DefaultConfig() Config {
	return Config{
		Anchor:     DefaultAnchor,
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Format:     FormatMarkdown,
	}
}

// LoadConfigFile decodes a TOML file on top of base. Keys absent from the
// file keep the values of base.
func LoadConfigFile(path string, base Config) (Config, error) {
	cfg := base
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s is not a valid toml config file: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Anchor == "" {
		return fmt.Errorf("anchor must not be empty")
	}
	if strings.Contains(c.Anchor, Separator) {
		return fmt.Errorf("anchor must be a single segment: %q", c.Anchor)
	}
	if c.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	switch c.Format {
	case FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("unknown output format: %q", c.Format)
	}
	return nil
}
