package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashmap-kz/mdtree/pkg/pathtree"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// IOStreams provides the standard names for iostreams.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type Options struct {
	IOStreams

	// User input
	configFile string
	anchor     string
	inputPath  string
	outputPath string
	format     string
	logFile    string
	debug      bool

	// used when logFile is empty, stderr if both are empty
	defaultLogFile string

	// After completion
	cfg     pathtree.Config
	logger  *slog.Logger
	closers []io.Closer
}

func NewOptions(streams IOStreams) *Options {
	return &Options{
		IOStreams: streams,
	}
}

func NewCmd() *cobra.Command {
	return NewCmdWithStreams(IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})
}

func NewCmdWithStreams(streams IOStreams) *cobra.Command {
	o := NewOptions(streams)

	cmd := &cobra.Command{
		Use:   "mdtree",
		Short: "Render a list of slash-delimited paths as a markdown outline.",
		Example: `
mdtree
mdtree --input raw.txt --output tree.md --anchor "FINAL KIDS FILES"
mdtree --config mdtree.toml --format html
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	o.AddFlags(cmd.PersistentFlags())
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		if err := o.Complete(c.Flags()); err != nil {
			return err
		}
		defer o.Close()
		return o.Run()
	}

	cmd.AddCommand(newCmdPreview(o))
	return cmd
}

func (o *Options) AddFlags(flags *pflag.FlagSet) {
	defaults := pathtree.DefaultConfig()
	flags.StringVarP(&o.configFile, "config", "c", "", "Path to a toml config file")
	flags.StringVar(&o.anchor, "anchor", defaults.Anchor, "Path segment the outline starts at")
	flags.StringVarP(&o.inputPath, "input", "i", defaults.InputPath, "File with one path per line")
	flags.StringVarP(&o.outputPath, "output", "o", defaults.OutputPath, "File the outline is written to")
	flags.StringVarP(&o.format, "format", "f", string(defaults.Format), "Output format: markdown or html")
	flags.StringVar(&o.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVar(&o.debug, "debug", false, "Enable debug logging")
}

// Complete resolves the configuration: defaults, then the config file,
// then the flags set on the command line.
func (o *Options) Complete(flags *pflag.FlagSet) error {
	cfg := pathtree.DefaultConfig()
	if o.configFile != "" {
		var err error
		cfg, err = pathtree.LoadConfigFile(o.configFile, cfg)
		if err != nil {
			return err
		}
	}

	if flags.Changed("anchor") {
		cfg.Anchor = o.anchor
	}
	if flags.Changed("input") {
		cfg.InputPath = o.inputPath
	}
	if flags.Changed("output") {
		cfg.OutputPath = o.outputPath
	}
	if flags.Changed("format") {
		cfg.Format = pathtree.Format(o.format)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	logFile := o.logFile
	if logFile == "" {
		logFile = o.defaultLogFile
	}
	return o.completeLogger(logFile)
}

func (o *Options) completeLogger(logFile string) error {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}

	w := o.ErrOut
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		o.closers = append(o.closers, file)
		w = file
	}
	o.logger = pathtree.InitLogger(w, level)
	slog.SetDefault(o.logger)
	return nil
}

func (o *Options) Run() error {
	return pathtree.NewGenerator(o.cfg, o.logger).Run()
}

func (o *Options) Close() {
	for _, c := range o.closers {
		_ = c.Close()
	}
	o.closers = nil
}
