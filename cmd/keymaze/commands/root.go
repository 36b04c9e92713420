package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keymaze/internal/config"
	"github.com/katalvlaran/keymaze/internal/printer"
	"github.com/katalvlaran/keymaze/maze"
)

var versionString = "dev"

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// Execute builds the command tree and runs it against os.Args.
// This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

// globals holds the persistent flags and the state derived from them.
type globals struct {
	configPath    string
	logLevel      string
	logFormat     string
	workers       int
	maxIterations int

	cfg   *config.Config
	runID string
	log   *logrus.Entry
}

// NewRootCmd returns a fresh keymaze command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "keymaze",
		Short: "keymaze - shortest key collection in door-and-key mazes",
		Long: `keymaze reads an ASCII maze and prints the fewest total moves needed to
collect every key.

  #  wall           @  entrance (one agent each)
  .  open floor     a-z key, A-Z door opened by the matching key

Several entrances mean several agents that move one at a time and share
every key they pick up.`,
		Version:           versionString,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: g.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&g.configPath, "config", "c", "", "Path to keymaze.yml (default: ./keymaze.yml if present)")
	flags.StringVar(&g.logLevel, "log-level", "", "Log level: error, warn, info, debug")
	flags.StringVar(&g.logFormat, "log-format", "", "Log format: text or json")
	flags.IntVar(&g.workers, "workers", 0, "Concurrent searches during graph compression")
	flags.IntVar(&g.maxIterations, "max-iterations", 0, "Stop the search after this many queue pops (0 = unlimited)")

	root.AddCommand(newSolveCmd(g), newPathsCmd(g))
	return root
}

// load resolves the configuration file, applies flag overrides and builds
// the run logger.
func (g *globals) load(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	path := g.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return printer.ErrorTo(cmd.ErrOrStderr(), "failed to load configuration", err.Error(),
				[]string{fmt.Sprintf("Check %s or pass --config with a valid file", path)})
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = g.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = g.logFormat
	}
	if flags.Changed("workers") {
		cfg.Compress.Workers = g.workers
	}
	if flags.Changed("max-iterations") {
		cfg.Search.MaxIterations = g.maxIterations
	}
	if err := cfg.Validate(); err != nil {
		return printer.ErrorTo(cmd.ErrOrStderr(), "invalid flags", err.Error(), nil)
	}

	g.cfg = cfg
	g.runID = uuid.NewString()
	g.log = cfg.NewLogger(cmd.ErrOrStderr()).WithField("run", g.runID)
	return nil
}

// readGrid loads the maze from the file named in args, or from in.
func readGrid(in io.Reader, args []string) (*maze.Grid, string, error) {
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, name, err
		}
		defer f.Close()
		in = f
	}
	grid, err := maze.Parse(in)
	return grid, name, err
}

// gridError renders a maze loading failure.
func gridError(w io.Writer, name string, err error) error {
	var suggestions []string
	switch {
	case errors.Is(err, maze.ErrUnknownCell):
		suggestions = []string{"Use only '#', '.', '@', 'a'-'z' and 'A'-'Z'"}
	case errors.Is(err, maze.ErrNonRectangular), errors.Is(err, maze.ErrEmptyGrid):
		suggestions = []string{"Every row of the maze must have the same, non-zero length"}
	}
	return printer.ErrorTo(w, fmt.Sprintf("cannot read maze from %s", name), err.Error(), suggestions)
}
