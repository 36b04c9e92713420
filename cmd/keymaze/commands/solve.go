package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keymaze"
	"github.com/katalvlaran/keymaze/internal/printer"
	"github.com/katalvlaran/keymaze/keygraph"
	"github.com/katalvlaran/keymaze/maze"
	"github.com/katalvlaran/keymaze/search"
)

type solveFlags struct {
	split bool
	moves bool
	json  bool
}

// solveReport is the --json output of solve.
type solveReport struct {
	Run    string   `json:"run"`
	Cost   int      `json:"cost"`
	Agents int      `json:"agents"`
	Keys   string   `json:"keys"`
	Moves  []string `json:"moves,omitempty"`
}

func newSolveCmd(g *globals) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Print the fewest moves that collect every key",
		Long: `Print the fewest total moves that collect every key of the maze in FILE,
or of the maze read from standard input when FILE is omitted or "-".

Examples:
  # Solve a maze file
  keymaze solve day18.txt

  # Replace the single entrance with four agents first
  keymaze solve --split day18.txt

  # Show who moves where, as JSON
  keymaze solve --moves --json < day18.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, f, args)
		},
	}
	cmd.Flags().BoolVar(&f.split, "split", false, "Split the single entrance into four agents")
	cmd.Flags().BoolVarP(&f.moves, "moves", "m", false, "Print the optimal move sequence")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the result as JSON")
	return cmd
}

func runSolve(cmd *cobra.Command, g *globals, f *solveFlags, args []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	grid, name, err := readGrid(cmd.InOrStdin(), args)
	if err != nil {
		return gridError(errOut, name, err)
	}
	log := g.log.WithField("maze", name)
	log.WithFields(logrus.Fields{
		"width":  grid.Width(),
		"height": grid.Height(),
		"keys":   grid.Keys().String(),
	}).Info("maze loaded")

	opts := []keymaze.Option{
		keymaze.WithBuildOptions(keygraph.WithContext(cmd.Context()), keygraph.WithWorkers(g.cfg.Compress.Workers)),
		keymaze.WithSearchOptions(
			search.WithContext(cmd.Context()),
			search.WithMaxIterations(g.cfg.Search.MaxIterations),
			search.WithLogger(log),
		),
	}
	if f.split {
		opts = append(opts, keymaze.WithSplit())
	}
	withMoves := f.moves || g.cfg.Search.ReturnPath
	if withMoves {
		opts = append(opts, keymaze.WithSearchOptions(search.WithReturnPath()))
	}

	started := time.Now()
	sol, err := keymaze.Solve(grid, opts...)
	if err != nil {
		return solveError(errOut, name, err)
	}
	log.WithFields(logrus.Fields{
		"cost":    sol.Cost,
		"settled": sol.Stats.Settled,
		"elapsed": time.Since(started).String(),
	}).Info("maze solved")

	if f.json {
		report := solveReport{
			Run:    g.runID,
			Cost:   sol.Cost,
			Agents: len(sol.Graph.Entrances),
			Keys:   sol.Graph.Goal.String(),
		}
		for _, m := range sol.Moves {
			report.Moves = append(report.Moves, m.String())
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printer.Info(out, "%d\n", sol.Cost)
	if withMoves {
		for _, m := range sol.Moves {
			printer.Highlight(out, "%s\n", m)
		}
	}
	return nil
}

// solveError renders a pipeline failure with hints for the common cases.
func solveError(w io.Writer, name string, err error) error {
	switch {
	case errors.Is(err, search.ErrUnsolvable):
		return printer.ErrorTo(w, fmt.Sprintf("maze %s is unsolvable", name), err.Error(), []string{
			"Check that every key can be reached from some entrance",
			"Check that no key is locked behind its own door or a door without a key",
		})
	case errors.Is(err, search.ErrIterationLimit):
		return printer.ErrorTo(w, "search gave up", err.Error(),
			[]string{"Raise --max-iterations or set it to 0 for no limit"})
	case errors.Is(err, maze.ErrSplitEntrance):
		return printer.ErrorTo(w, "cannot split the entrance", err.Error(),
			[]string{"Use --split only on mazes with one entrance surrounded by open floor"})
	default:
		return printer.ErrorTo(w, fmt.Sprintf("cannot solve maze %s", name), err.Error(), nil)
	}
}
