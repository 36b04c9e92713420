package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keymaze/internal/printer"
	"github.com/katalvlaran/keymaze/keygraph"
)

func newPathsCmd(g *globals) *cobra.Command {
	var split bool
	cmd := &cobra.Command{
		Use:   "paths [FILE]",
		Short: "Print the compressed key graph of a maze",
		Long: `Print every point of interest of the maze with its grid position,
followed by the shortest path to each reachable key: the step count, the keys
on the way and the doors that must already be open.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			grid, name, err := readGrid(cmd.InOrStdin(), args)
			if err != nil {
				return gridError(errOut, name, err)
			}
			if split {
				if grid, err = grid.SplitEntrances(); err != nil {
					return solveError(errOut, name, err)
				}
			}
			graph, err := keygraph.Build(grid,
				keygraph.WithContext(cmd.Context()),
				keygraph.WithWorkers(g.cfg.Compress.Workers))
			if err != nil {
				return solveError(errOut, name, err)
			}
			g.log.WithField("paths", graph.Len()).Info("graph built")

			for _, p := range graph.POIs() {
				x, y, _ := graph.Origin(p)
				printer.Highlight(out, "%s (%d,%d)\n", p, x, y)
				for _, path := range graph.PathsFrom(p) {
					printer.Info(out, "  %s\n", path)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&split, "split", false, "Split the single entrance into four agents")
	return cmd
}
