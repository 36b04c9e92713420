package keymaze

import (
	"github.com/katalvlaran/keymaze/keygraph"
	"github.com/katalvlaran/keymaze/maze"
	"github.com/katalvlaran/keymaze/search"
)

// Solution bundles the compressed graph with the search result.
type Solution struct {
	Graph *keygraph.Graph
	*search.Result
}

// Option configures Solve.
type Option func(*options)

type options struct {
	split  bool
	build  []keygraph.Option
	search []search.Option
}

// WithSplit rewrites the single entrance into four agents before solving.
func WithSplit() Option {
	return func(o *options) { o.split = true }
}

// WithBuildOptions forwards options to keygraph.Build.
func WithBuildOptions(opts ...keygraph.Option) Option {
	return func(o *options) { o.build = append(o.build, opts...) }
}

// WithSearchOptions forwards options to search.Solve.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *options) { o.search = append(o.search, opts...) }
}

// Solve compresses grid and searches it. Errors from every stage are
// returned unchanged, so callers can test them with errors.Is against the
// maze, keygraph and search sentinels.
func Solve(grid *maze.Grid, opts ...Option) (*Solution, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.split && grid != nil {
		var err error
		if grid, err = grid.SplitEntrances(); err != nil {
			return nil, err
		}
	}
	g, err := keygraph.Build(grid, o.build...)
	if err != nil {
		return nil, err
	}
	res, err := search.Solve(g, o.search...)
	if err != nil {
		return nil, err
	}
	return &Solution{Graph: g, Result: res}, nil
}

// SolveString parses s as a maze and returns the minimum number of moves.
func SolveString(s string, opts ...Option) (int, error) {
	grid, err := maze.ParseString(s)
	if err != nil {
		return 0, err
	}
	sol, err := Solve(grid, opts...)
	if err != nil {
		return 0, err
	}
	return sol.Cost, nil
}
