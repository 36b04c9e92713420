package keygraph

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/keymaze/maze"
)

// source is one POI to search from.
type source struct {
	poi POI
	idx int // row-major cell index
}

// Build compresses grid into its POI graph, applying any number of
// functional Options.
// Returns ErrNilGrid for a nil grid, ErrOptionViolation for bad options,
// ErrDuplicateKey or ErrTooManyEntrances for grids whose POIs cannot be
// identified uniquely, or the context error on cancellation.
//
// Complexity: O(P × W×H) time.
func Build(grid *maze.Grid, opts ...Option) (*Graph, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, sources, err := scan(grid)
	if err != nil {
		return nil, err
	}

	results := make([][]Path, len(sources))
	if o.Workers <= 1 {
		w := newWalker(grid, o.Ctx)
		for i, s := range sources {
			if results[i], err = w.search(s.idx); err != nil {
				return nil, err
			}
			emit(o.OnPath, s.poi, results[i])
		}
	} else {
		eg, ctx := errgroup.WithContext(o.Ctx)
		eg.SetLimit(o.Workers)
		for i, s := range sources {
			eg.Go(func() error {
				// each search owns its arena and its result slot
				ps, err := newWalker(grid, ctx).search(s.idx)
				if err != nil {
					return err
				}
				results[i] = ps
				emit(o.OnPath, s.poi, ps)
				return nil
			})
		}
		if err = eg.Wait(); err != nil {
			return nil, err
		}
	}

	for i, s := range sources {
		g.paths[s.poi] = results[i]
	}

	return g, nil
}

// scan finds every POI of grid in row-major order and the goal key set.
func scan(grid *maze.Grid) (*Graph, []source, error) {
	g := &Graph{
		paths:   make(map[POI][]Path),
		origins: make(map[POI]int),
		width:   grid.Width(),
	}
	var sources []source
	for idx := 0; idx < grid.Len(); idx++ {
		c := grid.CellAt(idx)
		var p POI
		switch c.Kind() {
		case maze.Entrance:
			if len(g.Entrances) == MaxEntrances {
				return nil, nil, fmt.Errorf("%w: more than %d", ErrTooManyEntrances, MaxEntrances)
			}
			p = EntrancePOI(len(g.Entrances))
			g.Entrances = append(g.Entrances, p)
		case maze.Key:
			p = KeyPOI(c.Letter())
			if g.Goal.Has(c.Letter()) {
				x, y := grid.Coordinate(idx)
				return nil, nil, fmt.Errorf("%w %q at (%d,%d)", ErrDuplicateKey, byte(c), x, y)
			}
			g.Goal = g.Goal.Add(c.Letter())
		default:
			continue
		}
		g.origins[p] = idx
		sources = append(sources, source{poi: p, idx: idx})
	}

	return g, sources, nil
}

func emit(fn func(POI, Path), from POI, ps []Path) {
	for _, p := range ps {
		fn(from, p)
	}
}

// walker holds the per-search arena, indexed by row-major cell index.
type walker struct {
	grid  *maze.Grid
	ctx   context.Context
	queue []int
	depth []int // -1 until settled
	keys  []maze.KeySet
	doors []maze.KeySet
}

func newWalker(grid *maze.Grid, ctx context.Context) *walker {
	n := grid.Len()
	return &walker{
		grid:  grid,
		ctx:   ctx,
		queue: make([]int, 0, n),
		depth: make([]int, n),
		keys:  make([]maze.KeySet, n),
		doors: make([]maze.KeySet, n),
	}
}

// reset clears the arena for the next search.
func (w *walker) reset() {
	w.queue = w.queue[:0]
	for i := range w.depth {
		w.depth[i] = -1
		w.keys[i] = 0
		w.doors[i] = 0
	}
}

// search runs one BFS from src over every non-wall cell and returns the
// shortest path to each other reachable key in settle order.
func (w *walker) search(src int) ([]Path, error) {
	w.reset()
	w.depth[src] = 0
	w.queue = append(w.queue, src)

	var paths []Path
	offsets := w.grid.NeighborOffsets()
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		u := w.queue[head]
		if c := w.grid.CellAt(u); u != src && c.Kind() == maze.Key {
			paths = append(paths, Path{
				To:    KeyPOI(c.Letter()),
				Steps: w.depth[u],
				Keys:  w.keys[u],
				Doors: w.doors[u],
			})
		}

		ux, uy := w.grid.Coordinate(u)
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			c := w.grid.At(vx, vy)
			if c.Kind() == maze.Wall {
				continue
			}
			v := w.grid.Index(vx, vy)
			if w.depth[v] >= 0 {
				continue
			}
			w.depth[v] = w.depth[u] + 1
			w.keys[v], w.doors[v] = w.keys[u], w.doors[u]
			switch c.Kind() {
			case maze.Key:
				w.keys[v] |= c.Bit()
			case maze.Door:
				w.doors[v] |= c.Bit()
			}
			w.queue = append(w.queue, v)
		}
	}

	return paths, nil
}
