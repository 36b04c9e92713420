package keygraph

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/keymaze/maze"
)

// Sentinel errors for graph compression.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("keygraph: grid is nil")

	// ErrTooManyEntrances is returned when the grid holds more entrances than MaxEntrances.
	ErrTooManyEntrances = errors.New("keygraph: too many entrances")

	// ErrDuplicateKey is returned when a key letter occurs more than once,
	// since key identifiers are their letters.
	ErrDuplicateKey = errors.New("keygraph: duplicate key")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("keygraph: invalid option supplied")
)

// EntranceBase is the identifier of the first entrance.
const EntranceBase POI = maze.NumKeys

// MaxEntrances is the number of entrance identifiers that fit in a POI.
const MaxEntrances = 256 - int(EntranceBase)

// POI identifies a point of interest: a key or an entrance.
type POI uint8

// KeyPOI returns the identifier of key letter l ('a'..'z').
func KeyPOI(l byte) POI { return POI(l - 'a') }

// EntrancePOI returns the identifier of the i-th entrance in scan order.
func EntrancePOI(i int) POI { return EntranceBase + POI(i) }

// IsKey reports whether p names a key.
func (p POI) IsKey() bool { return p < EntranceBase }

// Letter returns the key letter of p, or 0 for an entrance.
func (p POI) Letter() byte {
	if !p.IsKey() {
		return 0
	}
	return 'a' + byte(p)
}

// Bit returns the KeySet holding p's key, or the empty set for an entrance.
func (p POI) Bit() maze.KeySet {
	return maze.KeyBit(p.Letter())
}

// String renders a key as its letter and an entrance as "@<n>".
func (p POI) String() string {
	if p.IsKey() {
		return string(p.Letter())
	}
	return "@" + strconv.Itoa(int(p-EntranceBase))
}

// Path is a precomputed shortest route from a POI to a key.
// The source is implicit: the POI whose list holds the Path.
type Path struct {
	To    POI         // destination key
	Steps int         // BFS distance in cells
	Keys  maze.KeySet // keys on the route, including To
	Doors maze.KeySet // doors on the route
}

// String renders p as "→a 4 keys=a doors=".
func (p Path) String() string {
	return fmt.Sprintf("→%s %d keys=%s doors=%s", p.To, p.Steps, p.Keys, p.Doors)
}

// Graph is the compressed POI graph of one maze. It is read-only after Build.
type Graph struct {
	// Entrances lists the entrance POIs in scan order, one per agent.
	Entrances []POI
	// Goal is the set of every key present in the maze.
	Goal maze.KeySet

	paths   map[POI][]Path
	origins map[POI]int
	width   int
}

// PathsFrom returns the paths leaving p in BFS settle order.
// The returned slice must not be modified.
func (g *Graph) PathsFrom(p POI) []Path {
	return g.paths[p]
}

// POIs returns every point of interest in ascending identifier order.
func (g *Graph) POIs() []POI {
	out := make([]POI, 0, len(g.origins))
	for p := range g.origins {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Origin returns the grid coordinate of p.
func (g *Graph) Origin(p POI) (x, y int, ok bool) {
	idx, ok := g.origins[p]
	if !ok {
		return 0, 0, false
	}
	return idx % g.width, idx / g.width, true
}

// Len returns the total number of paths in g.
func (g *Graph) Len() int {
	n := 0
	for _, ps := range g.paths {
		n += len(ps)
	}
	return n
}

// Option configures Build via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds the parameters of a Build run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers bounds the number of concurrent per-POI searches.
	// Values ≤ 1 run every search on the calling goroutine.
	Workers int

	// OnPath is called for every emitted path. With Workers > 1 it may be
	// called concurrently from several goroutines.
	OnPath func(from POI, p Path)

	err error
}

// DefaultOptions returns sequential, uncancellable options with a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		OnPath:  func(POI, Path) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers runs up to n searches concurrently.
//
//	n > 1: bounded parallel compression
//	n == 0 or 1: sequential
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnPath registers a callback run for each emitted path.
func WithOnPath(fn func(from POI, p Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}
