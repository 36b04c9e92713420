package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/keymaze/keygraph"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *keygraph.Graph was passed to Solve.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNoAgents indicates that the maze has no entrance to start from.
	ErrNoAgents = errors.New("search: maze has no entrance")

	// ErrUnsolvable indicates that no reachable state holds every key.
	// A maze without keys is solvable at cost 0 and never yields this error.
	ErrUnsolvable = errors.New("search: not every key can be collected")

	// ErrIterationLimit indicates the search stopped at MaxIterations pops.
	ErrIterationLimit = errors.New("search: iteration limit reached")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// LogEvery is the number of queue pops between debug progress records.
const LogEvery = 100_000

// Options configures Solve.
//
// MaxIterations – maximum number of queue pops; 0 means unlimited.
// ReturnPath    – if true, Result.Moves holds the optimal move sequence.
type Options struct {
	Ctx           context.Context
	MaxIterations int
	ReturnPath    bool
	OnPop         func(s State, cost int)
	Logger        logrus.FieldLogger

	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns unlimited, silent options without path recording.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		OnPop: func(State, int) {},
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

// WithMaxIterations caps the number of queue pops.
//
//	n > 0: stop with ErrIterationLimit after n pops
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithReturnPath enables reconstruction of the optimal move sequence.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnPop registers a callback run each time a state is settled,
// before the goal test. Costs passed to it never decrease.
func WithOnPop(fn func(s State, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithLogger routes debug progress records to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Move is one agent walking one compressed path.
type Move struct {
	Agent int
	From  keygraph.POI
	To    keygraph.POI
	Steps int
}

// String renders m as "#1 @1→c (4)".
func (m Move) String() string {
	return fmt.Sprintf("#%d %s→%s (%d)", m.Agent, m.From, m.To, m.Steps)
}

// Stats counts queue activity of one Solve call.
type Stats struct {
	Pushed  int // entries pushed, including the start state
	Popped  int // entries popped, stale ones included
	Settled int // states moved to Closed
	Stale   int // popped entries discarded as outdated
}

// Result is the outcome of a successful Solve.
type Result struct {
	// Cost is the minimum total number of moves summed over all agents.
	Cost int
	// Moves is the optimal move sequence; nil unless WithReturnPath was set.
	Moves []Move
	// Final is the goal state reached.
	Final State
	Stats Stats
}
