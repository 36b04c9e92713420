package search

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/keymaze/keygraph"
)

// Solve returns the minimum total number of moves that collects every key of
// g, starting with each agent on its entrance and no keys.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must have at least one entrance (ErrNoAgents).
//
// The search ends with ErrUnsolvable when the queue empties first, with
// ErrIterationLimit when MaxIterations pops were spent, or with the context
// error on cancellation.
func Solve(g *keygraph.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	start, err := NewState(g.Entrances, 0)
	if err != nil {
		return nil, err
	}

	r := &runner{
		g:      g,
		opts:   cfg,
		scores: make(map[State]int),
		closed: mapset.New[State](),
		open:   mapset.New[State](),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]Edge)
		r.from = make(map[State]State)
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state of a single Solve call.
//
// relax pushes every strict improvement and stale entries are skipped on pop,
// so pq may hold several entries per state. open tracks the distinct states
// discovered but not yet settled; nothing branches on it, and it is read only
// for the "open" log field next to the raw queue length.
type runner struct {
	g      *keygraph.Graph
	opts   Options
	scores map[State]int   // best known cost per state
	prev   map[State]Edge  // edge that produced the best cost
	from   map[State]State // state that edge left from
	closed mapset.Set[State]
	open   mapset.Set[State]
	pq     statePQ
	stats  Stats
}

// init marks start Open with cost 0 and queues it.
func (r *runner) init(start State) {
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner) push(s State, cost int) {
	r.scores[s] = cost
	r.open.Put(s)
	heap.Push(&r.pq, &stateItem{state: s, cost: cost})
	r.stats.Pushed++
}

// process pops states in cost order until a goal state settles.
func (r *runner) process() (*Result, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}
		if r.opts.MaxIterations > 0 && r.stats.Popped >= r.opts.MaxIterations {
			return nil, fmt.Errorf("%w: %d pops, %d states settled", ErrIterationLimit, r.stats.Popped, r.stats.Settled)
		}

		item := heap.Pop(&r.pq).(*stateItem)
		r.stats.Popped++
		s := item.state

		// Closed, or superseded by a cheaper push of the same state.
		if r.closed.Has(s) || item.cost > r.scores[s] {
			r.stats.Stale++
			continue
		}

		r.opts.OnPop(s, item.cost)
		if s.Done(r.g.Goal) {
			r.log().WithFields(r.fields(item.cost)).Debug("search: goal reached")
			return r.result(s, item.cost), nil
		}

		r.open.Remove(s)
		r.closed.Put(s)
		r.stats.Settled++
		if r.opts.Logger != nil && r.stats.Popped%LogEvery == 0 {
			r.opts.Logger.WithFields(r.fields(item.cost)).Debug("search: progress")
		}

		r.relax(s, item.cost)
	}

	r.log().WithFields(r.fields(-1)).Debug("search: queue exhausted")
	return nil, fmt.Errorf("%w: %d states settled, goal %q", ErrUnsolvable, r.stats.Settled, r.g.Goal)
}

// relax offers every transition out of the settled state s.
func (r *runner) relax(s State, cost int) {
	for _, e := range Next(s, r.g) {
		if r.closed.Has(e.To) {
			continue
		}
		candidate := cost + e.Cost
		if best, ok := r.scores[e.To]; ok && candidate >= best {
			continue
		}
		if r.prev != nil {
			r.prev[e.To] = e
			r.from[e.To] = s
		}
		// Any older queue entry for e.To becomes stale.
		r.push(e.To, candidate)
	}
}

// result assembles the Result for goal state s, replaying predecessors
// when path recording is on.
func (r *runner) result(s State, cost int) *Result {
	res := &Result{Cost: cost, Final: s, Stats: r.stats}
	if r.prev == nil {
		return res
	}
	for cur := s; ; {
		e, ok := r.prev[cur]
		if !ok {
			break
		}
		parent := r.from[cur]
		res.Moves = append(res.Moves, Move{
			Agent: e.Agent,
			From:  parent.Position(e.Agent),
			To:    e.Path.To,
			Steps: e.Cost,
		})
		cur = parent
	}
	for i, j := 0, len(res.Moves)-1; i < j; i, j = i+1, j-1 {
		res.Moves[i], res.Moves[j] = res.Moves[j], res.Moves[i]
	}
	return res
}

func (r *runner) log() logrus.FieldLogger {
	if r.opts.Logger == nil {
		return discard
	}
	return r.opts.Logger
}

func (r *runner) fields(cost int) logrus.Fields {
	return logrus.Fields{
		"cost":    cost,
		"popped":  r.stats.Popped,
		"settled": r.stats.Settled,
		"open":    r.open.Size(),
		"queue":   r.pq.Len(),
	}
}

// stateItem is one queue entry.
type stateItem struct {
	state State
	cost  int
}

// statePQ is a min-heap of *stateItem ordered by cost ascending.
// Outdated entries stay in the heap and are skipped when popped.
type statePQ []*stateItem

func (pq statePQ) Len() int            { return len(pq) }
func (pq statePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq statePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
