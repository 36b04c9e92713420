package search

import (
	"strings"

	"github.com/katalvlaran/keymaze/keygraph"
	"github.com/katalvlaran/keymaze/maze"
)

// State is one vertex of the search space: where every agent stands and
// which keys have been collected. It is a comparable value, so equal states
// are equal map keys. Positions are positional: agent i is always slot i.
// Each POI fits in one byte, so positions are packed into a string, which
// keeps State comparable for any number of agents.
type State struct {
	pos  string
	keys maze.KeySet
}

// NewState returns the state with agents at positions holding keys.
// It fails with ErrNoAgents when positions is empty.
func NewState(positions []keygraph.POI, keys maze.KeySet) (State, error) {
	if len(positions) == 0 {
		return State{}, ErrNoAgents
	}
	buf := make([]byte, len(positions))
	for i, p := range positions {
		buf[i] = byte(p)
	}
	return State{pos: string(buf), keys: keys}, nil
}

// Agents returns the number of agents.
func (s State) Agents() int { return len(s.pos) }

// Position returns the POI of agent i.
func (s State) Position(i int) keygraph.POI { return keygraph.POI(s.pos[i]) }

// Positions returns a copy of every agent's POI in agent order.
func (s State) Positions() []keygraph.POI {
	out := make([]keygraph.POI, len(s.pos))
	for i := range out {
		out[i] = keygraph.POI(s.pos[i])
	}
	return out
}

// Keys returns the collected keys.
func (s State) Keys() maze.KeySet { return s.keys }

// Move returns the state in which agent i stands on key to and to has been
// collected. s itself is unchanged.
func (s State) Move(i int, to keygraph.POI) State {
	buf := []byte(s.pos)
	buf[i] = byte(to)
	s.pos = string(buf)
	s.keys |= to.Bit()
	return s
}

// Done reports whether s holds every key of goal.
func (s State) Done(goal maze.KeySet) bool {
	return s.keys == goal
}

// String renders s as "[@0 a @2 @3] {ab}".
func (s State) String() string {
	parts := make([]string, len(s.pos))
	for i := range parts {
		parts[i] = s.Position(i).String()
	}
	return "[" + strings.Join(parts, " ") + "] {" + s.keys.String() + "}"
}

// Edge is one legal transition out of a state.
type Edge struct {
	To    State
	Cost  int
	Agent int
	Path  keygraph.Path
}

// Next returns every legal transition out of s: for each agent, each path
// from its POI to a key not yet held whose doors are all unlocked by the
// keys in s. Edges are ordered by agent, then by path order in g.
func Next(s State, g *keygraph.Graph) []Edge {
	var out []Edge
	for i := 0; i < s.Agents(); i++ {
		for _, p := range g.PathsFrom(s.Position(i)) {
			if s.keys.ContainsAll(p.To.Bit()) || !s.keys.ContainsAll(p.Doors) {
				continue
			}
			out = append(out, Edge{To: s.Move(i, p.To), Cost: p.Steps, Agent: i, Path: p})
		}
	}
	return out
}
