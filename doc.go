// Package keymaze solves key-and-door mazes: find the fewest total moves
// with which one or more agents collect every key, where a door only opens
// once the key of the same letter has been picked up by any agent.
//
// The pipeline runs in three stages, each in its own subpackage:
//
//	maze/      cell classifier, KeySet bitmask, validated Grid loader
//	keygraph/  compresses the grid into shortest paths between points of interest
//	search/    Dijkstra over (agent positions, collected keys) states
//
// Quick ASCII example:
//
//	#########
//	#b.A.@.a#     walk 2 to key a, then 6 through door A to key b: 8 moves
//	#########
//
// Solve wires the stages together; SolveString is the one-call form:
//
//	moves, err := keymaze.SolveString(input)
//	if errors.Is(err, search.ErrUnsolvable) {
//	    // some key can never be collected
//	}
//
// The cmd/keymaze command wraps the same pipeline for files and stdin.
package keymaze
