// Package search finds the minimum total number of moves that lets one or
// more agents collect every key of a compressed maze.
//
// A State is the joint position of all agents (one POI each) plus the set of
// keys collected so far. Keys are shared: a key picked up by any agent opens
// its door for every agent. From a state, any single agent may walk one
// precomputed keygraph.Path to a key it does not yet hold, provided every
// door on that path is already unlocked. Next enumerates these moves.
//
// Solve runs Dijkstra's algorithm over states:
//
//	Unvisited → Open (queued, best cost known) → Closed (settled)
//
// It keeps a scores map of the best known cost per state, pushes a new queue
// entry whenever a strictly better cost is found, and discards stale entries
// lazily when they are popped. The first settled state holding every key
// gives the answer.
//
// Complexity:
//
//   - Time:  O(S·B·log(S·B)) where S = reachable states, B = moves per state.
//   - Space: O(S·B) for the queue under lazy decrease-key, O(S) for scores.
//
// Options:
//
//   - WithContext:       cancellation checked once per pop.
//   - WithMaxIterations: cap on queue pops, surfaced as ErrIterationLimit.
//   - WithReturnPath:    record predecessors and return the move sequence.
//   - WithOnPop:         observe each settled state and its cost.
//   - WithLogger:        debug progress through a logrus logger.
//
// Errors (sentinel):
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrNoAgents       if the maze has no entrance.
//   - ErrUnsolvable     if the queue empties before every key is collected.
//   - ErrIterationLimit if MaxIterations pops did not reach the goal.
//   - ErrOptionViolation for invalid options.
package search
