// Package keygraph compresses a maze into a sparse graph over its points of
// interest (entrances and keys).
//
// For every point of interest p, Build runs one breadth-first search over all
// non-wall cells. Doors never block this pass; they are only recorded. Each
// time the search settles a key cell other than p, it emits a Path holding
// the step count and the bitmasks of keys and doors crossed on that shortest
// route. The search driver then moves agents along these precomputed edges
// instead of walking the maze cell by cell.
//
// Identifiers:
//
//   - Key POIs use their letter index: 'a' → 0 … 'z' → 25.
//   - Entrance POIs are numbered from EntranceBase in row-major scan order.
//
// Ties:
//
//	When two shortest routes of equal length reach the same key through
//	different doors, only the route settled first is recorded. Neighbors are
//	expanded in N, E, S, W order, so the choice is deterministic.
//
// Complexity:
//
//   - Build: O(P × W×H) time, O(W×H) memory per concurrent search
//     (P = number of POIs).
//
// Options:
//
//   - WithContext: cancellation checked once per dequeued cell.
//   - WithWorkers: run up to n per-POI searches concurrently.
//   - WithOnPath: observe every emitted path.
package keygraph
