// Package maze classifies the cells of a key-and-door maze and holds the
// immutable rectangular grid that the keygraph and search packages consume.
//
// What:
//
//   - Cell classifies a single grid byte as Wall, Open, Entrance, Key or Door.
//   - KeySet is a fixed-width bitmask over the 26 key letters (bit = letter - 'a').
//   - Grid wraps a validated rectangular maze with row-major indexing and
//     4-directional neighbor offsets.
//   - SplitEntrances rewrites a single entrance into four independent ones.
//
// Alphabet:
//
//	'#'      wall
//	'.'      open floor
//	'@'      entrance (one per agent)
//	'a'..'z' key
//	'A'..'Z' door, opened by the key of the same letter
//
// Bytes outside the alphabet classify as Open. Parse and NewGrid reject them
// with ErrUnknownCell, so a Grid only ever contains alphabet bytes.
//
// Complexity:
//
//   - Classification: O(1).
//   - NewGrid / Parse: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: a byte outside the maze alphabet.
//   - ErrSplitEntrance: SplitEntrances preconditions not met.
package maze
