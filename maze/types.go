package maze

import (
	"errors"
	"math/bits"
	"strings"
)

// Sentinel errors for maze loading and rewriting.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownCell indicates a byte outside the maze alphabet.
	ErrUnknownCell = errors.New("maze: unknown cell")
	// ErrSplitEntrance indicates the grid cannot be split into four entrances.
	ErrSplitEntrance = errors.New("maze: cannot split entrance")
)

// NumKeys is the size of the key and door alphabet.
const NumKeys = 26

// Kind is the classification of a single maze cell.
type Kind uint8

const (
	// Open is walkable floor. Unknown bytes also classify as Open.
	Open Kind = iota
	// Wall blocks movement.
	Wall
	// Entrance is a starting position of one agent.
	Entrance
	// Key is a collectable key, 'a'..'z'.
	Key
	// Door is a door, 'A'..'Z', unlocked by the key of the same letter.
	Door
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Entrance:
		return "entrance"
	case Key:
		return "key"
	case Door:
		return "door"
	default:
		return "open"
	}
}

// Raw cell bytes of the maze alphabet.
const (
	WallByte     = '#'
	OpenByte     = '.'
	EntranceByte = '@'
)

// Cell is a raw maze byte.
type Cell byte

// Kind classifies c.
func (c Cell) Kind() Kind {
	switch {
	case c == WallByte:
		return Wall
	case c == EntranceByte:
		return Entrance
	case 'a' <= c && c <= 'z':
		return Key
	case 'A' <= c && c <= 'Z':
		return Door
	default:
		return Open
	}
}

// Valid reports whether c belongs to the maze alphabet.
func (c Cell) Valid() bool {
	return c == OpenByte || c.Kind() != Open
}

// Letter returns the lower-case letter of a key or door cell, or 0 for any
// other kind. Key 'a' and door 'A' share the letter 'a'.
func (c Cell) Letter() byte {
	switch c.Kind() {
	case Key:
		return byte(c)
	case Door:
		return byte(c) - 'A' + 'a'
	default:
		return 0
	}
}

// Bit returns the single-letter KeySet of a key or door cell, or the empty set.
func (c Cell) Bit() KeySet {
	l := c.Letter()
	if l == 0 {
		return 0
	}
	return KeyBit(l)
}

// KeySet is a set of key letters stored as a bitmask, bit i = letter 'a'+i.
// Door sets use the same encoding: door 'C' occupies the bit of key 'c'.
type KeySet uint32

// KeyBit returns the set holding only the lower-case letter l.
// Letters outside 'a'..'z' yield the empty set.
func KeyBit(l byte) KeySet {
	if l < 'a' || l > 'z' {
		return 0
	}
	return 1 << (l - 'a')
}

// Has reports whether letter l is in k.
func (k KeySet) Has(l byte) bool {
	b := KeyBit(l)
	return b != 0 && k&b == b
}

// Add returns k with letter l added.
func (k KeySet) Add(l byte) KeySet { return k | KeyBit(l) }

// Union returns k ∪ o.
func (k KeySet) Union(o KeySet) KeySet { return k | o }

// ContainsAll reports whether o is a subset of k.
func (k KeySet) ContainsAll(o KeySet) bool { return k&o == o }

// Len returns the number of letters in k.
func (k KeySet) Len() int { return bits.OnesCount32(uint32(k)) }

// String returns the letters of k in alphabetical order, e.g. "abd".
func (k KeySet) String() string {
	var sb strings.Builder
	for i := 0; i < NumKeys; i++ {
		if k&(1<<i) != 0 {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}
