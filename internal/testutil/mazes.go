// Package testutil holds maze fixtures with known answers shared by the
// package tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keymaze/maze"
)

// Fixture is a maze with its known minimum number of moves.
type Fixture struct {
	Name  string
	Rows  []string
	Split bool // apply maze.SplitEntrances before solving
	Moves int
}

// Grid returns the fixture as a Grid, split if the fixture asks for it.
func (f Fixture) Grid(t testing.TB) *maze.Grid {
	t.Helper()
	g := MustGrid(t, f.Rows...)
	if f.Split {
		var err error
		g, err = g.SplitEntrances()
		require.NoError(t, err)
	}
	return g
}

// String joins the rows with newlines.
func (f Fixture) String() string {
	return strings.Join(f.Rows, "\n")
}

// MustGrid builds a Grid from rows and fails t on error.
func MustGrid(t testing.TB, rows ...string) *maze.Grid {
	t.Helper()
	g, err := maze.NewGrid(rows)
	require.NoError(t, err)
	return g
}

// Corridor is the smallest fixture: one agent, one door between two keys.
var Corridor = Fixture{
	Name: "Corridor",
	Rows: []string{
		"#########",
		"#b.A.@.a#",
		"#########",
	},
	Moves: 8,
}

// FourRooms is the four-agent fixture whose doors gate the left room.
var FourRooms = Fixture{
	Name: "FourRooms",
	Rows: []string{
		"###############",
		"#d.ABC.#.....a#",
		"######@#@######",
		"###############",
		"######@#@######",
		"#b.....#.....c#",
		"###############",
	},
	Moves: 24,
}

// Large is the sixteen-key single-agent fixture with the widest state space.
var Large = Fixture{
	Name: "Large",
	Rows: []string{
		"#################",
		"#i.G..c...e..H.p#",
		"########.########",
		"#j.A..b...f..D.o#",
		"########@########",
		"#k.E..a...g..B.n#",
		"########.########",
		"#l.F..d...h..C.m#",
		"#################",
	},
	Moves: 136,
}

// SingleAgent lists fixtures with one entrance.
var SingleAgent = []Fixture{
	Corridor,
	{
		Name: "LongCorridor",
		Rows: []string{
			"########################",
			"#f.D.E.e.C.b.A.@.a.B.c.#",
			"######################.#",
			"#d.....................#",
			"########################",
		},
		Moves: 86,
	},
	{
		Name: "TwoCorridors",
		Rows: []string{
			"########################",
			"#...............b.C.D.f#",
			"#.######################",
			"#.....@.a.B.c.d.A.e.F.g#",
			"########################",
		},
		Moves: 132,
	},
	Large,
	{
		Name: "Pockets",
		Rows: []string{
			"########################",
			"#@..............ac.GI.b#",
			"###d#e#f################",
			"###A#B#C################",
			"###g#h#i################",
			"########################",
		},
		Moves: 81,
	},
}

// MultiAgent lists fixtures with four entrances.
var MultiAgent = []Fixture{
	{
		Name: "SplitSmall",
		Rows: []string{
			"#######",
			"#a.#Cd#",
			"##...##",
			"##.@.##",
			"##...##",
			"#cB#Ab#",
			"#######",
		},
		Split: true,
		Moves: 8,
	},
	FourRooms,
	{
		Name: "SplitMedium",
		Rows: []string{
			"#############",
			"#DcBa.#.GhKl#",
			"#.###...#I###",
			"#e#d#.@.#j#k#",
			"###C#...###J#",
			"#fEbA.#.FgHi#",
			"#############",
		},
		Split: true,
		Moves: 32,
	},
	{
		Name: "SplitLarge",
		Rows: []string{
			"#############",
			"#g#f.D#..h#l#",
			"#F###e#E###.#",
			"#dCba...BcIJ#",
			"#####.@.#####",
			"#nK.L...G...#",
			"#M###N#H###.#",
			"#o#m..#i#jk.#",
			"#############",
		},
		Split: true,
		Moves: 72,
	},
}
