package maze_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keymaze/maze"
)

//----------------------------------------------------------------------------//
// NewGrid and Parse
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or foreign inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"EmptyRows", nil, maze.ErrEmptyGrid},
		{"EmptyCols", []string{""}, maze.ErrEmptyGrid},
		{"NonRectangular", []string{"###", "#@"}, maze.ErrNonRectangular},
		{"UnknownCell", []string{"###", "#?#", "###"}, maze.ErrUnknownCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.NewGrid(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	g, err := maze.Parse(strings.NewReader("#####\r\n#@.a#\r\n#####\r\n\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 15, g.Len())
	assert.Equal(t, maze.Cell('a'), g.At(3, 1))
	assert.Equal(t, "#####\n#@.a#\n#####\n", g.String())
}

func TestGrid_Accessors(t *testing.T) {
	g, err := maze.ParseString("#########\n#b.A.@.a#\n#########")
	require.NoError(t, err)

	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(8, 2))
	assert.False(t, g.InBounds(9, 0))
	assert.False(t, g.InBounds(0, -1))
	assert.Equal(t, 9, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, g.Width()*g.Height(), g.Len())
	assert.Equal(t, maze.Cell(maze.WallByte), g.At(-1, 5), "out of bounds reads as wall")

	idx := g.Index(5, 1)
	assert.Equal(t, 14, idx)
	x, y := g.Coordinate(idx)
	assert.Equal(t, [2]int{5, 1}, [2]int{x, y})
	assert.Equal(t, maze.Cell('@'), g.CellAt(idx))

	assert.Equal(t, []int{14}, g.Entrances())
	assert.Equal(t, "ab", g.Keys().String())
	assert.Equal(t, "a", g.Doors().String())
	assert.Len(t, g.NeighborOffsets(), 4)
}

func TestGrid_EntrancesScanOrder(t *testing.T) {
	g, err := maze.ParseString("#####\n#@.@#\n#.@.#\n#####")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 8, 12}, g.Entrances())
}

//----------------------------------------------------------------------------//
// SplitEntrances
//----------------------------------------------------------------------------//

func TestSplitEntrances(t *testing.T) {
	g, err := maze.ParseString(strings.Join([]string{
		"#######",
		"#a.#Cd#",
		"##...##",
		"##.@.##",
		"##...##",
		"#cB#Ab#",
		"#######",
	}, "\n"))
	require.NoError(t, err)

	split, err := g.SplitEntrances()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"#######",
		"#a.#Cd#",
		"##@#@##",
		"#######",
		"##@#@##",
		"#cB#Ab#",
		"#######",
	}, split.Rows())
	assert.Len(t, split.Entrances(), 4)
	assert.Equal(t, [2]int{g.Width(), g.Height()}, [2]int{split.Width(), split.Height()})

	// the source grid is left untouched
	assert.Len(t, g.Entrances(), 1)
}

func TestSplitEntrances_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"NoEntrance", []string{"...", "...", "..."}},
		{"TwoEntrances", []string{".....", ".@.@.", "....."}},
		{"Border", []string{"@..", "...", "..."}},
		{"Blocked", []string{"#####", "#.#.#", "#.@.#", "#...#", "#####"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.NewGrid(tc.rows)
			require.NoError(t, err)
			_, err = g.SplitEntrances()
			assert.ErrorIs(t, err, maze.ErrSplitEntrance)
		})
	}
}
