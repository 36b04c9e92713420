package keygraph_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keymaze/internal/testutil"
	"github.com/katalvlaran/keymaze/keygraph"
	"github.com/katalvlaran/keymaze/maze"
)

var (
	a  = keygraph.KeyPOI('a')
	b  = keygraph.KeyPOI('b')
	c  = keygraph.KeyPOI('c')
	e0 = keygraph.EntrancePOI(0)
)

// ------------------------------------------------------------------------
// 1. Identifiers
// ------------------------------------------------------------------------

func TestPOI(t *testing.T) {
	assert.Equal(t, keygraph.POI(0), a)
	assert.Equal(t, keygraph.POI(25), keygraph.KeyPOI('z'))
	assert.Equal(t, keygraph.EntranceBase, e0)
	assert.Equal(t, keygraph.EntranceBase+3, keygraph.EntrancePOI(3))

	assert.True(t, b.IsKey())
	assert.False(t, e0.IsKey())
	assert.Equal(t, byte('b'), b.Letter())
	assert.Zero(t, e0.Letter())
	assert.Equal(t, maze.KeyBit('c'), c.Bit())
	assert.Zero(t, e0.Bit())
	assert.Equal(t, "b", b.String())
	assert.Equal(t, "@2", keygraph.EntrancePOI(2).String())
}

// ------------------------------------------------------------------------
// 2. Validation
// ------------------------------------------------------------------------

func TestBuild_NilGrid(t *testing.T) {
	_, err := keygraph.Build(nil)
	assert.ErrorIs(t, err, keygraph.ErrNilGrid)
}

func TestBuild_NegativeWorkers(t *testing.T) {
	_, err := keygraph.Build(testutil.Corridor.Grid(t), keygraph.WithWorkers(-1))
	assert.ErrorIs(t, err, keygraph.ErrOptionViolation)
}

func TestBuild_DuplicateKey(t *testing.T) {
	g := testutil.MustGrid(t, "#######", "#a.@.a#", "#######")
	_, err := keygraph.Build(g)
	assert.ErrorIs(t, err, keygraph.ErrDuplicateKey)
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		_, err := keygraph.Build(testutil.Corridor.Grid(t), keygraph.WithContext(ctx), keygraph.WithWorkers(workers))
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

// ------------------------------------------------------------------------
// 3. Paths
// ------------------------------------------------------------------------

// TestBuild_Corridor checks every path of "#b.A.@.a#", including the door
// recorded on routes that cross it.
func TestBuild_Corridor(t *testing.T) {
	g, err := keygraph.Build(testutil.Corridor.Grid(t))
	require.NoError(t, err)

	assert.Equal(t, []keygraph.POI{e0}, g.Entrances)
	assert.Equal(t, "ab", g.Goal.String())
	assert.Equal(t, []keygraph.POI{a, b, e0}, g.POIs())
	assert.Equal(t, 4, g.Len())

	assert.Equal(t, []keygraph.Path{
		{To: a, Steps: 2, Keys: a.Bit()},
		{To: b, Steps: 4, Keys: b.Bit(), Doors: maze.KeyBit('a')},
	}, g.PathsFrom(e0))
	assert.Equal(t, []keygraph.Path{
		{To: b, Steps: 6, Keys: b.Bit(), Doors: maze.KeyBit('a')},
	}, g.PathsFrom(a))
	assert.Equal(t, []keygraph.Path{
		{To: a, Steps: 6, Keys: a.Bit(), Doors: maze.KeyBit('a')},
	}, g.PathsFrom(b))

	x, y, ok := g.Origin(a)
	require.True(t, ok)
	assert.Equal(t, [2]int{7, 1}, [2]int{x, y})
	_, _, ok = g.Origin(c)
	assert.False(t, ok)
}

// TestBuild_KeysOnRoute verifies that keys crossed on the way are recorded
// alongside the destination, and that doors do not stop the search.
func TestBuild_KeysOnRoute(t *testing.T) {
	g, err := keygraph.Build(testutil.MustGrid(t, "########", "#@.aC.b#", "########"))
	require.NoError(t, err)

	assert.Equal(t, []keygraph.Path{
		{To: a, Steps: 2, Keys: a.Bit()},
		{To: b, Steps: 5, Keys: a.Bit() | b.Bit(), Doors: maze.KeyBit('c')},
	}, g.PathsFrom(e0))
	assert.Equal(t, "→b 5 keys=ab doors=c", g.PathsFrom(e0)[1].String())
}

// TestBuild_EqualLengthRoutes pins which route is recorded when two routes
// of equal length reach the same key. Only the first route settled in N, E,
// S, W expansion order is kept, so a door on that route is required even
// though a clear route of the same length exists. This is a known limitation.
func TestBuild_EqualLengthRoutes(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		doors maze.KeySet
	}{
		// E branch is clear and expands before the W branch through D
		{"DoorOnWest", []string{"#####", "#.@.#", "#D#.#", "#.a.#", "#####"}, 0},
		// E branch runs through D and expands before the clear W branch
		{"DoorOnEast", []string{"#####", "#.@.#", "#.#D#", "#.a.#", "#####"}, maze.KeyBit('d')},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := keygraph.Build(testutil.MustGrid(t, tc.rows...))
			require.NoError(t, err)
			assert.Equal(t, []keygraph.Path{
				{To: a, Steps: 4, Keys: a.Bit(), Doors: tc.doors},
			}, g.PathsFrom(e0))
		})
	}
}

// TestBuild_UnreachableKey verifies that a walled-off key is a POI without edges.
func TestBuild_UnreachableKey(t *testing.T) {
	g, err := keygraph.Build(testutil.MustGrid(t, "#######", "#@.b#a#", "#######"))
	require.NoError(t, err)

	assert.Equal(t, "ab", g.Goal.String())
	assert.Equal(t, []keygraph.Path{{To: b, Steps: 2, Keys: b.Bit()}}, g.PathsFrom(e0))
	assert.Empty(t, g.PathsFrom(a))
	for _, p := range g.POIs() {
		for _, path := range g.PathsFrom(p) {
			assert.NotEqual(t, a, path.To, "no path may reach the enclosed key")
		}
	}
}

// TestBuild_Idempotent verifies that compressing the same grid twice yields
// identical graphs.
func TestBuild_Idempotent(t *testing.T) {
	for _, f := range append(testutil.SingleAgent, testutil.MultiAgent...) {
		t.Run(f.Name, func(t *testing.T) {
			grid := f.Grid(t)
			g1, err := keygraph.Build(grid)
			require.NoError(t, err)
			g2, err := keygraph.Build(grid)
			require.NoError(t, err)
			assert.Equal(t, g1, g2)
		})
	}
}

// TestBuild_ParallelMatchesSequential verifies that bounded parallel
// compression yields exactly the sequential graph.
func TestBuild_ParallelMatchesSequential(t *testing.T) {
	grid := testutil.Large.Grid(t)
	seq, err := keygraph.Build(grid)
	require.NoError(t, err)
	par, err := keygraph.Build(grid, keygraph.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestBuild_OnPath(t *testing.T) {
	var (
		mu    sync.Mutex
		count = map[keygraph.POI]int{}
	)
	g, err := keygraph.Build(testutil.FourRooms.Grid(t),
		keygraph.WithWorkers(3),
		keygraph.WithOnPath(func(from keygraph.POI, _ keygraph.Path) {
			mu.Lock()
			count[from]++
			mu.Unlock()
		}))
	require.NoError(t, err)

	total := 0
	for _, p := range g.POIs() {
		assert.Equal(t, len(g.PathsFrom(p)), count[p], "paths from %s", p)
		total += count[p]
	}
	assert.Equal(t, g.Len(), total)
	assert.Len(t, g.Entrances, 4)
}
