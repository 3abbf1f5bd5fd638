package board

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"trigon/game"
)

func neighborIDs(ns []Neighbor) []int {
	ids := make([]int, 0, len(ns))
	for _, n := range ns {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestBuild(t *testing.T) {
	t.Run("standard board", func(t *testing.T) {
		g := Standard()

		require.Equal(t, 6, g.Rows())
		require.Equal(t, 5, g.Cols())
		require.Equal(t, 34, g.Len(), "30 grid cells plus 4 wings")
		require.Len(t, g.TilesByOrientation(OrientLeft), 2)
		require.Len(t, g.TilesByOrientation(OrientRight), 2)
		require.True(t, g.IsWing(30))
		require.False(t, g.IsWing(29))
	})

	t.Run("orientation alternates by index", func(t *testing.T) {
		g := Standard()

		t0, ok := g.Tile(0)
		require.True(t, ok)
		require.Equal(t, OrientUp, t0.Orient)

		t5, ok := g.TileAt(1, 0)
		require.True(t, ok)
		require.Equal(t, Tile{ID: 5, Row: 1, Col: 0, Orient: OrientDown}, t5)

		_, ok = g.TileAt(-1, 0)
		require.False(t, ok, "Wings are not addressable by coordinate")
	})

	t.Run("wing uses its first virtual coordinate", func(t *testing.T) {
		w, ok := Standard().Tile(32)
		require.True(t, ok)
		require.Equal(t, Tile{ID: 32, Row: 1, Col: 5, Orient: OrientLeft}, w)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := Build(0, 5)
		require.Error(t, err)

		_, err = Build(6, 5, WithWings(Wing{ID: 3, VirtualCoords: []Coord{{0, -1}}, Orient: OrientRight}))
		require.Error(t, err, "Wing id collides with a grid cell")

		_, err = Build(6, 5, WithWings(Wing{
			ID:            40,
			VirtualCoords: []Coord{{0, -1}},
			Orient:        OrientRight,
			Edges:         map[Direction][]int{DirUpRight: {99}},
		}))
		require.Error(t, err, "Wing references an unknown tile")

		_, err = Build(6, 5, WithWings(Wing{ID: 40, Orient: OrientRight}))
		require.Error(t, err, "Wing needs a virtual coordinate")
	})
}

func TestEdgeNeighbors(t *testing.T) {
	g := Standard()

	t.Run("corner up cell", func(t *testing.T) {
		require.Equal(t, []Neighbor{{5, DirDown}, {1, DirUpRight}}, g.EdgeNeighbors(0))
	})

	t.Run("down cell", func(t *testing.T) {
		require.Equal(t, []Neighbor{{0, DirDownLeft}, {2, DirDownRight}}, g.EdgeNeighbors(1))
	})

	t.Run("cell next to a wing", func(t *testing.T) {
		require.Equal(t, []Neighbor{{0, DirUp}, {6, DirDownRight}, {30, DirDownLeft}}, g.EdgeNeighbors(5))
	})

	t.Run("wing cell", func(t *testing.T) {
		require.Equal(t, []Neighbor{{5, DirUpRight}, {10, DirDownRight}}, g.EdgeNeighbors(30))
	})

	t.Run("edges are symmetric", func(t *testing.T) {
		for _, tile := range g.Tiles() {
			for _, n := range g.EdgeNeighbors(tile.ID) {
				require.Contains(t, neighborIDs(g.EdgeNeighbors(n.ID)), tile.ID, "%d -> %d", tile.ID, n.ID)
			}
		}
	})

	t.Run("unknown cell", func(t *testing.T) {
		require.Empty(t, g.EdgeNeighbors(99))
		require.Nil(t, g.VertexNeighbors(99))
	})
}

func TestVertexNeighbors(t *testing.T) {
	g := Standard()

	t.Run("corner up cell", func(t *testing.T) {
		require.Equal(t, []int{2, 6, 7, 30}, g.VertexNeighbors(0))
	})

	t.Run("wing drops its own edges", func(t *testing.T) {
		require.Equal(t, []int{0, 6, 11, 15, 31}, g.VertexNeighbors(30))
	})

	t.Run("never includes edge neighbors or duplicates", func(t *testing.T) {
		for _, tile := range g.Tiles() {
			vs := g.VertexNeighbors(tile.ID)
			edges := neighborIDs(g.EdgeNeighbors(tile.ID))
			for i, v := range vs {
				require.NotContains(t, edges, v)
				require.NotEqual(t, tile.ID, v)
				require.False(t, slices.Contains(vs[i+1:], v), "duplicate %d for %d", v, tile.ID)
			}
		}
	})
}

func TestNeighbors(t *testing.T) {
	g := Standard()

	require.Equal(t, []int{5, 1}, g.Neighbors(0, false))
	require.Equal(t, []int{5, 1, 2, 6, 7, 30}, g.Neighbors(0, true))

	withDir := g.NeighborsWithDir(0, true)
	require.Len(t, withDir, 6)
	require.Equal(t, Neighbor{30, DirNeutral}, withDir[5])

	dir, ok := g.DirectionTo(0, 5)
	require.True(t, ok)
	require.Equal(t, DirDown, dir)

	dir, ok = g.DirectionTo(0, 30)
	require.True(t, ok)
	require.Equal(t, DirNeutral, dir)

	_, ok = g.DirectionTo(0, 29)
	require.False(t, ok)
}

func TestResolveDirection(t *testing.T) {
	require.Equal(t, DirUp, ResolveDirection(OrientDown, -1, 0))
	require.Equal(t, DirDown, ResolveDirection(OrientUp, 1, 0))
	require.Equal(t, DirUpLeft, ResolveDirection(OrientUp, 0, -1))
	require.Equal(t, DirDownLeft, ResolveDirection(OrientDown, 0, -1))
	require.Equal(t, DirUpRight, ResolveDirection(OrientUp, 0, 1))
	require.Equal(t, DirDownRight, ResolveDirection(OrientDown, 0, 1))
	require.Equal(t, DirDownLeft, ResolveDirection(OrientUp, 1, -1))
	require.Equal(t, DirUpRight, ResolveDirection(OrientDown, -1, 1))
	require.Equal(t, DirNeutral, ResolveDirection(OrientUp, 0, 2))
}

func TestAttackAttributeOf(t *testing.T) {
	require.Equal(t, AttrSun, AttackAttributeOf(DirUpRight))
	require.Equal(t, AttrSun, AttackAttributeOf(DirDownLeft))
	require.Equal(t, AttrMoon, AttackAttributeOf(DirUpLeft))
	require.Equal(t, AttrMoon, AttackAttributeOf(DirDownRight))
	require.Equal(t, AttrNeutral, AttackAttributeOf(DirUp))
	require.Equal(t, AttrNeutral, AttackAttributeOf(DirNeutral))
}

func TestBoardState(t *testing.T) {
	g := Standard()

	t.Run("edge adjacency", func(t *testing.T) {
		bs := g.BoardState(false)

		require.Len(t, bs.Adjacency, 34)
		require.Equal(t, []game.TileID{"t5", "t1"}, bs.Adjacency["t0"])
		require.True(t, bs.Adjacent("t5", "t30"))
		require.False(t, bs.Adjacent("t0", "t6"))
	})

	t.Run("vertex adjacency", func(t *testing.T) {
		bs := g.BoardState(true)
		require.True(t, bs.Adjacent("t0", "t6"))
	})

	t.Run("end zones", func(t *testing.T) {
		bs := g.BoardState(false)

		require.Equal(t, []game.TileID{"t25", "t26", "t27", "t28", "t29"}, bs.EndZones[game.PlayerA])
		require.Equal(t, []game.TileID{"t0", "t1", "t2", "t3", "t4"}, bs.EndZones[game.PlayerB])
		require.True(t, bs.InEndZone(game.PlayerA, "t27"))
	})
}

func TestParseTileID(t *testing.T) {
	id, ok := ParseTileID(TileID(17))
	require.True(t, ok)
	require.Equal(t, 17, id)

	_, ok = ParseTileID("x17")
	require.False(t, ok)
	_, ok = ParseTileID("tx")
	require.False(t, ok)
}
