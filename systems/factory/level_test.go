package factory

import (
	"testing"

	"github.com/automoto/goblin-siege/assets"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/shared/leveldata"
	"github.com/automoto/goblin-siege/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

func newECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSingletons(e, 0)
	return e
}

func countTag(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w)
}

// grid builds a w x h level with the given object markers and no terrain.
func grid(w, h int, objects map[[2]int]string) *leveldata.TileGrid {
	g := &leveldata.TileGrid{
		Width:      w,
		Height:     h,
		TileWidth:  32,
		TileHeight: 32,
		Terrain:    make([]string, w*h),
		Objects:    make([]string, w*h),
	}
	for cell, typ := range objects {
		g.Objects[cell[1]*w+cell[0]] = typ
	}
	return g
}

func TestCreateVillage(t *testing.T) {
	e := newECS()
	g, err := assets.LoadLevel(cfg.C.Level)
	require.NoError(t, err)
	require.NoError(t, CreateLevel(e, "village", g))

	w := e.World
	assert.Equal(t, 43, countTag(w, tags.Fence))
	assert.Equal(t, 7, countTag(w, tags.Waypoint))
	assert.Equal(t, 3, countTag(w, tags.Spawner))
	assert.Equal(t, 1, countTag(w, tags.Pylon))
	assert.Equal(t, 1, countTag(w, tags.Player))

	pylon := tags.Pylon.MustFirst(w)
	assert.Equal(t, dmath.Vec2{X: 7*32 - 240, Y: 160 - 5*32}, components.Transform.Get(pylon).Position)

	level, ok := components.Level.First(w)
	require.True(t, ok)
	assert.Equal(t, "village", components.Level.Get(level).Name)

	tags.Spawner.Each(w, func(entry *donburi.Entry) {
		wpEntity := components.Spawner.Get(entry).Waypoint
		require.True(t, w.Valid(wpEntity))
		wp := components.Waypoint.Get(w.Entry(wpEntity))
		assert.Equal(t, 3, wp.Rank, "spawners enter at the outermost ring")

		// Every patrol ends at the rank 1 waypoint in front of the pylon.
		for steps := 0; wp.HasNext; steps++ {
			require.Less(t, steps, 3)
			next := components.Waypoint.Get(w.Entry(wp.Next))
			assert.Equal(t, wp.Rank-1, next.Rank)
			wp = next
		}
		assert.Equal(t, 1, wp.Rank)
	})
}

func TestCreateLevelRequiresPylonAndPlayer(t *testing.T) {
	err := CreateLevel(newECS(), "empty", grid(3, 3, map[[2]int]string{
		{1, 1}: leveldata.TypePlayer,
	}))
	assert.ErrorIs(t, err, ErrNoPylon)

	err = CreateLevel(newECS(), "lonely", grid(3, 3, map[[2]int]string{
		{1, 1}: leveldata.TypePylon,
	}))
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestSpawnersWithoutWaypointsHeadForPylon(t *testing.T) {
	e := newECS()
	require.NoError(t, CreateLevel(e, "bare", grid(5, 5, map[[2]int]string{
		{2, 2}: leveldata.TypePylon,
		{2, 4}: leveldata.TypePlayer,
		{0, 0}: leveldata.TypeGoblin,
	})))

	w := e.World
	require.Equal(t, 1, countTag(w, tags.Waypoint))
	wp := tags.Waypoint.MustFirst(w)
	pylon := tags.Pylon.MustFirst(w)
	assert.Equal(t, components.Transform.Get(pylon).Position, components.Transform.Get(wp).Position)
	assert.Equal(t, wp.Entity(), components.Spawner.Get(tags.Spawner.MustFirst(w)).Waypoint)
}

func chain(e *ecs.ECS, n int) []*donburi.Entry {
	var out []*donburi.Entry
	for i := 0; i < n; i++ {
		out = append(out, CreateWaypoint(e, dmath.Vec2{X: float64(i * 10)}, 1))
	}
	for i := 0; i+1 < n; i++ {
		LinkWaypoint(out[i], out[i+1].Entity())
	}
	return out
}

// follow walks Next links and fails the test if they do not terminate.
func follow(t *testing.T, w donburi.World, start *donburi.Entry) int {
	t.Helper()
	steps := 0
	wp := components.Waypoint.Get(start)
	for wp.HasNext {
		steps++
		require.Less(t, steps, 100, "waypoint links loop")
		wp = components.Waypoint.Get(w.Entry(wp.Next))
	}
	return steps
}

func TestBreakWaypointCycles(t *testing.T) {
	e := newECS()
	nodes := chain(e, 3)
	LinkWaypoint(nodes[2], nodes[0].Entity())

	assert.Equal(t, 1, BreakWaypointCycles(e.World))
	for _, n := range nodes {
		follow(t, e.World, n)
	}
	assert.Zero(t, BreakWaypointCycles(e.World), "already acyclic")
}

func TestBreakWaypointSelfLoop(t *testing.T) {
	e := newECS()
	wp := CreateWaypoint(e, dmath.Vec2{}, 1)
	LinkWaypoint(wp, wp.Entity())

	assert.Equal(t, 1, BreakWaypointCycles(e.World))
	assert.False(t, components.Waypoint.Get(wp).HasNext)
}

func TestBreakDanglingWaypointLink(t *testing.T) {
	e := newECS()
	nodes := chain(e, 2)
	e.World.Remove(nodes[1].Entity())

	assert.Equal(t, 1, BreakWaypointCycles(e.World))
	assert.False(t, components.Waypoint.Get(nodes[0]).HasNext)
}

func TestBreakOverlongWaypointChain(t *testing.T) {
	prev := cfg.Waypoint.MaxChain
	cfg.Waypoint.MaxChain = 2
	t.Cleanup(func() { cfg.Waypoint.MaxChain = prev })

	e := newECS()
	nodes := chain(e, 5)

	assert.Equal(t, 1, BreakWaypointCycles(e.World))
	assert.Equal(t, 2, follow(t, e.World, nodes[0]))
}
