package factory

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/automoto/goblin-siege/archetypes"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/shared/gamemath"
	"github.com/automoto/goblin-siege/shared/leveldata"
	"github.com/automoto/goblin-siege/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrNoPylon  = errors.New("level has no pylon marker")
	ErrNoPlayer = errors.New("level has no player marker")
)

type waypointMarker struct {
	pos   dmath.Vec2
	rank  int
	entry *donburi.Entry
}

// CreateLevel populates the world from a tile grid: fence posts from the
// terrain layer, then pylon, player, waypoints and goblin spawners from the
// object layer. Waypoints of rank N link to the nearest waypoint of rank N-1.
func CreateLevel(ecs *ecs.ECS, name string, grid *leveldata.TileGrid) error {
	var (
		pylons    []dmath.Vec2
		players   []dmath.Vec2
		spawners  []dmath.Vec2
		waypoints []*waypointMarker
		fences    int
	)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			wx, wy := grid.WorldPosition(x, y)
			pos := dmath.Vec2{X: wx, Y: wy}

			if grid.TerrainAt(x, y) == leveldata.TypeFence {
				CreateFence(ecs, pos)
				fences++
			}

			switch t := grid.ObjectAt(x, y); t {
			case leveldata.TypeGoblin:
				spawners = append(spawners, pos)
			case leveldata.TypePylon:
				pylons = append(pylons, pos)
			case leveldata.TypePlayer:
				players = append(players, pos)
			default:
				if rank, ok := leveldata.WaypointRank(t); ok {
					waypoints = append(waypoints, &waypointMarker{pos: pos, rank: rank})
				}
			}
		}
	}

	if len(pylons) == 0 {
		return fmt.Errorf("create level %s: %w", name, ErrNoPylon)
	}
	if len(players) == 0 {
		return fmt.Errorf("create level %s: %w", name, ErrNoPlayer)
	}
	if len(pylons) > 1 || len(players) > 1 {
		log.Printf("Warning: level %s has %d pylons and %d players, using the first of each", name, len(pylons), len(players))
	}

	CreatePylon(ecs, pylons[0])
	CreatePlayer(ecs, players[0])

	if len(spawners) > 0 && len(waypoints) == 0 {
		// Goblins with nowhere to go head for the pylon.
		waypoints = append(waypoints, &waypointMarker{pos: pylons[0], rank: 1})
	}
	for _, m := range waypoints {
		m.entry = CreateWaypoint(ecs, m.pos, m.rank)
	}
	for _, m := range waypoints {
		if m.rank <= 1 {
			continue
		}
		if next := nearestWaypoint(m.pos, waypoints, m.rank-1); next != nil {
			LinkWaypoint(m.entry, next.entry.Entity())
		}
	}
	if cut := BreakWaypointCycles(ecs.World); cut > 0 {
		log.Printf("Warning: level %s: broke %d waypoint cycles", name, cut)
	}

	entryRank := 0
	for _, m := range waypoints {
		entryRank = max(entryRank, m.rank)
	}
	for _, pos := range spawners {
		wp := nearestWaypoint(pos, waypoints, entryRank)
		if wp == nil {
			wp = nearestWaypoint(pos, waypoints, 0)
		}
		CreateSpawner(ecs, pos, wp.entry.Entity())
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Grid: grid, Name: name})

	log.Printf("Loaded level %s: %d fences, %d waypoints, %d spawners", name, fences, len(waypoints), len(spawners))
	return nil
}

// nearestWaypoint returns the closest marker of the given rank, or of any rank
// when rank is 0. Ties go to the earlier marker.
func nearestWaypoint(pos dmath.Vec2, markers []*waypointMarker, rank int) *waypointMarker {
	var best *waypointMarker
	bestDist := 0.0
	for _, m := range markers {
		if rank != 0 && m.rank != rank {
			continue
		}
		d := gamemath.DistanceSq(pos, m.pos)
		if best == nil || d < bestDist {
			best, bestDist = m, d
		}
	}
	return best
}

// BreakWaypointCycles cuts any link that closes a loop or runs past
// cfg.Waypoint.MaxChain nodes, so following Next always terminates. It
// returns the number of links cut.
func BreakWaypointCycles(w donburi.World) int {
	var nodes []*donburi.Entry
	tags.Waypoint.Each(w, func(entry *donburi.Entry) {
		nodes = append(nodes, entry)
	})
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Entity() < nodes[j].Entity() })

	cut := 0
	done := make(map[donburi.Entity]bool, len(nodes))
	for _, start := range nodes {
		onPath := make(map[donburi.Entity]bool)
		cur := start
		for steps := 0; ; steps++ {
			e := cur.Entity()
			if done[e] {
				break
			}
			onPath[e] = true
			wp := components.Waypoint.Get(cur)
			if !wp.HasNext {
				break
			}
			linked := w.Valid(wp.Next) && w.Entry(wp.Next).HasComponent(components.Waypoint)
			if !linked || onPath[wp.Next] || steps >= cfg.Waypoint.MaxChain {
				wp.HasNext = false
				cut++
				break
			}
			cur = w.Entry(wp.Next)
		}
		for e := range onPath {
			done[e] = true
		}
	}
	return cut
}
