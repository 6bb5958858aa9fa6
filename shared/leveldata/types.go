// Package leveldata turns TMX maps into the plain tile grid the game reads at
// world setup. It has no dependencies on ebitengine or donburi, pure data only.
package leveldata

// Semantic tile types carried by the tileset.
const (
	TypeFence    = "f"
	TypeGoblin   = "Goblin"
	TypePylon    = "Pylon"
	TypePlayer   = "Player"
	waypointType = "Waypoint"
)

// TileGrid holds the two logical layers of a level. Each cell is the
// semantic type string of its tile, empty when the cell has no tile or the
// tile carries no type.
type TileGrid struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Terrain    []string
	Objects    []string
}

func (g *TileGrid) TerrainAt(x, y int) string {
	return g.Terrain[y*g.Width+x]
}

func (g *TileGrid) ObjectAt(x, y int) string {
	return g.Objects[y*g.Width+x]
}

// WorldPosition maps a cell to world space: the map is centered on the
// origin and y grows upward.
func (g *TileGrid) WorldPosition(x, y int) (float64, float64) {
	tw, th := float64(g.TileWidth), float64(g.TileHeight)
	wx := float64(x)*tw - tw*float64(g.Width)/2
	wy := th*float64(g.Height)/2 - float64(y)*th
	return wx, wy
}

// WaypointRank returns N for a "WaypointN" type.
func WaypointRank(tileType string) (int, bool) {
	if len(tileType) != len(waypointType)+1 || tileType[:len(waypointType)] != waypointType {
		return 0, false
	}
	n := int(tileType[len(waypointType)] - '0')
	if n < 1 || n > 9 {
		return 0, false
	}
	return n, true
}
