package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tileset = `<tileset firstgid="1" name="village" tilewidth="32" tileheight="32" tilecount="4" columns="4">
  <tile id="0" type="f"/>
  <tile id="1" type="Goblin"/>
  <tile id="2" type="Waypoint2"/>
  <tile id="3" class="Pylon"/>
 </tileset>`

func tmx(layers string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="32" tileheight="32" infinite="0">
 ` + tileset + `
` + layers + `
</map>`
}

const namedLayers = `
 <layer id="2" name="objects" width="3" height="2">
  <data encoding="csv">
0,2,0,
3,0,4
</data>
 </layer>
 <layer id="1" name="terrain" width="3" height="2">
  <data encoding="csv">
1,0,0,
0,0,1
</data>
 </layer>`

func TestLoadTileGrid(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(tmx(namedLayers))}}

	grid, err := LoadTileGrid(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 3, grid.Width)
	assert.Equal(t, 2, grid.Height)
	assert.Equal(t, 32, grid.TileWidth)

	assert.Equal(t, TypeFence, grid.TerrainAt(0, 0))
	assert.Equal(t, "", grid.TerrainAt(1, 0))
	assert.Equal(t, TypeFence, grid.TerrainAt(2, 1))

	assert.Equal(t, TypeGoblin, grid.ObjectAt(1, 0))
	assert.Equal(t, "Waypoint2", grid.ObjectAt(0, 1))
	assert.Equal(t, TypePylon, grid.ObjectAt(2, 1))
}

func TestLoadTileGridUnnamedLayers(t *testing.T) {
	layers := `
 <layer id="1" name="ground" width="3" height="2">
  <data encoding="csv">
1,1,1,
0,0,0
</data>
 </layer>
 <layer id="2" name="markers" width="3" height="2">
  <data encoding="csv">
0,0,0,
0,4,0
</data>
 </layer>`
	fsys := fstest.MapFS{"a.tmx": {Data: []byte(tmx(layers))}}

	grid, err := LoadTileGrid(fsys, "a.tmx")
	require.NoError(t, err)
	assert.Equal(t, TypeFence, grid.TerrainAt(1, 0))
	assert.Equal(t, TypePylon, grid.ObjectAt(1, 1))
}

func TestLoadTileGridMissingLayer(t *testing.T) {
	layers := `
 <layer id="1" name="terrain" width="3" height="2">
  <data encoding="csv">
1,1,1,
0,0,0
</data>
 </layer>`
	fsys := fstest.MapFS{"a.tmx": {Data: []byte(tmx(layers))}}

	_, err := LoadTileGrid(fsys, "a.tmx")
	assert.ErrorIs(t, err, ErrMissingLayer)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(tmx(namedLayers))},
		"levels/a.tmx": {Data: []byte(tmx(namedLayers))},
	}
	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestWorldPosition(t *testing.T) {
	g := &TileGrid{Width: 4, Height: 2, TileWidth: 32, TileHeight: 16}
	x, y := g.WorldPosition(0, 0)
	assert.Equal(t, -64.0, x)
	assert.Equal(t, 16.0, y)
	x, y = g.WorldPosition(3, 1)
	assert.Equal(t, 32.0, x)
	assert.Equal(t, 0.0, y)
}

func TestWaypointRank(t *testing.T) {
	tests := []struct {
		in   string
		rank int
		ok   bool
	}{
		{"Waypoint1", 1, true},
		{"Waypoint5", 5, true},
		{"Waypoint0", 0, false},
		{"Waypoint", 0, false},
		{"Goblin", 0, false},
		{"Waypoint12", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			rank, ok := WaypointRank(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.rank, rank)
		})
	}
}
