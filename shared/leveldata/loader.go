package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrMissingLayer is returned for maps without both a terrain and an object
// tile layer.
var ErrMissingLayer = errors.New("leveldata: missing tile layer")

// Layer names. Maps that don't name their layers use the first tile layer as
// terrain and the second as objects.
const (
	TerrainLayer = "terrain"
	ObjectLayer  = "objects"
)

// LoadTileGrid parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTileGrid(fsys fs.FS, tmxPath string) (*TileGrid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	terrain, objects, err := pickLayers(levelMap.Layers)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	grid := &TileGrid{
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}
	grid.Terrain = tileTypes(levelMap, terrain)
	grid.Objects = tileTypes(levelMap, objects)
	return grid, nil
}

func pickLayers(layers []*tiled.Layer) (terrain, objects *tiled.Layer, err error) {
	for _, layer := range layers {
		switch layer.Name {
		case TerrainLayer:
			terrain = layer
		case ObjectLayer:
			objects = layer
		}
	}
	if terrain != nil && objects != nil {
		return terrain, objects, nil
	}
	if len(layers) < 2 {
		return nil, nil, fmt.Errorf("%w: found %d", ErrMissingLayer, len(layers))
	}
	return layers[0], layers[1], nil
}

func tileTypes(levelMap *tiled.Map, layer *tiled.Layer) []string {
	out := make([]string, levelMap.Width*levelMap.Height)
	for i := range out {
		if i >= len(layer.Tiles) {
			break
		}
		tile := layer.Tiles[i]
		if tile == nil || tile.IsNil() || tile.Tileset == nil {
			continue
		}
		tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
		if err != nil {
			continue
		}
		// Tiled 1.9 renamed the tile type attribute to class.
		out[i] = tilesetTile.Class
		if out[i] == "" {
			out[i] = tilesetTile.Type //nolint:staticcheck
		}
	}
	return out
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads the
// grid for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*TileGrid, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*TileGrid, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		grid, err := LoadTileGrid(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = grid
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
