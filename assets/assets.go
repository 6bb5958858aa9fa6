package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/goblin-siege/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelFS exposes the embedded levels. Paths are "levels/<name>.tmx".
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevel reads a level from the embedded assets, or from disk when path
// names an existing file outside them.
func LoadLevel(path string) (*leveldata.TileGrid, error) {
	if _, err := fs.Stat(assetFS, path); err == nil {
		return leveldata.LoadTileGrid(assetFS, path)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return leveldata.LoadTileGrid(os.DirFS("."), path)
}

// LevelNames lists the embedded levels.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, "levels")
	return names, err
}
