package components

import (
	"github.com/automoto/goblin-siege/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Grid *leveldata.TileGrid
	Name string
}

var Level = donburi.NewComponentType[LevelData]()
