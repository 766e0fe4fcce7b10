package components

import (
	"github.com/automoto/symbiotic/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Spawn        math.Vec2 // Where the character is created and respawned
}

var Level = donburi.NewComponentType[LevelData]()
