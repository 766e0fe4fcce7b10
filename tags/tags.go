package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Ground    = donburi.NewTag().SetName("Ground")
	WaterZone = donburi.NewTag().SetName("WaterZone")
	OrbPickup = donburi.NewTag().SetName("OrbPickup")
)

// Resolv tags for collision and trigger queries
const (
	ResolvGround    = "ground"
	ResolvWater     = "Water"
	ResolvOrb       = "Orb"
	ResolvCharacter = "character"
	ResolvCrouch    = "crouch"
)
