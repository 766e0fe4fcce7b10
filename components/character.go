package components

import (
	"github.com/automoto/symbiotic/shared/character"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CharacterData is the controller state of a character entity plus the
// collider it disables while crouching.
type CharacterData struct {
	State character.State

	CrouchCollider *resolv.Object
	CrouchEnabled  bool

	// Ceiling is updated every fixed tick from the ceiling overlap check.
	CeilingBlocked bool

	// ScaleX is -1 while facing left.
	ScaleX float64
}

var Character = donburi.NewComponentType[CharacterData]()
