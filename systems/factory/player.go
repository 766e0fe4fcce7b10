package factory

import (
	"github.com/automoto/symbiotic/archetypes"
	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/character"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/automoto/symbiotic/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateCharacter spawns a character whose feet are centred on (x, y).
// The body collider is always present; the crouch collider sits on top of it
// and leaves the space while crouching.
func CreateCharacter(w donburi.World, x, y float64) *donburi.Entry {
	char := archetypes.Character.Spawn(w)

	width := cfg.Controller.CollisionWidth
	height := cfg.Controller.CollisionHeight
	crouchHeight := cfg.Controller.CrouchColliderHeight

	obj := resolv.NewObject(x-width/2, y-height, width, height, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	components.Object.SetValue(char, components.ObjectData{Object: obj})
	addToSpace(w, char, obj)

	crouch := resolv.NewObject(obj.X, obj.Y-crouchHeight, width, crouchHeight, tags.ResolvCharacter, tags.ResolvCrouch)
	crouch.SetShape(resolv.NewRectangle(0, 0, width, crouchHeight))
	addToSpace(w, char, crouch)

	components.Character.SetValue(char, components.CharacterData{
		State:          character.NewState(),
		CrouchCollider: crouch,
		CrouchEnabled:  true,
		ScaleX:         cfg.DirectionRight,
	})
	components.Body.SetValue(char, components.BodyData{
		Mass:         cfg.Controller.Mass,
		GravityScale: cfg.Physics.DefaultGravity,
		LinearDrag:   cfg.Physics.DefaultLinearDrag,
	})
	components.TriggerContacts.SetValue(char, components.TriggerContactsData{
		Inside: map[string]map[donburi.Entity]struct{}{},
	})
	components.Orbs.SetValue(char, components.OrbsData{
		Collection: orbs.NewCollection(orbs.Thresholds{
			First:  cfg.Orbs.FirstUnlock,
			Second: cfg.Orbs.SecondUnlock,
			Third:  cfg.Orbs.ThirdUnlock,
		}),
	})
	components.SquashStretch.SetValue(char, components.SquashStretchData{ScaleX: 1, ScaleY: 1})

	return char
}
