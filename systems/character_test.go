package systems

import (
	"fmt"
	"math"
	"testing"

	"github.com/automoto/symbiotic/components"
	cfg "github.com/automoto/symbiotic/config"
	"github.com/automoto/symbiotic/shared/leveldata"
	"github.com/automoto/symbiotic/shared/orbs"
	"github.com/automoto/symbiotic/tags"
)

func TestSpawnedCharacterLandsOnce(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	events := countEvents(w)

	steps(w, 30)

	if !components.Character.Get(char).State.Grounded {
		t.Fatalf("character should be grounded on the floor")
	}
	if events.landed != 1 {
		t.Fatalf("landed %d times, want 1", events.landed)
	}
	obj := components.Object.Get(char)
	if math.Abs(obj.Y+obj.H-floorY) > 1e-6 {
		t.Fatalf("feet at %v, want %v", obj.Y+obj.H, floorY)
	}
}

func TestJumpAndLand(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	events := countEvents(w)
	steps(w, 2)

	Move(w, char, 0, false, true)
	step(w)

	body := components.Body.Get(char)
	if body.VY >= 0 {
		t.Fatalf("jump should move up, vy=%v", body.VY)
	}
	step(w)
	if components.Character.Get(char).State.Grounded {
		t.Fatalf("character should be airborne after jumping")
	}

	steps(w, 180)
	if !components.Character.Get(char).State.Grounded {
		t.Fatalf("character should land again")
	}
	if events.landed != 2 {
		t.Fatalf("landed %d times, want 2", events.landed)
	}
}

func TestOneLandingPerJumpAtAnyTickRate(t *testing.T) {
	for _, rate := range []int{60, 120, 144} {
		t.Run(fmt.Sprintf("%dhz", rate), func(t *testing.T) {
			w, char := newTestWorld(t, testLevel())
			cfg.Sim.TickRate = rate
			events := countEvents(w)
			steps(w, 2)

			Move(w, char, 0, false, true)
			steps(w, 3*rate)

			if !components.Character.Get(char).State.Grounded {
				t.Fatalf("character should be back on the floor")
			}
			if events.landed != 2 {
				t.Fatalf("landed %d times, want 2 (spawn and jump)", events.landed)
			}
		})
	}
}

func TestDefaultJumpHeight(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	steps(w, 2)
	obj := components.Object.Get(char)
	startY := obj.Y

	Move(w, char, 0, false, true)
	apex := startY
	for i := 0; i < 120; i++ {
		step(w)
		apex = math.Min(apex, obj.Y)
	}

	// About 73px: the jump clears a four tile wall.
	if rise := startY - apex; rise < 64 || rise > 80 {
		t.Fatalf("jump rose %.1fpx, want 64-80", rise)
	}
}

func TestNoAirJumpWithoutOrbs(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	cfg.Sim.TickRate = 120
	steps(w, 2)

	Move(w, char, 0, false, true)
	steps(w, 2)

	state := components.Character.Get(char).State
	if state.Grounded || state.JumpsLeft != 0 {
		t.Fatalf("just after a jump: grounded=%v jumpsLeft=%d, want false and 0", state.Grounded, state.JumpsLeft)
	}

	before := components.Body.Get(char).VY
	Move(w, char, 0, false, true)
	step(w)
	if after := components.Body.Get(char).VY; after < before {
		t.Fatalf("second jump accepted in the air: vy %v -> %v", before, after)
	}
}

func TestJumpIsConsumed(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	steps(w, 2)

	Move(w, char, 0, false, true)
	step(w)
	if components.MoveInput.Get(char).Jump {
		t.Fatalf("jump request should be cleared after an update")
	}
}

func TestRunMovesAndFlips(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	steps(w, 2)
	startX := components.Object.Get(char).X

	for i := 0; i < 30; i++ {
		Move(w, char, 1, false, false)
		step(w)
	}
	if components.Object.Get(char).X <= startX {
		t.Fatalf("character did not move right")
	}
	if components.Character.Get(char).ScaleX != cfg.DirectionRight {
		t.Fatalf("facing right should keep a positive scale")
	}

	Move(w, char, -1, false, false)
	step(w)
	if components.Character.Get(char).ScaleX != cfg.DirectionLeft {
		t.Fatalf("moving left should flip the scale")
	}
}

func TestCrouchTogglesCollider(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	events := countEvents(w)
	steps(w, 2)
	data := components.Character.Get(char)

	for i := 0; i < 5; i++ {
		Move(w, char, 0, true, false)
		step(w)
	}
	if data.CrouchEnabled || data.CrouchCollider.Space != nil {
		t.Fatalf("crouch collider should leave the space while crouching")
	}

	for i := 0; i < 5; i++ {
		Move(w, char, 0, false, false)
		step(w)
	}
	if !data.CrouchEnabled || data.CrouchCollider.Space == nil {
		t.Fatalf("crouch collider should return when standing")
	}

	if len(events.crouch) != 2 || !events.crouch[0] || events.crouch[1] {
		t.Fatalf("crouch events = %v, want [true false]", events.crouch)
	}
}

func TestCeilingForcesCrouch(t *testing.T) {
	lvl := testLevel()
	// A low block whose underside is below the standing head height.
	lvl.GroundRects = append(lvl.GroundRects, leveldata.Rect{X: 24, Y: 96, W: 40, H: 16})
	w, char := newTestWorld(t, lvl)
	events := countEvents(w)

	Move(w, char, 0, false, false)
	step(w)

	data := components.Character.Get(char)
	if !data.CeilingBlocked {
		t.Fatalf("ceiling check should see the block overhead")
	}
	Move(w, char, 0, false, false)
	step(w)
	if !data.State.Crouching || data.CrouchEnabled {
		t.Fatalf("character should be held in a crouch under the block")
	}
	if len(events.crouch) != 1 || !events.crouch[0] {
		t.Fatalf("crouch events = %v, want [true]", events.crouch)
	}
}

func TestWallStopsMovement(t *testing.T) {
	lvl := testLevel()
	lvl.GroundRects = append(lvl.GroundRects, leveldata.Rect{X: 80, Y: 64, W: 16, H: 64})
	w, char := newTestWorld(t, lvl)

	for i := 0; i < 120; i++ {
		Move(w, char, 1, false, false)
		step(w)
	}
	obj := components.Object.Get(char)
	if obj.X+obj.W > 80+1e-6 {
		t.Fatalf("character passed through the wall: right edge %v", obj.X+obj.W)
	}
}

func TestDoubleJumpFromEarthOrb(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	if err := SetOrbAmount(char, orbs.Earth, 1); err != nil {
		t.Fatal(err)
	}
	steps(w, 2)

	data := components.Character.Get(char)
	if data.State.JumpsLeft != 2 {
		t.Fatalf("JumpsLeft = %d, want 2", data.State.JumpsLeft)
	}

	Move(w, char, 0, false, true)
	step(w)
	steps(w, 5)

	Move(w, char, 0, false, true)
	step(w)
	if data.State.JumpsLeft != 0 || components.Body.Get(char).VY >= 0 {
		t.Fatalf("air jump should be used: left=%d vy=%v", data.State.JumpsLeft, components.Body.Get(char).VY)
	}

	steps(w, 5)
	before := components.Body.Get(char).VY
	Move(w, char, 0, false, true)
	step(w)
	if components.Body.Get(char).VY < before {
		t.Fatalf("third jump should be refused")
	}
}

func TestOverlapCircleSkipsOwner(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	obj := components.Object.Get(char)
	space := spaceOf(w)

	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	if hits := OverlapCircle(space, cx, cy, 4, char, tags.ResolvCharacter); len(hits) != 0 {
		t.Fatalf("own colliders should be excluded, got %d", len(hits))
	}
	if hits := OverlapCircle(space, cx, cy, 4, nil, tags.ResolvCharacter); len(hits) != 1 {
		t.Fatalf("without exclusion the body should be found, got %d", len(hits))
	}
	if hits := OverlapCircle(space, cx, floorY+8, 2, char, tags.ResolvGround); len(hits) != 1 {
		t.Fatalf("floor should be found, got %d", len(hits))
	}
}

func TestRespawnAfterFalling(t *testing.T) {
	w, char := newTestWorld(t, testLevel())
	steps(w, 2)

	teleport(char, 40, 400)
	components.Body.Get(char).VY = 300
	UpdateRespawn(w)

	obj := components.Object.Get(char)
	if obj.Y+obj.H != floorY || components.Body.Get(char).VY != 0 {
		t.Fatalf("character should be back at spawn: feet=%v vy=%v", obj.Y+obj.H, components.Body.Get(char).VY)
	}
}
