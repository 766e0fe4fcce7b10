package config

import "image/color"

// ControllerConfig contains all character controller tuning values.
// Distances are in pixels, speeds in pixels per second, forces in mass*pixels/s^2.
type ControllerConfig struct {
	// Movement
	RunSpeed          float64 // Target horizontal speed at full input
	CrouchSpeed       float64 // Fraction of RunSpeed applied while crouching (0-1)
	MovementSmoothing float64 // SmoothDamp time in seconds (0-0.3)
	AirControl        bool    // Whether the character can steer while airborne

	// Jumping
	JumpForce float64 // Vertical impulse scale applied on jump
	JumpLerp  float64 // 0 = set jump velocity, 1 = add it to the current velocity

	// Swimming
	SwimUpForce   float64 // Force applied upward while swimming and jumping
	SwimDownForce float64 // Force applied downward while swimming and crouching

	// Ground and ceiling checks
	WhatIsGround       []string // resolv tags treated as ground
	GroundedRadius     float64
	CeilingRadius      float64
	GroundCheckOffsetY float64 // Offset below the feet
	CeilingCheckOffset float64 // Offset above the standing head

	// Dimensions
	CollisionWidth       float64
	CollisionHeight      float64 // Height of the always-on body collider
	CrouchColliderHeight float64 // Height of the upper collider disabled while crouching
	Mass                 float64
}

// PhysicsConfig contains rigid body integration values.
type PhysicsConfig struct {
	Gravity           float64 // pixels/s^2 before gravity scale
	MaxFallSpeed      float64
	DefaultGravity    float64 // Gravity scale out of water
	SwimmingGravity   float64 // Gravity scale in water
	DefaultLinearDrag float64 // Same in and out of water
}

// OrbConfig holds the thresholds at which orb counts unlock abilities.
type OrbConfig struct {
	FirstUnlock  int
	SecondUnlock int
	ThirdUnlock  int
	PickupSize   float64
}

// SimConfig holds fixed-timestep loop configuration.
type SimConfig struct {
	TickRate  int // Fixed ticks per second
	CellSize  int // resolv spatial grid cell size
	SaveAppID string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawChecks bool // Draw ground and ceiling check circles
	LogEvents  bool // Log landed and crouch events
}

// Global configuration instances
var Controller ControllerConfig
var Physics PhysicsConfig
var Orbs OrbConfig
var Sim SimConfig
var Debug DebugConfig

// Sandbox palette
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ground     = color.RGBA{R: 90, G: 70, B: 50, A: 255}
	Water      = color.RGBA{R: 40, G: 110, B: 220, A: 120}
	Character  = color.RGBA{R: 230, G: 200, B: 60, A: 255}
	CrouchBox  = color.RGBA{R: 230, G: 140, B: 60, A: 255}
	CheckColor = color.RGBA{R: 0, G: 255, B: 60, A: 160}
	OrbColors  = map[string]color.RGBA{
		"earth": {R: 120, G: 200, B: 80, A: 255},
		"water": {R: 80, G: 180, B: 255, A: 255},
		"fire":  {R: 255, G: 90, B: 40, A: 255},
		"air":   {R: 220, G: 220, B: 255, A: 255},
	}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every global config instance to its defaults.
func Reset() {
	Controller = ControllerConfig{
		// Movement
		RunSpeed:          160.0, // 10 units/s at 16px per unit
		CrouchSpeed:       0.36,
		MovementSmoothing: 0.05,
		AirControl:        false,

		// Jumping
		// 400 units at 16px would be 6400, but the force acts for a single
		// tick and only lifts the character about 10px at 60Hz. 16000 gives
		// a jump of roughly four and a half tiles.
		JumpForce: 16000.0,
		JumpLerp:  0.5,

		// Swimming
		SwimUpForce:   1600.0,
		SwimDownForce: 800.0,

		// Ground and ceiling checks
		WhatIsGround:       []string{"ground"},
		GroundedRadius:     3.2,
		CeilingRadius:      3.2,
		GroundCheckOffsetY: 0,
		CeilingCheckOffset: 0,

		// Dimensions
		CollisionWidth:       12,
		CollisionHeight:      14,
		CrouchColliderHeight: 12,
		Mass:                 1.0,
	}

	Physics = PhysicsConfig{
		Gravity:           157.0, // 9.81 units/s^2
		MaxFallSpeed:      600.0,
		DefaultGravity:    3.0,
		SwimmingGravity:   0.5,
		DefaultLinearDrag: 0.0,
	}

	Orbs = OrbConfig{
		FirstUnlock:  1,
		SecondUnlock: 2,
		ThirdUnlock:  3,
		PickupSize:   8,
	}

	Sim = SimConfig{
		TickRate:  60,
		CellSize:  16,
		SaveAppID: "symbiotic",
	}

	Debug = DebugConfig{
		DrawChecks: false,
		LogEvents:  true,
	}
}

// FixedDelta returns the duration of one simulation tick in seconds.
func FixedDelta() float64 {
	if Sim.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(Sim.TickRate)
}
