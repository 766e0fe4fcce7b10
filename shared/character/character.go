// Package character implements the platformer movement rules as pure
// per-tick functions. It has no dependencies on ebitengine, donburi, or
// resolv: callers gather the collision facts and apply the results.
package character

// Config holds the movement tuning used by Move.
type Config struct {
	RunSpeed          float64
	CrouchSpeed       float64
	MovementSmoothing float64
	AirControl        bool
	JumpForce         float64
	JumpLerp          float64
	SwimUpForce       float64
	SwimDownForce     float64
}

// State is the controller state carried between ticks.
type State struct {
	Grounded    bool
	FacingRight bool
	Swimming    bool
	Crouching   bool
	JumpsLeft   int
	ExtraJumps  int

	// SmoothVelocityX is the SmoothDamp spring velocity for horizontal movement.
	SmoothVelocityX float64
}

// NewState returns the state of a freshly spawned character: airborne,
// facing right, not swimming.
func NewState() State {
	return State{FacingRight: true}
}

// Input is one frame of caller-provided movement intent.
type Input struct {
	Move   float64 // Horizontal axis, typically in [-1, 1]
	Crouch bool
	Jump   bool
	SwimUp bool // Extra "up" key honoured only while swimming
}

// Env carries the physics facts Move needs from the host.
type Env struct {
	VelocityX      float64
	VelocityY      float64
	Mass           float64
	Dt             float64
	CeilingBlocked bool
}

// ColliderChange tells the host what to do with the crouch-disable collider.
type ColliderChange int

const (
	ColliderUnchanged ColliderChange = iota
	ColliderEnable
	ColliderDisable
)

// Events are the notifications produced by one update.
type Events struct {
	Landed        bool
	CrouchChanged bool
	Crouching     bool // New crouch state when CrouchChanged is set
}

// Output is the result of Move for the host to apply.
type Output struct {
	VelocityX float64
	VelocityY float64
	ForceX    float64
	ForceY    float64
	Collider  ColliderChange
	Flipped   bool
	Jumped    bool
	Events    Events
}
