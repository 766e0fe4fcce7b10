package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is a partial override of the controller and physics config loaded
// from a YAML file. Only fields present in the file are applied.
type Tuning struct {
	Controller ControllerTuning `yaml:"controller"`
	Physics    PhysicsTuning    `yaml:"physics"`
	Sim        SimTuning        `yaml:"sim"`
}

type ControllerTuning struct {
	RunSpeed          *float64 `yaml:"run_speed"`
	CrouchSpeed       *float64 `yaml:"crouch_speed"`
	MovementSmoothing *float64 `yaml:"movement_smoothing"`
	AirControl        *bool    `yaml:"air_control"`
	JumpForce         *float64 `yaml:"jump_force"`
	JumpLerp          *float64 `yaml:"jump_lerp"`
	SwimUpForce       *float64 `yaml:"swim_up_force"`
	SwimDownForce     *float64 `yaml:"swim_down_force"`
	WhatIsGround      []string `yaml:"what_is_ground"`
	GroundedRadius    *float64 `yaml:"grounded_radius"`
	CeilingRadius     *float64 `yaml:"ceiling_radius"`
	Mass              *float64 `yaml:"mass"`
}

type PhysicsTuning struct {
	Gravity           *float64 `yaml:"gravity"`
	MaxFallSpeed      *float64 `yaml:"max_fall_speed"`
	DefaultGravity    *float64 `yaml:"default_gravity"`
	SwimmingGravity   *float64 `yaml:"swimming_gravity"`
	DefaultLinearDrag *float64 `yaml:"default_linear_drag"`
}

type SimTuning struct {
	TickRate *int `yaml:"tick_rate"`
}

// LoadTuning reads and parses a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ParseTuning parses tuning YAML and validates the values it sets.
func ParseTuning(data []byte) (*Tuning, error) {
	t := &Tuning{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tuning) validate() error {
	c := t.Controller
	if c.CrouchSpeed != nil && (*c.CrouchSpeed < 0 || *c.CrouchSpeed > 1) {
		return fmt.Errorf("crouch_speed %v out of range [0,1]", *c.CrouchSpeed)
	}
	if c.MovementSmoothing != nil && (*c.MovementSmoothing < 0 || *c.MovementSmoothing > 0.3) {
		return fmt.Errorf("movement_smoothing %v out of range [0,0.3]", *c.MovementSmoothing)
	}
	if c.JumpLerp != nil && (*c.JumpLerp < 0 || *c.JumpLerp > 1) {
		return fmt.Errorf("jump_lerp %v out of range [0,1]", *c.JumpLerp)
	}
	if c.Mass != nil && *c.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %v", *c.Mass)
	}
	if t.Sim.TickRate != nil && *t.Sim.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", *t.Sim.TickRate)
	}
	return nil
}

// Apply writes the overrides into the global config instances.
func (t *Tuning) Apply() {
	if t == nil {
		return
	}
	c := t.Controller
	setFloat(&Controller.RunSpeed, c.RunSpeed)
	setFloat(&Controller.CrouchSpeed, c.CrouchSpeed)
	setFloat(&Controller.MovementSmoothing, c.MovementSmoothing)
	if c.AirControl != nil {
		Controller.AirControl = *c.AirControl
	}
	setFloat(&Controller.JumpForce, c.JumpForce)
	setFloat(&Controller.JumpLerp, c.JumpLerp)
	setFloat(&Controller.SwimUpForce, c.SwimUpForce)
	setFloat(&Controller.SwimDownForce, c.SwimDownForce)
	if len(c.WhatIsGround) > 0 {
		Controller.WhatIsGround = append([]string(nil), c.WhatIsGround...)
	}
	setFloat(&Controller.GroundedRadius, c.GroundedRadius)
	setFloat(&Controller.CeilingRadius, c.CeilingRadius)
	setFloat(&Controller.Mass, c.Mass)

	p := t.Physics
	setFloat(&Physics.Gravity, p.Gravity)
	setFloat(&Physics.MaxFallSpeed, p.MaxFallSpeed)
	setFloat(&Physics.DefaultGravity, p.DefaultGravity)
	setFloat(&Physics.SwimmingGravity, p.SwimmingGravity)
	setFloat(&Physics.DefaultLinearDrag, p.DefaultLinearDrag)

	if t.Sim.TickRate != nil {
		Sim.TickRate = *t.Sim.TickRate
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
