package gamemath

import "math"

// minSmoothTime keeps SmoothDamp's spring constant finite.
const minSmoothTime = 0.0001

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls and is updated in place.
// smoothTime is roughly the time to reach the target; maxSpeed caps the rate of
// change (math.Inf(1) for no cap).
func SmoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2.0 / smoothTime

	x := omega * dt
	exp := 1.0 / (1.0 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTo := target

	maxChange := maxSpeed * smoothTime
	change = ClampSpeed(change, maxChange)
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// Never overshoot the original target.
	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		*velocity = (output - originalTo) / dt
	}
	return output
}

// ApplyDrag scales a velocity by the linear drag factor for one step.
func ApplyDrag(v, drag, dt float64) float64 {
	if drag <= 0 {
		return v
	}
	return v / (1 + drag*dt)
}

// LerpJumpVelocity blends between setting and adding the jump velocity.
// lerp 0 replaces vy with jumpVelocity, lerp 1 adds jumpVelocity to vy.
func LerpJumpVelocity(vy, jumpVelocity, lerp float64) float64 {
	set := jumpVelocity
	add := vy + jumpVelocity
	return set*(1-lerp) + add*lerp
}
