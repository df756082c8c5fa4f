package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Integrate advances b by dt seconds with semi-implicit Euler: v += a*dt, then p += v*dt using the
// new velocity. Acceleration is cleared and speed is capped to MaxSpeed before moving.
// Static and removed bodies are skipped entirely, Step hook included. dt <= 0 is ignored.
func Integrate(b *Body, ctx Context, dt float32) {
	if b.IsStatic || b.removed || !(dt > 0) {
		return
	}
	b.Velocity = rl.Vector2Add(b.Velocity, rl.Vector2Scale(b.Acceleration, dt))
	b.Acceleration = rl.Vector2Zero()
	capSpeed(&b.Velocity, b.MaxSpeed)
	b.Position = rl.Vector2Add(b.Position, rl.Vector2Scale(b.Velocity, dt))

	if b.Hooks.Step != nil {
		b.Hooks.Step(b, ctx)
	}
}

// capSpeed rescales v to maxSpeed when it is faster, keeping its direction.
// Returns true if v was clamped.
func capSpeed(v *rl.Vector2, maxSpeed float32) bool {
	magSq := rl.Vector2LengthSqr(*v)
	if magSq == 0 || magSq <= maxSpeed*maxSpeed {
		return false
	}
	*v = rl.Vector2Scale(*v, maxSpeed/math32.Sqrt(magSq))
	return true
}
