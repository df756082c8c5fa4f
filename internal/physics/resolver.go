package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Restitution is the coefficient used for every contact. 1 is perfectly elastic.
const Restitution float32 = 1

type detectFunc func(a, b *Body) bool
type resolveFunc func(a, b *Body)

// Pair coverage is partial on purpose:
//
//	circle  vs circle  detect + resolve
//	polygon vs circle  detect only, polygon treated as its bounding circle
//	anything else      no collision
//
// The table is keyed [self][other], so circle vs polygon reports no collision.
var detectors = [kindCount][kindCount]detectFunc{
	KindCircle:  {KindCircle: detectBoundingCircles},
	KindPolygon: {KindCircle: detectBoundingCircles},
}

var resolvers = [kindCount][kindCount]resolveFunc{
	KindCircle: {KindCircle: resolveCircles},
}

// CanDetect reports whether a body of kind self can detect a collision with kind other.
func CanDetect(self, other ShapeKind) bool {
	return self < kindCount && other < kindCount && detectors[self][other] != nil
}

// CanResolve reports whether a body of kind self can respond to a contact with kind other.
func CanResolve(self, other ShapeKind) bool {
	return self < kindCount && other < kindCount && resolvers[self][other] != nil
}

// IsColliding reports whether b overlaps other. Unsupported pairs, removed bodies and a body
// tested against itself never collide.
func (b *Body) IsColliding(other *Body) bool {
	if other == nil || other == b || b.removed || other.removed {
		return false
	}
	fn := detectors[b.Kind()][other.Kind()]
	return fn != nil && fn(b, other)
}

// Repulse applies the impulse response of a contact between b and other to both velocities.
// It does nothing for unsupported pairs. The caller is expected to have checked IsColliding.
func (b *Body) Repulse(other *Body) {
	if other == nil || other == b || b.removed || other.removed {
		return
	}
	if fn := resolvers[b.Kind()][other.Kind()]; fn != nil {
		fn(b, other)
	}
}

func detectBoundingCircles(a, b *Body) bool {
	return CircleOverlap(a.Position, a.Radius(), b.Position, b.Radius())
}

// effectiveInverseMass is zero for static bodies so they act as immovable anchors.
func effectiveInverseMass(b *Body) float32 {
	if b.IsStatic {
		return 0
	}
	return b.InverseMass
}

// resolveCircles exchanges momentum along the line of centers, from a toward b.
func resolveCircles(a, b *Body) {
	delta := rl.Vector2Subtract(b.Position, a.Position)
	distSq := rl.Vector2LengthSqr(delta)
	if distSq == 0 {
		return
	}
	n := rl.Vector2Scale(delta, 1/math32.Sqrt(distSq))

	vn := rl.Vector2DotProduct(rl.Vector2Subtract(b.Velocity, a.Velocity), n)
	if vn > 0 {
		return
	}

	invA, invB := effectiveInverseMass(a), effectiveInverseMass(b)
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	j := -(1 + Restitution) * vn / invSum
	impulse := rl.Vector2Scale(n, j)
	if !b.IsStatic {
		b.Velocity = rl.Vector2Add(b.Velocity, rl.Vector2Scale(impulse, invB))
	}
	if !a.IsStatic {
		a.Velocity = rl.Vector2Subtract(a.Velocity, rl.Vector2Scale(impulse, invA))
	}
}
