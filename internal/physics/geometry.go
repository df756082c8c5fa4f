package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// CircleOverlap returns true if the two circles intersect. Compares squared distance against the
// squared radius sum, so no square root is taken. Circles that only touch do not overlap.
func CircleOverlap(posA rl.Vector2, rA float32, posB rl.Vector2, rB float32) bool {
	sum := rA + rB
	return rl.Vector2LengthSqr(rl.Vector2Subtract(posA, posB)) < sum*sum
}

// AABBOverlap returns true if two axis-aligned boxes intersect. Each box is centered on pos with
// full width w and height h. Boxes sharing only an edge do not overlap.
func AABBOverlap(posA rl.Vector2, wA, hA float32, posB rl.Vector2, wB, hB float32) bool {
	return posA.X-wA/2 < posB.X+wB/2 &&
		posA.X+wA/2 > posB.X-wB/2 &&
		posA.Y-hA/2 < posB.Y+hB/2 &&
		posA.Y+hA/2 > posB.Y-hB/2
}
