package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const epsilon = 1e-5

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= epsilon
}

func assertVec(t *testing.T, name string, got, want rl.Vector2) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) {
		t.Errorf("%s: expected (%v, %v), got (%v, %v)", name, want.X, want.Y, got.X, got.Y)
	}
}

func mustCircle(t *testing.T, r float32, opts Options, pos, vel rl.Vector2) *Body {
	t.Helper()
	b, err := NewCircleBody(r, opts)
	if err != nil {
		t.Fatalf("NewCircleBody(%v): %v", r, err)
	}
	b.Position = pos
	b.Velocity = vel
	return b
}
