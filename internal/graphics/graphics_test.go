package graphics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestViewToScreen(t *testing.T) {
	v := View{Origin: rl.NewVector2(100, 50), Scale: 10}
	got := v.ToScreen(rl.NewVector2(2, -1))
	if got.X != 120 || got.Y != 40 {
		t.Errorf("expected (120, 40), got (%v, %v)", got.X, got.Y)
	}
}
