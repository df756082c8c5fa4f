package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid-engine/internal/physics"
)

var (
	dynamicColor  = rl.SkyBlue
	staticColor   = rl.Gray
	velocityColor = rl.Orange
	polygonColor  = rl.Gold
)

// Run opens a window and runs the main loop. Each frame it calls update (e.g. stepping the world),
// then clears the screen and calls draw. Closing the window or pressing ESC ends the loop.
func Run(title string, width, height, fps int32, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(fps)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// View maps world units to screen pixels.
type View struct {
	Origin rl.Vector2 // screen position of the world origin
	Scale  float32    // pixels per world unit
}

// ToScreen converts a world position to screen pixels.
func (v View) ToScreen(p rl.Vector2) rl.Vector2 {
	return rl.Vector2Add(v.Origin, rl.Vector2Scale(p, v.Scale))
}

// DrawBody draws b in screen space: circles filled with a velocity line, polygons as an edge loop.
// Static bodies are grey. Shapeless bodies are drawn as a dot.
func DrawBody(b *physics.Body, v View) {
	center := v.ToScreen(b.Position)
	color := dynamicColor
	if b.IsStatic {
		color = staticColor
	}

	switch shape := b.Shape.(type) {
	case *physics.Circle:
		rl.DrawCircleV(center, shape.Radius*v.Scale, color)
		if !b.IsStatic {
			tip := v.ToScreen(rl.Vector2Add(b.Position, rl.Vector2Scale(b.Velocity, 0.1)))
			rl.DrawLineV(center, tip, velocityColor)
		}
	case *physics.Polygon:
		if !b.IsStatic {
			color = polygonColor
		}
		n := shape.Len()
		for i := 0; i < n; i++ {
			a := v.ToScreen(rl.Vector2Add(b.Position, shape.Vertex(i)))
			c := v.ToScreen(rl.Vector2Add(b.Position, shape.Vertex((i+1)%n)))
			rl.DrawLineV(a, c, color)
		}
	default:
		rl.DrawCircleV(center, 2, color)
	}
}
