package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid-engine/internal/physics"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the runtime overlays (FPS, heap, world counters). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastStats    string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// StatsText formats world counters for the overlay.
func StatsText(st physics.Stats, live int) string {
	return fmt.Sprintf("Bodies: %d  Steps: %d  Contacts: %d  Resolved: %d", live, st.Steps, st.Contacts, st.Resolved)
}

// Draw renders the enabled overlays top-right in green. Call last in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(w *physics.World) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	line := func(text string) {
		if text == "" {
			return
		}
		width := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-width-padding, y, fontSize, rl.Green)
		y += lineHeight
	}

	if d.ShowFPS {
		if update || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		line(d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if update || d.lastMemText == "" {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		line(d.lastMemText)
	}
	if d.ShowStats && w != nil {
		if update || d.lastStats == "" {
			d.lastStats = StatsText(w.Stats(), w.Len())
		}
		line(d.lastStats)
	}
}
