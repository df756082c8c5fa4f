// Package tui draws a physics world into a terminal with tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"

	"rigid-engine/internal/logger"
	"rigid-engine/internal/physics"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2

var (
	dynamicStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	staticStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	polygonStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// Glyph is one cell to draw.
type Glyph struct {
	X, Y  int
	Rune  rune
	Style tcell.Style
}

// Rasterize returns the cells covered by each body's bounding circle inside a cols×rows grid,
// with scale world units per cell row. Later bodies overwrite earlier ones.
func Rasterize(states []physics.BodyState, cols, rows int, scale float32) []Glyph {
	var out []Glyph
	for _, s := range states {
		r, style := '●', dynamicStyle
		switch {
		case s.IsStatic:
			r, style = '#', staticStyle
		case s.Kind == physics.KindPolygon:
			r, style = '▪', polygonStyle
		}
		radius := s.Radius
		if radius <= 0 {
			radius = scale / 2
		}

		minX := int(math32.Floor((s.Position.X - radius) * cellAspect / scale))
		maxX := int(math32.Ceil((s.Position.X + radius) * cellAspect / scale))
		minY := int(math32.Floor((s.Position.Y - radius) / scale))
		maxY := int(math32.Ceil((s.Position.Y + radius) / scale))
		for y := max(minY, 0); y <= min(maxY, rows-1); y++ {
			for x := max(minX, 0); x <= min(maxX, cols-1); x++ {
				// cell center in world units
				wx := (float32(x) + 0.5) * scale / cellAspect
				wy := (float32(y) + 0.5) * scale
				dx, dy := wx-s.Position.X, wy-s.Position.Y
				if dx*dx+dy*dy <= radius*radius {
					out = append(out, Glyph{X: x, Y: y, Rune: r, Style: style})
				}
			}
		}
	}
	return out
}

// Viewer steps a world at a fixed rate and draws it into a tcell screen.
// Space pauses, q, Esc or Ctrl-C quits.
type Viewer struct {
	screen tcell.Screen
	world  *physics.World
	dt     float32
	scale  float32
	paused bool
	log    *logger.Logger
}

// New returns a Viewer over an initialized screen. dt is the simulated time per tick and scale
// the world units per terminal row.
func New(screen tcell.Screen, world *physics.World, dt, scale float32, log *logger.Logger) *Viewer {
	return &Viewer{screen: screen, world: world, dt: dt, scale: scale, log: log}
}

// Draw renders the current world state and a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	for _, g := range Rasterize(v.world.Snapshot(), cols, rows-1, v.scale) {
		v.screen.SetContent(g.X, g.Y, g.Rune, nil, g.Style)
	}

	st := v.world.Stats()
	status := []rune(fmt.Sprintf(" step %d  contacts %d  [space] pause  [q] quit", st.Steps, st.Contacts))
	if v.paused {
		status = append(status, []rune("  PAUSED")...)
	}
	for i, r := range status {
		if i >= cols {
			break
		}
		v.screen.SetContent(i, rows-1, r, nil, statusStyle)
	}
	v.screen.Show()
}

// HandleEvent applies one input event. Returns false when the viewer should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Tick advances the world by one step unless paused.
func (v *Viewer) Tick() {
	if !v.paused {
		v.world.Step(v.dt)
	}
}

// Run loops until the user quits. The screen is finalized on return.
func (v *Viewer) Run() {
	defer v.screen.Fini()

	interval := time.Duration(float64(v.dt) * float64(time.Second))
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	v.log.Logf("tui started with %d bodies", v.world.Len())
	for {
		select {
		case ev := <-eventChan:
			if !v.HandleEvent(ev) {
				v.log.Logf("tui stopped after %d steps", v.world.Stats().Steps)
				return
			}
		case <-ticker.C:
			v.Tick()
			v.Draw()
		}
	}
}
