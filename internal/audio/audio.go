// Package audio plays a short click when bodies collide.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"rigid-engine/internal/logger"
)

const (
	sampleRate = beep.SampleRate(44100)
	clickFreq  = 880
	clickLen   = 30 * time.Millisecond
	// minGap limits clicks so a pile of resting bodies does not drone.
	minGap = 60 * time.Millisecond
)

// Clicker plays contact clicks. A disabled Clicker does nothing; audio failures never stop the simulation.
type Clicker struct {
	mu      sync.Mutex
	enabled bool
	last    time.Time
}

// New initializes the speaker when enabled is true. If the device cannot be opened the error is
// logged and the Clicker stays silent.
func New(enabled bool, log *logger.Logger) *Clicker {
	c := &Clicker{}
	if !enabled {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Logf("audio disabled: %v", err)
		return c
	}
	c.enabled = true
	return c
}

// Enabled reports whether clicks reach the speaker.
func (c *Clicker) Enabled() bool {
	return c.enabled
}

// allow reports whether a click at now is far enough from the previous one, and records it.
func (c *Clicker) allow(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.last.IsZero() && now.Sub(c.last) < minGap {
		return false
	}
	c.last = now
	return true
}

// Click plays one contact click, rate limited.
func (c *Clicker) Click() {
	if !c.enabled || !c.allow(time.Now()) {
		return
	}
	sine, err := generators.SineTone(sampleRate, clickFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickLen), sine))
}

// Close releases the speaker.
func (c *Clicker) Close() {
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}
