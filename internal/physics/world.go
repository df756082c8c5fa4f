package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"

	"rigid-engine/internal/logger"
)

// Stats counts work done by a World since it was created.
type Stats struct {
	Steps    uint64
	Contacts uint64 // overlapping pairs found
	Resolved uint64 // contacts that received an impulse
}

// BodyState is a detached copy of the observable state of a body.
type BodyState struct {
	ID       int
	Group    string
	Kind     ShapeKind
	Position rl.Vector2
	Velocity rl.Vector2
	Radius   float32
	Mass     float32
	IsStatic bool
}

// World owns a set of bodies and runs the simulation loop around them: gravity, integration,
// pairwise contacts and removal of killed bodies. It is the Context handed to body hooks.
// A World is not safe for concurrent use.
type World struct {
	Gravity rl.Vector2
	// OnContact, when set, observes every overlapping pair before collision hooks run.
	OnContact func(a, b *Body)

	bodies []*Body
	nextID int
	stats  Stats
	log    *logger.Logger
}

// NewWorld returns an empty world with gravity (0, 9.8). Y grows downwards, matching screen space.
func NewWorld() *World {
	return &World{Gravity: rl.NewVector2(0, 9.8)}
}

// SetGravity sets the acceleration applied to every dynamic body each step.
func (w *World) SetGravity(g rl.Vector2) {
	w.Gravity = g
}

// SetLogger sets where kills and reaps are logged. nil disables logging.
func (w *World) SetLogger(l *logger.Logger) {
	w.log = l
}

// Add appends a body and returns its ID. Bodies without an ID get the next free one.
// Order is preserved so pair processing is deterministic.
func (w *World) Add(b *Body) int {
	if b == nil {
		return NoID
	}
	if b.ID == NoID {
		b.ID = w.nextID
		w.nextID++
	} else if b.ID >= w.nextID {
		w.nextID = b.ID + 1
	}
	w.bodies = append(w.bodies, b)
	return b.ID
}

// Body returns the live body with the given ID.
func (w *World) Body(id int) (*Body, bool) {
	for _, b := range w.bodies {
		if b.ID == id && !b.removed {
			return b, true
		}
	}
	return nil, false
}

// Bodies returns the bodies currently owned by the world, including ones killed during
// the current step that have not been reaped yet.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Group returns the live bodies tagged with group.
func (w *World) Group(group string) []*Body {
	var out []*Body
	for _, b := range w.bodies {
		if b.Group == group && !b.removed {
			out = append(out, b)
		}
	}
	return out
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	n := 0
	for _, b := range w.bodies {
		if !b.removed {
			n++
		}
	}
	return n
}

// Stats returns the counters accumulated so far.
func (w *World) Stats() Stats {
	return w.stats
}

// Kill kills the body with the given ID. Returns false if no live body has that ID.
func (w *World) Kill(id int) bool {
	b, ok := w.Body(id)
	if !ok {
		return false
	}
	b.Kill(w)
	w.log.Logf("killed body %d (%s)", b.ID, b.Kind())
	return true
}

// Step advances the simulation by dt seconds: apply gravity and integrate every dynamic body,
// then detect and resolve contacts between every pair, then drop killed bodies.
func (w *World) Step(dt float32) {
	if !(dt > 0) {
		return
	}

	for _, b := range w.bodies {
		if b.IsStatic || b.removed {
			continue
		}
		b.Accelerate(w.Gravity)
		b.Advance(w, dt)
	}

	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			w.collide(a, w.bodies[j])
		}
	}

	w.reap()
	w.stats.Steps++
}

// collide runs the contact pipeline for one pair: broad phase, narrow phase, hooks, response.
func (w *World) collide(a, b *Body) {
	if a.removed || b.removed || (a.IsStatic && b.IsStatic) {
		return
	}
	if !broadPhase(a, b) {
		return
	}
	if !a.IsColliding(b) && !b.IsColliding(a) {
		return
	}
	w.stats.Contacts++
	if w.OnContact != nil {
		w.OnContact(a, b)
	}

	// Both hooks run so each body sees the contact.
	allowA := a.AllowsCollision(b, w)
	allowB := b.AllowsCollision(a, w)
	if !allowA || !allowB || a.removed || b.removed {
		return
	}

	switch {
	case CanResolve(a.Kind(), b.Kind()):
		a.Repulse(b)
	case CanResolve(b.Kind(), a.Kind()):
		b.Repulse(a)
	default:
		return
	}
	w.stats.Resolved++
}

// broadPhase tests the boxes around both bounding circles.
func broadPhase(a, b *Body) bool {
	da, db := 2*a.Radius(), 2*b.Radius()
	return AABBOverlap(a.Position, da, da, b.Position, db, db)
}

func (w *World) reap() {
	live := w.bodies[:0]
	for _, b := range w.bodies {
		if b.removed {
			w.log.Logf("reaped body %d", b.ID)
			continue
		}
		live = append(live, b)
	}
	for i := len(live); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = live
}

// Draw runs the Frame hook of every live body.
func (w *World) Draw() {
	for _, b := range w.bodies {
		b.Frame(w)
	}
}

// Snapshot returns detached copies of every live body's state, in insertion order.
func (w *World) Snapshot() []BodyState {
	live := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if !b.removed {
			live = append(live, b)
		}
	}
	states := make([]BodyState, 0, len(live))
	if err := copier.Copy(&states, &live); err != nil {
		w.log.Logf("snapshot failed: %v", err)
		return nil
	}
	return states
}
