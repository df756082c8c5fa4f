package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rigid-engine/internal/logger"
)

func newTestWorld() *World {
	w := NewWorld()
	w.SetGravity(rl.Vector2{})
	return w
}

func TestWorldAssignsIDs(t *testing.T) {
	w := newTestWorld()
	a, _ := NewBody(nil, Options{})
	b, _ := NewBody(nil, Options{})
	c, _ := NewBody(nil, Options{})
	c.ID = 10

	if id := w.Add(a); id != 0 {
		t.Errorf("expected first ID 0, got %d", id)
	}
	if id := w.Add(c); id != 10 {
		t.Errorf("expected preset ID kept, got %d", id)
	}
	if id := w.Add(b); id != 11 {
		t.Errorf("expected ID after preset to be 11, got %d", id)
	}
	if w.Add(nil) != NoID {
		t.Error("expected nil body to be ignored")
	}
	if w.Len() != 3 {
		t.Errorf("expected 3 bodies, got %d", w.Len())
	}
}

func TestWorldStepAppliesGravityEveryStep(t *testing.T) {
	w := NewWorld()
	w.SetGravity(rl.NewVector2(0, 10))
	b, _ := NewBody(nil, Options{})
	w.Add(b)

	w.Step(0.5)
	assertVec(t, "velocity after one step", b.Velocity, rl.NewVector2(0, 5))
	assertVec(t, "position after one step", b.Position, rl.NewVector2(0, 2.5))

	w.Step(0.5)
	assertVec(t, "velocity after two steps", b.Velocity, rl.NewVector2(0, 10))
	assertVec(t, "position after two steps", b.Position, rl.NewVector2(0, 7.5))

	if w.Stats().Steps != 2 {
		t.Errorf("expected 2 steps, got %d", w.Stats().Steps)
	}
}

func TestWorldStepIgnoresStaticBodies(t *testing.T) {
	w := NewWorld()
	b, _ := NewBody(nil, Options{IsStatic: true})
	b.Position = rl.NewVector2(1, 1)
	w.Add(b)
	w.Step(1)
	assertVec(t, "static position", b.Position, rl.NewVector2(1, 1))
	assertVec(t, "static velocity", b.Velocity, rl.Vector2{})
}

func TestWorldResolvesCircleContact(t *testing.T) {
	w := newTestWorld()
	a := mustCircle(t, 1, Options{}, rl.NewVector2(0, 0), rl.NewVector2(1, 0))
	b := mustCircle(t, 1, Options{}, rl.NewVector2(2.5, 0), rl.NewVector2(-1, 0))
	w.Add(a)
	w.Add(b)

	var contacts int
	w.OnContact = func(_, _ *Body) { contacts++ }

	// After integration the centers are 0.5 apart and still approaching.
	w.Step(1)

	assertVec(t, "a velocity", a.Velocity, rl.NewVector2(-1, 0))
	assertVec(t, "b velocity", b.Velocity, rl.NewVector2(1, 0))
	if contacts != 1 {
		t.Errorf("expected 1 contact, got %d", contacts)
	}
	st := w.Stats()
	if st.Contacts != 1 || st.Resolved != 1 {
		t.Errorf("expected 1 contact resolved, got %+v", st)
	}
}

func TestWorldPolygonCircleDetectedNotResolved(t *testing.T) {
	w := newTestWorld()
	c := mustCircle(t, 1, Options{}, rl.NewVector2(0, 0), rl.NewVector2(1, 0))
	rect, _ := NewRectBody(2, 2, Options{})
	rect.Position = rl.NewVector2(3, 0)
	w.Add(c)
	w.Add(rect)

	w.Step(1)

	st := w.Stats()
	if st.Contacts != 1 {
		t.Errorf("expected polygon-circle contact to be detected, got %d", st.Contacts)
	}
	if st.Resolved != 0 {
		t.Errorf("expected no response for polygon-circle, got %d", st.Resolved)
	}
	assertVec(t, "circle velocity", c.Velocity, rl.NewVector2(1, 0))
}

func TestWorldCollisionHookSuppressesResponse(t *testing.T) {
	w := newTestWorld()
	trigger := mustCircle(t, 1, Options{IsStatic: true}, rl.NewVector2(1, 0), rl.Vector2{})
	ball := mustCircle(t, 1, Options{}, rl.NewVector2(0, 0), rl.NewVector2(1, 0))
	var seen []*Body
	trigger.Hooks.Collision = func(_, other *Body, ctx Context) bool {
		if ctx != w {
			t.Error("expected world as hook context")
		}
		seen = append(seen, other)
		return false
	}
	w.Add(trigger)
	w.Add(ball)

	w.Step(0.1)

	if len(seen) != 1 || seen[0] != ball {
		t.Errorf("expected trigger to see the ball once, got %v", seen)
	}
	assertVec(t, "ball velocity", ball.Velocity, rl.NewVector2(1, 0))
}

func TestWorldKillAndReap(t *testing.T) {
	w := newTestWorld()
	log := logger.New("")
	w.SetLogger(log)

	a := mustCircle(t, 1, Options{}, rl.Vector2{}, rl.Vector2{})
	a.Group = "enemy"
	b := mustCircle(t, 1, Options{}, rl.NewVector2(10, 0), rl.Vector2{})
	b.Group = "enemy"
	deaths := 0
	a.Hooks.Death = func(_ *Body, ctx Context) {
		if ctx != w {
			t.Error("expected world as death context")
		}
		deaths++
	}
	idA := w.Add(a)
	w.Add(b)

	if !w.Kill(idA) {
		t.Fatal("expected kill to succeed")
	}
	if w.Kill(idA) {
		t.Error("expected second kill to report no live body")
	}
	if deaths != 1 {
		t.Errorf("expected death hook once, got %d", deaths)
	}
	if _, ok := w.Body(idA); ok {
		t.Error("expected killed body not to be found")
	}
	if len(w.Group("enemy")) != 1 {
		t.Errorf("expected 1 live enemy, got %d", len(w.Group("enemy")))
	}
	if len(w.Bodies()) != 2 {
		t.Errorf("expected killed body kept until the next step, got %d bodies", len(w.Bodies()))
	}

	w.Step(0.1)

	if len(w.Bodies()) != 1 {
		t.Errorf("expected killed body reaped, got %d bodies", len(w.Bodies()))
	}
	if len(log.Lines()) != 2 {
		t.Errorf("expected kill and reap to be logged, got %v", log.Lines())
	}
}

func TestWorldKillInsideStepHook(t *testing.T) {
	w := newTestWorld()
	a := mustCircle(t, 1, Options{}, rl.Vector2{}, rl.NewVector2(1, 0))
	b := mustCircle(t, 1, Options{}, rl.NewVector2(1, 0), rl.NewVector2(-1, 0))
	a.Hooks.Step = func(self *Body, ctx Context) { self.Kill(ctx) }
	w.Add(a)
	w.Add(b)

	w.Step(0.1)

	if w.Stats().Contacts != 0 {
		t.Errorf("expected no contacts with a killed body, got %d", w.Stats().Contacts)
	}
	if w.Len() != 1 {
		t.Errorf("expected 1 live body, got %d", w.Len())
	}
}

func TestWorldDrawRunsFrameHooks(t *testing.T) {
	w := newTestWorld()
	frames := 0
	for i := 0; i < 3; i++ {
		b, _ := NewBody(nil, Options{})
		b.Hooks.Frame = func(*Body, Context) { frames++ }
		w.Add(b)
	}
	w.Kill(1)
	w.Draw()
	if frames != 2 {
		t.Errorf("expected 2 frame hooks, got %d", frames)
	}
}

func TestWorldSnapshot(t *testing.T) {
	w := newTestWorld()
	a := mustCircle(t, 2, Options{Mass: 4}, rl.NewVector2(1, 2), rl.NewVector2(3, 4))
	a.Group = "ball"
	w.Add(a)
	dead := mustCircle(t, 1, Options{}, rl.NewVector2(50, 50), rl.Vector2{})
	w.Add(dead)
	w.Kill(dead.ID)

	states := w.Snapshot()
	if len(states) != 1 {
		t.Fatalf("expected 1 state, got %d", len(states))
	}
	s := states[0]
	if s.ID != a.ID || s.Group != "ball" || s.IsStatic {
		t.Errorf("unexpected state: %+v", s)
	}
	if s.Kind != KindCircle || !approx(s.Radius, 2) || !approx(s.Mass, 4) {
		t.Errorf("expected derived fields copied, got %+v", s)
	}
	assertVec(t, "position", s.Position, a.Position)

	a.Position = rl.NewVector2(9, 9)
	assertVec(t, "detached position", s.Position, rl.NewVector2(1, 2))
}
