package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// NoID is the ID of a body that has not been added to a World.
const NoID = -1

var (
	ErrInvalidMass     = errors.New("mass must be positive")
	ErrInvalidMaxSpeed = errors.New("max speed must be positive")
)

// Context is the simulation handle passed through to hooks. The physics code never inspects it.
type Context any

// Options configures a new body. Zero Mass and zero MaxSpeed select the defaults
// (mass 1, unbounded speed). Mass may be +Inf for an immovable but non-static body.
type Options struct {
	IsStatic bool
	Mass     float32
	MaxSpeed float32
}

// DefaultOptions returns a dynamic body of mass 1 with no speed cap.
func DefaultOptions() Options {
	return Options{Mass: 1, MaxSpeed: math32.Inf(1)}
}

// Hooks are optional callbacks supplied by game logic. Any nil hook is a no-op;
// a nil Collision hook allows the physical response.
type Hooks struct {
	// Step runs after each integration step of a non-static body.
	Step func(b *Body, ctx Context)
	// Frame runs once per rendered frame for every live body.
	Frame func(b *Body, ctx Context)
	// Collision decides whether the physical response to a contact with other happens.
	Collision func(b, other *Body, ctx Context) bool
	// Death runs once when the body is killed.
	Death func(b *Body, ctx Context)
}

// Body is a 2D point mass with an optional shape. Acceleration accumulates between steps and is
// cleared by the integrator. InverseMass 0 means infinite mass.
type Body struct {
	ID    int
	Group string

	Position     rl.Vector2
	Velocity     rl.Vector2
	Acceleration rl.Vector2

	InverseMass float32
	IsStatic    bool
	MaxSpeed    float32

	Shape Shape
	Hooks Hooks

	removed bool
}

// NewBody returns a body with the given shape (nil for a shapeless body) at the origin, at rest.
func NewBody(shape Shape, opts Options) (*Body, error) {
	def := DefaultOptions()
	if opts.Mass == 0 {
		opts.Mass = def.Mass
	}
	if opts.MaxSpeed == 0 {
		opts.MaxSpeed = def.MaxSpeed
	}
	if !(opts.Mass > 0) {
		return nil, errors.Wrapf(ErrInvalidMass, "got %v", opts.Mass)
	}
	if !(opts.MaxSpeed > 0) {
		return nil, errors.Wrapf(ErrInvalidMaxSpeed, "got %v", opts.MaxSpeed)
	}
	return &Body{
		ID:          NoID,
		InverseMass: 1 / opts.Mass,
		IsStatic:    opts.IsStatic,
		MaxSpeed:    opts.MaxSpeed,
		Shape:       shape,
	}, nil
}

// NewCircleBody returns a body with a circle shape of radius r.
func NewCircleBody(r float32, opts Options) (*Body, error) {
	c, err := NewCircle(r)
	if err != nil {
		return nil, err
	}
	return NewBody(c, opts)
}

// NewPolygonBody returns a body with a polygon shape.
func NewPolygonBody(vertices []rl.Vector2, opts Options) (*Body, error) {
	p, err := NewPolygon(vertices)
	if err != nil {
		return nil, err
	}
	return NewBody(p, opts)
}

// NewRectBody returns a body with a centered w×h rectangle polygon.
func NewRectBody(w, h float32, opts Options) (*Body, error) {
	p, err := NewRectangle(w, h)
	if err != nil {
		return nil, err
	}
	return NewBody(p, opts)
}

// Kind returns the shape kind, KindNone for a shapeless body.
func (b *Body) Kind() ShapeKind {
	if b.Shape == nil {
		return KindNone
	}
	if k := b.Shape.Kind(); k < kindCount {
		return k
	}
	return KindNone
}

// Radius returns the bounding radius of the shape, 0 for a shapeless body.
func (b *Body) Radius() float32 {
	if b.Shape == nil {
		return 0
	}
	return b.Shape.BoundingRadius()
}

// Mass returns 1/InverseMass, +Inf for infinite mass.
func (b *Body) Mass() float32 {
	if b.InverseMass == 0 {
		return math32.Inf(1)
	}
	return 1 / b.InverseMass
}

// Removed reports whether the body has been killed.
func (b *Body) Removed() bool {
	return b.removed
}

// Accelerate adds v to the acceleration applied on the next step.
func (b *Body) Accelerate(v rl.Vector2) {
	b.Acceleration = rl.Vector2Add(b.Acceleration, v)
}

// Advance integrates the body by dt seconds. See Integrate.
func (b *Body) Advance(ctx Context, dt float32) {
	Integrate(b, ctx, dt)
}

// Kill marks the body removed and runs the Death hook. Killing a removed body does nothing;
// there is no way to bring a removed body back.
func (b *Body) Kill(ctx Context) {
	if b.removed {
		return
	}
	b.removed = true
	if b.Hooks.Death != nil {
		b.Hooks.Death(b, ctx)
	}
}

// Frame runs the Frame hook for a live body.
func (b *Body) Frame(ctx Context) {
	if b.removed || b.Hooks.Frame == nil {
		return
	}
	b.Hooks.Frame(b, ctx)
}

// AllowsCollision runs the Collision hook. Without a hook every contact gets a response.
func (b *Body) AllowsCollision(other *Body, ctx Context) bool {
	if b.Hooks.Collision == nil {
		return true
	}
	return b.Hooks.Collision(b, other, ctx)
}
