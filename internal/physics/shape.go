package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// ErrInvalidShape is returned when shape parameters cannot describe a real shape.
var ErrInvalidShape = errors.New("invalid shape")

// ShapeKind tags the closed set of shape variants. Collision dispatch is keyed by kind pairs.
type ShapeKind uint8

const (
	KindNone ShapeKind = iota
	KindCircle
	KindPolygon
	kindCount
)

func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	default:
		return "none"
	}
}

// Shape describes the geometry attached to a Body. Positions are local to the body's origin.
type Shape interface {
	Kind() ShapeKind
	// BoundingRadius is the radius of the smallest origin-centered circle containing the shape.
	BoundingRadius() float32
}

// Circle is a circle of radius Radius centered on the body position.
type Circle struct {
	Radius float32
}

// NewCircle returns a circle shape. The radius must be positive and finite.
func NewCircle(radius float32) (*Circle, error) {
	if !(radius > 0) || math32.IsInf(radius, 0) {
		return nil, errors.Wrapf(ErrInvalidShape, "circle radius %v", radius)
	}
	return &Circle{Radius: radius}, nil
}

func (c *Circle) Kind() ShapeKind         { return KindCircle }
func (c *Circle) BoundingRadius() float32 { return c.Radius }

// Polygon is an ordered vertex loop in local space. Insertion order is the winding order.
// The bounding radius is computed once at construction; the vertex set is not mutable afterwards.
type Polygon struct {
	vertices []rl.Vector2
	radius   float32
}

// NewPolygon copies vertices into a new polygon shape. At least one vertex is required.
func NewPolygon(vertices []rl.Vector2) (*Polygon, error) {
	if len(vertices) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "polygon has no vertices")
	}
	p := &Polygon{vertices: make([]rl.Vector2, len(vertices))}
	copy(p.vertices, vertices)

	var maxSq float32
	for i, v := range p.vertices {
		d := rl.Vector2LengthSqr(v)
		if math32.IsNaN(d) || math32.IsInf(d, 0) {
			return nil, errors.Wrapf(ErrInvalidShape, "polygon vertex %d is not finite", i)
		}
		if d > maxSq {
			maxSq = d
		}
	}
	p.radius = math32.Sqrt(maxSq)
	return p, nil
}

// NewRectangle returns the polygon for a w×h box centered on the origin. Corners are listed
// top-left, top-right, bottom-right, bottom-left in screen coordinates.
func NewRectangle(w, h float32) (*Polygon, error) {
	if !(w > 0) || !(h > 0) {
		return nil, errors.Wrapf(ErrInvalidShape, "rectangle %vx%v", w, h)
	}
	return NewPolygon([]rl.Vector2{
		rl.NewVector2(-w/2, -h/2),
		rl.NewVector2(w/2, -h/2),
		rl.NewVector2(w/2, h/2),
		rl.NewVector2(-w/2, h/2),
	})
}

func (p *Polygon) Kind() ShapeKind         { return KindPolygon }
func (p *Polygon) BoundingRadius() float32 { return p.radius }

// Len returns the number of vertices.
func (p *Polygon) Len() int { return len(p.vertices) }

// Vertex returns the i-th vertex in local space.
func (p *Polygon) Vertex(i int) rl.Vector2 { return p.vertices[i] }

// Vertices returns a copy of the vertex loop.
func (p *Polygon) Vertices() []rl.Vector2 {
	out := make([]rl.Vector2, len(p.vertices))
	copy(out, p.vertices)
	return out
}
