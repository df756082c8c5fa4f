// Package scene loads body layouts from YAML files and populates a physics world with them.
package scene

import (
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"rigid-engine/internal/physics"
)

// ErrUnknownShape is returned for a body whose shape is not circle, rect or polygon.
var ErrUnknownShape = errors.New("unknown shape")

// BodyDef is the YAML definition of one body. Zero Mass and MaxSpeed use the physics defaults.
type BodyDef struct {
	Shape    string       `yaml:"shape"`
	Radius   float32      `yaml:"radius,omitempty"`
	Width    float32      `yaml:"width,omitempty"`
	Height   float32      `yaml:"height,omitempty"`
	Vertices [][2]float32 `yaml:"vertices,omitempty"`
	Position [2]float32   `yaml:"position,omitempty"`
	Velocity [2]float32   `yaml:"velocity,omitempty"`
	Mass     float32      `yaml:"mass,omitempty"`
	MaxSpeed float32      `yaml:"max_speed,omitempty"`
	Static   bool         `yaml:"static,omitempty"`
	Group    string       `yaml:"group,omitempty"`
}

// Scene is a named set of bodies. Defaults are merged under every body: any non-zero field of a
// body definition wins over the default.
type Scene struct {
	Name     string      `yaml:"name"`
	Gravity  *[2]float32 `yaml:"gravity,omitempty"`
	Defaults BodyDef     `yaml:"defaults,omitempty"`
	Bodies   []BodyDef   `yaml:"bodies"`
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse scene")
	}
	return &s, nil
}

// LoadFile reads and decodes the scene at path.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return s, nil
}

// Resolved returns the i-th body definition with the scene defaults merged in.
func (s *Scene) Resolved(i int) (BodyDef, error) {
	var def BodyDef
	if err := copier.CopyWithOption(&def, &s.Defaults, copier.Option{DeepCopy: true}); err != nil {
		return def, err
	}
	if err := copier.CopyWithOption(&def, &s.Bodies[i], copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return def, err
	}
	return def, nil
}

// Build creates every body of the scene without adding them anywhere.
func (s *Scene) Build() ([]*physics.Body, error) {
	bodies := make([]*physics.Body, 0, len(s.Bodies))
	for i := range s.Bodies {
		def, err := s.Resolved(i)
		if err != nil {
			return nil, errors.Wrapf(err, "body %d", i)
		}
		b, err := def.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "body %d", i)
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// Populate builds the scene and adds its bodies to w. Nothing is added if any body is invalid.
// The scene gravity, when set, replaces the world's.
func (s *Scene) Populate(w *physics.World) ([]*physics.Body, error) {
	bodies, err := s.Build()
	if err != nil {
		return nil, err
	}
	if s.Gravity != nil {
		w.SetGravity(rl.NewVector2(s.Gravity[0], s.Gravity[1]))
	}
	for _, b := range bodies {
		w.Add(b)
	}
	return bodies, nil
}

// Build creates the body described by d.
func (d BodyDef) Build() (*physics.Body, error) {
	opts := physics.Options{IsStatic: d.Static, Mass: d.Mass, MaxSpeed: d.MaxSpeed}

	var (
		b   *physics.Body
		err error
	)
	switch strings.ToLower(d.Shape) {
	case "circle":
		b, err = physics.NewCircleBody(d.Radius, opts)
	case "rect", "rectangle":
		h := d.Height
		if h == 0 {
			h = d.Width
		}
		b, err = physics.NewRectBody(d.Width, h, opts)
	case "polygon":
		verts := make([]rl.Vector2, len(d.Vertices))
		for i, v := range d.Vertices {
			verts[i] = rl.NewVector2(v[0], v[1])
		}
		b, err = physics.NewPolygonBody(verts, opts)
	case "", "none":
		b, err = physics.NewBody(nil, opts)
	default:
		return nil, errors.Wrapf(ErrUnknownShape, "%q", d.Shape)
	}
	if err != nil {
		return nil, err
	}
	b.Group = d.Group
	b.Position = rl.NewVector2(d.Position[0], d.Position[1])
	b.Velocity = rl.NewVector2(d.Velocity[0], d.Velocity[1])
	return b, nil
}
