// Package scene loads curve descriptions from YAML files.
package scene

import (
	"fmt"
	"math"
	"os"
	"strings"

	"honnef.co/go/bezier"

	"gopkg.in/yaml.v3"
)

// Scene describes a curve and how to draw it.
type Scene struct {
	Detail int `yaml:"detail"`
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`

	Handles []Handle `yaml:"handles"`
	// Knots are inserted in order, after all handles have been added. Each
	// time refers to the curve as it is after the previous insertions.
	Knots     []float64  `yaml:"knots,omitempty"`
	Transform *Transform `yaml:"transform,omitempty"`
}

// Handle is a handle as written in a scene file. Which fields are used
// depends on Continuity:
//
//   - broken: Before, Position, After
//   - aligned: Before, Position, Scale
//   - mirrored: Before, Position
//   - detached: Before, Position, Direction
type Handle struct {
	Continuity string     `yaml:"continuity"`
	Direction  string     `yaml:"direction,omitempty"`
	Before     [2]float64 `yaml:"before"`
	Position   [2]float64 `yaml:"position"`
	After      [2]float64 `yaml:"after,omitempty"`
	Scale      *float64   `yaml:"scale,omitempty"`
}

// Transform is applied to the whole curve after knot insertion. Rotation is
// applied first, then scaling, then translation.
type Transform struct {
	// Rotate is in degrees.
	Rotate    float64     `yaml:"rotate,omitempty"`
	Scale     *[2]float64 `yaml:"scale,omitempty"`
	Translate [2]float64  `yaml:"translate,omitempty"`
}

// Default returns the scene drawn when no scene file is given.
func Default() *Scene {
	return &Scene{
		Detail: 1000,
		Handles: []Handle{
			{Continuity: "broken", Before: [2]float64{-1, 0}, Position: [2]float64{0, 0}, After: [2]float64{1.5, 0.5}},
			{Continuity: "broken", Before: [2]float64{1, 3}, Position: [2]float64{3, 3}, After: [2]float64{3, 1}},
			{Continuity: "mirrored", Before: [2]float64{5, 1}, Position: [2]float64{5, 0}},
			{Continuity: "aligned", Before: [2]float64{7, -2.5}, Position: [2]float64{8, 0}, Scale: ptr(2.0)},
		},
		Knots: []float64{0.5},
	}
}

func ptr[T any](v T) *T { return &v }

// Parse decodes a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return &s, nil
}

// Load reads the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadOptional is like Load, but returns the default scene if path is
// empty. A path that doesn't exist is an error.
func LoadOptional(path string) (*Scene, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Build constructs the curve described by the scene.
func (s *Scene) Build() (*bezier.Curve[float64], error) {
	if s.Detail < 0 {
		return nil, fmt.Errorf("invalid detail %d", s.Detail)
	}
	c := bezier.New[float64](s.Detail, len(s.Handles)+len(s.Knots))
	for i, h := range s.Handles {
		bh, err := h.handle()
		if err != nil {
			return nil, fmt.Errorf("handle %d: %w", i, err)
		}
		c.Push(bh)
	}
	for _, t := range s.Knots {
		if err := c.KnotInsert(t); err != nil {
			return nil, fmt.Errorf("knot at %g: %w", t, err)
		}
	}
	if s.Transform != nil {
		c.Transform(s.Transform.affine())
	}
	return c, nil
}

func pt(v [2]float64) bezier.Point[float64] {
	return bezier.Pt(v[0], v[1])
}

func (h Handle) handle() (bezier.Handle[float64], error) {
	before, pos := pt(h.Before), pt(h.Position)
	switch strings.ToLower(h.Continuity) {
	case "", "broken":
		return bezier.NewHandle(before, pos, pt(h.After)), nil
	case "aligned":
		scale := 1.0
		if h.Scale != nil {
			scale = *h.Scale
		}
		return bezier.NewAligned(before, pos, scale), nil
	case "mirrored":
		return bezier.NewMirrored(before, pos), nil
	case "detached":
		dir, err := parseDirection(h.Direction)
		if err != nil {
			return bezier.Handle[float64]{}, err
		}
		return bezier.NewDetached(before, pos, dir), nil
	default:
		return bezier.Handle[float64]{}, fmt.Errorf("unknown continuity %q", h.Continuity)
	}
}

func parseDirection(s string) (bezier.Direction, error) {
	switch strings.ToLower(s) {
	case "forward":
		return bezier.Forward, nil
	case "backward":
		return bezier.Backward, nil
	case "", "both":
		return bezier.Both, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func (t *Transform) affine() bezier.Affine[float64] {
	aff := bezier.Identity[float64]()
	if t.Rotate != 0 {
		aff = aff.ThenRotate(t.Rotate * math.Pi / 180)
	}
	if t.Scale != nil {
		aff = aff.ThenScale(t.Scale[0], t.Scale[1])
	}
	return aff.ThenTranslate(bezier.Vec(t.Translate[0], t.Translate[1]))
}
