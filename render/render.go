// Package render draws sampled curves as SVG documents or PNG images.
package render

import (
	"image/color"

	"honnef.co/go/bezier"

	"golang.org/x/exp/constraints"
)

// Scene is what gets drawn: polylines through sampled points, and markers
// at control points.
type Scene[F constraints.Float] struct {
	// Lines holds one polyline per run of adjacent visible segments.
	Lines [][]bezier.Point[F]
	// Controls are drawn as small markers. They may be nil.
	Controls []bezier.Point[F]
}

// FromCurve samples c and splits the result into runs of adjacent visible
// segments, so that hidden segments leave gaps. Each run is closed with the
// end point of its last segment, which sampling alone never produces.
func FromCurve[F constraints.Float](c *bezier.Curve[F]) Scene[F] {
	pts := c.Calculate()
	detail := c.Detail()
	var s Scene[F]
	var run []bezier.Point[F]
	off := 0
	flush := func() {
		if len(run) > 0 {
			s.Lines = append(s.Lines, run)
			run = nil
		}
	}
	for i := range c.NumSegments() {
		empty, _ := c.IsEmptySegment(i)
		if empty {
			flush()
			continue
		}
		seg, _ := c.Segment(i)
		run = append(run, pts[off:off+detail]...)
		run = append(run, seg.End())
		if i+1 < c.NumSegments() {
			if next, _ := c.IsEmptySegment(i + 1); !next {
				// the next segment starts at the same point
				run = run[:len(run)-1]
			}
		}
		off += detail
	}
	flush()
	s.Controls = c.ControlPoints()
	return s
}

// Bounds returns the bounding box of everything in the scene.
func (s Scene[F]) Bounds() (bezier.Rect[F], bool) {
	var (
		r  bezier.Rect[F]
		ok bool
	)
	add := func(pts []bezier.Point[F]) {
		b, found := bezier.BoundingRect(pts)
		switch {
		case !found:
		case !ok:
			r, ok = b, true
		default:
			r = r.Union(b)
		}
	}
	for _, l := range s.Lines {
		add(l)
	}
	add(s.Controls)
	return r, ok
}

type Options struct {
	Width, Height int
	// Margin is the space, in pixels, between the scene and the image border.
	Margin float64

	Background  color.Color
	Stroke      color.Color
	Control     color.Color
	StrokeWidth float64
	// ControlSize is the diameter of control point markers. Zero disables
	// them.
	ControlSize float64
}

func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Margin:      20,
		Background:  color.White,
		Stroke:      color.Black,
		Control:     color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
		StrokeWidth: 1.5,
		ControlSize: 5,
	}
}

// Viewport returns the transform that maps bounds into a width×height image
// with the given margin. The scale is uniform and y points up in scene space
// and down in the image.
func Viewport[F constraints.Float](bounds bezier.Rect[F], width, height int, margin float64) bezier.Affine[F] {
	w := max(float64(width)-2*margin, 1)
	h := max(float64(height)-2*margin, 1)
	bw, bh := float64(bounds.Width()), float64(bounds.Height())
	var s float64
	switch {
	case bw == 0 && bh == 0:
		s = 1
	case bw == 0:
		s = h / bh
	case bh == 0:
		s = w / bw
	default:
		s = min(w/bw, h/bh)
	}
	c := bounds.Center()
	aff := bezier.Translate(bezier.Vec(-c.X, -c.Y)).ThenScale(F(s), F(s))
	return bezier.FlipY[F]().Mul(aff).ThenTranslate(bezier.Vec(F(width)/2, F(height)/2))
}

// project transforms the scene into image space.
func project[F constraints.Float](s Scene[F], opts Options) Scene[float64] {
	b, ok := s.Bounds()
	if !ok {
		return Scene[float64]{}
	}
	aff := Viewport(b, opts.Width, opts.Height, opts.Margin)
	conv := func(pts []bezier.Point[F]) []bezier.Point[float64] {
		out := make([]bezier.Point[float64], len(pts))
		for i, pt := range pts {
			p := pt.Transform(aff)
			out[i] = bezier.Pt(float64(p.X), float64(p.Y))
		}
		return out
	}
	out := Scene[float64]{Controls: conv(s.Controls)}
	for _, l := range s.Lines {
		out.Lines = append(out.Lines, conv(l))
	}
	return out
}
