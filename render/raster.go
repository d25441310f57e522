package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/exp/constraints"
)

// Image rasterizes the scene.
func Image[F constraints.Float](s Scene[F], opts Options) (image.Image, error) {
	dc, err := paint(s, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// PNG rasterizes the scene and writes it as a PNG image.
func PNG[F constraints.Float](w io.Writer, s Scene[F], opts Options) error {
	dc, err := paint(s, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

func paint[F constraints.Float](s Scene[F], opts Options) (*gg.Context, error) {
	p := project(s, opts)
	dc := gg.NewContext(opts.Width, opts.Height)
	if opts.Background != nil {
		dc.ClearWithColor(gg.FromColor(opts.Background))
	}

	if opts.StrokeWidth > 0 && opts.Stroke != nil {
		dc.SetColor(opts.Stroke)
		dc.SetLineWidth(opts.StrokeWidth)
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		for i, l := range p.Lines {
			if len(l) < 2 {
				continue
			}
			dc.MoveTo(l[0].Splat())
			for _, pt := range l[1:] {
				dc.LineTo(pt.Splat())
			}
			if err := dc.Stroke(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("failed to stroke line %d: %w", i, err)
			}
		}
	}

	if opts.ControlSize > 0 && opts.Control != nil && len(p.Controls) > 0 {
		dc.SetColor(opts.Control)
		for _, pt := range p.Controls {
			dc.DrawCircle(pt.X, pt.Y, opts.ControlSize/2)
		}
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("failed to draw control points: %w", err)
		}
	}
	return dc, nil
}
