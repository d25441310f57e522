package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/exp/constraints"
)

// SVG writes the scene as a standalone SVG document.
func SVG[F constraints.Float](w io.Writer, s Scene[F], opts Options) error {
	p := project(s, opts)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	if opts.Background != nil {
		fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hex(opts.Background))
	}
	for _, l := range p.Lines {
		fmt.Fprintf(bw, `<polyline fill="none" stroke="%s" stroke-width="%g" points="`, hex(opts.Stroke), opts.StrokeWidth)
		for i, pt := range l {
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%.3f,%.3f", pt.X, pt.Y)
		}
		bw.WriteString("\"/>\n")
	}
	if opts.ControlSize > 0 {
		for _, pt := range p.Controls {
			fmt.Fprintf(bw, `<circle cx="%.3f" cy="%.3f" r="%g" fill="%s"/>`+"\n", pt.X, pt.Y, opts.ControlSize/2, hex(opts.Control))
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return "none"
	}
	if n.A != 0xff {
		return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", n.R, n.G, n.B, float64(n.A)/0xff)
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
