// Package render assembles composed rings into a complete SVG document.
//
// Ring generators draw in their own native coordinates; the composer
// decides where each band sits. This package only wraps each ring's
// pre-rendered markup in a transform group and emits the outer <svg>
// element sized to the composition's viewBox. It never edits ring
// content.
package render

import (
	"bytes"
	"fmt"

	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/rings"
	"github.com/soleren/mandala/pkg/wheel"
)

// Option configures SVG assembly.
type Option func(*svgRenderer)

type svgRenderer struct {
	background string
	color      string
}

// WithBackground fills the canvas with the given color.
func WithBackground(color string) Option {
	return func(r *svgRenderer) { r.background = color }
}

// WithColor sets the stroke/text color inherited by all rings.
func WithColor(color string) Option {
	return func(r *svgRenderer) { r.color = color }
}

// SVG assembles the rings into one document. Rings and placements are
// matched by name; a ring without a placement is a composition bug and
// fails the whole render.
func SVG(composed []rings.Ring, comp *wheel.Composition, opts ...Option) ([]byte, error) {
	r := svgRenderer{color: "#1a1a1a"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" width="%.0f" height="%.0f">`+"\n",
		comp.ViewBox, comp.ViewBox.Width, comp.ViewBox.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			comp.ViewBox.MinX, comp.ViewBox.MinY, comp.ViewBox.Width, comp.ViewBox.Height, r.background)
	}

	fmt.Fprintf(&buf, `  <g color="%s">`+"\n", r.color)
	for _, ring := range composed {
		p, ok := comp.Placement(ring.Name)
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "ring %q has no placement", ring.Name)
		}
		fmt.Fprintf(&buf, `  <g id="ring-%s" transform="%s">`+"\n", ring.Name,
			p.Transform(ring.Geometry.Center, comp.Center))
		buf.Write(ring.Markup)
		buf.WriteString("  </g>\n")
	}
	buf.WriteString("  </g>\n</svg>\n")

	return buf.Bytes(), nil
}
