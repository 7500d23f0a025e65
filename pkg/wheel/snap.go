package wheel

import (
	"fmt"

	"github.com/soleren/mandala/pkg/band"
	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/geom"
)

// Extent is the actual rendered footprint of a band in its own source
// units. Decorations may extend past the nominal ring, so
// Inner <= geometry.Inner <= geometry.Outer <= Outer must hold.
type Extent struct {
	Inner float64
	Outer float64
}

// Source is one band to compose: its native geometry plus visual extent.
type Source struct {
	Name     string
	Geometry band.Geometry
	Extent   Extent
}

// validate checks the extent invariant against the nominal geometry.
func (s Source) validate() error {
	if err := s.Geometry.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGeometry, err, "band %q", s.Name)
	}
	if s.Extent.Inner > s.Geometry.Inner || s.Extent.Outer < s.Geometry.Outer {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"band %q: visual extent [%g, %g] must contain nominal ring [%g, %g]",
			s.Name, s.Extent.Inner, s.Extent.Outer, s.Geometry.Inner, s.Geometry.Outer)
	}
	if s.Extent.Inner <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"band %q: visual inner radius %g must be positive", s.Name, s.Extent.Inner)
	}
	return nil
}

// Placement is the composed position of one band, in wheel units.
type Placement struct {
	Name        string
	Scale       float64
	Inner       float64
	Outer       float64
	VisualInner float64
	VisualOuter float64
}

// Transform returns the SVG transform that moves a band's pre-rendered
// markup from its source center into place. The translation is chosen so
// the scaled source center lands on the wheel center; translate must
// precede scale in the emitted attribute.
func (p Placement) Transform(sourceCenter, wheelCenter geom.Point) string {
	tx := wheelCenter.X - sourceCenter.X*p.Scale
	ty := wheelCenter.Y - sourceCenter.Y*p.Scale
	return fmt.Sprintf("translate(%.4f %.4f) scale(%.6f)", tx, ty, p.Scale)
}

// ViewBox is the SVG viewBox covering the composed wheel.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// String formats the viewBox attribute value.
func (v ViewBox) String() string {
	return fmt.Sprintf("%.2f %.2f %.2f %.2f", v.MinX, v.MinY, v.Width, v.Height)
}

// Options configures one composition.
type Options struct {
	// Center is the common wheel center in output units.
	Center geom.Point
	// StartRadius is where band 0's visual inner edge lands.
	StartRadius float64
	// Padding is the gap between one band's visual outer edge and the
	// next band's visual inner edge.
	Padding float64
	// UniformScale, when non-zero, applies one scale factor to every
	// band instead of fitting each band to its seam.
	UniformScale float64
	// Margin is added around the outermost visual edge when sizing the
	// viewBox. Zero means DefaultMargin.
	Margin float64
}

// DefaultMargin is the canvas margin beyond the outermost visual edge.
const DefaultMargin = 20.0

// Composition is the result of packing bands around one center.
type Composition struct {
	Center     geom.Point
	Placements []Placement
	ViewBox    ViewBox
}

// Placement returns the placement for the named band.
func (c *Composition) Placement(name string) (Placement, bool) {
	for _, p := range c.Placements {
		if p.Name == name {
			return p, true
		}
	}
	return Placement{}, false
}

// Compose packs the given bands, innermost first, per Options.
//
// In the default independent-scale mode each band is scaled exactly
// enough that its own visual inner boundary lands on the required seam:
// StartRadius for band 0, previous visual outer plus Padding after that.
// With UniformScale every band keeps the supplied scale and only its
// seam position is derived; overlapping bands are rejected.
func Compose(sources []Source, opts Options) (*Composition, error) {
	if len(sources) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "no bands to compose")
	}
	if opts.StartRadius <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry,
			"start radius %g must be positive", opts.StartRadius)
	}

	comp := &Composition{
		Center:     opts.Center,
		Placements: make([]Placement, 0, len(sources)),
	}

	seam := opts.StartRadius
	for i, src := range sources {
		if err := src.validate(); err != nil {
			return nil, err
		}

		var scale float64
		if opts.UniformScale != 0 {
			scale = opts.UniformScale
			// Concentric bands cannot be nudged radially, so a uniform
			// scale that puts this band's visual inner inside the
			// previous band's visual outer is unrenderable.
			if i > 0 && src.Extent.Inner*scale < seam-opts.Padding {
				return nil, errors.New(errors.ErrCodeInvalidGeometry,
					"uniform scale %g makes band %q overlap its inner neighbor",
					opts.UniformScale, src.Name)
			}
		} else {
			scale = seam / src.Extent.Inner
		}

		p := Placement{
			Name:        src.Name,
			Scale:       scale,
			Inner:       src.Geometry.Inner * scale,
			Outer:       src.Geometry.Outer * scale,
			VisualInner: src.Extent.Inner * scale,
			VisualOuter: src.Extent.Outer * scale,
		}
		comp.Placements = append(comp.Placements, p)
		seam = p.VisualOuter + opts.Padding
	}

	margin := opts.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	outermost := comp.Placements[len(comp.Placements)-1].VisualOuter
	half := outermost + margin
	comp.ViewBox = ViewBox{
		MinX:   opts.Center.X - half,
		MinY:   opts.Center.Y - half,
		Width:  2 * half,
		Height: 2 * half,
	}
	return comp, nil
}
