package band

import (
	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/geom"
)

// Geometry describes one annular band: a center and an inner and outer
// radius. Width and mid radius are always derived so they cannot drift
// from the stored radii.
type Geometry struct {
	Center geom.Point
	Inner  float64
	Outer  float64
}

// Width returns the radial span of the band.
func (g Geometry) Width() float64 { return g.Outer - g.Inner }

// Mid returns the radius halfway between inner and outer.
func (g Geometry) Mid() float64 { return (g.Inner + g.Outer) / 2 }

// Validate checks that the band has positive width. Zero-width and
// inverted bands produce well-defined but visually nonsensical output,
// so they are rejected at this boundary.
func (g Geometry) Validate() error {
	if g.Inner < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "inner radius %g is negative", g.Inner)
	}
	if g.Inner >= g.Outer {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"inner radius %g must be less than outer radius %g", g.Inner, g.Outer)
	}
	return nil
}
