package band

import (
	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/geom"
)

// Options controls a scaling computation.
type Options struct {
	// Factor is the uniform scale applied to the base geometry.
	// Zero means 1.
	Factor float64
	// Center, when non-nil, overrides the scaled center.
	Center *geom.Point
}

// Scaled holds the absolute geometry derived from a base geometry and a
// ratio set at one concrete scale.
type Scaled struct {
	Geometry Geometry
	Radii    map[string]float64
	Sizes    map[string]float64
}

// Compute derives absolute radii and sizes for every ratio in the set.
// The defining property: for any named radius R and anchor A,
// (R - A) / width is the configured ratio regardless of Factor.
func Compute(base Geometry, ratios RatioSet, opts Options) (Scaled, error) {
	if err := base.Validate(); err != nil {
		return Scaled{}, err
	}

	factor := opts.Factor
	if factor == 0 {
		factor = 1
	}

	g := Geometry{
		Center: base.Center.Scale(factor),
		Inner:  base.Inner * factor,
		Outer:  base.Outer * factor,
	}
	if opts.Center != nil {
		g.Center = *opts.Center
	}

	s := Scaled{
		Geometry: g,
		Radii:    make(map[string]float64, len(ratios.Radii)),
		Sizes:    make(map[string]float64, len(ratios.Sizes)),
	}
	for name, r := range ratios.Radii {
		s.Radii[name] = r.resolve(g)
	}
	for name, ratio := range ratios.Sizes {
		s.Sizes[name] = g.Width() * ratio
	}
	return s, nil
}

// Radius returns the named derived radius.
func (s Scaled) Radius(name string) (float64, error) {
	r, ok := s.Radii[name]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidRatio, "no radius ratio named %q", name)
	}
	return r, nil
}

// Size returns the named derived size.
func (s Scaled) Size(name string) (float64, error) {
	v, ok := s.Sizes[name]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidRatio, "no size ratio named %q", name)
	}
	return v, nil
}

// SubBand pairs a geometry with the ratios of the content nested in it.
type SubBand struct {
	Geometry Geometry
	Ratios   RatioSet
}

// ComputeSet applies the ratio algebra independently to several named
// sub-bands sharing one center, used when several text layers nest
// inside one larger conceptual ring. A center override applies to all
// sub-bands.
func ComputeSet(bands map[string]SubBand, opts Options) (map[string]Scaled, error) {
	out := make(map[string]Scaled, len(bands))
	for name, sb := range bands {
		s, err := Compute(sb.Geometry, sb.Ratios, opts)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "sub-band %q", name)
		}
		out[name] = s
	}
	return out, nil
}
