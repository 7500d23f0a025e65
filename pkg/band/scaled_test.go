package band

import (
	"math"
	"testing"

	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/geom"
)

func baseGeometry() Geometry {
	return Geometry{
		Center: geom.Point{X: 1000, Y: 1000},
		Inner:  400,
		Outer:  500,
	}
}

func TestCompute_ConcreteScenario(t *testing.T) {
	ratios := RatioSet{
		Radii: map[string]RadiusRatio{"text": FromInner(0.3)},
	}

	s, err := Compute(baseGeometry(), ratios, Options{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got, want := s.Radii["text"], 430.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("text radius at factor 1 = %v, want %v", got, want)
	}

	s2, err := Compute(baseGeometry(), ratios, Options{Factor: 2})
	if err != nil {
		t.Fatalf("Compute factor 2: %v", err)
	}
	if got, want := s2.Geometry.Width(), 200.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("width at factor 2 = %v, want %v", got, want)
	}
	// 400*2 + 200*0.3: the 0.3 ratio is preserved.
	if got, want := s2.Radii["text"], 860.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("text radius at factor 2 = %v, want %v", got, want)
	}
}

func TestCompute_ScaleInvariance(t *testing.T) {
	ratios := RatioSet{
		Radii: map[string]RadiusRatio{
			"numbers":  Mid(0.1),
			"glyphs":   Mid(-0.25),
			"ticks":    FromInner(0.05),
			"labels":   FromOuter(-0.4),
			"overhang": FromOuter(0.15),
		},
		Sizes: map[string]float64{
			"font":   0.32,
			"stroke": 0.01,
		},
	}

	for _, factor := range []float64{0.1, 0.5, 1, 2, 10} {
		s, err := Compute(baseGeometry(), ratios, Options{Factor: factor})
		if err != nil {
			t.Fatalf("Compute(factor=%v): %v", factor, err)
		}
		width := s.Geometry.Width()

		for name, r := range ratios.Radii {
			anchor := r.anchorRadius(s.Geometry)
			got := (s.Radii[name] - anchor) / width
			if relDiff(got, r.Offset) > 1e-3 {
				t.Errorf("factor %v: radius %q recovered ratio = %v, want %v", factor, name, got, r.Offset)
			}
		}
		for name, ratio := range ratios.Sizes {
			got := s.Sizes[name] / width
			if relDiff(got, ratio) > 1e-3 {
				t.Errorf("factor %v: size %q recovered ratio = %v, want %v", factor, name, got, ratio)
			}
		}
	}
}

func relDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if m := math.Max(math.Abs(a), math.Abs(b)); m > 1 {
		return d / m
	}
	return d
}

func TestCompute_CenterOverride(t *testing.T) {
	override := geom.Point{X: 50, Y: 60}
	s, err := Compute(baseGeometry(), RatioSet{}, Options{Factor: 2, Center: &override})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if s.Geometry.Center != override {
		t.Errorf("center = %+v, want %+v", s.Geometry.Center, override)
	}

	// Without an override the center scales with the geometry.
	s2, err := Compute(baseGeometry(), RatioSet{}, Options{Factor: 2})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got, want := s2.Geometry.Center, (geom.Point{X: 2000, Y: 2000}); got != want {
		t.Errorf("scaled center = %+v, want %+v", got, want)
	}
}

func TestCompute_RejectsDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name string
		geo  Geometry
	}{
		{"zero width", Geometry{Inner: 400, Outer: 400}},
		{"inverted", Geometry{Inner: 500, Outer: 400}},
		{"negative inner", Geometry{Inner: -10, Outer: 400}},
	}
	for _, tt := range tests {
		_, err := Compute(tt.geo, RatioSet{}, Options{})
		if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
			t.Errorf("%s: err = %v, want INVALID_GEOMETRY", tt.name, err)
		}
	}
}

func TestScaled_NamedLookups(t *testing.T) {
	ratios := RatioSet{
		Radii: map[string]RadiusRatio{"text": Mid(0)},
		Sizes: map[string]float64{"font": 0.3},
	}
	s, err := Compute(baseGeometry(), ratios, Options{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if r, err := s.Radius("text"); err != nil || math.Abs(r-450) > 1e-9 {
		t.Errorf("Radius(text) = %v, %v; want 450", r, err)
	}
	if _, err := s.Radius("missing"); !errors.Is(err, errors.ErrCodeInvalidRatio) {
		t.Errorf("Radius(missing) err = %v, want INVALID_RATIO", err)
	}
	if v, err := s.Size("font"); err != nil || math.Abs(v-30) > 1e-9 {
		t.Errorf("Size(font) = %v, %v; want 30", v, err)
	}
	if _, err := s.Size("missing"); !errors.Is(err, errors.ErrCodeInvalidRatio) {
		t.Errorf("Size(missing) err = %v, want INVALID_RATIO", err)
	}
}

func TestComputeSet(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}
	bands := map[string]SubBand{
		"upper": {
			Geometry: Geometry{Center: center, Inner: 300, Outer: 340},
			Ratios:   RatioSet{Radii: map[string]RadiusRatio{"text": Mid(0)}},
		},
		"lower": {
			Geometry: Geometry{Center: center, Inner: 260, Outer: 300},
			Ratios:   RatioSet{Radii: map[string]RadiusRatio{"text": Mid(0)}},
		},
	}

	out, err := ComputeSet(bands, Options{Factor: 2})
	if err != nil {
		t.Fatalf("ComputeSet: %v", err)
	}
	if got, want := out["upper"].Radii["text"], 640.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("upper text radius = %v, want %v", got, want)
	}
	if got, want := out["lower"].Radii["text"], 560.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("lower text radius = %v, want %v", got, want)
	}

	bands["bad"] = SubBand{Geometry: Geometry{Inner: 10, Outer: 10}}
	if _, err := ComputeSet(bands, Options{}); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("ComputeSet with degenerate sub-band: err = %v, want INVALID_GEOMETRY", err)
	}
}
