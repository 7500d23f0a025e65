package rings

import (
	"bytes"
	"fmt"

	"github.com/soleren/mandala/pkg/band"
	"github.com/soleren/mandala/pkg/geom"
	"github.com/soleren/mandala/pkg/knowledge"
	"github.com/soleren/mandala/pkg/wheel"
)

// divider overhang past the nominal ring, in band widths. This is what
// makes the ring's visual extent exceed its geometry.
const gateDividerOverhang = 0.08

var gateNumberRatios = band.RatioSet{
	Radii: map[string]band.RadiusRatio{
		"text":         band.Mid(0),
		"dividerInner": band.FromInner(-gateDividerOverhang),
		"dividerOuter": band.FromOuter(gateDividerOverhang),
	},
	Sizes: map[string]float64{
		"font":   0.42,
		"stroke": 0.015,
	},
}

// GateNumbers renders the 64 gate numbers read along the ring, with a
// divider line on every sector boundary.
type GateNumbers struct{}

// Name implements Generator.
func (GateNumbers) Name() string { return "gates" }

// Generate implements Generator.
func (GateNumbers) Generate(src knowledge.Source, cal geom.Calibration, geo band.Geometry) (Ring, error) {
	s, err := band.Compute(geo, gateNumberRatios, band.Options{})
	if err != nil {
		return Ring{}, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<g class="ring-gates" font-family="sans-serif" font-size="%.3f">`+"\n", s.Sizes["font"])

	gates := src.Gates()
	for i, g := range gates {
		bearing, err := src.AngleOf(g.Number, 0)
		if err != nil {
			return Ring{}, err
		}
		target := cal.TargetAngle(bearing)
		p := cal.Position(bearing, s.Radii["text"], geo.Center)
		fmt.Fprintf(&buf,
			`  <text x="%.3f" y="%.3f" text-anchor="middle" dominant-baseline="central" transform="rotate(%.3f %.3f %.3f)">%d</text>`+"\n",
			p.X, p.Y, geom.TangentRotation(target), p.X, p.Y, g.Number)

		// Divider on the boundary shared with the next gate, computed
		// as the midpoint of adjacent centers so the pair that wraps
		// the seam resolves correctly.
		next := gates[(i+1)%len(gates)]
		nextBearing, err := src.AngleOf(next.Number, 0)
		if err != nil {
			return Ring{}, err
		}
		boundary := geom.Midpoint(bearing, nextBearing)
		p1 := cal.Position(boundary, s.Radii["dividerInner"], geo.Center)
		p2 := cal.Position(boundary, s.Radii["dividerOuter"], geo.Center)
		fmt.Fprintf(&buf,
			`  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="currentColor" stroke-width="%.3f"/>`+"\n",
			p1.X, p1.Y, p2.X, p2.Y, s.Sizes["stroke"])
	}
	buf.WriteString("</g>\n")

	return Ring{
		Name:     "gates",
		Geometry: geo,
		Extent: wheel.Extent{
			Inner: s.Radii["dividerInner"],
			Outer: s.Radii["dividerOuter"],
		},
		Markup: buf.Bytes(),
	}, nil
}
