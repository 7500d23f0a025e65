package rings

import (
	"bytes"
	"fmt"

	"github.com/soleren/mandala/pkg/band"
	"github.com/soleren/mandala/pkg/geom"
	"github.com/soleren/mandala/pkg/knowledge"
	"github.com/soleren/mandala/pkg/wheel"
)

var lineTickRatios = band.RatioSet{
	Radii: map[string]band.RadiusRatio{
		"tickInner": band.FromInner(0.15),
		"tickOuter": band.FromOuter(-0.15),
		"gateInner": band.FromInner(0),
		"gateOuter": band.FromOuter(0),
	},
	Sizes: map[string]float64{
		"tickStroke": 0.01,
		"gateStroke": 0.03,
	},
}

// LineTicks renders a tick for each of the 384 line positions, with a
// heavier full-width tick on every gate boundary.
type LineTicks struct{}

// Name implements Generator.
func (LineTicks) Name() string { return "lines" }

// Generate implements Generator.
func (LineTicks) Generate(src knowledge.Source, cal geom.Calibration, geo band.Geometry) (Ring, error) {
	s, err := band.Compute(geo, lineTickRatios, band.Options{})
	if err != nil {
		return Ring{}, err
	}

	var buf bytes.Buffer
	buf.WriteString(`<g class="ring-lines" stroke="currentColor">` + "\n")

	gates := src.Gates()
	for i, g := range gates {
		// Gate boundary: midpoint between this center and the next.
		bearing, err := src.AngleOf(g.Number, 0)
		if err != nil {
			return Ring{}, err
		}
		next := gates[(i+1)%len(gates)]
		nextBearing, err := src.AngleOf(next.Number, 0)
		if err != nil {
			return Ring{}, err
		}
		boundary := geom.Midpoint(bearing, nextBearing)
		p1 := cal.Position(boundary, s.Radii["gateInner"], geo.Center)
		p2 := cal.Position(boundary, s.Radii["gateOuter"], geo.Center)
		fmt.Fprintf(&buf, `  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke-width="%.3f"/>`+"\n",
			p1.X, p1.Y, p2.X, p2.Y, s.Sizes["gateStroke"])

		// Interior line boundaries: between line n and n+1.
		for line := 1; line < 6; line++ {
			a, err := src.AngleOf(g.Number, line)
			if err != nil {
				return Ring{}, err
			}
			b, err := src.AngleOf(g.Number, line+1)
			if err != nil {
				return Ring{}, err
			}
			mid := geom.Midpoint(a, b)
			q1 := cal.Position(mid, s.Radii["tickInner"], geo.Center)
			q2 := cal.Position(mid, s.Radii["tickOuter"], geo.Center)
			fmt.Fprintf(&buf, `  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke-width="%.3f"/>`+"\n",
				q1.X, q1.Y, q2.X, q2.Y, s.Sizes["tickStroke"])
		}
	}
	buf.WriteString("</g>\n")

	return Ring{
		Name:     "lines",
		Geometry: geo,
		Extent:   wheel.Extent{Inner: geo.Inner, Outer: geo.Outer},
		Markup:   buf.Bytes(),
	}, nil
}
