package rings

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/soleren/mandala/pkg/band"
	"github.com/soleren/mandala/pkg/geom"
	"github.com/soleren/mandala/pkg/knowledge"
	"github.com/soleren/mandala/pkg/wheel"
)

var gateNameRatios = band.RatioSet{
	Radii: map[string]band.RadiusRatio{
		"anchor": band.FromInner(0.08),
	},
	Sizes: map[string]float64{
		"font": 0.14,
	},
}

// GateNames renders each gate's name reading outward along the radius.
// Names on the far half of the wheel are flipped 180 degrees and
// re-anchored so they stay upright for the viewer.
type GateNames struct{}

// Name implements Generator.
func (GateNames) Name() string { return "names" }

// Generate implements Generator.
func (GateNames) Generate(src knowledge.Source, cal geom.Calibration, geo band.Geometry) (Ring, error) {
	s, err := band.Compute(geo, gateNameRatios, band.Options{})
	if err != nil {
		return Ring{}, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<g class="ring-names" font-family="sans-serif" font-size="%.3f">`+"\n", s.Sizes["font"])

	for _, g := range src.Gates() {
		bearing, err := src.AngleOf(g.Number, 0)
		if err != nil {
			return Ring{}, err
		}
		target := cal.TargetAngle(bearing)

		// Radial text: baseline runs along the radius. On the far side
		// flip by 180 and anchor at the other end to keep it upright.
		rotation := geom.RadialRotation(target)
		anchor := "start"
		radius := s.Radii["anchor"]
		if geom.OnFarSide(target) {
			rotation += 180
			anchor = "end"
		}

		p := cal.Position(bearing, radius, geo.Center)
		fmt.Fprintf(&buf,
			`  <text x="%.3f" y="%.3f" text-anchor="%s" dominant-baseline="central" transform="rotate(%.3f %.3f %.3f)">%s</text>`+"\n",
			p.X, p.Y, anchor, rotation, p.X, p.Y, escapeXML(g.Name))
	}
	buf.WriteString("</g>\n")

	return Ring{
		Name:     "names",
		Geometry: geo,
		Extent:   wheel.Extent{Inner: geo.Inner, Outer: geo.Outer},
		Markup:   buf.Bytes(),
	}, nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
