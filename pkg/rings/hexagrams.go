package rings

import (
	"bytes"
	"fmt"

	"github.com/soleren/mandala/pkg/band"
	"github.com/soleren/mandala/pkg/geom"
	"github.com/soleren/mandala/pkg/knowledge"
	"github.com/soleren/mandala/pkg/wheel"
)

var hexagramRatios = band.RatioSet{
	Radii: map[string]band.RadiusRatio{
		"glyph": band.Mid(0),
	},
	Sizes: map[string]float64{
		"font": 0.68,
	},
}

// hexagramBlockStart is U+4DC0, HEXAGRAM FOR THE CREATIVE HEAVEN. The
// Unicode block orders hexagrams by King Wen number, which matches the
// gate numbering.
const hexagramBlockStart = 0x4DC0

// Hexagrams renders each gate's hexagram glyph tangent to the ring.
type Hexagrams struct{}

// Name implements Generator.
func (Hexagrams) Name() string { return "hexagrams" }

// Glyph returns the Unicode hexagram for a gate number in 1..64.
func (Hexagrams) Glyph(gate int) rune {
	return rune(hexagramBlockStart + gate - 1)
}

// Generate implements Generator.
func (h Hexagrams) Generate(src knowledge.Source, cal geom.Calibration, geo band.Geometry) (Ring, error) {
	s, err := band.Compute(geo, hexagramRatios, band.Options{})
	if err != nil {
		return Ring{}, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<g class="ring-hexagrams" font-size="%.3f">`+"\n", s.Sizes["font"])

	for _, g := range src.Gates() {
		bearing, err := src.AngleOf(g.Number, 0)
		if err != nil {
			return Ring{}, err
		}
		target := cal.TargetAngle(bearing)
		p := cal.Position(bearing, s.Radii["glyph"], geo.Center)
		fmt.Fprintf(&buf,
			`  <text x="%.3f" y="%.3f" text-anchor="middle" dominant-baseline="central" transform="rotate(%.3f %.3f %.3f)">%c</text>`+"\n",
			p.X, p.Y, geom.TangentRotation(target), p.X, p.Y, h.Glyph(g.Number))
	}
	buf.WriteString("</g>\n")

	return Ring{
		Name:     "hexagrams",
		Geometry: geo,
		Extent:   wheel.Extent{Inner: geo.Inner, Outer: geo.Outer},
		Markup:   buf.Bytes(),
	}, nil
}
