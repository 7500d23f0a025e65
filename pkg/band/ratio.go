package band

// Anchor selects which radius of a band a RadiusRatio is measured from.
type Anchor int

const (
	// AnchorMid measures from the band's mid radius.
	AnchorMid Anchor = iota
	// AnchorInner measures from the band's inner radius.
	AnchorInner
	// AnchorOuter measures from the band's outer radius.
	AnchorOuter
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorInner:
		return "inner"
	case AnchorOuter:
		return "outer"
	default:
		return "mid"
	}
}

// RadiusRatio places a radius relative to one of a band's anchor radii,
// offset by a multiple of the band width. The closed three-way anchor
// keeps the conversion exhaustive.
type RadiusRatio struct {
	Anchor Anchor
	Offset float64
}

// Mid returns a ratio anchored at the band's mid radius.
func Mid(offset float64) RadiusRatio { return RadiusRatio{Anchor: AnchorMid, Offset: offset} }

// FromInner returns a ratio anchored at the band's inner radius.
func FromInner(offset float64) RadiusRatio { return RadiusRatio{Anchor: AnchorInner, Offset: offset} }

// FromOuter returns a ratio anchored at the band's outer radius.
func FromOuter(offset float64) RadiusRatio { return RadiusRatio{Anchor: AnchorOuter, Offset: offset} }

// resolve converts the ratio to an absolute radius for the given band.
func (r RadiusRatio) resolve(g Geometry) float64 {
	switch r.Anchor {
	case AnchorInner:
		return g.Inner + g.Width()*r.Offset
	case AnchorOuter:
		return g.Outer + g.Width()*r.Offset
	default:
		return g.Mid() + g.Width()*r.Offset
	}
}

// anchorRadius returns the absolute radius of the ratio's anchor.
func (r RadiusRatio) anchorRadius(g Geometry) float64 {
	switch r.Anchor {
	case AnchorInner:
		return g.Inner
	case AnchorOuter:
		return g.Outer
	default:
		return g.Mid()
	}
}

// RatioSet names every ratio a band's content needs: radii for element
// placement and sizes for fonts and glyph dimensions. Sizes are plain
// multiples of the band width.
type RatioSet struct {
	Radii map[string]RadiusRatio
	Sizes map[string]float64
}
