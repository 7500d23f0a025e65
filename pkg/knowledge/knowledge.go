package knowledge

// Angular spans on the wheel. 64 gates divide the circle evenly and each
// gate divides into 6 lines.
const (
	GateArc = 360.0 / 64  // 5.625 degrees
	LineArc = GateArc / 6 // 0.9375 degrees
)

// Gate is one of the 64 gates with its attributes and wheel position.
type Gate struct {
	Number int
	Name   string
	// Index is the gate's position in the clockwise wheel order,
	// counted from the wheel's zero bearing.
	Index int
}

// Channel links two gates across the wheel.
type Channel struct {
	Gates [2]int
	Name  string
}

// Source is the lookup contract the layout engine and ring generators
// consume. Implementations must be safe for concurrent use.
type Source interface {
	// AngleOf returns the bearing, in degrees, of the center of the
	// given gate's arc, or of one of its six line arcs when line is
	// 1 through 6. Line 0 selects the whole gate.
	AngleOf(gate, line int) (float64, error)

	// Gate returns the attributes of the given gate.
	Gate(number int) (Gate, error)

	// Gates returns all gates in wheel order, innermost index first.
	Gates() []Gate

	// Channels returns every gate pairing.
	Channels() []Channel
}
