package geom

import "math"

// DefaultOffset aligns the wheel's angular origin with the visual top of
// the SVG canvas. Found by lining up two known sector boundaries; every
// caller must share this one value rather than re-deriving it.
const DefaultOffset = 323.4375

// Calibration fixes the rotation between wheel bearings and SVG angles.
// Distinct wheel instances may carry distinct calibrations; use
// DefaultCalibration for the standard mandala.
type Calibration struct {
	// Offset is added after mirroring and re-anchoring the bearing.
	Offset float64
}

// DefaultCalibration is the standard mandala calibration.
var DefaultCalibration = Calibration{Offset: DefaultOffset}

// TargetAngle converts a clockwise wheel bearing into an SVG-space angle
// in degrees. The negation mirrors the angular sense (SVG angles run
// counter-clockwise in screen terms), and the -90 moves the bearing's
// zero from 12 o'clock to the trigonometric zero at 3 o'clock.
func (c Calibration) TargetAngle(bearing float64) float64 {
	return -bearing - 90 + c.Offset
}

// Position returns the point at the given bearing and radius around center.
func (c Calibration) Position(bearing, radius float64, center Point) Point {
	rad := c.TargetAngle(bearing) * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// TangentRotation returns the rotation, in degrees, that lays a text
// baseline tangent to the circle at the given target angle so it reads
// along the ring.
func TangentRotation(targetAngle float64) float64 {
	return targetAngle + 90
}

// RadialRotation returns the rotation, in degrees and normalized to
// (-180, 180], that points an element's up axis outward from the center
// so it reads across the ring.
func RadialRotation(targetAngle float64) float64 {
	return normalizeHalf(targetAngle + 180)
}

// OnFarSide reports whether radially rotated text at the given target
// angle would render upside-down to the viewer. Callers are expected to
// add 180 degrees and flip the text anchor when it returns true.
func OnFarSide(targetAngle float64) bool {
	a := normalizeFull(targetAngle + 180)
	return a > 90 && a < 270
}

// Midpoint returns the bearing halfway between a and b. Pairs separated
// by more than 180 degrees are taken to straddle the 0/360 seam, so the
// midpoint is computed on the short way around. Naive averaging would be
// 180 degrees off for such pairs.
func Midpoint(a, b float64) float64 {
	if math.Abs(b-a) > 180 {
		return math.Mod((a+b+360)/2, 360)
	}
	return (a + b) / 2
}

// normalizeFull maps an angle into [0, 360).
func normalizeFull(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// normalizeHalf maps an angle into (-180, 180].
func normalizeHalf(a float64) float64 {
	a = math.Mod(a+180, 360)
	if a <= 0 {
		a += 360
	}
	return a - 180
}
