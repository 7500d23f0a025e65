package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestTargetAngle_Calibration(t *testing.T) {
	c := DefaultCalibration

	if got, want := c.TargetAngle(0), 233.4375; math.Abs(got-want) > tol {
		t.Errorf("TargetAngle(0) = %v, want %v", got, want)
	}

	// A full turn on the input is a full turn on the output.
	a := normalizeFull(c.TargetAngle(360))
	b := normalizeFull(c.TargetAngle(0))
	if math.Abs(a-b) > tol {
		t.Errorf("TargetAngle(360) mod 360 = %v, want %v", a, b)
	}
}

func TestTargetAngle_CustomCalibration(t *testing.T) {
	c := Calibration{Offset: 90}
	if got, want := c.TargetAngle(0), 0.0; math.Abs(got-want) > tol {
		t.Errorf("TargetAngle(0) = %v, want %v", got, want)
	}
	if got, want := c.TargetAngle(45), -45.0; math.Abs(got-want) > tol {
		t.Errorf("TargetAngle(45) = %v, want %v", got, want)
	}
}

func TestPosition_RoundTrip(t *testing.T) {
	c := DefaultCalibration
	center := Point{X: 1000, Y: 1000}

	bearings := []float64{0, 1, 45, 90, 179.9, 180, 233.4375, 270, 359.999, 400, -30}
	radii := []float64{0.5, 1, 100, 450, 1e6}

	for _, bearing := range bearings {
		for _, radius := range radii {
			p := c.Position(bearing, radius, center)

			gotRadius := p.Distance(center)
			if math.Abs(gotRadius-radius) > radius*1e-9 {
				t.Errorf("Position(%v, %v): radius = %v, want %v", bearing, radius, gotRadius, radius)
			}

			target := math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
			gotBearing := normalizeFull(c.Offset - 90 - target)
			wantBearing := normalizeFull(bearing)
			diff := math.Abs(gotBearing - wantBearing)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 1e-6 {
				t.Errorf("Position(%v, %v): recovered bearing = %v, want %v", bearing, radius, gotBearing, wantBearing)
			}
		}
	}
}

func TestMidpoint(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{10, 20, 15},
		{20, 10, 15},
		{0, 180, 90},
		{358, 2, 0},   // straddles the seam; naive average would be 180
		{2, 358, 0},   // order must not matter
		{350, 10, 0},  // wrap from the other side
		{270, 90, 180}, // exactly opposite, no wrap branch
	}
	for _, tt := range tests {
		if got := Midpoint(tt.a, tt.b); math.Abs(got-tt.want) > tol {
			t.Errorf("Midpoint(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRotationComplementarity(t *testing.T) {
	// Radial and tangent rotations must always differ by 90 degrees mod 360.
	for a := -720.0; a <= 720.0; a += 7.5 {
		diff := normalizeFull(RadialRotation(a) - TangentRotation(a))
		if math.Abs(diff-90) > tol {
			t.Errorf("RadialRotation(%v) - TangentRotation(%v) = %v mod 360, want 90", a, a, diff)
		}
	}
}

func TestRadialRotation_Range(t *testing.T) {
	for a := -720.0; a <= 720.0; a += 3.3 {
		got := RadialRotation(a)
		if got <= -180 || got > 180 {
			t.Errorf("RadialRotation(%v) = %v, out of (-180, 180]", a, got)
		}
	}
}

func TestOnFarSide(t *testing.T) {
	tests := []struct {
		angle float64
		want  bool
	}{
		{0, true},    // 0+180 = 180, inside (90, 270)
		{90, false},  // 270 is the exclusive boundary
		{-90, false}, // 90 is the exclusive boundary
		{180, false},
		{45, true},
		{-45, true},
		{135, false},
		{360, true}, // same as 0
	}
	for _, tt := range tests {
		if got := OnFarSide(tt.angle); got != tt.want {
			t.Errorf("OnFarSide(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}
