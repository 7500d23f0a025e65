// Package geom converts angles from the mandala's own convention into
// SVG coordinate space.
//
// The mandala measures angles as clockwise bearings from a fixed zero
// reference. SVG measures angles counter-clockwise from the positive
// x-axis, with y increasing downward. A single calibration offset aligns
// the mandala's angular origin with the visual top of the rendered wheel.
//
// All functions in this package are pure and total: they accept any real
// angle, in or out of [0, 360), and never fail.
package geom
