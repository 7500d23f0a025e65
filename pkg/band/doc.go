// Package band implements the proportional scaling model for annular
// bands of the wheel.
//
// Every visual sub-element of a band is positioned by a dimensionless
// ratio relative to the band's width and one of its three anchor radii
// (inner, outer, mid). Absolute pixel values are derived outputs, never
// the source of truth, so a band keeps its internal proportions under
// arbitrary uniform rescaling.
package band
