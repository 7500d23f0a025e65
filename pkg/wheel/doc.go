// Package wheel composes independently authored bands into one wheel.
//
// Each band arrives with its own native geometry and visual extent (the
// actual rendered footprint, which may poke past the nominal ring). The
// composer computes a uniform scale and translation per band so bands
// pack edge to edge around a common center with a configured gap,
// starting from an innermost radius and working outward. Band content is
// never edited, only placed: internal proportions survive exactly.
package wheel
