// Package knowledge supplies the wheel's domain lookups: the canonical
// bearing of every gate and line, plus named attributes such as gate
// names and channel pairings.
//
// The layout engine treats all of this as opaque data. It only needs
// AngleOf to place content; what a gate means is the table's business.
// Tables are plain TOML, with the standard mandala embedded as the
// default and overridable from disk.
package knowledge
