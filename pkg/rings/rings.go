// Package rings generates the markup content of individual wheel bands.
//
// Each generator produces one band: gate numbers, hexagram glyphs, gate
// names, or line ticks. Generators position every element through the
// angle model and the band ratio algebra, so their output stays
// proportion-correct under any uniform rescaling and can be packed by
// the wheel composer without edits.
//
// Generators draw in their band's native coordinates around the band's
// own center. The composer later wraps the markup in a transform group.
package rings

import (
	"slices"

	"github.com/soleren/mandala/pkg/band"
	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/geom"
	"github.com/soleren/mandala/pkg/knowledge"
	"github.com/soleren/mandala/pkg/wheel"
)

// Ring is one generated band: markup plus the geometry the composer
// needs to place it.
type Ring struct {
	Name     string
	Geometry band.Geometry
	Extent   wheel.Extent
	Markup   []byte
}

// Source converts the ring to a composer input.
func (r Ring) Source() wheel.Source {
	return wheel.Source{Name: r.Name, Geometry: r.Geometry, Extent: r.Extent}
}

// Generator produces the content of one band type.
type Generator interface {
	// Name is the registry key referenced by wheel manifests.
	Name() string

	// Generate renders the band's markup for the given geometry.
	Generate(src knowledge.Source, cal geom.Calibration, geo band.Geometry) (Ring, error)
}

// registry holds every known generator. An unknown name in a manifest
// is a fatal configuration error: there is no meaningful partial wheel.
var registry = map[string]Generator{}

func register(g Generator) { registry[g.Name()] = g }

func init() {
	register(GateNumbers{})
	register(Hexagrams{})
	register(GateNames{})
	register(LineTicks{})
}

// Lookup returns the named generator or an INVALID_RING error.
func Lookup(name string) (Generator, error) {
	g, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidRing, "unknown ring: %s", name)
	}
	return g, nil
}

// Names returns all registered generator names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
