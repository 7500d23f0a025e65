// Package manifest loads wheel definition files.
//
// A wheel manifest is a TOML file naming the rings to render (innermost
// first, each with its native geometry), the snap parameters, and the
// angular calibration. It is the single input of the render pipeline.
package manifest

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/soleren/mandala/pkg/cache"
	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/geom"
)

// RingSpec names one ring and its native geometry. Ring generators draw
// around their own center; only radii are configured here.
type RingSpec struct {
	Name  string  `toml:"name"`
	Inner float64 `toml:"inner"`
	Outer float64 `toml:"outer"`
}

// Calibration mirrors geom.Calibration in the TOML schema. Offset is a
// pointer so an explicit zero offset is distinguishable from an omitted
// one.
type Calibration struct {
	Offset *float64 `toml:"offset"`
}

// Manifest is a parsed wheel definition.
type Manifest struct {
	StartRadius  float64     `toml:"start_radius"`
	Padding      float64     `toml:"padding"`
	UniformScale float64     `toml:"uniform_scale"`
	Margin       float64     `toml:"margin"`
	Background   string      `toml:"background"`
	Color        string      `toml:"color"`
	Table        string      `toml:"table"` // path to a knowledge table; empty means embedded default
	Calibration  Calibration `toml:"calibration"`
	Rings        []RingSpec  `toml:"rings"`

	raw []byte
}

// Defaults for fields the manifest may omit.
const (
	DefaultStartRadius = 300.0
	DefaultPadding     = 8.0
)

// Load parses a manifest from r and applies defaults.
func Load(r io.Reader) (*Manifest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read manifest")
	}

	var m Manifest
	if _, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest")
	}
	m.raw = raw

	if m.StartRadius == 0 {
		m.StartRadius = DefaultStartRadius
	}
	if m.Padding == 0 {
		m.Padding = DefaultPadding
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile loads a manifest from a TOML file on disk.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Load(f)
}

func (m *Manifest) validate() error {
	if len(m.Rings) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest names no rings")
	}
	if m.StartRadius <= 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "start_radius %g must be positive", m.StartRadius)
	}
	if m.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "padding %g must not be negative", m.Padding)
	}
	seen := make(map[string]bool, len(m.Rings))
	for _, r := range m.Rings {
		if r.Name == "" {
			return errors.New(errors.ErrCodeInvalidManifest, "ring with empty name")
		}
		if seen[r.Name] {
			return errors.New(errors.ErrCodeInvalidManifest, "ring %q listed twice", r.Name)
		}
		seen[r.Name] = true
		if r.Inner <= 0 || r.Inner >= r.Outer {
			return errors.New(errors.ErrCodeInvalidGeometry,
				"ring %q: radii [%g, %g] must satisfy 0 < inner < outer", r.Name, r.Inner, r.Outer)
		}
	}
	return nil
}

// Geom returns the manifest's calibration as the engine type. An
// omitted offset selects the default calibration.
func (m *Manifest) Geom() geom.Calibration {
	if m.Calibration.Offset == nil {
		return geom.DefaultCalibration
	}
	return geom.Calibration{Offset: *m.Calibration.Offset}
}

// Hash returns a stable content hash for cache keys.
func (m *Manifest) Hash() string {
	return cache.Hash(m.raw)
}
