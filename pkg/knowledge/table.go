package knowledge

import (
	"io"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/soleren/mandala/pkg/errors"
)

// tableFile mirrors the TOML schema of a knowledge table.
type tableFile struct {
	Order    []int         `toml:"order"`
	Gates    []gateEntry   `toml:"gates"`
	Channels []channelEntry `toml:"channels"`
}

type gateEntry struct {
	Number int    `toml:"number"`
	Name   string `toml:"name"`
}

type channelEntry struct {
	Gates []int  `toml:"gates"`
	Name  string `toml:"name"`
}

// Table is a Source backed by a parsed TOML table. Immutable after Load.
type Table struct {
	gates    map[int]Gate
	order    []int
	channels []Channel
}

var _ Source = (*Table)(nil)

// Load parses a knowledge table from r and validates it: the wheel
// order must list all 64 gates exactly once, every listed gate needs
// attributes, and channels may only reference known gates.
func Load(r io.Reader) (*Table, error) {
	var f tableFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse knowledge table")
	}

	if len(f.Order) != 64 {
		return nil, errors.New(errors.ErrCodeInvalidManifest,
			"wheel order lists %d gates, want 64", len(f.Order))
	}

	t := &Table{
		gates: make(map[int]Gate, len(f.Gates)),
		order: f.Order,
	}

	names := make(map[int]string, len(f.Gates))
	for _, g := range f.Gates {
		if g.Number < 1 || g.Number > 64 {
			return nil, errors.New(errors.ErrCodeInvalidGate, "gate %d out of range", g.Number)
		}
		names[g.Number] = g.Name
	}

	seen := make(map[int]bool, 64)
	for i, n := range f.Order {
		if n < 1 || n > 64 {
			return nil, errors.New(errors.ErrCodeInvalidGate, "gate %d in wheel order out of range", n)
		}
		if seen[n] {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "gate %d appears twice in wheel order", n)
		}
		seen[n] = true
		t.gates[n] = Gate{Number: n, Name: names[n], Index: i}
	}

	for _, c := range f.Channels {
		if len(c.Gates) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidManifest,
				"channel %q must pair exactly two gates", c.Name)
		}
		for _, n := range c.Gates {
			if !seen[n] {
				return nil, errors.New(errors.ErrCodeInvalidGate,
					"channel %q references unknown gate %d", c.Name, n)
			}
		}
		t.channels = append(t.channels, Channel{Gates: [2]int{c.Gates[0], c.Gates[1]}, Name: c.Name})
	}

	return t, nil
}

// LoadFile loads a knowledge table from a TOML file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Load(f)
}

// AngleOf implements Source. The bearing is the center of the gate arc,
// or of the line arc when line is 1 through 6.
func (t *Table) AngleOf(gate, line int) (float64, error) {
	g, ok := t.gates[gate]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidGate, "gate %d out of range", gate)
	}
	if line < 0 || line > 6 {
		return 0, errors.New(errors.ErrCodeInvalidGate, "line %d out of range for gate %d", line, gate)
	}

	start := float64(g.Index) * GateArc
	if line == 0 {
		return start + GateArc/2, nil
	}
	return start + float64(line-1)*LineArc + LineArc/2, nil
}

// Gate implements Source.
func (t *Table) Gate(number int) (Gate, error) {
	g, ok := t.gates[number]
	if !ok {
		return Gate{}, errors.New(errors.ErrCodeInvalidGate, "gate %d out of range", number)
	}
	return g, nil
}

// Gates implements Source, returning gates in wheel order.
func (t *Table) Gates() []Gate {
	out := make([]Gate, 0, len(t.order))
	for _, n := range t.order {
		out = append(out, t.gates[n])
	}
	return out
}

// Channels implements Source.
func (t *Table) Channels() []Channel {
	out := make([]Channel, len(t.channels))
	copy(out, t.channels)
	return out
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded standard mandala table. The embedded
// data is validated at build time by the package tests, so a parse
// failure here is a programming error.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(defaultTableReader())
		if err != nil {
			panic("knowledge: embedded table invalid: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}
