package manifest

import (
	"strings"
	"testing"

	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/geom"
)

const sample = `
start_radius = 350.0
padding = 10.0
background = "#fffdf5"

[calibration]
offset = 323.4375

[[rings]]
name = "lines"
inner = 400.0
outer = 430.0

[[rings]]
name = "gates"
inner = 430.0
outer = 480.0
`

func TestLoad(t *testing.T) {
	m, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.StartRadius != 350 {
		t.Errorf("StartRadius = %v", m.StartRadius)
	}
	if len(m.Rings) != 2 || m.Rings[0].Name != "lines" || m.Rings[1].Name != "gates" {
		t.Errorf("Rings = %+v", m.Rings)
	}
	if got := m.Geom(); got != (geom.Calibration{Offset: 323.4375}) {
		t.Errorf("Geom() = %+v", got)
	}
	if m.Hash() == "" {
		t.Error("Hash should not be empty")
	}
}

func TestLoad_Defaults(t *testing.T) {
	minimal := `
[[rings]]
name = "gates"
inner = 400.0
outer = 500.0
`
	m, err := Load(strings.NewReader(minimal))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.StartRadius != DefaultStartRadius {
		t.Errorf("StartRadius = %v, want default %v", m.StartRadius, DefaultStartRadius)
	}
	if m.Padding != DefaultPadding {
		t.Errorf("Padding = %v, want default %v", m.Padding, DefaultPadding)
	}
	if got := m.Geom(); got != geom.DefaultCalibration {
		t.Errorf("Geom() = %+v, want default calibration", got)
	}
}

func TestLoad_ExplicitZeroOffset(t *testing.T) {
	zeroed := `
[calibration]
offset = 0.0

[[rings]]
name = "gates"
inner = 400.0
outer = 500.0
`
	m, err := Load(strings.NewReader(zeroed))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := m.Geom(); got != (geom.Calibration{Offset: 0}) {
		t.Errorf("Geom() = %+v, want zero offset preserved", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{"no rings", `start_radius = 300.0`, errors.ErrCodeInvalidManifest},
		{"malformed", `[[rings]`, errors.ErrCodeInvalidManifest},
		{
			"duplicate ring",
			"[[rings]]\nname = \"gates\"\ninner = 1.0\nouter = 2.0\n[[rings]]\nname = \"gates\"\ninner = 3.0\nouter = 4.0\n",
			errors.ErrCodeInvalidManifest,
		},
		{
			"inverted radii",
			"[[rings]]\nname = \"gates\"\ninner = 5.0\nouter = 2.0\n",
			errors.ErrCodeInvalidGeometry,
		},
		{
			"negative padding",
			"padding = -1.0\n[[rings]]\nname = \"gates\"\ninner = 1.0\nouter = 2.0\n",
			errors.ErrCodeInvalidManifest,
		},
	}
	for _, tt := range tests {
		if _, err := Load(strings.NewReader(tt.toml)); !errors.Is(err, tt.code) {
			t.Errorf("%s: err = %v, want %s", tt.name, err, tt.code)
		}
	}
}

func TestHash_Stable(t *testing.T) {
	m1, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	m2, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if m1.Hash() != m2.Hash() {
		t.Error("same content should hash identically")
	}

	m3, err := Load(strings.NewReader(sample + "\ncolor = \"#000\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if m1.Hash() == m3.Hash() {
		t.Error("different content should hash differently")
	}
}
