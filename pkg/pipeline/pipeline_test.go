package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/soleren/mandala/pkg/cache"
	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/manifest"
)

const testManifest = `
start_radius = 300.0
padding = 10.0

[[rings]]
name = "lines"
inner = 400.0
outer = 430.0

[[rings]]
name = "gates"
inner = 430.0
outer = 480.0

[[rings]]
name = "hexagrams"
inner = 480.0
outer = 540.0
`

func loadTestManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Load(strings.NewReader(testManifest))
	if err != nil {
		t.Fatalf("manifest.Load: %v", err)
	}
	return m
}

func TestOptions_Validate(t *testing.T) {
	m := loadTestManifest(t)

	opts := Options{Manifest: m}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.View != ViewWheel {
		t.Errorf("default view = %q", opts.View)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("default formats = %v", opts.Formats)
	}

	bad := Options{Manifest: m, View: "spiral"}
	if err := bad.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("invalid view: err = %v, want INVALID_FORMAT", err)
	}

	// PNG requires Graphviz, which only the channel view uses.
	badFmt := Options{Manifest: m, View: ViewWheel, Formats: []string{FormatPNG}}
	if err := badFmt.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("png wheel: err = %v, want INVALID_FORMAT", err)
	}

	none := Options{}
	if err := none.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("no manifest: err = %v, want INVALID_MANIFEST", err)
	}
}

func TestExecute_Wheel(t *testing.T) {
	runner := NewRunner(nil, nil, nil)

	result, err := runner.Execute(context.Background(), Options{Manifest: loadTestManifest(t)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || len(svg) == 0 {
		t.Fatal("no svg artifact")
	}
	doc := string(svg)
	for _, want := range []string{"ring-lines", "ring-gates", "ring-hexagrams", "</svg>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("svg missing %q", want)
		}
	}

	if result.Composition == nil || len(result.Composition.Placements) != 3 {
		t.Fatalf("composition = %+v", result.Composition)
	}
	// Manifest order is innermost first; placements follow it.
	if result.Composition.Placements[0].Name != "lines" {
		t.Errorf("first placement = %q", result.Composition.Placements[0].Name)
	}
}

func TestExecute_UnknownRingFailsFast(t *testing.T) {
	m, err := manifest.Load(strings.NewReader(`
[[rings]]
name = "zodiac"
inner = 400.0
outer = 500.0
`))
	if err != nil {
		t.Fatalf("manifest.Load: %v", err)
	}

	runner := NewRunner(nil, nil, nil)
	_, err = runner.Execute(context.Background(), Options{Manifest: m})
	if !errors.Is(err, errors.ErrCodeInvalidRing) {
		t.Errorf("err = %v, want INVALID_RING", err)
	}
}

func TestExecute_CachesRingsAndWheel(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	ctx := context.Background()

	first, err := runner.Execute(ctx, Options{Manifest: loadTestManifest(t)})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.RingHits != 0 || first.CacheInfo.WheelHits != 0 {
		t.Errorf("first run cache info = %+v, want cold", first.CacheInfo)
	}

	second, err := runner.Execute(ctx, Options{Manifest: loadTestManifest(t)})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if second.CacheInfo.WheelHits != 1 {
		t.Errorf("second run wheel hits = %d, want 1", second.CacheInfo.WheelHits)
	}
	// The wheel hit short-circuits the pipeline: no ring work at all.
	if second.CacheInfo.RingHits != 0 {
		t.Errorf("second run ring hits = %d, want 0", second.CacheInfo.RingHits)
	}
	if second.Composition != nil {
		t.Error("cached run should not compose")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from computed one")
	}
}

func TestExecute_RingCacheSurvivesManifestEdits(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	ctx := context.Background()

	if _, err := runner.Execute(ctx, Options{Manifest: loadTestManifest(t)}); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	// A color change misses the wheel cache but reuses every ring.
	edited, err := manifest.Load(strings.NewReader(testManifest + "\ncolor = \"#333\"\n"))
	if err != nil {
		t.Fatalf("manifest.Load: %v", err)
	}
	result, err := runner.Execute(ctx, Options{Manifest: edited})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if result.CacheInfo.WheelHits != 0 {
		t.Errorf("wheel hits = %d, want 0", result.CacheInfo.WheelHits)
	}
	if result.CacheInfo.RingHits != 3 {
		t.Errorf("ring hits = %d, want 3", result.CacheInfo.RingHits)
	}
}

func TestExecute_ChannelsDOT(t *testing.T) {
	runner := NewRunner(nil, nil, nil)

	result, err := runner.Execute(context.Background(), Options{
		Manifest: loadTestManifest(t),
		View:     ViewChannels,
		Formats:  []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	dot := string(result.Artifacts[FormatDOT])
	if !strings.Contains(dot, "graph channels") {
		t.Errorf("dot output missing graph declaration")
	}
}
