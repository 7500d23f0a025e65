package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/soleren/mandala/pkg/band"
	"github.com/soleren/mandala/pkg/cache"
	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/geom"
	"github.com/soleren/mandala/pkg/knowledge"
	"github.com/soleren/mandala/pkg/manifest"
	"github.com/soleren/mandala/pkg/observability"
	"github.com/soleren/mandala/pkg/render"
	"github.com/soleren/mandala/pkg/render/channelgraph"
	"github.com/soleren/mandala/pkg/rings"
	"github.com/soleren/mandala/pkg/wheel"
)

// ringTTL bounds how long cached ring markup survives; manifests change
// rarely, tables almost never.
const ringTTL = 24 * time.Hour

// Stats records per-stage timings for one execution.
type Stats struct {
	RingTime    time.Duration
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	RingHits  int
	WheelHits int
}

// Result is the output of one pipeline execution.
type Result struct {
	// Artifacts maps format name to rendered bytes.
	Artifacts map[string][]byte

	// Composition holds the placements of the wheel view. Nil for
	// other views and when the whole wheel was served from cache.
	Composition *wheel.Composition

	Stats     Stats
	CacheInfo CacheInfo
}

// Runner executes the pipeline with caching. It is stateless apart from
// the cache and logger; one Runner may serve many goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. Nil arguments select a NullCache, the
// default keyer, and the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs tables → rings → compose → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	src, err := r.loadTable(opts.Manifest)
	if err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	if opts.View == ViewChannels {
		return r.renderChannels(ctx, src, opts, result)
	}

	// A whole-wheel hit skips ring generation and composition entirely.
	wheelKey := r.Keyer.WheelKey(opts.Manifest.Hash(), cache.WheelKeyOpts{Format: FormatSVG})
	if data, ok, err := r.Cache.Get(ctx, wheelKey); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "wheel")
		result.Artifacts[FormatSVG] = data
		result.CacheInfo.WheelHits++
		logger.Info("rendered wheel", "cached", true)
		return result, nil
	}
	observability.Cache().OnCacheMiss(ctx, "wheel")

	ringStart := time.Now()
	generated, hits, err := r.generateRings(ctx, src, opts.Manifest)
	if err != nil {
		return nil, err
	}
	result.Stats.RingTime = time.Since(ringStart)
	result.CacheInfo.RingHits = hits
	logger.Info("generated rings",
		"rings", len(generated),
		"cached", hits,
		"duration", result.Stats.RingTime)

	composeStart := time.Now()
	comp, err := r.compose(ctx, generated, opts.Manifest)
	if err != nil {
		return nil, err
	}
	result.Composition = comp
	result.Stats.ComposeTime = time.Since(composeStart)
	logger.Info("composed wheel",
		"bands", len(comp.Placements),
		"duration", result.Stats.ComposeTime)

	renderStart := time.Now()
	if err := r.renderWheel(ctx, generated, comp, wheelKey, opts, result); err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	logger.Info("rendered wheel",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) loadTable(m *manifest.Manifest) (knowledge.Source, error) {
	if m.Table == "" {
		return knowledge.Default(), nil
	}
	return knowledge.LoadFile(m.Table)
}

// tableOrigin identifies the knowledge table in cache keys.
func tableOrigin(m *manifest.Manifest) string {
	if m.Table == "" {
		return "default"
	}
	return m.Table
}

func (r *Runner) generateRings(ctx context.Context, src knowledge.Source, m *manifest.Manifest) ([]rings.Ring, int, error) {
	cal := m.Geom()
	tableKey := r.Keyer.TableKey(tableOrigin(m))

	generated := make([]rings.Ring, 0, len(m.Rings))
	hits := 0
	for _, spec := range m.Rings {
		key := r.Keyer.RingKey(tableKey, spec.Name, cache.RingKeyOpts{
			Inner:  spec.Inner,
			Outer:  spec.Outer,
			Offset: cal.Offset,
		})

		if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
			var ring rings.Ring
			if err := json.Unmarshal(data, &ring); err == nil {
				observability.Cache().OnCacheHit(ctx, "ring")
				generated = append(generated, ring)
				hits++
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, "ring")

		gen, err := rings.Lookup(spec.Name)
		if err != nil {
			return nil, 0, err
		}

		observability.Pipeline().OnRingStart(ctx, spec.Name)
		start := time.Now()
		ring, err := gen.Generate(src, cal, band.Geometry{Inner: spec.Inner, Outer: spec.Outer})
		observability.Pipeline().OnRingComplete(ctx, spec.Name, len(ring.Markup), time.Since(start), err)
		if err != nil {
			return nil, 0, err
		}
		generated = append(generated, ring)

		if data, err := json.Marshal(ring); err == nil {
			if err := r.Cache.Set(ctx, key, data, ringTTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "ring", len(data))
			}
		}
	}
	return generated, hits, nil
}

func (r *Runner) compose(ctx context.Context, generated []rings.Ring, m *manifest.Manifest) (*wheel.Composition, error) {
	sources := make([]wheel.Source, 0, len(generated))
	for _, ring := range generated {
		sources = append(sources, ring.Source())
	}

	observability.Pipeline().OnComposeStart(ctx, len(sources))
	start := time.Now()
	comp, err := wheel.Compose(sources, wheel.Options{
		Center:       geom.Point{}, // wheel space is centered at the origin
		StartRadius:  m.StartRadius,
		Padding:      m.Padding,
		UniformScale: m.UniformScale,
		Margin:       m.Margin,
	})
	observability.Pipeline().OnComposeComplete(ctx, len(sources), time.Since(start), err)
	return comp, err
}

func (r *Runner) renderWheel(ctx context.Context, generated []rings.Ring, comp *wheel.Composition, wheelKey string, opts Options, result *Result) error {
	m := opts.Manifest

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	var renderOpts []render.Option
	if m.Background != "" {
		renderOpts = append(renderOpts, render.WithBackground(m.Background))
	}
	if m.Color != "" {
		renderOpts = append(renderOpts, render.WithColor(m.Color))
	}
	svg, err := render.SVG(generated, comp, renderOpts...)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return err
	}

	result.Artifacts[FormatSVG] = svg
	if err := r.Cache.Set(ctx, wheelKey, svg, ringTTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "wheel", len(svg))
	}
	return nil
}

func (r *Runner) renderChannels(ctx context.Context, src knowledge.Source, opts Options, result *Result) (*Result, error) {
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	dot := channelgraph.ToDOT(src, channelgraph.Options{Detailed: opts.Detailed})
	var firstErr error
	for _, f := range opts.Formats {
		switch f {
		case FormatDOT:
			result.Artifacts[FormatDOT] = []byte(dot)
		case FormatSVG:
			svg, err := channelgraph.RenderSVG(ctx, dot)
			if err != nil {
				firstErr = err
			} else {
				result.Artifacts[FormatSVG] = svg
			}
		case FormatPNG:
			png, err := channelgraph.RenderPNG(ctx, dot)
			if err != nil {
				firstErr = err
			} else {
				result.Artifacts[FormatPNG] = png
			}
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), firstErr)
	if firstErr != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, firstErr, "render channel graph")
	}
	result.Stats.RenderTime = time.Since(start)
	opts.Logger.Info("rendered channel graph",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)
	return result, nil
}
