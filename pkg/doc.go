// Package pkg provides the core libraries for mandala wheel rendering.
//
// # Overview
//
// Mandala renders Human Design wheels: circular diagrams built from
// concentric annular bands of hexagrams, gate numbers, names and line
// markers. The pkg directory is organized into four main areas:
//
//  1. Geometry - angle calibration and band math ([geom], [band], [wheel])
//  2. Domain - gate and channel tables, ring generators ([knowledge], [rings])
//  3. Rendering - SVG assembly and the channel graph ([render])
//  4. Orchestration - manifests, caching, the pipeline ([manifest], [cache], [pipeline], [store])
//
// # Architecture
//
// The typical data flow through mandala:
//
//	TOML manifest
//	         ↓
//	    [knowledge] package (gate order, names, channels)
//	         ↓
//	    [rings] package (per-band SVG markup)
//	         ↓
//	    [wheel] package (snap bands into one wheel)
//	         ↓
//	    [render] package (final SVG document)
//
// # Quick Start
//
// Render a wheel programmatically:
//
//	m, err := manifest.LoadFile("wheel.toml")
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Manifest: m})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("wheel.svg", result.Artifacts[pipeline.FormatSVG], 0o644)
package pkg
