// Package pipeline runs the complete wheel rendering flow.
//
// The pipeline has four stages:
//
//  1. Tables: load the knowledge table (embedded default or from disk)
//  2. Rings: generate each configured band's markup
//  3. Compose: snap the bands into one wheel
//  4. Render: assemble the output document(s)
//
// CLI and server both execute through the same Runner so caching and
// logging behave identically everywhere.
package pipeline

import (
	"github.com/charmbracelet/log"

	"github.com/soleren/mandala/pkg/errors"
	"github.com/soleren/mandala/pkg/manifest"
)

// Views selectable per render.
const (
	ViewWheel    = "wheel"    // the radial mandala
	ViewChannels = "channels" // node-link channel graph
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// ValidViews is the set of supported views.
var ValidViews = map[string]bool{
	ViewWheel:    true,
	ViewChannels: true,
}

// validFormats lists the formats each view supports. The wheel view is
// SVG-only; the channel graph goes through Graphviz and can rasterize.
var validFormats = map[string]map[string]bool{
	ViewWheel:    {FormatSVG: true},
	ViewChannels: {FormatSVG: true, FormatPNG: true, FormatDOT: true},
}

// ValidateFormats checks that every requested format suits the view.
func ValidateFormats(view string, formats []string) error {
	for _, f := range formats {
		if !validFormats[view][f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"format %q not supported for %s view", f, view)
		}
	}
	return nil
}

// Options configures one pipeline execution.
type Options struct {
	// Manifest is the wheel definition. Required.
	Manifest *manifest.Manifest

	// View selects what to render. Empty means ViewWheel.
	View string

	// Formats lists the outputs to produce. Empty means ["svg"].
	Formats []string

	// Detailed includes gate names in channel graph labels.
	Detailed bool

	// Logger receives stage progress. Nil means log.Default().
	Logger *log.Logger
}

// ValidateAndSetDefaults normalizes the options in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Manifest == nil {
		return errors.New(errors.ErrCodeInvalidManifest, "no manifest supplied")
	}
	if o.View == "" {
		o.View = ViewWheel
	}
	if !ValidViews[o.View] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid view: %s", o.View)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.View, o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}
