package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soleren/mandala/pkg/manifest"
	"github.com/soleren/mandala/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	view     string   // "wheel" or "channels"
	formats  []string // output formats: "svg", "png", "dot"
	detailed bool     // include gate names in channel graph labels
	noCache  bool     // bypass the render cache
}

// newRenderCmd creates the render command.
//
// Default settings:
//   - view: wheel
//   - format: svg
//   - caching: on (~/.cache/mandala/)
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{view: pipeline.ViewWheel}

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Render a wheel manifest to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.view, "view", "t", opts.view, "view to render: wheel (default), channels")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show gate names in the channel graph")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output has
// a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	switch strings.TrimPrefix(ext, ".") {
	case pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatDOT:
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the manifest and runs the pipeline, writing one file
// per requested format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	m, err := manifest.LoadFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded manifest: %d rings", len(m.Rings))

	// Graphviz layout can take a while on large channel graphs.
	var sp *Spinner
	if opts.view == pipeline.ViewChannels {
		sp = newSpinnerWithContext(ctx, "Laying out channel graph")
		sp.Start()
	}

	prog := newProgress(logger)
	runner := newRunner(opts.noCache, logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Manifest: m,
		View:     opts.view,
		Formats:  opts.formats,
		Detailed: opts.detailed,
		Logger:   logger,
	})
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s view", opts.view))

	if len(opts.formats) == 1 {
		format := opts.formats[0]
		path := opts.output
		if path == "" {
			path = basePath("", input) + "." + format
		}
		return writeArtifact(ctx, path, result.Artifacts[format])
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		if err := writeArtifact(ctx, base+"."+format, result.Artifacts[format]); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(ctx context.Context, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	loggerFromContext(ctx).Infof("Generated %s", path)
	printFile(path)
	return nil
}
