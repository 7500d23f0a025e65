// Package channelgraph renders the wheel's channel pairings as a
// node-link graph.
//
// The wheel itself shows gates by angular position; this supplemental
// view shows which gates connect to which, laid out by Graphviz instead
// of the radial composer.
package channelgraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/soleren/mandala/pkg/knowledge"
)

// Options configures channel graph rendering.
type Options struct {
	// Detailed includes gate names in node labels.
	// When false, only the gate number is shown.
	Detailed bool
}

// ToDOT converts the knowledge table's channels to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(src knowledge.Source, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph channels {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("\n")

	// Only gates that participate in a channel appear as nodes.
	inChannel := make(map[int]bool)
	for _, c := range src.Channels() {
		inChannel[c.Gates[0]] = true
		inChannel[c.Gates[1]] = true
	}

	for _, g := range src.Gates() {
		if !inChannel[g.Number] {
			continue
		}
		fmt.Fprintf(&buf, "  %d [label=%q];\n", g.Number, fmtLabel(g, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, c := range src.Channels() {
		fmt.Fprintf(&buf, "  %d -- %d [label=%q];\n", c.Gates[0], c.Gates[1], c.Name)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(g knowledge.Gate, detailed bool) string {
	if !detailed {
		return fmt.Sprintf("%d", g.Number)
	}
	return fmt.Sprintf("%d\n%s", g.Number, g.Name)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer func() { _ = g.Close() }()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render graph: %w", err)
	}
	return buf.Bytes(), nil
}
