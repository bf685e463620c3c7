package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// SVGRenderer renders DOT graphs to SVG through an embedded Graphviz.
// One renderer is shared across a whole build: Graphviz initialization is
// far more expensive than a single layout, and a corpus build renders tens
// of thousands of graphs.
//
// The renderer is not safe for concurrent use; the batch passes are
// sequential, so no locking is needed.
type SVGRenderer struct {
	gv *graphviz.Graphviz
}

// NewSVGRenderer initializes a Graphviz instance for SVG rendering.
// Call Close when done.
func NewSVGRenderer(ctx context.Context) (*SVGRenderer, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	return &SVGRenderer{gv: gv}, nil
}

// Render renders DOT text to SVG bytes. The layout engine is whatever the
// graph's layout attribute requests (twopi for relationship graphs).
func (r *SVGRenderer) Render(ctx context.Context, dot string) ([]byte, error) {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := r.gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// Close releases the Graphviz instance.
func (r *SVGRenderer) Close() error {
	return r.gv.Close()
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg element so the image scales to
// its container when embedded in a detail page.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
