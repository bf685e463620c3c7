// Package pipeline implements the rfsee batch conversion: index records in,
// browsable relationship site out.
//
// A run is three sequential passes over the corpus:
//
//  1. Populate: stream index records into the catalog, canonicalize the
//     declared relation lists, and extract each entry's citations from its
//     document text.
//  2. Reverse citations: one full-corpus pass inverting the citation
//     relation, so every entry also knows who cites it.
//  3. Render: emit a DOT graph, an SVG and a detail page per entry, plus
//     the global search page.
//
// The catalog is mutated only during passes 1 and 2; rendering treats it
// as read-only. There is no concurrency: one writer at a time, and the
// passes are deterministic, so identical input produces byte-identical
// output.
package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/mboehme/rfsee/pkg/cache"
	"github.com/mboehme/rfsee/pkg/catalog"
	"github.com/mboehme/rfsee/pkg/corpus"
	"github.com/mboehme/rfsee/pkg/render"
	"github.com/mboehme/rfsee/pkg/rfcindex"
)

// Output format constants.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatHTML = "html"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatHTML: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, html)", format)
	}
	return nil
}

// RecordSource yields index records in document order. The index file is
// the usual source; tests feed in-memory slices.
type RecordSource interface {
	Each(fn func(rfcindex.Record) error) error
}

// IndexFile is a RecordSource backed by an rfc-index.xml file.
type IndexFile string

// Each implements RecordSource. An unreadable or unparsable index aborts
// the run; it is the one fatal input condition.
func (p IndexFile) Each(fn func(rfcindex.Record) error) error {
	return rfcindex.ReadFile(string(p), fn)
}

// Records is an in-memory RecordSource.
type Records []rfcindex.Record

// Each implements RecordSource.
func (rs Records) Each(fn func(rfcindex.Record) error) error {
	for _, r := range rs {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// Options configures a pipeline run.
type Options struct {
	// Index yields the catalog records (required).
	Index RecordSource

	// Texts retrieves document text for citation extraction (required).
	// Missing documents are recoverable; affected entries simply get an
	// empty citation list.
	Texts corpus.Source

	// OutDir is where rendered output is written (required for rendering).
	OutDir string

	// Formats selects the per-entry outputs. Defaults to all of
	// dot, svg, html. The global search page is written whenever html is
	// requested.
	Formats []string

	// TitleWidth is the word-wrap width for titles on graph nodes.
	// Zero means render.DefaultTitleWidth.
	TitleWidth int

	// Refresh bypasses the artifact cache and re-renders everything.
	Refresh bool

	// Logger receives progress and per-entry diagnostics. Defaults to a
	// discard logger.
	Logger *log.Logger
}

// ValidateForBuild checks the fields needed by the catalog passes.
func (o *Options) ValidateForBuild() error {
	if o.Index == nil {
		return fmt.Errorf("index source is required")
	}
	if o.Texts == nil {
		return fmt.Errorf("text source is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender checks and defaults the fields needed by pass 3.
func (o *Options) ValidateForRender() error {
	if o.OutDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatDOT, FormatSVG, FormatHTML}
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	if o.TitleWidth <= 0 {
		o.TitleWidth = render.DefaultTitleWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// wantsFormat reports whether format was requested.
func (o *Options) wantsFormat(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// BuildStats describes the catalog passes.
type BuildStats struct {
	Entries      int // concrete entries loaded from the index
	Stubs        int // entries created by reference only
	Citations    int // total extracted citation links
	MissingTexts int // entries whose document text could not be read
}

// RenderStats describes the render pass.
type RenderStats struct {
	Rendered  int // entries rendered
	CacheHits int // SVG artifacts served from cache
}

// Result contains the outputs of a full pipeline run.
type Result struct {
	// Store is the populated catalog (all passes applied).
	Store *catalog.Store

	Build  BuildStats
	Render RenderStats
}

// Runner executes pipeline passes with a shared cache and logger.
// The runner holds no per-run state.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables artifact caching; a nil
// logger discards output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
