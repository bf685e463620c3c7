package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mboehme/rfsee/pkg/catalog"
	"github.com/mboehme/rfsee/pkg/corpus"
	rfseeerrors "github.com/mboehme/rfsee/pkg/errors"
	"github.com/mboehme/rfsee/pkg/pipeline"
	"github.com/mboehme/rfsee/pkg/render"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	config     string // path to TOML config file
	index      string // path to rfc-index.xml
	texts      string // directory holding rfcNNNN.txt files
	output     string // output file ("" means stdout)
	format     string // dot or svg
	titleWidth int    // word-wrap width for node titles
}

// newGraphCmd creates the graph command, which builds the catalog and emits
// the relationship graph of a single RFC without writing the full site.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{format: pipeline.FormatDOT}

	cmd := &cobra.Command{
		Use:   "graph <rfc>",
		Short: "Emit the relationship graph for a single RFC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file (default rfsee.toml if present)")
	cmd.Flags().StringVar(&opts.index, "index", "", "path to rfc-index.xml")
	cmd.Flags().StringVar(&opts.texts, "texts", "", "directory containing rfcNNNN.txt documents")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().IntVar(&opts.titleWidth, "title-width", 0, "word-wrap width for node titles")

	return cmd
}

// runGraph builds the catalog, then renders just the requested entry.
func runGraph(ctx context.Context, raw string, opts *graphOpts) error {
	logger := loggerFromContext(ctx)

	id, err := catalog.ParseID(raw)
	if err != nil {
		return rfseeerrors.Wrap(rfseeerrors.ErrCodeInvalidID, err, "parse %q", raw)
	}
	if opts.format != pipeline.FormatDOT && opts.format != pipeline.FormatSVG {
		return rfseeerrors.New(rfseeerrors.ErrCodeInvalidFormat, "invalid format: %q (must be dot or svg)", opts.format)
	}

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	index := orString(opts.index, cfg.Index)
	texts := orString(opts.texts, cfg.Texts)
	if err := requirePath("--index", index); err != nil {
		return err
	}
	if err := requirePath("--texts", texts); err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, logger)
	defer runner.Close()

	store, _, err := runner.BuildCatalog(ctx, pipeline.Options{
		Index:  pipeline.IndexFile(index),
		Texts:  corpus.NewDir(texts),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	entry := store.Get(id)
	if entry == nil {
		return rfseeerrors.New(rfseeerrors.ErrCodeEntryUnknown, "%s is not in the index", id)
	}

	dot := render.ToDOT(catalog.BundleFor(entry), store, render.DotOptions{
		TitleWidth: orInt(opts.titleWidth, cfg.Render.TitleWidth),
	})

	data := []byte(dot)
	if opts.format == pipeline.FormatSVG {
		svg, err := render.NewSVGRenderer(ctx)
		if err != nil {
			return err
		}
		defer svg.Close()
		if data, err = svg.Render(ctx, dot); err != nil {
			return rfseeerrors.Wrap(rfseeerrors.ErrCodeRenderFailed, err, "render %s", id)
		}
	}

	if opts.output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return rfseeerrors.Wrap(rfseeerrors.ErrCodeWriteFailed, err, "write %s", opts.output)
	}
	printSuccess("Wrote %s graph for %s to %s", opts.format, id, opts.output)
	return nil
}
