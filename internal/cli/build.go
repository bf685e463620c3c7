package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mboehme/rfsee/pkg/cache"
	"github.com/mboehme/rfsee/pkg/corpus"
	"github.com/mboehme/rfsee/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "rfsee"

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	config     string   // path to TOML config file
	index      string   // path to rfc-index.xml
	texts      string   // directory holding rfcNNNN.txt files
	out        string   // output directory
	formats    []string // output formats: dot, svg, html
	titleWidth int      // word-wrap width for node titles
	noCache    bool     // disable the artifact cache
	cacheDir   string   // override cache directory
	refresh    bool     // re-render even on cache hit
}

// newBuildCmd creates the build command, which runs the full pipeline:
// read the index, extract citations from the corpus, invert the citation
// relation, and write one graph per RFC plus the search page.
func newBuildCmd() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the full relationship site from the RFC index and text corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file (default rfsee.toml if present)")
	cmd.Flags().StringVar(&opts.index, "index", "", "path to rfc-index.xml")
	cmd.Flags().StringVar(&opts.texts, "texts", "", "directory containing rfcNNNN.txt documents")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output directory")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "output format(s): dot, svg, html (default all)")
	cmd.Flags().IntVar(&opts.titleWidth, "title-width", 0, "word-wrap width for node titles")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "artifact cache directory (default ~/.cache/rfsee)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render artifacts even when cached")

	return cmd
}

// runBuild resolves config and flags, then executes all three passes.
func runBuild(ctx context.Context, opts *buildOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	index := orString(opts.index, cfg.Index)
	texts := orString(opts.texts, cfg.Texts)
	out := orString(opts.out, cfg.Out)
	formats := opts.formats
	if len(formats) == 0 {
		formats = cfg.Render.Formats
	}
	for _, name := range []struct{ n, v string }{
		{"--index", index}, {"--texts", texts}, {"--out", out},
	} {
		if err := requirePath(name.n, name.v); err != nil {
			return err
		}
	}

	// Tag every log line of this run so interleaved runs stay separable.
	logger = logger.With("run", uuid.NewString()[:8])
	logger.Infof("Building site from %s", index)

	c, err := newCache(opts.noCache || cfg.Cache.Disabled, orString(opts.cacheDir, cfg.Cache.Dir))
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(c, logger)
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Index:      pipeline.IndexFile(index),
		Texts:      corpus.NewDir(texts),
		OutDir:     out,
		Formats:    formats,
		TitleWidth: orInt(opts.titleWidth, cfg.Render.TitleWidth),
		Refresh:    opts.refresh,
		Logger:     logger,
	}

	p := newProgress(logger)
	store, buildStats, err := runner.BuildCatalog(ctx, pipeOpts)
	if err != nil {
		printError("Build failed: %v", err)
		return err
	}
	p.done("Catalog built")

	spinner := newSpinner(ctx, "Rendering graphs...")
	spinner.Start()
	renderStats, err := runner.RenderSite(ctx, store, pipeOpts)
	spinner.Stop()
	if err != nil {
		printError("Render failed: %v", err)
		return err
	}

	printSuccess("Site written to %s", out)
	printStat("entries", buildStats.Entries)
	printStat("stubs", buildStats.Stubs)
	printStat("citations", buildStats.Citations)
	printStat("missing texts", buildStats.MissingTexts)
	printStat("rendered", renderStats.Rendered)
	printStat("cache hits", renderStats.CacheHits)
	return nil
}

// newCache constructs the artifact cache for a run. Cache setup failures
// degrade to a null cache rather than aborting the build.
func newCache(disabled bool, dir string) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/rfsee/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
