package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mboehme/rfsee/pkg/cache"
	"github.com/mboehme/rfsee/pkg/catalog"
	"github.com/mboehme/rfsee/pkg/render"
)

// Execute runs the complete build: catalog passes followed by rendering.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	store, buildStats, err := r.BuildCatalog(ctx, opts)
	if err != nil {
		return nil, err
	}

	renderStats, err := r.RenderSite(ctx, store, opts)
	if err != nil {
		return nil, err
	}

	return &Result{Store: store, Build: buildStats, Render: renderStats}, nil
}

// RenderSite runs pass 3: one graph description, image and page per entry,
// plus the global search page. The store is treated as read-only.
func (r *Runner) RenderSite(ctx context.Context, store *catalog.Store, opts Options) (RenderStats, error) {
	var stats RenderStats
	if err := opts.ValidateForRender(); err != nil {
		return stats, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return stats, fmt.Errorf("create output dir: %w", err)
	}

	var svg *render.SVGRenderer
	if opts.wantsFormat(FormatSVG) {
		var err error
		if svg, err = render.NewSVGRenderer(ctx); err != nil {
			return stats, err
		}
		defer svg.Close()
	}

	dotOpts := render.DotOptions{TitleWidth: opts.TitleWidth}
	for _, id := range store.IDs() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		bundle := catalog.BundleFor(store.Get(id))
		dot := render.ToDOT(bundle, store, dotOpts)

		if opts.wantsFormat(FormatDOT) {
			if err := r.writeFile(opts.OutDir, string(id)+".dot", []byte(dot)); err != nil {
				return stats, err
			}
		}
		if svg != nil {
			data, hit, err := r.renderSVG(ctx, svg, dot, opts.Refresh)
			if err != nil {
				return stats, fmt.Errorf("render %s: %w", id, err)
			}
			if hit {
				stats.CacheHits++
			}
			if err := r.writeFile(opts.OutDir, string(id)+".svg", data); err != nil {
				return stats, err
			}
		}
		if opts.wantsFormat(FormatHTML) {
			if err := r.writePage(opts.OutDir, id, store.Title(id)); err != nil {
				return stats, err
			}
		}

		stats.Rendered++
		opts.Logger.Debug("rendered entry", "id", id)
	}

	if opts.wantsFormat(FormatHTML) {
		if err := r.writeIndex(opts.OutDir, store); err != nil {
			return stats, err
		}
	}

	opts.Logger.Info("site rendered",
		"entries", stats.Rendered,
		"cache_hits", stats.CacheHits,
		"dir", opts.OutDir)
	return stats, nil
}

// renderSVG renders DOT to SVG, consulting the artifact cache first.
// Rendering is deterministic, so the DOT hash fully identifies the result.
func (r *Runner) renderSVG(ctx context.Context, svg *render.SVGRenderer, dot string, refresh bool) ([]byte, bool, error) {
	key := cache.ArtifactKey(FormatSVG, cache.Hash([]byte(dot)))

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return data, true, nil
		}
	}

	data, err := svg.Render(ctx, dot)
	if err != nil {
		return nil, false, err
	}
	_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	return data, false, nil
}

func (r *Runner) writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (r *Runner) writePage(dir string, id catalog.EntryID, title string) error {
	path := filepath.Join(dir, string(id)+".html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return render.WriteDetailPage(f, id, title)
}

func (r *Runner) writeIndex(dir string, store *catalog.Store) error {
	path := filepath.Join(dir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return render.WriteIndexPage(f, store.Listing())
}
