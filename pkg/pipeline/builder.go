package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/mboehme/rfsee/pkg/catalog"
	"github.com/mboehme/rfsee/pkg/cite"
	"github.com/mboehme/rfsee/pkg/corpus"
	"github.com/mboehme/rfsee/pkg/rfcindex"
)

// BuildCatalog runs passes 1 and 2: populate the catalog from the index
// and invert the citation relation across the whole corpus.
//
// Per-entry problems (missing document text, a malformed identifier in a
// relation list) are logged and survived; only a failure of the index
// source itself aborts the build.
func (r *Runner) BuildCatalog(ctx context.Context, opts Options) (*catalog.Store, BuildStats, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, BuildStats{}, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	store := catalog.NewStore()
	var stats BuildStats

	// Pass 1: populate entries in index order.
	err := opts.Index.Each(func(rec rfcindex.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.populate(store, rec, opts, &stats)
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("read index: %w", err)
	}

	// Pass 2: reverse citations, one full pass in insertion order.
	reverseCitations(store)

	stats.Stubs = store.Len() - stats.Entries
	opts.Logger.Info("catalog built",
		"entries", stats.Entries,
		"stubs", stats.Stubs,
		"citations", stats.Citations,
		"missing_texts", stats.MissingTexts)

	return store, stats, nil
}

// populate inserts one index record: metadata, canonicalized relation
// lists (with stubs for every referenced identifier), and the citations
// extracted from the entry's document text.
func (r *Runner) populate(store *catalog.Store, rec rfcindex.Record, opts Options, stats *BuildStats) {
	id, err := catalog.ParseID(rec.DocID)
	if err != nil {
		opts.Logger.Warn("skipping record with bad identifier", "doc_id", rec.DocID, "err", err)
		return
	}

	e := store.Ensure(id)
	e.Title = rec.Title
	e.Year = rec.Year
	e.Month = rec.Month
	e.Abstract = rec.Abstract

	e.Obsoletes = canonicalize(store, rec.Obsoletes, opts)
	e.ObsoletedBy = canonicalize(store, rec.ObsoletedBy, opts)
	e.Updates = canonicalize(store, rec.Updates, opts)
	e.UpdatedBy = canonicalize(store, rec.UpdatedBy, opts)

	text, err := opts.Texts.Text(id)
	switch {
	case err == nil:
		e.Citations = cite.Extract(text, id)
		stats.Citations += len(e.Citations)
	case errors.Is(err, corpus.ErrNotFound):
		opts.Logger.Debug("no document text", "id", id)
		stats.MissingTexts++
	default:
		opts.Logger.Warn("could not read document text", "id", id, "err", err)
		stats.MissingTexts++
	}

	stats.Entries++
	opts.Logger.Debug("loaded entry",
		"id", id,
		"year", rec.Year,
		"citations", len(e.Citations))
}

// canonicalize converts a declared relation list to canonical identifiers,
// creating a stub entry for every referenced identifier so later passes
// never hit a missing key. Malformed identifiers are dropped with a
// warning; the surrounding entry is kept.
func canonicalize(store *catalog.Store, raw []string, opts Options) []catalog.EntryID {
	if len(raw) == 0 {
		return nil
	}
	ids := make([]catalog.EntryID, 0, len(raw))
	for _, s := range raw {
		id, err := catalog.ParseID(s)
		if err != nil {
			opts.Logger.Warn("dropping malformed relation target", "raw", s, "err", err)
			continue
		}
		store.Ensure(id)
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

// reverseCitations inverts the citation relation: after it returns, B is
// in A.Citations exactly when A is in B.ReverseCitations.
//
// Entries are visited in store-insertion order, so the order of each
// ReverseCitations list is the discovery order of the citing entries, not
// any property of the cited document. Citation targets never described by
// the index get a stub here, keeping the invariant total over the store.
func reverseCitations(store *catalog.Store) {
	// Snapshot: stubs created mid-pass have no citations of their own and
	// need no visit.
	ids := store.IDs()

	seen := make(map[catalog.EntryID]map[catalog.EntryID]struct{})
	for _, aID := range ids {
		a := store.Get(aID)
		for _, bID := range a.Citations {
			b := store.Ensure(bID)
			citers := seen[bID]
			if citers == nil {
				citers = make(map[catalog.EntryID]struct{})
				seen[bID] = citers
			}
			if _, dup := citers[aID]; dup {
				continue
			}
			citers[aID] = struct{}{}
			b.ReverseCitations = append(b.ReverseCitations, aID)
		}
	}
}
