package catalog

// Store is the shared catalog of every RFC seen during a run: entries
// described by the index plus stub entries for identifiers that were only
// ever referenced by someone else's relation list.
//
// The store preserves insertion order, which makes the reverse-citation
// pass and all generated output deterministic for identical input. Entries
// are never removed; the store lives for the whole batch job.
//
// The builder owns the store and hands references to extraction and
// rendering. Safe for concurrent reads, not for concurrent writes (the
// batch passes are sequential with exactly one writer at a time).
type Store struct {
	entries map[EntryID]*Entry
	order   []EntryID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[EntryID]*Entry)}
}

// Get returns the entry for id, or nil if the id has never been seen.
func (s *Store) Get(id EntryID) *Entry {
	return s.entries[id]
}

// Ensure returns the entry for id, creating a stub with empty metadata on
// first reference. Stubs keep rendering and the reverse-citation pass from
// ever hitting a missing key.
func (s *Store) Ensure(id EntryID) *Entry {
	if e, ok := s.entries[id]; ok {
		return e
	}
	e := &Entry{ID: id}
	s.entries[id] = e
	s.order = append(s.order, id)
	return e
}

// Len returns the number of entries, stubs included.
func (s *Store) Len() int { return len(s.entries) }

// IDs returns all identifiers in insertion order. The returned slice is
// shared; callers must not modify it.
func (s *Store) IDs() []EntryID { return s.order }

// Title returns the title for id, or "" for stubs and unknown ids.
func (s *Store) Title(id EntryID) string {
	if e := s.entries[id]; e != nil {
		return e.Title
	}
	return ""
}

// ListingItem is one row of the global index listing.
type ListingItem struct {
	ID    EntryID
	Title string
}

// Listing returns (id, title) pairs for every entry in insertion order,
// used to build the search page.
func (s *Store) Listing() []ListingItem {
	items := make([]ListingItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, ListingItem{ID: id, Title: s.entries[id].Title})
	}
	return items
}
