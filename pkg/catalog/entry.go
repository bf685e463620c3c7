package catalog

// Entry is one catalog record per RFC.
//
// Title, Year, Month and Abstract come straight from the index and are not
// validated; any of them may be empty. The four declared relation lists are
// taken from the index as-is (symmetric pairs are trusted, not checked).
// Citations and ReverseCitations are computed by the pipeline:
//
//   - Citations holds the RFCs this document cites in bracketed citation
//     blocks, in first-appearance order, without duplicates.
//   - ReverseCitations holds the RFCs whose documents cite this one, in the
//     order the citing entries were discovered during the corpus pass.
//
// A stub entry (created because some other entry referenced it) has empty
// metadata and empty relation lists; downstream consumers must tolerate it.
type Entry struct {
	ID       EntryID
	Title    string
	Year     string
	Month    string
	Abstract string

	Obsoletes   []EntryID
	ObsoletedBy []EntryID
	Updates     []EntryID
	UpdatedBy   []EntryID

	Citations        []EntryID
	ReverseCitations []EntryID
}

// Stub reports whether the entry was created as a placeholder for an
// identifier that was referenced but never described by the index.
func (e *Entry) Stub() bool {
	return e.Title == "" && e.Year == "" && e.Abstract == ""
}

// Bundle is the per-entry relationship view handed to rendering. Relation
// lists carry identifiers only; renderers resolve titles via the [Store].
type Bundle struct {
	Self *Entry

	Obsoletes        []EntryID
	ObsoletedBy      []EntryID
	Updates          []EntryID
	UpdatedBy        []EntryID
	Citations        []EntryID
	ReverseCitations []EntryID
}

// BundleFor assembles the relationship bundle for an entry. The slices are
// the entry's own; callers treat bundles as read-only.
func BundleFor(e *Entry) Bundle {
	return Bundle{
		Self:             e,
		Obsoletes:        e.Obsoletes,
		ObsoletedBy:      e.ObsoletedBy,
		Updates:          e.Updates,
		UpdatedBy:        e.UpdatedBy,
		Citations:        e.Citations,
		ReverseCitations: e.ReverseCitations,
	}
}
