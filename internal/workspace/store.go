package workspace

import (
	"fmt"
	"sort"
	"sync"

	"github.com/justcomments/justcomments/internal/entities"
)

// SelectionKind says how a selection update names its rows.
type SelectionKind string

const (
	// SelectionInclude means the given indices are the selection.
	SelectionInclude SelectionKind = "include"
	// SelectionExclude means the selection is every index except the given
	// ones. Normalized to an explicit inclusion set immediately.
	SelectionExclude SelectionKind = "exclude"
)

// Store holds the state of one document session: the canonical record
// sequence, the active selection and the column visibility. All operations
// are atomic with respect to each other; readers never observe a partial
// update.
//
// An empty selection means "all records selected" for export purposes.
type Store struct {
	mu sync.Mutex

	documentName string
	records      []entities.CommentRecord
	selection    []int // sorted explicit indices; empty = all
	visibility   entities.ColumnVisibility

	// generation guards against a slow stale extraction overwriting the
	// result of a newer one. BeginExtraction hands out a token and
	// CommitExtraction refuses any token that is no longer the latest.
	generation uint64
}

func NewStore() *Store {
	return &Store{visibility: entities.DefaultVisibility()}
}

// BeginExtraction registers the start of an extraction pass and returns its
// generation token.
func (s *Store) BeginExtraction() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// CommitExtraction atomically replaces the record set with the result of the
// extraction identified by gen. It returns false, leaving the store
// untouched, when a newer extraction has started in the meantime.
// A successful commit resets the selection to "all".
func (s *Store) CommitExtraction(gen uint64, documentName string, records []entities.CommentRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}

	s.documentName = documentName
	s.records = append([]entities.CommentRecord(nil), records...)
	s.selection = nil
	return true
}

// ClearIfCurrent drops the record set after a failed extraction, keeping no
// partial results. Settings are untouched. Like CommitExtraction it refuses
// stale tokens: a slow failing extraction must not wipe the records of the
// one that superseded it. Reports whether the clear happened.
func (s *Store) ClearIfCurrent(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}

	s.documentName = ""
	s.records = nil
	s.selection = nil
	return true
}

// SetSelection replaces the selection. Exclusion sets are normalized to the
// complement against the current record range before being stored, so the
// inclusion/exclusion distinction never leaks past this boundary.
func (s *Store) SetSelection(kind SelectionKind, ids []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.records)
	for _, id := range ids {
		if id < 0 || id >= count {
			return fmt.Errorf("selection index %d out of range [0,%d)", id, count)
		}
	}

	switch kind {
	case SelectionInclude:
		s.selection = normalizeIndices(ids)
	case SelectionExclude:
		excluded := make(map[int]bool, len(ids))
		for _, id := range ids {
			excluded[id] = true
		}
		selection := make([]int, 0, count)
		for i := 0; i < count; i++ {
			if !excluded[i] {
				selection = append(selection, i)
			}
		}
		s.selection = selection
	default:
		return fmt.Errorf("unknown selection kind %q", kind)
	}
	return nil
}

// Selection returns the current explicit selection, sorted ascending.
// Empty means every record is selected.
func (s *Store) Selection() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.selection...)
}

// EffectiveExportSet returns the records the next export operates on: the
// selected records in original order, or every record when the selection is
// empty.
func (s *Store) EffectiveExportSet() []entities.CommentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.selection) == 0 {
		return append([]entities.CommentRecord(nil), s.records...)
	}

	out := make([]entities.CommentRecord, 0, len(s.selection))
	for _, idx := range s.selection {
		out = append(out, s.records[idx])
	}
	return out
}

// Records returns the full record sequence in original order.
func (s *Store) Records() []entities.CommentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.CommentRecord(nil), s.records...)
}

// SetColumnVisibility applies the given map. The comment column is forced
// visible regardless of input; callers cannot hide it.
func (s *Store) SetColumnVisibility(v entities.ColumnVisibility) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visibility = v.Normalize()
}

// Visibility returns a copy of the current column visibility.
func (s *Store) Visibility() entities.ColumnVisibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibility.Clone()
}

// DocumentName returns the name of the currently loaded document, or "".
func (s *Store) DocumentName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documentName
}

// Unload drops the current document, records and selection but keeps the
// column settings for the next file.
func (s *Store) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documentName = ""
	s.records = nil
	s.selection = nil
}

// Reset performs a full document reset: everything Unload does plus
// restoring the default column visibility.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documentName = ""
	s.records = nil
	s.selection = nil
	s.visibility = entities.DefaultVisibility()
}

// normalizeIndices sorts and deduplicates a set of indices.
func normalizeIndices(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	dedup := out[:0]
	for i, id := range out {
		if i == 0 || id != out[i-1] {
			dedup = append(dedup, id)
		}
	}
	return dedup
}
