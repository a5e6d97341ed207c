package table

import (
	"slices"
	"strconv"
)

// SelectionMode decides what a selection entry refers to.
type SelectionMode int

const (
	// SelectByPosition keys entries by row position in the current view.
	// Re-sorting or replacing the data does not move the selection with
	// the records: position 0 stays selected whatever record lands there.
	SelectByPosition SelectionMode = iota

	// SelectByIdentity keys entries by the value of an identity field, so
	// a selected record stays selected wherever it moves.
	SelectByIdentity
)

// String returns the config spelling of the mode.
func (m SelectionMode) String() string {
	if m == SelectByIdentity {
		return "identity"
	}
	return "position"
}

// SelectionKey is one selection entry: either a view position or a record
// identity.
type SelectionKey struct {
	Position   int
	Identity   string
	byIdentity bool
}

// ByPosition keys a selection entry by view position.
func ByPosition(pos int) SelectionKey {
	return SelectionKey{Position: pos}
}

// ByIdentity keys a selection entry by record identity.
func ByIdentity(id string) SelectionKey {
	return SelectionKey{Identity: id, byIdentity: true}
}

// IsIdentity reports whether the key refers to a record identity.
func (k SelectionKey) IsIdentity() bool {
	return k.byIdentity
}

func (k SelectionKey) String() string {
	if k.byIdentity {
		return "id:" + k.Identity
	}
	return "pos:" + strconv.Itoa(k.Position)
}

// Selection is an insertion ordered set of selection keys.
type Selection struct {
	keys []SelectionKey
	set  map[SelectionKey]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{set: make(map[SelectionKey]struct{})}
}

// Has reports whether k is selected.
func (s *Selection) Has(k SelectionKey) bool {
	_, ok := s.set[k]
	return ok
}

// Len returns the number of selected keys, resolvable or not.
func (s *Selection) Len() int {
	return len(s.keys)
}

// Toggle removes k if present, otherwise adds it. It returns whether k is
// selected afterwards.
func (s *Selection) Toggle(k SelectionKey) bool {
	if s.Has(k) {
		s.remove(k)
		return false
	}
	s.add(k)
	return true
}

// Replace sets the selection to keys, dropping duplicates.
func (s *Selection) Replace(keys []SelectionKey) {
	s.keys = s.keys[:0]
	clear(s.set)
	for _, k := range keys {
		if !s.Has(k) {
			s.add(k)
		}
	}
}

// Clear removes every key.
func (s *Selection) Clear() {
	s.Replace(nil)
}

// Retain keeps only the keys for which keep returns true.
func (s *Selection) Retain(keep func(SelectionKey) bool) {
	s.keys = slices.DeleteFunc(s.keys, func(k SelectionKey) bool {
		if keep(k) {
			return false
		}
		delete(s.set, k)
		return true
	})
}

// Keys returns a copy of the selected keys in insertion order.
func (s *Selection) Keys() []SelectionKey {
	return slices.Clone(s.keys)
}

// Resolve materializes the selected records against view, in insertion
// order. Positions outside the view and identities not present in it are
// skipped. identity may be nil when no identity keys are in use.
func (s *Selection) Resolve(view []Record, identity func(Record) (string, bool)) []Record {
	out := make([]Record, 0, len(s.keys))
	var byID map[string]Record
	for _, k := range s.keys {
		if !k.byIdentity {
			if k.Position >= 0 && k.Position < len(view) {
				out = append(out, view[k.Position])
			}
			continue
		}
		if identity == nil {
			continue
		}
		if byID == nil {
			byID = indexByIdentity(view, identity)
		}
		if rec, ok := byID[k.Identity]; ok {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Selection) add(k SelectionKey) {
	s.keys = append(s.keys, k)
	s.set[k] = struct{}{}
}

func (s *Selection) remove(k SelectionKey) {
	delete(s.set, k)
	if i := slices.Index(s.keys, k); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
}

// indexByIdentity maps identities to records; the first record wins when
// identities repeat.
func indexByIdentity(view []Record, identity func(Record) (string, bool)) map[string]Record {
	byID := make(map[string]Record, len(view))
	for _, rec := range view {
		id, ok := identity(rec)
		if !ok {
			continue
		}
		if _, dup := byID[id]; !dup {
			byID[id] = rec
		}
	}
	return byID
}
