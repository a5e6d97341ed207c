package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()

	assert.True(t, s.Toggle(ByPosition(3)))
	assert.True(t, s.Has(ByPosition(3)))
	assert.False(t, s.Toggle(ByPosition(3)))
	assert.Equal(t, 0, s.Len())
}

func TestSelectionKeysDistinguishKind(t *testing.T) {
	s := NewSelection()
	s.Toggle(ByPosition(1))

	assert.False(t, s.Has(ByIdentity("1")))
	assert.Equal(t, "pos:1", ByPosition(1).String())
	assert.Equal(t, "id:1", ByIdentity("1").String())
	assert.True(t, ByIdentity("x").IsIdentity())
}

func TestSelectionReplaceDropsDuplicates(t *testing.T) {
	s := NewSelection()
	s.Toggle(ByPosition(9))

	s.Replace([]SelectionKey{ByPosition(2), ByPosition(0), ByPosition(2)})
	assert.Equal(t, []SelectionKey{ByPosition(2), ByPosition(0)}, s.Keys())
	assert.False(t, s.Has(ByPosition(9)))
}

func TestSelectionRetain(t *testing.T) {
	s := NewSelection()
	for _, k := range []SelectionKey{ByPosition(0), ByIdentity("a"), ByPosition(4)} {
		s.Toggle(k)
	}

	s.Retain(func(k SelectionKey) bool { return !k.IsIdentity() })
	assert.Equal(t, []SelectionKey{ByPosition(0), ByPosition(4)}, s.Keys())
	assert.False(t, s.Has(ByIdentity("a")))
}

func TestSelectionResolve(t *testing.T) {
	view := []Record{{"id": "a"}, {"id": "b"}, {"id": "a", "dup": true}}
	identity := func(r Record) (string, bool) {
		id, ok := r["id"].(string)
		return id, ok
	}

	s := NewSelection()
	s.Toggle(ByPosition(2))
	s.Toggle(ByPosition(-1))
	s.Toggle(ByIdentity("a"))
	s.Toggle(ByIdentity("missing"))

	got := s.Resolve(view, identity)
	assert.Equal(t, []Record{view[2], view[0]}, got, "first record wins for a repeated identity")

	assert.Equal(t, []Record{view[2]}, s.Resolve(view, nil))
}

func TestSelectionKeysIsCopy(t *testing.T) {
	s := NewSelection()
	s.Toggle(ByPosition(1))

	keys := s.Keys()
	keys[0] = ByPosition(8)
	assert.True(t, s.Has(ByPosition(1)))
}
