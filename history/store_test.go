package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goupdate/bigomap"
	"github.com/goupdate/bigomap/bench"
)

func TestAddAndGet(t *testing.T) {
	s := New()
	r := &bench.Result{Kind: bigomap.KindHashed}
	id := s.Add(r)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, id, r.Id)

	got, ok := s.Get(id)
	assert.True(t, ok)
	assert.Same(t, r, got)

	_, ok = s.Get(42)
	assert.False(t, ok)
}

func TestDeleteKeepsIds(t *testing.T) {
	s := New()
	s.Add(&bench.Result{Kind: bigomap.KindLinear})
	second := s.Add(&bench.Result{Kind: bigomap.KindSorted})
	s.Delete(second)
	s.Delete(second)
	assert.Equal(t, 1, s.Count())

	third := s.Add(&bench.Result{Kind: bigomap.KindHashed})
	assert.Equal(t, int64(3), third, "ids are not reused")

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.GetAll())
	assert.Equal(t, int64(4), s.Add(&bench.Result{}))
}

func TestFind(t *testing.T) {
	s := New()
	for _, kind := range []bigomap.Kind{bigomap.KindHashed, bigomap.KindLinear, bigomap.KindHashed} {
		s.Add(&bench.Result{Kind: kind})
	}

	all := s.GetAll()
	assert.Len(t, all, 3)
	for i, r := range all {
		assert.Equal(t, int64(i+1), r.Id, "results come back ordered by id")
	}

	hashed := s.FindKind(bigomap.KindHashed)
	assert.Len(t, hashed, 2)
	assert.Equal(t, int64(1), hashed[0].Id)
	assert.Equal(t, int64(3), hashed[1].Id)
	assert.Empty(t, s.FindKind(bigomap.KindSorted))
}
