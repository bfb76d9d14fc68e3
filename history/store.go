// Package history keeps benchmark results in memory under increasing ids.
package history

import (
	"sync"

	"github.com/goupdate/bigomap"
	"github.com/goupdate/bigomap/bench"
)

type Store struct {
	sync.RWMutex

	results *bigomap.Sorted[int64, *bench.Result]
	maxId   int64 //last issued id, never reused
}

func New() *Store {
	return &Store{
		results: bigomap.NewSorted[int64, *bench.Result](),
	}
}

// Add stores r under a fresh id and writes that id into r.
func (s *Store) Add(r *bench.Result) int64 {
	s.Lock()
	defer s.Unlock()

	s.maxId++
	r.Id = s.maxId
	s.results.Set(r.Id, r)
	return r.Id
}

func (s *Store) Get(id int64) (*bench.Result, bool) {
	s.RLock()
	defer s.RUnlock()

	return s.results.Get(id)
}

func (s *Store) Delete(id int64) {
	s.Lock()
	defer s.Unlock()

	s.results.Remove(id)
}

func (s *Store) Clear() {
	s.Lock()
	defer s.Unlock()

	s.results = bigomap.NewSorted[int64, *bench.Result]()
}

func (s *Store) Count() int {
	s.RLock()
	defer s.RUnlock()

	return s.results.Count()
}

// GetAll returns results ordered by id.
func (s *Store) GetAll() []*bench.Result {
	return s.Find(func(*bench.Result) bool { return true })
}

func (s *Store) FindKind(kind bigomap.Kind) []*bench.Result {
	return s.Find(func(r *bench.Result) bool { return r.Kind == kind })
}

func (s *Store) Find(match func(r *bench.Result) bool) []*bench.Result {
	s.RLock()
	defer s.RUnlock()

	ret := make([]*bench.Result, 0)
	s.results.Iterate(func(_ int64, r *bench.Result) bool {
		if match(r) {
			ret = append(ret, r)
		}
		return true
	})
	return ret
}
