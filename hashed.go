package bigomap

import (
	"fmt"
	"hash/maphash"

	"github.com/pkg/errors"
)

const DefaultCapacity = 2000

type slot[K comparable, V any] struct {
	used  bool
	key   K
	value V
}

// Hashed is a fixed-capacity table with one slot per home index.
// A key that finds its home slot taken by another key goes to a linear
// collision chain; there is no probing and no resizing.
type Hashed[K comparable, V any] struct {
	slots      []slot[K, V]
	used       int
	chain      *Linear[K, V]
	collisions int

	hash func(K) uint64
}

func NewHashed[K comparable, V any](capacity int) (*Hashed[K, V], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}

	seed := maphash.MakeSeed()
	return &Hashed[K, V]{
		slots: make([]slot[K, V], capacity),
		chain: NewLinear[K, V](),
		hash: func(key K) uint64 {
			return maphash.Comparable(seed, key)
		},
	}, nil
}

func (m *Hashed[K, V]) Kind() Kind {
	return KindHashed
}

func (m *Hashed[K, V]) index(key K) int {
	return int(m.hash(key) % uint64(len(m.slots)))
}

func (m *Hashed[K, V]) Set(key K, value V) {
	home := &m.slots[m.index(key)]
	switch {
	case !home.used:
		*home = slot[K, V]{used: true, key: key, value: value}
		m.used++
	case home.key == key:
		home.value = value
	default:
		m.collide(key, value)
	}
}

// collide counts only keys that are new to the chain.
func (m *Hashed[K, V]) collide(key K, value V) {
	was := m.chain.Count()
	m.chain.Set(key, value)
	if m.chain.Count() > was {
		m.collisions++
	}
}

func (m *Hashed[K, V]) Get(key K) (V, bool) {
	home := &m.slots[m.index(key)]
	if home.used && home.key == key {
		return home.value, true
	}
	return m.chain.Get(key)
}

// Remove frees the home slot and pulls the first chained entry with the same
// home index back into it, so no key is ever both home and chained.
func (m *Hashed[K, V]) Remove(key K) {
	index := m.index(key)
	home := &m.slots[index]
	if !home.used || home.key != key {
		m.chain.Remove(key)
		return
	}

	e, ok := m.chain.removeIf(func(k K) bool {
		return m.index(k) == index
	})
	if ok {
		*home = slot[K, V]{used: true, key: e.Key, value: e.Value}
		return
	}
	*home = slot[K, V]{}
	m.used--
}

func (m *Hashed[K, V]) Count() int {
	return m.used + m.chain.Count()
}

// Iterate visits home slots in index order, then the chain.
func (m *Hashed[K, V]) Iterate(fn func(key K, value V) bool) {
	for i := range m.slots {
		if m.slots[i].used && !fn(m.slots[i].key, m.slots[i].value) {
			return
		}
	}
	m.chain.Iterate(fn)
}

func (m *Hashed[K, V]) Capacity() int {
	return len(m.slots)
}

// Collisions is the number of distinct keys ever routed to the chain.
func (m *Hashed[K, V]) Collisions() int {
	return m.collisions
}

func (m *Hashed[K, V]) Stats() string {
	return fmt.Sprintf("%d slots used of %d, %d chained, %d collisions",
		m.used, len(m.slots), m.chain.Count(), m.collisions)
}
