package bigomap

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Sorted keeps keys strictly ascending and uses binary search for lookups.
// Inserts and removes shift the tail, so they stay O(n).
type Sorted[K constraints.Ordered, V any] struct {
	keys   []K
	values []V
}

func NewSorted[K constraints.Ordered, V any]() *Sorted[K, V] {
	return &Sorted[K, V]{}
}

func (m *Sorted[K, V]) Kind() Kind {
	return KindSorted
}

func (m *Sorted[K, V]) binarySearch(target K) (int, bool) {
	lower, upper := 0, len(m.keys)-1
	for lower <= upper {
		current := int(uint(lower+upper) >> 1)
		switch {
		case m.keys[current] == target:
			return current, true
		case m.keys[current] > target:
			upper = current - 1
		default:
			lower = current + 1
		}
	}
	return -1, false
}

// insertPosition returns the first index whose key is greater than target.
func (m *Sorted[K, V]) insertPosition(target K) int {
	return sort.Search(len(m.keys), func(i int) bool {
		return m.keys[i] > target
	})
}

func (m *Sorted[K, V]) Set(key K, value V) {
	if index, found := m.binarySearch(key); found {
		m.values[index] = value
		return
	}

	index := m.insertPosition(key)

	var zeroK K
	m.keys = append(m.keys, zeroK)
	copy(m.keys[index+1:], m.keys[index:])
	m.keys[index] = key

	var zeroV V
	m.values = append(m.values, zeroV)
	copy(m.values[index+1:], m.values[index:])
	m.values[index] = value
}

func (m *Sorted[K, V]) Get(key K) (V, bool) {
	if index, found := m.binarySearch(key); found {
		return m.values[index], true
	}
	var zero V
	return zero, false
}

func (m *Sorted[K, V]) Remove(key K) {
	index, found := m.binarySearch(key)
	if !found {
		return
	}
	m.keys = append(m.keys[:index], m.keys[index+1:]...)
	m.values = append(m.values[:index], m.values[index+1:]...)
}

func (m *Sorted[K, V]) Count() int {
	return len(m.keys)
}

// Iterate visits entries in ascending key order.
func (m *Sorted[K, V]) Iterate(fn func(key K, value V) bool) {
	for i := range m.keys {
		if !fn(m.keys[i], m.values[i]) {
			return
		}
	}
}

func (m *Sorted[K, V]) Keys() []K {
	return append([]K(nil), m.keys...)
}
