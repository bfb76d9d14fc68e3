package bigomap

// Linear keeps keys and values in insertion order and finds them by full scan.
type Linear[K comparable, V any] struct {
	keys   []K
	values []V
}

func NewLinear[K comparable, V any]() *Linear[K, V] {
	return &Linear[K, V]{}
}

func (m *Linear[K, V]) Kind() Kind {
	return KindLinear
}

func (m *Linear[K, V]) find(key K) int {
	for i := range m.keys {
		if m.keys[i] == key {
			return i
		}
	}
	return -1
}

// Add or overwrite
func (m *Linear[K, V]) Set(key K, value V) {
	if index := m.find(key); index >= 0 {
		m.values[index] = value
		return
	}
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

func (m *Linear[K, V]) Get(key K) (V, bool) {
	if index := m.find(key); index >= 0 {
		return m.values[index], true
	}
	var zero V
	return zero, false
}

// Remove keeps the order of the remaining entries.
func (m *Linear[K, V]) Remove(key K) {
	index := m.find(key)
	if index < 0 {
		return
	}
	m.keys = append(m.keys[:index], m.keys[index+1:]...)
	m.values = append(m.values[:index], m.values[index+1:]...)
}

func (m *Linear[K, V]) Count() int {
	return len(m.keys)
}

func (m *Linear[K, V]) Iterate(fn func(key K, value V) bool) {
	for i := range m.keys {
		if !fn(m.keys[i], m.values[i]) {
			return
		}
	}
}

// Keys returns a copy in insertion order.
func (m *Linear[K, V]) Keys() []K {
	return append([]K(nil), m.keys...)
}

// removeIf deletes and returns the first entry matching fn.
func (m *Linear[K, V]) removeIf(fn func(key K) bool) (Entry[K, V], bool) {
	for i := range m.keys {
		if fn(m.keys[i]) {
			e := Entry[K, V]{Key: m.keys[i], Value: m.values[i]}
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			m.values = append(m.values[:i], m.values[i+1:]...)
			return e, true
		}
	}
	return Entry[K, V]{}, false
}
