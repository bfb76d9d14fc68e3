// Package bench builds pre-populated maps from a synthetic string workload,
// times their operations at increasing sizes and classifies the results.
package bench

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"

	"github.com/goupdate/bigomap"
)

const (
	DefaultWorkloadSize = 1000
	DefaultKeyLength    = 10
)

// Workload is a fixed list of random lowercase strings used as both keys and values.
type Workload struct {
	strings []string
}

// NewWorkload generates size strings of keyLength letters. A zero seed picks a random one.
func NewWorkload(size, keyLength int, seed int64) (*Workload, error) {
	if size < 0 {
		return nil, errors.Errorf("bench: workload size must not be negative, got %d", size)
	}
	if keyLength < 1 {
		return nil, errors.Errorf("bench: key length must be positive, got %d", keyLength)
	}

	faker := gofakeit.New(seed)
	w := &Workload{strings: make([]string, size)}
	for i := range w.strings {
		w.strings[i] = strings.ToLower(faker.LetterN(uint(keyLength)))
	}
	return w, nil
}

func (w *Workload) Len() int {
	return len(w.strings)
}

func (w *Workload) At(i int) string {
	return w.strings[i]
}

// MakeMap returns a map of the given kind loaded with the first size workload
// strings, each stored as its own value.
func MakeMap(kind bigomap.Kind, size int, w *Workload, capacity int) (bigomap.Map[string, string], error) {
	if size < 0 || size > w.Len() {
		return nil, errors.Errorf("bench: size %d outside workload of %d", size, w.Len())
	}

	m, err := bigomap.New[string, string](kind, bigomap.WithCapacity(capacity))
	if err != nil {
		return nil, errors.Wrapf(err, "make %s map", kind)
	}
	for i := 0; i < size; i++ {
		m.Set(w.strings[i], w.strings[i])
	}
	return m, nil
}
