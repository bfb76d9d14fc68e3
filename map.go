package bigomap

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	ErrUnknownKind     = errors.New("bigomap: unknown map kind")
	ErrInvalidCapacity = errors.New("bigomap: capacity must be positive")
)

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is the contract shared by every variant under benchmark.
// A missing key is never an error: Get reports it with false and Remove ignores it.
type Map[K comparable, V any] interface {
	Set(key K, value V)
	Get(key K) (V, bool)
	Remove(key K)
	Count() int

	// Iterate visits entries until fn returns false. Dont modify the map inside fn.
	Iterate(fn func(key K, value V) bool)
	Kind() Kind
}

type Kind int

const (
	KindLinear Kind = iota + 1
	KindSorted
	KindHashed
)

var Kinds = []Kind{KindLinear, KindSorted, KindHashed}

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindSorted:
		return "sorted"
	case KindHashed:
		return "hashed"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < KindLinear || k > KindHashed {
		return nil, errors.Wrapf(ErrUnknownKind, "%d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind accepts the kind names plus the aliases "binary" and "hash".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return KindLinear, nil
	case "sorted", "binary":
		return KindSorted, nil
	case "hashed", "hash":
		return KindHashed, nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

type options struct {
	capacity int
}

type Option func(*options)

// WithCapacity sets the slot count of a hashed map. Other kinds ignore it.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// New builds an empty map of the requested kind.
func New[K constraints.Ordered, V any](kind Kind, opts ...Option) (Map[K, V], error) {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case KindLinear:
		return NewLinear[K, V](), nil
	case KindSorted:
		return NewSorted[K, V](), nil
	case KindHashed:
		m, err := NewHashed[K, V](o.capacity)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%d", int(kind))
}
