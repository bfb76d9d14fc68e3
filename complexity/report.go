package complexity

import (
	"fmt"
	"strings"
)

// DefaultSizes are the map sizes every kind is measured at.
var DefaultSizes = []int{0, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}

// Samples holds one runtime per size for each operation, in microseconds.
type Samples struct {
	Sizes  []int     `json:"sizes"`
	Set    []float64 `json:"set"`
	Get    []float64 `json:"get"`
	Remove []float64 `json:"remove"`
}

func NewSamples(sizes []int) *Samples {
	return &Samples{
		Sizes:  append([]int(nil), sizes...),
		Set:    make([]float64, 0, len(sizes)),
		Get:    make([]float64, 0, len(sizes)),
		Remove: make([]float64, 0, len(sizes)),
	}
}

// Add appends the runtimes measured at the next size.
func (s *Samples) Add(set, get, remove float64) {
	s.Set = append(s.Set, set)
	s.Get = append(s.Get, get)
	s.Remove = append(s.Remove, remove)
}

func (s *Samples) sizes() []float64 {
	xs := make([]float64, len(s.Sizes))
	for i, n := range s.Sizes {
		xs[i] = float64(n)
	}
	return xs
}

type Report struct {
	Set    Result `json:"set"`
	Get    Result `json:"get"`
	Remove Result `json:"remove"`
}

// Analyze classifies the three operations against the shared sizes.
func Analyze(s Samples) Report {
	xs := s.sizes()
	return Report{
		Set:    Classify(xs, s.Set),
		Get:    Classify(xs, s.Get),
		Remove: Classify(xs, s.Remove),
	}
}

func writeResult(b *strings.Builder, op string, r Result) {
	fmt.Fprintf(b, "%s correlation coefficient: %v\n", op, r.Correlation)
	if r.Class == Undetermined {
		fmt.Fprintf(b, "%s Big-O cannot be determined from runtimes\n\n", op)
		return
	}
	fmt.Fprintf(b, "%s Big-O is %s\n\n", op, r.Class)
}

func (r Report) String() string {
	var b strings.Builder
	writeResult(&b, "Set", r.Set)
	writeResult(&b, "Get", r.Get)
	writeResult(&b, "Remove", r.Remove)
	return b.String()
}
