package complexity

import (
	"math"

	"github.com/pkg/errors"
)

type Class int

const (
	Undetermined Class = iota
	Linear
	Constant
	Logarithmic
)

func (c Class) String() string {
	switch c {
	case Linear:
		return "n"
	case Constant:
		return "c"
	case Logarithmic:
		return "log n"
	default:
		return "undetermined"
	}
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(text []byte) error {
	switch string(text) {
	case "n":
		*c = Linear
	case "c":
		*c = Constant
	case "log n":
		*c = Logarithmic
	case "undetermined", "":
		*c = Undetermined
	default:
		return errors.Errorf("complexity: unknown class %q", text)
	}
	return nil
}

const (
	LinearThreshold      = 0.9
	ConstantBand         = 0.3
	LogarithmicThreshold = 0.8
)

// A rule sees the raw correlation r, already computed once per series; ok is
// false when r is undefined.
type rule struct {
	class Class
	match func(r float64, ok bool, sizes, runtimes []float64) bool
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{Linear, isLinear},
	{Constant, isConstant},
	{Logarithmic, func(_ float64, _ bool, sizes, runtimes []float64) bool {
		return isLogarithmic(sizes, runtimes)
	}},
}

func isLinear(r float64, ok bool, _, _ []float64) bool {
	return ok && r > LinearThreshold
}

func isConstant(r float64, ok bool, _, _ []float64) bool {
	return ok && r > -ConstantBand && r < ConstantBand
}

// isLogarithmic correlates 2^runtime with size: if t ~ log n then 2^t ~ n.
func isLogarithmic(sizes, runtimes []float64) bool {
	exp := make([]float64, len(runtimes))
	for i, t := range runtimes {
		exp[i] = math.Pow(2, t)
	}
	r, ok := Correlation(sizes, exp)
	return ok && r > LogarithmicThreshold
}

type Result struct {
	Correlation float64 `json:"correlation"`
	Defined     bool    `json:"defined"`
	Class       Class   `json:"class"`
}

// Classify never returns NaN or Inf: an undefined coefficient is reported as
// zero with Defined unset.
func Classify(sizes, runtimes []float64) Result {
	r, ok := Correlation(sizes, runtimes)
	res := Result{Correlation: r, Defined: ok, Class: Undetermined}
	for _, rl := range rules {
		if rl.match(r, ok, sizes, runtimes) {
			res.Class = rl.class
			break
		}
	}
	return res
}
