// Package complexity infers the Big-O class of an operation from runtimes
// measured at increasing input sizes.
package complexity

import "math"

func mean(data []float64) float64 {
	sum := 0.0
	for _, d := range data {
		sum += d
	}
	return sum / float64(len(data))
}

// StdDev is the sample standard deviation (n-1 denominator).
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	m := mean(data)
	sum := 0.0
	for _, d := range data {
		sum += (d - m) * (d - m)
	}
	return math.Sqrt(sum / float64(len(data)-1))
}

// ZScores standardizes data. A zero-variance input yields NaN or Inf values;
// Correlation checks for that before using them.
func ZScores(data []float64) []float64 {
	m := mean(data)
	sd := StdDev(data)
	z := make([]float64, len(data))
	for i, d := range data {
		z[i] = (d - m) / sd
	}
	return z
}

func finite(data []float64) bool {
	for _, d := range data {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return false
		}
	}
	return true
}

// Correlation returns the Pearson coefficient of ys on xs, computed as the sum
// of z-score products over n-1. ok is false when the coefficient is undefined:
// fewer than two samples, mismatched lengths, non-finite input or a
// zero-variance sequence.
func Correlation(xs, ys []float64) (r float64, ok bool) {
	n := len(xs)
	if n < 2 || n != len(ys) || !finite(xs) || !finite(ys) {
		return 0, false
	}
	if StdDev(xs) == 0 || StdDev(ys) == 0 {
		return 0, false
	}

	zx, zy := ZScores(xs), ZScores(ys)
	for i := range zx {
		r += zx[i] * zy[i]
	}
	r /= float64(n - 1)
	if !finite([]float64{r}) {
		return 0, false
	}
	return r, true
}
