package complexity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSizes() []float64 {
	xs := make([]float64, len(DefaultSizes))
	for i, n := range DefaultSizes {
		xs[i] = float64(n)
	}
	return xs
}

func runtimesOf(fn func(size float64) float64) []float64 {
	xs := testSizes()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}
	return ys
}

func TestConstantRuntimeIsNeverLinear(t *testing.T) {
	res := Classify(testSizes(), runtimesOf(func(float64) float64 { return 1 }))
	assert.NotEqual(t, Linear, res.Class)
	assert.Contains(t, []Class{Constant, Undetermined}, res.Class)
	assert.False(t, res.Defined, "zero variance has no correlation")
	assert.Equal(t, 0.0, res.Correlation)
}

func TestLinearRuntime(t *testing.T) {
	res := Classify(testSizes(), runtimesOf(func(n float64) float64 { return n * 0.1 }))
	assert.True(t, res.Defined)
	assert.Greater(t, res.Correlation, 0.9)
	assert.Equal(t, Linear, res.Class)
}

func TestLogarithmicRuntime(t *testing.T) {
	ys := runtimesOf(func(n float64) float64 { return math.Log2(n + 1) })
	res := Classify(testSizes(), ys)
	assert.LessOrEqual(t, res.Correlation, 0.9)
	assert.InDelta(t, 0.758, res.Correlation, 0.001)
	assert.True(t, isLogarithmic(testSizes(), ys))
	assert.Equal(t, Logarithmic, res.Class)
}

func TestOriginalRuns(t *testing.T) {
	for _, tc := range []struct {
		name     string
		runtimes []float64
		r        float64
		class    Class
	}{
		{"linear set", []float64{77, 19, 36, 51, 72, 112, 100, 115, 131, 150, 162}, 0.90315, Linear},
		{"hashed get", []float64{3, 0, 1, 1, 3, 3, 1, 1, 1, 2, 1}, -0.11644, Constant},
		{"hashed set", []float64{28, 1, 2, 2, 4, 2, 2, 2, 5, 3, 4}, -0.41008, Undetermined},
		{"hashed remove", []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, 0, Constant},
	} {
		res := Classify(testSizes(), tc.runtimes)
		assert.True(t, res.Defined, tc.name)
		assert.InDelta(t, tc.r, res.Correlation, 0.0001, tc.name)
		assert.Equal(t, tc.class, res.Class, tc.name)
	}
}

func TestFirstMatchWins(t *testing.T) {
	// linear data also passes the exponentiated test once scaled down
	ys := runtimesOf(func(n float64) float64 { return n / 1000 })
	require.True(t, isLogarithmic(testSizes(), ys))
	assert.Equal(t, Linear, Classify(testSizes(), ys).Class)
}

func TestRawCorrelationRules(t *testing.T) {
	assert.True(t, isLinear(0.95, true, nil, nil))
	assert.False(t, isLinear(0.95, false, nil, nil), "undefined coefficient")
	assert.False(t, isLinear(LinearThreshold, true, nil, nil))

	assert.True(t, isConstant(0, true, nil, nil))
	assert.True(t, isConstant(-0.29, true, nil, nil))
	assert.False(t, isConstant(0, false, nil, nil), "undefined coefficient")
	assert.False(t, isConstant(-ConstantBand, true, nil, nil))

	for _, rl := range rules[:2] {
		assert.False(t, rl.match(0.5, true, testSizes(), runtimesOf(func(n float64) float64 { return n })), rl.class.String())
	}
}

func TestHugeRuntimesDoNotOverflow(t *testing.T) {
	ys := runtimesOf(func(n float64) float64 { return 2000 - n })
	res := Classify(testSizes(), ys)
	assert.Equal(t, Undetermined, res.Class, "strong negative trend with 2^t overflow")
	assert.False(t, math.IsNaN(res.Correlation))
	assert.InDelta(t, -1, res.Correlation, 1e-9)
}

func TestCorrelationDegenerate(t *testing.T) {
	_, ok := Correlation([]float64{1}, []float64{1})
	assert.False(t, ok, "single sample")

	_, ok = Correlation([]float64{1, 2}, []float64{1, 2, 3})
	assert.False(t, ok, "length mismatch")

	_, ok = Correlation([]float64{1, 2, 3}, []float64{0, 0, 0})
	assert.False(t, ok, "zero variance")

	_, ok = Correlation([]float64{1, 2, 3}, []float64{1, math.Inf(1), 3})
	assert.False(t, ok, "infinite value")

	r, ok := Correlation([]float64{1, 2, 3}, []float64{3, 2, 1})
	assert.True(t, ok)
	assert.InDelta(t, -1, r, 1e-12)
}

func TestZScores(t *testing.T) {
	z := ZScores([]float64{2, 4, 6})
	assert.InDeltaSlice(t, []float64{-1, 0, 1}, z, 1e-12)
	assert.InDelta(t, 2, StdDev([]float64{2, 4, 6}), 1e-12)
	assert.Equal(t, 0.0, StdDev([]float64{5}))
}

func TestClassText(t *testing.T) {
	for _, c := range []Class{Undetermined, Linear, Constant, Logarithmic} {
		text, err := c.MarshalText()
		require.NoError(t, err)
		var back Class
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}

	var c Class
	assert.Error(t, c.UnmarshalText([]byte("n^2")))

	body, err := json.Marshal(Result{Class: Logarithmic})
	require.NoError(t, err)
	assert.JSONEq(t, `{"correlation":0,"defined":false,"class":"log n"}`, string(body))
}
