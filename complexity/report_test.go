package complexity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	s := NewSamples(DefaultSizes)
	for _, n := range DefaultSizes {
		s.Add(float64(n)*0.1, 1, 0)
	}
	s.Remove[len(s.Remove)-1] = 1
	s.Remove[0] = 1

	report := Analyze(*s)
	assert.Equal(t, Linear, report.Set.Class)
	assert.Equal(t, Undetermined, report.Get.Class)
	assert.Equal(t, Constant, report.Remove.Class)

	text := report.String()
	assert.Regexp(t, `Set correlation coefficient: (1|0\.99+\d*)\n`, text)
	assert.Contains(t, text, "Set Big-O is n\n\n")
	assert.Contains(t, text, "Get correlation coefficient: 0\n")
	assert.Contains(t, text, "Get Big-O cannot be determined from runtimes\n\n")
	assert.Contains(t, text, "Remove Big-O is c\n\n")
	assert.NotContains(t, text, "NaN")
}

func TestAnalyzeShortSamples(t *testing.T) {
	s := NewSamples([]int{0, 100, 200})
	s.Add(1, 2, 3)

	report := Analyze(*s)
	assert.Equal(t, Undetermined, report.Set.Class)
	assert.Equal(t, Undetermined, report.Get.Class)
	assert.Equal(t, Undetermined, report.Remove.Class)
}

func TestNewSamplesCopiesSizes(t *testing.T) {
	sizes := []int{1, 2, 3}
	s := NewSamples(sizes)
	sizes[0] = 100
	assert.Equal(t, []int{1, 2, 3}, s.Sizes)
}
