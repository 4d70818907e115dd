package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplerIsDeterministic(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
		assert.Equal(t, a.Poisson(1.4), b.Poisson(1.4))
	}
	assert.NotEqual(t, NewSampler(42).Uint64(), NewSampler(43).Uint64())
}

func TestIntBetweenIsInclusive(t *testing.T) {
	s := NewSampler(1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.IntBetween(23, 30)
		require.GreaterOrEqual(t, v, 23)
		require.LessOrEqual(t, v, 30)
		seen[v] = true
	}
	assert.Len(t, seen, 8)
	assert.Equal(t, 7, s.IntBetween(7, 7))
}

func TestBoundedNormalClamps(t *testing.T) {
	s := NewSampler(5)
	for i := 0; i < 1000; i++ {
		v := s.BoundedNormal(50, 40, 1, 99)
		require.GreaterOrEqual(t, v, 1.0)
		require.LessOrEqual(t, v, 99.0)
	}
}

func TestWeightedIndex(t *testing.T) {
	s := NewSampler(7)

	_, err := s.WeightedIndex(nil)
	assert.Error(t, err)
	_, err = s.WeightedIndex([]float64{0, 0})
	assert.Error(t, err)
	_, err = s.WeightedIndex([]float64{1, -1})
	assert.Error(t, err)

	// weights that do not sum to one are normalised
	counts := make([]int, 3)
	for i := 0; i < 10000; i++ {
		idx, err := s.WeightedIndex([]float64{2, 0, 6})
		require.NoError(t, err)
		counts[idx]++
	}
	assert.Zero(t, counts[1])
	assert.InDelta(t, 0.75, float64(counts[2])/10000, 0.03)
}

func TestWeightedChoice(t *testing.T) {
	type nat struct {
		name   string
		weight float64
	}
	s := NewSampler(3)
	got, err := WeightedChoice(s, []nat{{"English", 0}, {"Spanish", 1}}, func(n nat) float64 { return n.weight })
	require.NoError(t, err)
	assert.Equal(t, "Spanish", got.name)
}

func TestPoissonMean(t *testing.T) {
	s := NewSampler(11)
	for _, lambda := range []float64{0.8, 1.5, 45} {
		sum := 0
		n := 20000
		for i := 0; i < n; i++ {
			v := s.Poisson(lambda)
			require.GreaterOrEqual(t, v, 0)
			sum += v
		}
		assert.InDelta(t, lambda, float64(sum)/float64(n), lambda*0.05+0.05, "lambda %v", lambda)
	}
	assert.Zero(t, s.Poisson(0))
	assert.Zero(t, s.Poisson(math.NaN()))
}

func TestSampleIsDistinctAndSorted(t *testing.T) {
	s := NewSampler(9)
	idx := s.Sample(50, 10)
	require.Len(t, idx, 10)
	for i := 1; i < len(idx); i++ {
		assert.Less(t, idx[i-1], idx[i])
	}
	assert.Len(t, s.Sample(3, 10), 3)
}

func TestRoundingAndClamping(t *testing.T) {
	assert.Equal(t, 72.4, RoundTo(72.4449, 1))
	assert.Equal(t, 1.0, Clamp(-3, 1, 99))
	assert.Equal(t, 99, ClampInt(120, 1, 99))
	assert.Equal(t, 16, ClampInt(16, 16, 41))
}
