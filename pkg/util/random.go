package util

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// Sampler is the single source of randomness for a generation run.
// Every draw goes through it so a fixed seed reproduces a run exactly.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a PCG backed sampler seeded from seed
func NewSampler(seed int64) *Sampler {
	s := uint64(seed)
	return &Sampler{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0,1)
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Uint64 makes the sampler usable wherever a rand.Source is expected
func (s *Sampler) Uint64() uint64 {
	return s.rng.Uint64()
}

// Read fills p from the seeded stream. It never fails.
func (s *Sampler) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := s.rng.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// IntBetween returns an integer in [min,max], both inclusive
func (s *Sampler) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.rng.IntN(max-min+1)
}

// Uniform returns a float in [min,max)
func (s *Sampler) Uniform(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + (max-min)*s.rng.Float64()
}

// Chance returns true with probability p
func (s *Sampler) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// BoundedNormal draws from N(mean, sd) and clamps the result into [min,max]
func (s *Sampler) BoundedNormal(mean, sd, min, max float64) float64 {
	return Clamp(mean+sd*s.rng.NormFloat64(), min, max)
}

// Poisson generates a single random number from a Poisson distribution.
// Uses Knuth's algorithm for small lambda and a normal approximation above 30.
func (s *Sampler) Poisson(lambda float64) int {
	if lambda <= 0 || math.IsNaN(lambda) {
		return 0
	}
	if lambda < 30 {
		L := math.Exp(-lambda)
		k := 0
		p := 1.0
		for p > L {
			k++
			p *= s.rng.Float64()
		}
		return k - 1
	}
	n := int(math.Round(lambda + math.Sqrt(lambda)*s.rng.NormFloat64()))
	if n < 0 {
		return 0
	}
	return n
}

// Binomial counts successes in n trials of probability p
func (s *Sampler) Binomial(n int, p float64) int {
	k := 0
	for i := 0; i < n; i++ {
		if s.rng.Float64() < p {
			k++
		}
	}
	return k
}

// Perm returns a random permutation of [0,n)
func (s *Sampler) Perm(n int) []int {
	return s.rng.Perm(n)
}

// Shuffle randomises the order of n elements using swap
func (s *Sampler) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// WeightedIndex picks an index with probability proportional to its weight.
// Weights are normalised, so they need not sum to 1.
func (s *Sampler) WeightedIndex(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("cannot choose from an empty weight list")
	}
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("invalid weight %v at index %d", w, i)
		}
		total += w
	}
	if total <= 0 {
		return 0, fmt.Errorf("weights sum to zero")
	}
	r := s.rng.Float64() * total
	last := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		if r < w {
			return i, nil
		}
		r -= w
	}
	// float rounding can leave r just above the final bucket
	return last, nil
}

// WeightedChoice picks one item with probability proportional to weight(item)
func WeightedChoice[T any](s *Sampler, items []T, weight func(T) float64) (T, error) {
	var zero T
	weights := make([]float64, len(items))
	for i, it := range items {
		weights[i] = weight(it)
	}
	i, err := s.WeightedIndex(weights)
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](s *Sampler, items []T) T {
	return items[s.rng.IntN(len(items))]
}

// Sample returns k distinct indices from [0,n) in ascending order
func (s *Sampler) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	perm := s.rng.Perm(n)[:k]
	slices.Sort(perm)
	return perm
}

// Clamp limits v to [min,max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt limits v to [min,max]
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RoundTo rounds v to the given number of decimal places
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
