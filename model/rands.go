package model

import "math/rand"

// drawSource is a fixed buffer of uniform draws in [0, 1), generated once
// and consumed strictly in order. The cursor wraps around at the end of the
// buffer; the buffer itself is never regenerated.
type drawSource struct {
	rands []float64
	idx   int
}

func newDrawSource(seed int64, n int) *drawSource {
	if n < 1 {
		n = 1
	}
	rng := rand.New(rand.NewSource(seed))
	rands := make([]float64, n)
	for i := range rands {
		rands[i] = rng.Float64()
	}
	return &drawSource{rands: rands}
}

func (s *drawSource) Next() float64 {
	u := s.rands[s.idx%len(s.rands)]
	s.idx += 1
	return u
}

// Index is the number of draws consumed since the last reset.
func (s *drawSource) Index() int {
	return s.idx
}

func (s *drawSource) reset() {
	s.idx = 0
}
