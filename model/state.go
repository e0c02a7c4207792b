package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/bobonovski/guidedlda/matrix"
)

// state holds the sufficient statistics of the sampler. Each token occurrence
// i of the corpus is the triple (ds[i], ws[i], zs[i]).
type state struct {
	topicNum uint32
	docNum   uint32
	vocab    uint32

	ws []uint32 // term of each token
	ds []uint32 // document of each token
	zs []uint32 // topic of each token
	nd []uint32 // document lengths

	ndz *matrix.Uint32Matrix // document-topic counts, D x K
	nzw *matrix.Uint32Matrix // topic-word counts, K x V
	nz  []uint32             // topic totals
}

// tokens is the expansion of a document-term matrix into token occurrences:
// document order, then column order within a document, a cell of count c
// giving c consecutive occurrences.
type tokens struct {
	docNum uint32
	vocab  uint32
	ws     []uint32
	ds     []uint32
	nd     []uint32
}

func tokenCount(x float64) (uint32, error) {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return 0, fmt.Errorf("not finite")
	case x < 0:
		return 0, fmt.Errorf("negative count")
	case x != math.Trunc(x):
		return 0, fmt.Errorf("non-integer count")
	case x > math.MaxUint32:
		return 0, fmt.Errorf("count too large")
	}
	return uint32(x), nil
}

// expand validates X and lists its token occurrences. Matrices implementing
// mat.RowNonZeroDoer are walked through their nonzero elements only.
func expand(X mat.Matrix) (*tokens, error) {
	r, c := X.Dims()
	if r <= 0 || c <= 0 || r > math.MaxInt32 || c > math.MaxInt32 {
		return nil, fmt.Errorf("%w: bad matrix shape %dx%d", ErrInvalidInput, r, c)
	}
	t := &tokens{
		docNum: uint32(r),
		vocab:  uint32(c),
		nd:     make([]uint32, r),
	}

	var bad error
	visit := func(d, v int, x float64) {
		if bad != nil || x == 0 {
			return
		}
		n, err := tokenCount(x)
		if err != nil {
			bad = fmt.Errorf("%w: entry (%d, %d) = %v: %v", ErrInvalidInput, d, v, x, err)
			return
		}
		if uint64(t.nd[d])+uint64(n) > math.MaxUint32 {
			bad = fmt.Errorf("%w: document %d too long", ErrInvalidInput, d)
			return
		}
		for i := uint32(0); i < n; i += 1 {
			t.ws = append(t.ws, uint32(v))
			t.ds = append(t.ds, uint32(d))
		}
		t.nd[d] += n
	}

	nonZero, sparse := X.(mat.RowNonZeroDoer)
	for d := 0; d < r && bad == nil; d += 1 {
		if sparse {
			nonZero.DoRowNonZero(d, func(i, j int, x float64) { visit(i, j, x) })
			continue
		}
		for v := 0; v < c; v += 1 {
			visit(d, v, X.At(d, v))
		}
	}
	if bad != nil {
		return nil, bad
	}
	return t, nil
}

// same reports whether o expands to exactly the same token sequence.
func (t *tokens) same(o *tokens) bool {
	if t.docNum != o.docNum || t.vocab != o.vocab || len(t.ws) != len(o.ws) {
		return false
	}
	for i := range t.ws {
		if t.ws[i] != o.ws[i] || t.ds[i] != o.ds[i] {
			return false
		}
	}
	return true
}

func newState(t *tokens, topicNum uint32) *state {
	return &state{
		topicNum: topicNum,
		docNum:   t.docNum,
		vocab:    t.vocab,
		ws:       t.ws,
		ds:       t.ds,
		nd:       t.nd,
		zs:       make([]uint32, len(t.ws)),
		ndz:      matrix.NewUint32Matrix(t.docNum, topicNum),
		nzw:      matrix.NewUint32Matrix(topicNum, t.vocab),
		nz:       make([]uint32, topicNum),
	}
}

func (s *state) tokens() *tokens {
	return &tokens{docNum: s.docNum, vocab: s.vocab, ws: s.ws, ds: s.ds, nd: s.nd}
}

// initialize draws a uniform topic for every token. A token of a seeded term
// starts on its seed topic with probability conf, decided by one more draw.
func (s *state) initialize(seedOf []int32, conf float64, draws *drawSource) {
	for i := range s.ws {
		w, d := s.ws[i], s.ds[i]
		z := uint32(draws.Next() * float64(s.topicNum))
		if z >= s.topicNum {
			z = s.topicNum - 1
		}
		if seed := seedOf[w]; seed >= 0 && conf > 0 {
			if draws.Next() < conf {
				z = uint32(seed)
			}
		}
		s.zs[i] = z
		s.addToken(d, w, z)
	}
}

// removeToken retracts one occurrence of term w in document d from topic z.
func (s *state) removeToken(d, w, z uint32) {
	s.ndz.Decr(d, z, 1)
	s.nzw.Decr(z, w, 1)
	if s.nz[z] == 0 {
		panic(matrix.ErrInvariantViolation)
	}
	s.nz[z] -= 1
}

// addToken commits one occurrence of term w in document d to topic z.
func (s *state) addToken(d, w, z uint32) {
	s.ndz.Incr(d, z, 1)
	s.nzw.Incr(z, w, 1)
	s.nz[z] += 1
}
