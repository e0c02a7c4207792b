package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transform infers the topic distribution of each row of X, a matrix over
// the fitted vocabulary. The trained counts are read only; every document
// is sampled with local counts and its own draws seeded from
// cfg.RandomState, so repeated calls return identical results.
func (m *GuidedLDA) Transform(X mat.Matrix) (*mat.Dense, error) {
	if m.nzw == nil {
		return nil, ErrNotFitted
	}
	if X == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrInvalidInput)
	}
	if _, c := X.Dims(); c != m.VocabSize() {
		return nil, fmt.Errorf("%w: matrix has %d columns, model vocabulary has %d",
			ErrInvalidInput, c, m.VocabSize())
	}
	toks, err := expand(X)
	if err != nil {
		return nil, err
	}

	theta := mat.NewDense(int(toks.docNum), m.cfg.Topics, nil)
	start := 0
	for d, n := range toks.nd {
		theta.SetRow(d, m.transformSingle(toks.ws[start:start+int(n)]))
		start += int(n)
	}
	return theta, nil
}

// transformSingle runs cfg.TransformIterations sweeps over one document and
// averages its topic counts over the sweeps after burn-in.
func (m *GuidedLDA) transformSingle(words []uint32) []float64 {
	topicNum := uint32(m.cfg.Topics)
	theta := make([]float64, topicNum)
	if len(words) == 0 {
		for k := range theta {
			theta[k] = 1 / float64(topicNum)
		}
		return theta
	}

	iters := m.cfg.TransformIterations
	draws := newDrawSource(m.cfg.RandomState,
		min(len(words)*(iters+1), m.cfg.NumRands))
	vEta := m.cfg.Eta * float64(m.VocabSize())

	zs := make([]uint32, len(words))
	ndz := make([]uint32, topicNum)
	for i := range words {
		z := uint32(draws.Next() * float64(topicNum))
		if z >= topicNum {
			z = topicNum - 1
		}
		zs[i] = z
		ndz[z] += 1
	}

	dist := make([]float64, topicNum)
	acc := make([]float64, topicNum)
	samples := 0
	for iterIdx := 0; iterIdx < iters; iterIdx += 1 {
		for i, w := range words {
			ndz[zs[i]] -= 1
			total := conditional(dist, ndz, m.nzw, m.nz, w, m.cfg.Alpha, m.cfg.Eta, vEta)
			zs[i] = searchCumulative(dist, total, draws.Next())
			ndz[zs[i]] += 1
		}
		if iterIdx >= m.cfg.TransformBurnIn {
			for k, c := range ndz {
				acc[k] += float64(c)
			}
			samples += 1
		}
	}

	norm := float64(len(words)) + float64(topicNum)*m.cfg.Alpha
	for k := range theta {
		theta[k] = (acc[k]/float64(samples) + m.cfg.Alpha) / norm
	}
	return theta
}
