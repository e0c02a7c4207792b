// Package model fits latent Dirichlet allocation with collapsed Gibbs
// sampling. Terms can be seeded toward chosen topics; the seed confidence
// controls how much of each seeded token's conditional mass is moved onto
// its seed topic.
package model

import (
	"context"
	"fmt"
	"math"

	log "github.com/golang/glog"
	"gonum.org/v1/gonum/mat"

	"github.com/bobonovski/guidedlda/matrix"
	"github.com/bobonovski/guidedlda/sstable"
)

// GuidedLDA is a seeded LDA estimator. It is not safe for concurrent use.
type GuidedLDA struct {
	cfg   Config
	draws *drawSource

	st  *state               // assignments of the last fit, nil after LoadWordTopic
	nzw *matrix.Uint32Matrix // topic-word counts used by Transform
	nz  []uint32

	loglikelihoods []float64
}

// New creates a GuidedLDA instance and generates its random draw buffer
// from cfg.RandomState.
func New(cfg Config) (*GuidedLDA, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &GuidedLDA{
		cfg:   cfg,
		draws: newDrawSource(cfg.RandomState, cfg.NumRands),
	}, nil
}

func (m *GuidedLDA) Topics() int {
	return m.cfg.Topics
}

// VocabSize is the number of columns of the fitted or loaded model, 0 before.
func (m *GuidedLDA) VocabSize() int {
	if m.nzw == nil {
		return 0
	}
	_, v := m.nzw.Dims()
	return v
}

// seedIndex validates seeds and flattens them into a per-term lookup table.
func (m *GuidedLDA) seedIndex(seeds map[int]int, conf float64, vocab uint32) ([]int32, error) {
	if !(conf >= 0 && conf <= 1) {
		return nil, fmt.Errorf("%w: seed confidence = %v, must be in [0, 1]", ErrInvalidInput, conf)
	}
	seedOf := make([]int32, vocab)
	for i := range seedOf {
		seedOf[i] = -1
	}
	for w, k := range seeds {
		if w < 0 || w >= int(vocab) {
			return nil, fmt.Errorf("%w: seed term %d out of range [0, %d)", ErrInvalidInput, w, vocab)
		}
		if k < 0 || k >= m.cfg.Topics {
			return nil, fmt.Errorf("%w: seed topic %d for term %d out of range [0, %d)",
				ErrInvalidInput, k, w, m.cfg.Topics)
		}
		seedOf[w] = int32(k)
	}
	return seedOf, nil
}

// Fit runs cfg.Iterations Gibbs sweeps over X, a D x V matrix of
// non-negative integer counts. seeds maps term columns to topics. All input
// is validated before sampling starts. ctx is checked between sweeps; on
// cancellation Fit returns ctx.Err() and the model holds the state of the
// last completed sweep.
func (m *GuidedLDA) Fit(ctx context.Context, X mat.Matrix,
	seeds map[int]int, seedConfidence float64) error {
	if X == nil {
		return fmt.Errorf("%w: nil matrix", ErrInvalidInput)
	}
	toks, err := expand(X)
	if err != nil {
		return err
	}
	seedOf, err := m.seedIndex(seeds, seedConfidence, toks.vocab)
	if err != nil {
		return err
	}

	topicNum := uint32(m.cfg.Topics)
	st := m.st
	if !m.cfg.WarmStart || st == nil || !st.tokens().same(toks) {
		log.Infof("fitting %d documents, %d terms, %d tokens, %d topics",
			toks.docNum, toks.vocab, len(toks.ws), topicNum)
		m.draws.reset()
		st = newState(toks, topicNum)
		st.initialize(seedOf, seedConfidence, m.draws)
		m.loglikelihoods = []float64{st.logLikelihood(m.cfg.Alpha, m.cfg.Eta)}
		if m.cfg.Callback != nil {
			m.cfg.Callback(0, m.loglikelihoods[0])
		}
	} else {
		log.Infof("warm start, continuing from sweep %d", len(m.loglikelihoods)-1)
	}
	m.st, m.nzw, m.nz = st, st.nzw, st.nz

	s := newSampler(st, m.cfg.Alpha, m.cfg.Eta, seedOf, seedConfidence, m.draws)
	for iterIdx := 0; iterIdx < m.cfg.Iterations; iterIdx += 1 {
		if err := ctx.Err(); err != nil {
			log.Warningf("fit interrupted after %d sweeps: %v", iterIdx, err)
			return err
		}

		s.sweep()

		ll := st.logLikelihood(m.cfg.Alpha, m.cfg.Eta)
		m.loglikelihoods = append(m.loglikelihoods, ll)
		sweep := len(m.loglikelihoods) - 1
		if m.cfg.Refresh > 0 && sweep%m.cfg.Refresh == 0 {
			log.Infof("iter %5d, likelihood %f", sweep, ll)
		}
		if m.cfg.Callback != nil {
			m.cfg.Callback(sweep, ll)
		}
	}
	log.Infof("fit done, likelihood %f", m.LogLikelihood())
	return nil
}

// FitTransform fits the model and returns DocTopic.
func (m *GuidedLDA) FitTransform(ctx context.Context, X mat.Matrix,
	seeds map[int]int, seedConfidence float64) (*mat.Dense, error) {
	if err := m.Fit(ctx, X, seeds, seedConfidence); err != nil {
		return nil, err
	}
	return m.DocTopic(), nil
}

// LogLikelihood is the value after the last completed sweep, or after
// initialization when no sweep ran. It is NaN before the first fit.
func (m *GuidedLDA) LogLikelihood() float64 {
	if len(m.loglikelihoods) == 0 {
		return math.NaN()
	}
	return m.loglikelihoods[len(m.loglikelihoods)-1]
}

// LogLikelihoods returns the trace: initialization first, then one value
// per sweep.
func (m *GuidedLDA) LogLikelihoods() []float64 {
	return append([]float64(nil), m.loglikelihoods...)
}

// compute the posterior point estimation of document-topic mixture
// alpha (Dirichlet prior) + data -> theta. It returns nil before Fit.
func (m *GuidedLDA) DocTopic() *mat.Dense {
	if m.st == nil {
		return nil
	}
	topicNum := int(m.st.topicNum)
	theta := mat.NewDense(int(m.st.docNum), topicNum, nil)
	kAlpha := float64(topicNum) * m.cfg.Alpha

	for d := uint32(0); d < m.st.docNum; d += 1 {
		norm := float64(m.st.nd[d]) + kAlpha
		for k, c := range m.st.ndz.RowView(d) {
			theta.Set(int(d), k, (float64(c)+m.cfg.Alpha)/norm)
		}
	}
	return theta
}

// compute the posterior point estimation of topic-word mixture
// eta (Dirichlet prior) + data -> phi. It returns nil before Fit.
func (m *GuidedLDA) TopicWord() *mat.Dense {
	if m.nzw == nil {
		return nil
	}
	topicNum, vocab := m.nzw.Dims()
	phi := mat.NewDense(topicNum, vocab, nil)
	vEta := float64(vocab) * m.cfg.Eta

	for k := 0; k < topicNum; k += 1 {
		norm := float64(m.nz[k]) + vEta
		for v, c := range m.nzw.RowView(uint32(k)) {
			phi.Set(k, v, (float64(c)+m.cfg.Eta)/norm)
		}
	}
	return phi
}

// NDZ returns a copy of the document-topic counts, nil before Fit.
func (m *GuidedLDA) NDZ() *matrix.Uint32Matrix {
	if m.st == nil {
		return nil
	}
	return m.st.ndz.Clone()
}

// NZW returns a copy of the topic-word counts, nil before Fit.
func (m *GuidedLDA) NZW() *matrix.Uint32Matrix {
	if m.nzw == nil {
		return nil
	}
	return m.nzw.Clone()
}

// NZ returns a copy of the per-topic token totals.
func (m *GuidedLDA) NZ() []uint32 {
	return append([]uint32(nil), m.nz...)
}

// Assignments returns a copy of the topic of every token of the last fit.
func (m *GuidedLDA) Assignments() []uint32 {
	if m.st == nil {
		return nil
	}
	return append([]uint32(nil), m.st.zs...)
}

// Rands returns a copy of the random draw buffer.
func (m *GuidedLDA) Rands() []float64 {
	return append([]float64(nil), m.draws.rands...)
}

// RandsIndex is the number of draws consumed by the last fit.
func (m *GuidedLDA) RandsIndex() int {
	return m.draws.Index()
}

// serialize document-topic distribution
func (m *GuidedLDA) SaveTheta(fn string) error {
	theta := m.DocTopic()
	if theta == nil {
		return ErrNotFitted
	}
	return sstable.DenseSerialize(theta, fn)
}

// serialize topic-word distribution
func (m *GuidedLDA) SavePhi(fn string) error {
	phi := m.TopicWord()
	if phi == nil {
		return ErrNotFitted
	}
	return sstable.DenseSerialize(phi, fn)
}

// serialize topic-word count matrix
func (m *GuidedLDA) SaveWordTopic(fn string) error {
	if m.nzw == nil {
		return ErrNotFitted
	}
	return sstable.Uint32Serialize(m.nzw, fn)
}

// LoadWordTopic replaces the topic-word counts with the ones stored in fn,
// after which the model can Transform. The assignments of a previous fit
// are dropped.
func (m *GuidedLDA) LoadWordTopic(fn string) error {
	nzw, err := sstable.Uint32Deserialize(fn)
	if err != nil {
		return err
	}
	topicNum, vocab := nzw.Shape()
	if int(topicNum) != m.cfg.Topics {
		return fmt.Errorf("%w: word-topic table has %d topics, model has %d",
			ErrInvalidInput, topicNum, m.cfg.Topics)
	}
	nz := make([]uint32, topicNum)
	for k := uint32(0); k < topicNum; k += 1 {
		sum := sstable.Uint32VectorSum(nzw.RowView(k))
		if sum > math.MaxUint32 {
			return fmt.Errorf("%w: topic %d total %d overflows", ErrInvalidInput, k, sum)
		}
		nz[k] = uint32(sum)
	}

	log.Infof("loaded word-topic table, %d topics, %d terms", topicNum, vocab)
	m.st, m.nzw, m.nz = nil, nzw, nz
	m.loglikelihoods = nil
	return nil
}
