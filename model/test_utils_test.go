package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/bobonovski/guidedlda/sstable"
)

const (
	testingAlpha = 0.1
	testingEta   = 0.01
	testingK     = 2
	testingSeed  = 7

	testingThemes        = 3
	testingTermsPerTheme = 8
	testingDocNum        = 60
	testingDocLen        = 30
)

// five documents over ten terms: terms 0-4 and 5-9 mostly co-occur
var testingToyCorpus = []float64{
	3, 2, 1, 0, 2, 0, 0, 0, 1, 0,
	2, 3, 0, 1, 1, 0, 0, 0, 0, 0,
	0, 0, 1, 0, 0, 3, 2, 1, 0, 2,
	0, 1, 0, 0, 0, 2, 3, 2, 1, 1,
	1, 0, 2, 3, 0, 1, 0, 0, 2, 0,
}

func createToyMatrix() *mat.Dense {
	return mat.NewDense(5, 10, append([]float64(nil), testingToyCorpus...))
}

// createThemeMatrix samples documents where document d draws 90% of its
// tokens from the terms of theme d % testingThemes and the rest uniformly.
func createThemeMatrix(seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	vocab := testingThemes * testingTermsPerTheme
	X := mat.NewDense(testingDocNum, vocab, nil)
	for d := 0; d < testingDocNum; d += 1 {
		theme := d % testingThemes
		for i := 0; i < testingDocLen; i += 1 {
			w := rng.Intn(vocab)
			if rng.Float64() < 0.9 {
				w = theme*testingTermsPerTheme + rng.Intn(testingTermsPerTheme)
			}
			X.Set(d, w, X.At(d, w)+1)
		}
	}
	return X
}

// createThemeSeeds seeds every term of a theme to the theme's topic.
func createThemeSeeds() map[int]int {
	seeds := make(map[int]int)
	for w := 0; w < testingThemes*testingTermsPerTheme; w += 1 {
		seeds[w] = w / testingTermsPerTheme
	}
	return seeds
}

func testingConfig(iterations int) Config {
	return Config{
		Topics:      testingK,
		Alpha:       testingAlpha,
		Eta:         testingEta,
		Iterations:  iterations,
		RandomState: testingSeed,
	}
}

func createTestingModel(t *testing.T, cfg Config) *GuidedLDA {
	m, err := New(cfg)
	require.NoError(t, err)
	return m
}

func tokenTotal(X mat.Matrix) uint64 {
	return uint64(mat.Sum(X))
}

func assertCountInvariants(t *testing.T, m *GuidedLDA, total uint64) {
	ndz, nzw, nz := m.NDZ(), m.NZW(), m.NZ()
	require.NotNil(t, ndz)
	require.NotNil(t, nzw)

	assert.Equal(t, total, ndz.Sum())
	assert.Equal(t, total, nzw.Sum())
	assert.Equal(t, total, sstable.Uint32VectorSum(nz))

	_, topicNum := ndz.Shape()
	for k := uint32(0); k < topicNum; k += 1 {
		assert.Equal(t, uint64(nz[k]), sstable.Uint32VectorSum(ndz.GetCol(k)))
		assert.Equal(t, uint64(nz[k]), sstable.Uint32VectorSum(nzw.GetRow(k)))
	}
}

func assertRowStochastic(t *testing.T, d *mat.Dense) {
	require.NotNil(t, d)
	r, _ := d.Dims()
	for i := 0; i < r; i += 1 {
		assert.InDelta(t, 1.0, floats.Sum(d.RawRowView(i)), 1e-9, "row %d", i)
	}
}

// rowSparse exposes a dense matrix through the nonzero row walker used by
// sparse gonum implementations.
type rowSparse struct {
	*mat.Dense
}

func (s rowSparse) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	_, c := s.Dims()
	for j := 0; j < c; j += 1 {
		if v := s.At(i, j); v != 0 {
			fn(i, j, v)
		}
	}
}
