package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testingLDAC = `2 0:1 3:2

1 1:4
0
3 2:1 0:2 4:1
`

func TestCorpusLoad(t *testing.T) {
	c := &Corpus{}
	require.NoError(t, c.Load(strings.NewReader(testingLDAC), 0))

	assert.Equal(t, uint32(5), c.DocNum)
	assert.Equal(t, uint32(5), c.VocabSize)
	assert.Equal(t, []WordCount{{0, 1}, {3, 2}}, c.Docs[0])
	assert.NotNil(t, c.Docs[1])
	assert.Empty(t, c.Docs[1])
	assert.Equal(t, []WordCount{{1, 4}}, c.Docs[2])
	assert.Empty(t, c.Docs[3])

	m := c.Matrix(0)
	r, col := m.Shape()
	assert.Equal(t, uint32(5), r)
	assert.Equal(t, uint32(5), col)
	assert.Equal(t, uint32(2), m.Get(0, 3))
	assert.Equal(t, make([]uint32, 5), m.GetRow(1))
	assert.Equal(t, uint32(4), m.Get(2, 1))
	assert.Equal(t, uint32(2), m.Get(4, 0))
	assert.Equal(t, uint64(11), m.Sum())

	wide := c.Matrix(8)
	_, col = wide.Shape()
	assert.Equal(t, uint32(8), col)
}

func TestCorpusLoadBlankLines(t *testing.T) {
	c := &Corpus{}
	require.NoError(t, c.Load(strings.NewReader("1 0:1\n\n1 1:2\n"), 0))

	assert.Equal(t, uint32(3), c.DocNum)
	require.Len(t, c.Docs, 3)
	assert.Equal(t, []WordCount{{0, 1}}, c.Docs[0])
	assert.Empty(t, c.Docs[1])
	assert.Equal(t, []WordCount{{1, 2}}, c.Docs[2])

	m := c.Matrix(0)
	assert.Equal(t, uint32(2), m.Get(2, 1))
	assert.Equal(t, uint32(0), m.Get(1, 1))
}

func TestCorpusLoadOffset(t *testing.T) {
	c := &Corpus{}
	require.NoError(t, c.Load(strings.NewReader("2 1:3 2:1\n"), 1))
	assert.Equal(t, []WordCount{{0, 3}, {1, 1}}, c.Docs[0])

	c = &Corpus{}
	err := c.Load(strings.NewReader("1 0:3\n"), 1)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCorpusLoadMalformed(t *testing.T) {
	for _, in := range []string{
		"2 0:1\n",
		"1 0-1\n",
		"x 0:1\n",
		"1 0:-1\n",
		"2 0:1 0:2\n",
	} {
		c := &Corpus{}
		assert.ErrorIs(t, c.Load(strings.NewReader(in), 0), ErrMalformed, in)
	}
}

func TestCorpusLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "corpus.ldac")
	require.NoError(t, os.WriteFile(fn, []byte(testingLDAC), 0o644))

	c := &Corpus{}
	require.NoError(t, c.LoadFile(fn, 0))
	assert.Equal(t, uint32(5), c.DocNum)

	assert.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "missing"), 0))
}
