package sstable

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/bobonovski/guidedlda/matrix"
)

func TestWriteUint32Layout(t *testing.T) {
	m := matrix.NewUint32Matrix(2, 3)
	m.Set(0, 1, 4)
	m.Set(1, 2, 9)

	var buf bytes.Buffer
	require.NoError(t, WriteUint32(&buf, m))
	assert.Equal(t, "2,3\n0,1,4\n1,2,9\n", buf.String())
}

func TestUint32SerializeFile(t *testing.T) {
	m := matrix.NewUint32Matrix(3, 2)
	m.Set(2, 0, 11)
	m.Set(0, 1, 1)

	fn := filepath.Join(t.TempDir(), "model.wt")
	require.NoError(t, Uint32Serialize(m, fn))

	got, err := Uint32Deserialize(fn)
	require.NoError(t, err)
	r, c := got.Shape()
	assert.Equal(t, uint32(3), r)
	assert.Equal(t, uint32(2), c)
	assert.Equal(t, uint32(11), got.Get(2, 0))
	assert.Equal(t, uint32(1), got.Get(0, 1))
	assert.Equal(t, uint64(12), got.Sum())
}

func TestReadUint32Errors(t *testing.T) {
	_, err := ReadUint32(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrShapeNotFound)

	_, err = ReadUint32(strings.NewReader("2\n"))
	assert.ErrorIs(t, err, ErrShapeNotFound)

	_, err = ReadUint32(strings.NewReader("2,2\n5,0,1\n"))
	assert.Error(t, err)

	// malformed element lines are skipped
	m, err := ReadUint32(strings.NewReader("2,2\n1,1\n1,1,3\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(3), m.Get(1, 1))
}

func TestDenseSerializeFile(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{0.25, 0.75, 1.0 / 3, 2.0 / 3})

	fn := filepath.Join(t.TempDir(), "model.theta")
	require.NoError(t, DenseSerialize(d, fn))

	got, err := DenseDeserialize(fn)
	require.NoError(t, err)
	assert.True(t, mat.Equal(d, got))
}

func TestWriteDenseSkipsZeros(t *testing.T) {
	d := mat.NewDense(1, 3, []float64{0, 0.5, 0})

	var buf bytes.Buffer
	require.NoError(t, WriteDense(&buf, d))
	assert.Equal(t, "1,3\n0,1,5e-01\n", buf.String())
}
