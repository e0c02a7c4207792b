package sstable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint32VectorSum(t *testing.T) {
	v := []uint32{3, 4, 5}
	assert.Equal(t, uint64(12), Uint32VectorSum(v))

	big := []uint32{math.MaxUint32, 1}
	assert.Equal(t, uint64(math.MaxUint32)+1, Uint32VectorSum(big))
}
