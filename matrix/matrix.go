package matrix

import "gonum.org/v1/gonum/mat"

// Counter is a count table that can also be read as a gonum matrix.
type Counter interface {
	mat.Matrix
	Shape() (uint32, uint32)
	Get(uint32, uint32) uint32
	Set(uint32, uint32, uint32)
	Incr(uint32, uint32, uint32)
	Decr(uint32, uint32, uint32)
	GetRow(uint32) []uint32
	GetCol(uint32) []uint32
}

var _ Counter = (*Uint32Matrix)(nil)
