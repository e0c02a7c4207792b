package matrix

import "gonum.org/v1/gonum/mat"

// internal Uint32 matrix representation
type Uint32Matrix struct {
	nrow uint32
	ncol uint32
	data []uint32
}

// NewUint32Matrix creates a new Uint32Matrix with r rows and c columns.
// if r or c is zero, it will panic. A uint32 slice is used as the underlying
// storage and the data layout is in row major order, i.e. the (i*c + j)-th
// element in the data slice is the [i, j]-th element in the matrix.
// Vector is defined as a matrix one column, i.e. a column vector.
func NewUint32Matrix(r, c uint32) *Uint32Matrix {
	if r == 0 || c == 0 {
		panic(ErrBadShape)
	}
	return &Uint32Matrix{
		nrow: r,
		ncol: c,
		data: make([]uint32, int(r)*int(c)),
	}
}

// index is the offset of the [r, c]-th element in data, computed in int so
// that tables larger than 2^32 cells do not wrap.
func (m *Uint32Matrix) index(r, c uint32) int {
	return int(r)*int(m.ncol) + int(c)
}

// get the shape of the matrix
func (m *Uint32Matrix) Shape() (uint32, uint32) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Uint32Matrix) Get(r, c uint32) uint32 {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[m.index(r, c)]
}

// get a copy of the r-th row of the matrix
func (m *Uint32Matrix) GetRow(r uint32) []uint32 {
	if r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}

	row := make([]uint32, m.ncol)
	copy(row, m.data[m.index(r, 0):m.index(r+1, 0)])
	return row
}

// RowView returns the r-th row sharing the matrix storage. Callers must
// not modify it.
func (m *Uint32Matrix) RowView(r uint32) []uint32 {
	if r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}
	return m.data[m.index(r, 0):m.index(r+1, 0):m.index(r+1, 0)]
}

// get a copy of the c-th column of the matrix
func (m *Uint32Matrix) GetCol(c uint32) []uint32 {
	if c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}

	column := make([]uint32, m.nrow)
	for r := uint32(0); r < m.nrow; r += 1 {
		column[r] = m.data[m.index(r, c)]
	}
	return column
}

// set val to the [r, c]-th element of the matrix
func (m *Uint32Matrix) Set(r, c uint32, val uint32) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[m.index(r, c)] = val
}

// increment the [r, c]-th element of the matrix by val
func (m *Uint32Matrix) Incr(r, c uint32, val uint32) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[m.index(r, c)] += val
}

// decrement the [r, c]-th element of the matrix by val, a count never
// goes below zero
func (m *Uint32Matrix) Decr(r, c uint32, val uint32) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	if m.data[m.index(r, c)] < val {
		panic(ErrInvariantViolation)
	}
	m.data[m.index(r, c)] -= val
}

// Sum returns the sum of all elements.
func (m *Uint32Matrix) Sum() uint64 {
	var sum uint64
	for _, v := range m.data {
		sum += uint64(v)
	}
	return sum
}

// Clone returns a deep copy of the matrix.
func (m *Uint32Matrix) Clone() *Uint32Matrix {
	n := &Uint32Matrix{
		nrow: m.nrow,
		ncol: m.ncol,
		data: make([]uint32, len(m.data)),
	}
	copy(n.data, m.data)
	return n
}

// Dims implements mat.Matrix.
func (m *Uint32Matrix) Dims() (int, int) {
	return int(m.nrow), int(m.ncol)
}

// At implements mat.Matrix.
func (m *Uint32Matrix) At(i, j int) float64 {
	if i < 0 || j < 0 {
		panic(ErrIndexOutOfRange)
	}
	return float64(m.Get(uint32(i), uint32(j)))
}

// T implements mat.Matrix.
func (m *Uint32Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}
