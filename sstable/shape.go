package sstable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrShapeNotFound = errors.New("sstable: model corrupted, shape not found")

type shaped interface {
	Dims() (int, int)
}

func parseShape(txt string) (uint32, uint32, error) {
	shape := strings.Split(txt, ",")
	if len(shape) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrShapeNotFound, txt)
	}
	row, err := strconv.ParseUint(shape[0], 10, 32)
	if err != nil {
		return 0, 0, err
	}
	col, err := strconv.ParseUint(shape[1], 10, 32)
	if err != nil {
		return 0, 0, err
	}
	if row == 0 || col == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrShapeNotFound, txt)
	}
	return uint32(row), uint32(col), nil
}

func parseIndex(rs, cs string, m shaped) (uint32, uint32, error) {
	ridx, err := strconv.ParseUint(rs, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	cidx, err := strconv.ParseUint(cs, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	r, c := m.Dims()
	if ridx >= uint64(r) || cidx >= uint64(c) {
		return 0, 0, fmt.Errorf("sstable: element (%d, %d) outside %dx%d", ridx, cidx, r, c)
	}
	return uint32(ridx), uint32(cidx), nil
}
