package sstable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"gonum.org/v1/gonum/mat"
)

// WriteDense writes a probability matrix in the same sparse text layout as
// WriteUint32. Values are printed with the shortest exact representation.
func WriteDense(w io.Writer, m mat.Matrix) error {
	out := bufio.NewWriter(w)

	r, c := m.Dims()
	if _, err := fmt.Fprintf(out, "%d,%d\n", r, c); err != nil {
		return err
	}

	var val float64
	for ridx := 0; ridx < r; ridx += 1 {
		for cidx := 0; cidx < c; cidx += 1 {
			val = m.At(ridx, cidx)
			if val > 0 { // only write out nonzero value
				if _, err := fmt.Fprintf(out, "%d,%d,%s\n", ridx, cidx,
					strconv.FormatFloat(val, 'e', -1, 64)); err != nil {
					return err
				}
			}
		}
	}
	return out.Flush()
}

// ReadDense parses the format written by WriteDense.
func ReadDense(rd io.Reader) (*mat.Dense, error) {
	lineIdx := 0
	var tmp *mat.Dense

	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		txt := scanner.Text()
		if lineIdx == 0 {
			row, col, err := parseShape(txt)
			if err != nil {
				return nil, err
			}
			tmp = mat.NewDense(int(row), int(col), nil)
			lineIdx += 1
			continue
		}
		lineIdx += 1

		value := strings.Split(txt, ",")
		if len(value) != 3 {
			log.Warningf("data corrupted, row %d, data %s", lineIdx, txt)
			continue
		}
		ridx, cidx, err := parseIndex(value[0], value[1], tmp)
		if err != nil {
			return nil, err
		}
		val, err := strconv.ParseFloat(value[2], 64)
		if err != nil {
			return nil, err
		}
		tmp.Set(int(ridx), int(cidx), val)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if tmp == nil {
		return nil, ErrShapeNotFound
	}

	return tmp, nil
}

// serialize data to file
func DenseSerialize(m mat.Matrix, fn string) error {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if err := WriteDense(out, m); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// deserialize data from file
func DenseDeserialize(fn string) (*mat.Dense, error) {
	file, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadDense(file)
}
