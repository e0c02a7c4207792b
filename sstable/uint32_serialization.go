package sstable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"

	"github.com/bobonovski/guidedlda/matrix"
)

// WriteUint32 writes the shape line "rows,cols" followed by one
// "row,col,value" line per nonzero element.
func WriteUint32(w io.Writer, m *matrix.Uint32Matrix) error {
	out := bufio.NewWriter(w)

	r, c := m.Shape()
	// write the matrix shape
	if _, err := fmt.Fprintf(out, "%d,%d\n", r, c); err != nil {
		return err
	}

	var val uint32
	for ridx := uint32(0); ridx < r; ridx += 1 {
		for cidx := uint32(0); cidx < c; cidx += 1 {
			val = m.Get(ridx, cidx)
			if val > 0 { // only write out nonzero value
				if _, err := fmt.Fprintf(out, "%d,%d,%d\n", ridx, cidx, val); err != nil {
					return err
				}
			}
		}
	}
	return out.Flush()
}

// ReadUint32 parses the format written by WriteUint32.
func ReadUint32(rd io.Reader) (*matrix.Uint32Matrix, error) {
	lineIdx := 0
	var tmp *matrix.Uint32Matrix

	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		txt := scanner.Text()
		if lineIdx == 0 {
			row, col, err := parseShape(txt)
			if err != nil {
				return nil, err
			}
			tmp = matrix.NewUint32Matrix(row, col)
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
		val, err := strconv.ParseUint(value[2], 10, 32)
		if err != nil {
			return nil, err
		}
		tmp.Set(ridx, cidx, uint32(val))
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
func Uint32Serialize(m *matrix.Uint32Matrix, fn string) error {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if err := WriteUint32(out, m); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// deserialize data from file
func Uint32Deserialize(fn string) (*matrix.Uint32Matrix, error) {
	file, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadUint32(file)
}
