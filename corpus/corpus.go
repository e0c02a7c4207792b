package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"

	"github.com/bobonovski/guidedlda/matrix"
)

var ErrMalformed = errors.New("corpus: malformed input")

type Corpus struct {
	VocabSize uint32
	DocNum    uint32
	Docs      [][]WordCount
}

type WordCount struct {
	WordId uint32
	Count  uint32
}

// Matrix builds the DocNum x VocabSize document-term count matrix. A
// vocabSize larger than the one seen in the data widens the matrix so its
// columns line up with an external vocabulary.
func (c *Corpus) Matrix(vocabSize uint32) *matrix.Uint32Matrix {
	if vocabSize < c.VocabSize {
		vocabSize = c.VocabSize
	}
	m := matrix.NewUint32Matrix(c.DocNum, vocabSize)
	for doc, wcs := range c.Docs {
		for _, wc := range wcs {
			m.Set(uint32(doc), wc.WordId, wc.Count)
		}
	}
	return m
}

// Load reads documents in LDA-C format, one document per line:
// [uniqueTerms wordId:wordCount wordId:wordCount ... wordId:wordCount]
// Word ids are shifted down by offset. A blank line is an empty document,
// so row indices keep matching line numbers.
func (c *Corpus) Load(r io.Reader, offset uint32) error {
	maxWordId := int64(-1)
	lineIdx := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineIdx += 1
		doc := strings.TrimSpace(scanner.Text())
		if doc == "" {
			c.Docs = append(c.Docs, []WordCount{})
			c.DocNum += uint32(1)
			continue
		}
		vals := strings.Fields(doc)

		uniqueTerms, err := strconv.ParseUint(vals[0], 10, 32)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrMalformed, lineIdx, err)
		}
		if int(uniqueTerms) != len(vals)-1 {
			return fmt.Errorf("%w: line %d: expected %d terms, found %d",
				ErrMalformed, lineIdx, uniqueTerms, len(vals)-1)
		}

		wcs := make([]WordCount, 0, len(vals)-1)
		seen := make(map[uint32]struct{}, len(vals)-1)
		for _, kv := range vals[1:] {
			wc := strings.Split(kv, ":")
			if len(wc) != 2 {
				return fmt.Errorf("%w: line %d: bad word count %q", ErrMalformed, lineIdx, kv)
			}

			wordId, err := strconv.ParseUint(wc[0], 10, 32)
			if err != nil {
				return fmt.Errorf("%w: line %d: %v", ErrMalformed, lineIdx, err)
			}
			if uint32(wordId) < offset {
				return fmt.Errorf("%w: line %d: word id %d below offset %d",
					ErrMalformed, lineIdx, wordId, offset)
			}
			count, err := strconv.ParseUint(wc[1], 10, 32)
			if err != nil {
				return fmt.Errorf("%w: line %d: %v", ErrMalformed, lineIdx, err)
			}

			id := uint32(wordId) - offset
			if _, ok := seen[id]; ok {
				return fmt.Errorf("%w: line %d: duplicate word id %d", ErrMalformed, lineIdx, wordId)
			}
			seen[id] = struct{}{}

			wcs = append(wcs, WordCount{WordId: id, Count: uint32(count)})
			if int64(id) > maxWordId {
				maxWordId = int64(id)
			}
		}
		c.Docs = append(c.Docs, wcs)
		c.DocNum += uint32(1)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if int64(c.VocabSize) < maxWordId+1 {
		c.VocabSize = uint32(maxWordId + 1)
	}

	log.Infof("number of documents %d", c.DocNum)
	log.Infof("vocabulary size %d", c.VocabSize)
	return nil
}

// LoadFile is Load on the named file.
func (c *Corpus) LoadFile(fn string, offset uint32) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Load(f, offset)
}
