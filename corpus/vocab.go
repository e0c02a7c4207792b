package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Vocabulary maps tokens to column indices of the document-term matrix.
// The order of tokens in the vocabulary file is the column order.
type Vocabulary struct {
	Tokens []string
	ids    map[string]int
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		Tokens: make([]string, 0),
		ids:    make(map[string]int),
	}
}

// Load appends whitespace-delimited tokens read from r. A token repeated
// in the input keeps its first index.
func (v *Vocabulary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v.add(scanner.Text())
	}
	return scanner.Err()
}

func (v *Vocabulary) LoadFile(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	return v.Load(f)
}

func (v *Vocabulary) add(token string) {
	if v.ids == nil {
		v.ids = make(map[string]int)
	}
	if _, ok := v.ids[token]; !ok {
		v.ids[token] = len(v.Tokens)
	}
	v.Tokens = append(v.Tokens, token)
}

func (v *Vocabulary) Len() int {
	return len(v.Tokens)
}

func (v *Vocabulary) Token(id int) string {
	if id < 0 || id >= len(v.Tokens) {
		panic(fmt.Sprintf("id=%d out of range [0, %d)", id, len(v.Tokens)))
	}
	return v.Tokens[id]
}

// Id returns the index of token.  If token is not in the vocabulary,
// it returns a negative value.
func (v *Vocabulary) Id(token string) int {
	if id, ok := v.ids[token]; ok {
		return id
	}
	return -1
}
