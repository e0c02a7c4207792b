package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadSeedLists reads one seed list per line; the line index is the topic.
// Blank lines keep their topic slot with no seed words.
func LoadSeedLists(r io.Reader) ([][]string, error) {
	var lists [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lists = append(lists, strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lists, nil
}

func LoadSeedListsFile(fn string) ([][]string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadSeedLists(f)
}

// SeedTopics turns per-topic word lists into a term index -> topic map. When
// a word appears in several lists the last one wins.
func SeedTopics(v *Vocabulary, lists [][]string) (map[int]int, error) {
	seeds := make(map[int]int)
	for topic, words := range lists {
		for _, w := range words {
			id := v.Id(w)
			if id < 0 {
				return nil, fmt.Errorf("%w: seed word %q not in vocabulary", ErrMalformed, w)
			}
			seeds[id] = topic
		}
	}
	return seeds, nil
}
