// Package dictionary loads and holds the list of candidate words. A
// Dictionary is built once and never changes afterwards, so it can be shared
// between goroutines without locking.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoWords       = errors.New("dictionary has no words of the requested length")
	ErrInvalidLength = errors.New("word length must be positive")
)

type Dictionary struct {
	length int
	words  []string
	index  map[string]int
}

// IsWord reports whether s consists of exactly length lowercase a-z letters.
func IsWord(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// New builds a dictionary from an in-memory list. Entries that are not
// exactly `length` lowercase letters are skipped, as are duplicates.
func New(words []string, length int) (*Dictionary, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	d := &Dictionary{
		length: length,
		index:  make(map[string]int),
	}
	for _, w := range words {
		d.add(w)
	}
	if len(d.words) == 0 {
		return nil, ErrNoWords
	}
	return d, nil
}

// Read builds a dictionary from one word per line.
func Read(r io.Reader, length int) (*Dictionary, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	d := &Dictionary{
		length: length,
		index:  make(map[string]int),
	}
	sc := bufio.NewScanner(r)
	lines := 0
	for sc.Scan() {
		lines++
		d.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	log.Debug().Int("lines", lines).Int("kept", len(d.words)).
		Int("length", length).Msg("read dictionary")
	if len(d.words) == 0 {
		return nil, ErrNoWords
	}
	return d, nil
}

// Load reads the dictionary file at path.
func Load(path string, length int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f, length)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d *Dictionary) add(line string) {
	// Lines are kept verbatim: no trimming or case folding, only an exact
	// ^[a-z]{L}$ match qualifies.
	if !IsWord(line, d.length) {
		return
	}
	if _, ok := d.index[line]; ok {
		return
	}
	d.index[line] = len(d.words)
	d.words = append(d.words, line)
}

// WordLength is the fixed length of every word.
func (d *Dictionary) WordLength() int { return d.length }

func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[w]
	return ok
}

// Index returns the position of w in load order, or -1.
func (d *Dictionary) Index(w string) int {
	if i, ok := d.index[w]; ok {
		return i
	}
	return -1
}

// Words returns the words in load order. The slice is shared and must not
// be modified.
func (d *Dictionary) Words() []string { return d.words }
