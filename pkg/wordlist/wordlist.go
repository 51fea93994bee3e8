package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Size is the number of words every valid list must contain. Each word
// encodes exactly 11 bits, so the length is fixed at 2^11.
const Size = 2048

// List is an ordered, immutable word list with O(1) lookup in both
// directions. Safe for concurrent use once constructed.
type List struct {
	words   []string
	indexes map[string]int
}

// LoadError reports a word list source that could not be turned into a
// valid list: unreadable source, wrong word count, empty or duplicate
// entries.
type LoadError struct {
	Source string // file path, empty for in-memory sources
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("load word list %s: %s", e.Source, e.Reason)
	}
	return "load word list: " + e.Reason
}

func (e *LoadError) Unwrap() error { return e.Err }

// IndexError reports a word index outside [0, Size).
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("word index %d out of range [0, %d]", e.Index, Size-1)
}

// New builds a List from the given words. Each entry is trimmed of
// surrounding whitespace. The input must contain exactly Size unique,
// non-empty words; duplicates are rejected because they would make the
// reverse lookup ambiguous.
func New(words []string) (*List, error) {
	if len(words) != Size {
		return nil, &LoadError{Reason: fmt.Sprintf("expected exactly %d words, got %d", Size, len(words))}
	}
	l := &List{
		words:   make([]string, Size),
		indexes: make(map[string]int, Size),
	}
	for i, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			return nil, &LoadError{Reason: fmt.Sprintf("empty word at index %d", i)}
		}
		if prev, ok := l.indexes[w]; ok {
			return nil, &LoadError{Reason: fmt.Sprintf("duplicate word %q at indexes %d and %d", w, prev, i)}
		}
		l.words[i] = w
		l.indexes[w] = i
	}
	return l, nil
}

// LoadFile reads a line-oriented word list file, one word per line, and
// builds a List from it.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Reason: "cannot open source", Err: err}
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Source: path, Reason: "cannot read source", Err: err}
	}

	l, err := New(words)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = path
		}
		return nil, err
	}
	return l, nil
}

// WordAt returns the word at the given index. Indexes outside [0, Size)
// fail with an IndexError.
func (l *List) WordAt(index int) (string, error) {
	if index < 0 || index >= Size {
		return "", &IndexError{Index: index}
	}
	return l.words[index], nil
}

// IndexOf returns the index of the given word and whether it is present.
func (l *List) IndexOf(word string) (int, bool) {
	i, ok := l.indexes[word]
	return i, ok
}

// Words returns a copy of the ordered word list.
func (l *List) Words() []string {
	out := make([]string, Size)
	copy(out, l.words)
	return out
}
