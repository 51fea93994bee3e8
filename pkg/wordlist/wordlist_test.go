package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestEnglishList(t *testing.T) {
	list := English()
	words := list.Words()

	if len(words) != Size {
		t.Fatalf("english list has %d words, expected %d", len(words), Size)
	}
	if !sort.StringsAreSorted(words) {
		t.Error("english list is not sorted")
	}

	seen := make(map[string]bool, Size)
	for _, w := range words {
		if seen[w] {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = true
	}

	first, err := list.WordAt(0)
	if err != nil {
		t.Fatalf("WordAt(0) failed: %v", err)
	}
	if first != "abandon" {
		t.Errorf("WordAt(0) = %q, expected \"abandon\"", first)
	}

	last, err := list.WordAt(Size - 1)
	if err != nil {
		t.Fatalf("WordAt(%d) failed: %v", Size-1, err)
	}
	if last != "zoo" {
		t.Errorf("WordAt(%d) = %q, expected \"zoo\"", Size-1, last)
	}

	if idx, ok := list.IndexOf("zoo"); !ok || idx != Size-1 {
		t.Errorf("IndexOf(\"zoo\") = (%d, %v), expected (%d, true)", idx, ok, Size-1)
	}
	if _, ok := list.IndexOf("notaword"); ok {
		t.Error("IndexOf accepted a word that is not in the list")
	}
}

func TestNewRejectsWrongCount(t *testing.T) {
	words := English().Words()

	_, err := New(words[:Size-1])
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError for short list, got %v", err)
	}

	_, err = New(append(words, "extra"))
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError for long list, got %v", err)
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	words := English().Words()
	words[1] = words[0]

	_, err := New(words)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError for duplicate words, got %v", err)
	}
	if !strings.Contains(le.Reason, "duplicate") {
		t.Errorf("LoadError reason %q does not mention the duplicate", le.Reason)
	}
}

func TestNewRejectsEmptyEntries(t *testing.T) {
	words := English().Words()
	words[17] = "  \t "

	var le *LoadError
	if _, err := New(words); !errors.As(err, &le) {
		t.Fatalf("expected LoadError for empty entry, got %v", err)
	}
}

func TestNewTrimsWhitespace(t *testing.T) {
	words := English().Words()
	for i := range words {
		words[i] = " " + words[i] + "\t"
	}

	list, err := New(words)
	if err != nil {
		t.Fatalf("New failed on padded words: %v", err)
	}
	w, err := list.WordAt(0)
	if err != nil {
		t.Fatalf("WordAt(0) failed: %v", err)
	}
	if w != "abandon" {
		t.Errorf("WordAt(0) = %q, expected trimmed \"abandon\"", w)
	}
}

func TestWordAtOutOfRange(t *testing.T) {
	list := English()
	for _, idx := range []int{-1, Size, Size + 100} {
		_, err := list.WordAt(idx)
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Errorf("WordAt(%d): expected IndexError, got %v", idx, err)
			continue
		}
		if ie.Index != idx {
			t.Errorf("IndexError carries index %d, expected %d", ie.Index, idx)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordlist.txt")

	// Trailing newline and per-line padding must not matter.
	content := strings.Join(English().Words(), "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	list, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if idx, ok := list.IndexOf("abandon"); !ok || idx != 0 {
		t.Errorf("loaded list IndexOf(\"abandon\") = (%d, %v), expected (0, true)", idx, ok)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError for missing file, got %v", err)
	}
	if le.Source == "" {
		t.Error("LoadError does not carry the source path")
	}
}

func TestLoadFileWrongCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError for short file, got %v", err)
	}
	if le.Source != path {
		t.Errorf("LoadError source = %q, expected %q", le.Source, path)
	}
}
