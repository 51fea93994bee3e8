package wordlist

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

// The canonical English BIP-39 word list ships with the binary so the
// common case needs no external file.
//
//go:embed english.txt
var englishTxt string

var (
	englishOnce sync.Once
	english     *List
)

// English returns the canonical English word list. The shared instance is
// built once and is safe for concurrent use. A corrupt embedded asset is a
// packaging defect, so construction failure panics.
func English() *List {
	englishOnce.Do(func() {
		l, err := New(strings.Split(strings.TrimSpace(englishTxt), "\n"))
		if err != nil {
			panic(fmt.Sprintf("embedded english word list is invalid: %v", err))
		}
		english = l
	})
	return english
}
