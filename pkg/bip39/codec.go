// Package bip39 converts between raw entropy and BIP-39 mnemonic
// sentences: entropy plus a SHA-256 checksum prefix is packed MSB-first
// into 11-bit groups, each group indexing a word in a fixed 2048-word
// list. Decoding reverses the packing and verifies the checksum.
package bip39

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/gefd/bip39/pkg/safe_random"
	"github.com/gefd/bip39/pkg/wordlist"
)

// DefaultStrength is the entropy bit length used when the caller does
// not ask for a specific one (12-word mnemonics).
const DefaultStrength = 128

// bitsPerWord is how many bits of checksummed entropy each mnemonic
// word carries.
const bitsPerWord = 11

var (
	strengths       = []int{128, 160, 192, 224, 256}
	entropyLengths  = []int{16, 20, 24, 28, 32}
	mnemonicLengths = []int{12, 15, 18, 21, 24}
)

// Strengths returns the accepted entropy bit lengths.
func Strengths() []int {
	return slices.Clone(strengths)
}

// ValidateStrength fails unless strength is one of 128, 160, 192, 224
// or 256 bits.
func ValidateStrength(strength int) error {
	if !slices.Contains(strengths, strength) {
		return &InvalidStrengthError{Strength: strength}
	}
	return nil
}

// ValidateEntropy fails unless the entropy is 16, 20, 24, 28 or 32
// bytes long.
func ValidateEntropy(entropy []byte) error {
	if !slices.Contains(entropyLengths, len(entropy)) {
		return &InvalidEntropyLengthError{Bytes: len(entropy)}
	}
	return nil
}

// ValidateMnemonicLength fails unless the word count is 12, 15, 18, 21
// or 24.
func ValidateMnemonicLength(words []string) error {
	if !slices.Contains(mnemonicLengths, len(words)) {
		return &InvalidMnemonicLengthError{Words: len(words)}
	}
	return nil
}

// Codec converts between entropy and mnemonics over a fixed word list.
// A Codec is immutable and safe for concurrent use; construct with New.
type Codec struct {
	list *wordlist.List
}

// New returns a Codec backed by the given word list. A nil list selects
// the embedded canonical English list.
func New(list *wordlist.List) *Codec {
	if list == nil {
		list = wordlist.English()
	}
	return &Codec{list: list}
}

// Generate draws strength/8 bytes from the system CSPRNG and encodes
// them as a mnemonic. The result is the ordered word sequence; join
// with single spaces for the sentence form.
func (c *Codec) Generate(strength int) ([]string, error) {
	if err := ValidateStrength(strength); err != nil {
		return nil, err
	}
	entropy, err := safe_random.Bytes(strength / 8)
	if err != nil {
		return nil, &RandomnessError{Err: err}
	}
	mnemonic, err := c.EntropyToMnemonic(entropy)
	if err != nil {
		return nil, err
	}
	return strings.Split(mnemonic, " "), nil
}

// EntropyToMnemonic encodes entropy bytes as a space-joined mnemonic
// sentence: the entropy bits (MSB-first per byte) followed by the
// checksum bits, split into 11-bit word indexes.
func (c *Codec) EntropyToMnemonic(entropy []byte) (string, error) {
	if err := ValidateEntropy(entropy); err != nil {
		return "", err
	}

	checksummed := appendChecksum(entropy)
	wordCount := (len(entropy)*8 + checksumBits(len(entropy))) / bitsPerWord

	words := make([]string, wordCount)
	for i := range words {
		index := extract11(checksummed, i*bitsPerWord)
		word, err := c.list.WordAt(int(index))
		if err != nil {
			return "", err
		}
		words[i] = word
	}
	return strings.Join(words, " "), nil
}

// EntropyHexToMnemonic decodes a hex-encoded entropy string (case
// insensitive) and encodes it as a mnemonic.
func (c *Codec) EntropyHexToMnemonic(entropyHex string) (string, error) {
	entropy, err := hex.DecodeString(strings.TrimSpace(entropyHex))
	if err != nil {
		return "", fmt.Errorf("decode entropy hex: %w", err)
	}
	return c.EntropyToMnemonic(entropy)
}

// MnemonicToEntropy recovers the original entropy from a mnemonic
// sentence and returns it hex-encoded. The embedded checksum is
// recomputed over the recovered entropy and compared bit for bit;
// a mismatch fails with ErrChecksumMismatch.
func (c *Codec) MnemonicToEntropy(mnemonic string) (string, error) {
	words := strings.Fields(mnemonic)
	if err := ValidateMnemonicLength(words); err != nil {
		return "", err
	}

	// 11*words = entropyBits + checksumBits with checksumBits = words/3,
	// so the entropy always fills whole bytes and the checksum bits land
	// byte-aligned in one trailing byte.
	csBits := len(words) / 3
	entropyLen := len(words) * 4 / 3
	buf := make([]byte, entropyLen+1)

	for pos, word := range words {
		index, ok := c.list.IndexOf(word)
		if !ok {
			return "", &UnknownWordError{Word: word, Position: pos}
		}
		set11(buf, pos*bitsPerWord, uint16(index))
	}

	entropy := buf[:entropyLen]
	got := buf[entropyLen] >> (8 - csBits)
	sum := sha256.Sum256(entropy)
	if got != sum[0]>>(8-csBits) {
		return "", ErrChecksumMismatch
	}
	return hex.EncodeToString(entropy), nil
}

// checksumBits returns the checksum length for an entropy byte length:
// one bit per 4 bytes, the fixed {16:4, 20:5, 24:6, 28:7, 32:8} table.
func checksumBits(entropyLen int) int {
	return entropyLen / 4
}

// appendChecksum returns the entropy followed by the first SHA-256
// digest byte. Only the leading checksumBits bits of that byte are ever
// read back out; a single byte suffices because the longest checksum is
// 8 bits. Longer checksums would need a multi-byte digest prefix.
func appendChecksum(entropy []byte) []byte {
	sum := sha256.Sum256(entropy)
	out := make([]byte, 0, len(entropy)+1)
	out = append(out, entropy...)
	return append(out, sum[0])
}

// extract11 reads the 11-bit big-endian group starting at the given bit
// offset. Callers guarantee the group stays within buf.
func extract11(buf []byte, bit int) uint16 {
	var v uint16
	for i := bit; i < bit+bitsPerWord; i++ {
		v <<= 1
		if buf[i/8]&(1<<(7-i%8)) != 0 {
			v |= 1
		}
	}
	return v
}

// set11 writes an 11-bit big-endian group into buf at the given bit
// offset.
func set11(buf []byte, bit int, v uint16) {
	for i := 0; i < bitsPerWord; i++ {
		if v&(1<<(bitsPerWord-1-i)) != 0 {
			b := bit + i
			buf[b/8] |= 1 << (7 - b%8)
		}
	}
}
