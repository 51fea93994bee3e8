package bip39

import (
	"errors"
	"fmt"

	"github.com/gefd/bip39/pkg/wordlist"
)

// Classification codes for codec failures. Callers that need a stable
// error class, such as the CLI exit status, obtain one through Decode.
// 0 is reserved for success.
const (
	CodeInternal = iota + 1
	CodeInvalidStrength
	CodeInvalidEntropyLength
	CodeInvalidMnemonicLength
	CodeUnknownWord
	CodeChecksumMismatch
	CodeRandomness
	CodeWordList
)

// ErrChecksumMismatch reports a mnemonic whose words are all valid list
// members but whose embedded checksum does not match the recovered
// entropy: an altered word, wrong word order or a foreign word list.
var ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")

// InvalidStrengthError reports an entropy bit length outside the
// accepted set.
type InvalidStrengthError struct {
	Strength int
}

func (e *InvalidStrengthError) Error() string {
	return fmt.Sprintf("invalid strength %d: must be one of %v", e.Strength, strengths)
}

// InvalidEntropyLengthError reports an entropy byte length outside the
// accepted set.
type InvalidEntropyLengthError struct {
	Bytes int
}

func (e *InvalidEntropyLengthError) Error() string {
	return fmt.Sprintf("invalid entropy length %d bytes: must be one of %v", e.Bytes, entropyLengths)
}

// InvalidMnemonicLengthError reports a mnemonic word count outside the
// accepted set.
type InvalidMnemonicLengthError struct {
	Words int
}

func (e *InvalidMnemonicLengthError) Error() string {
	return fmt.Sprintf("invalid mnemonic length %d words: must be one of %v", e.Words, mnemonicLengths)
}

// UnknownWordError reports a mnemonic word that is not a member of the
// loaded word list. It is never conflated with a checksum mismatch: an
// unknown word means the mnemonic is structurally invalid.
type UnknownWordError struct {
	Word     string
	Position int
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q at position %d", e.Word, e.Position)
}

// RandomnessError reports that the system CSPRNG failed to provide
// entropy. It is fatal for the call; there is no retry or fallback.
type RandomnessError struct {
	Err error
}

func (e *RandomnessError) Error() string {
	return "randomness unavailable: " + e.Err.Error()
}

func (e *RandomnessError) Unwrap() error { return e.Err }

// Decode classifies an error produced by this package or by the wordlist
// package into a stable code plus its message. Unrecognized errors
// classify as CodeInternal.
func Decode(err error) (int, string) {
	if err == nil {
		return 0, "ok"
	}

	var (
		strengthErr *InvalidStrengthError
		entropyErr  *InvalidEntropyLengthError
		lengthErr   *InvalidMnemonicLengthError
		wordErr     *UnknownWordError
		randErr     *RandomnessError
		loadErr     *wordlist.LoadError
		indexErr    *wordlist.IndexError
	)
	switch {
	case errors.As(err, &strengthErr):
		return CodeInvalidStrength, err.Error()
	case errors.As(err, &entropyErr):
		return CodeInvalidEntropyLength, err.Error()
	case errors.As(err, &lengthErr):
		return CodeInvalidMnemonicLength, err.Error()
	case errors.As(err, &wordErr):
		return CodeUnknownWord, err.Error()
	case errors.Is(err, ErrChecksumMismatch):
		return CodeChecksumMismatch, err.Error()
	case errors.As(err, &randErr):
		return CodeRandomness, err.Error()
	case errors.As(err, &loadErr), errors.As(err, &indexErr):
		return CodeWordList, err.Error()
	default:
		return CodeInternal, err.Error()
	}
}
