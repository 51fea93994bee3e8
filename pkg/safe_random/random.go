package safe_random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
)

// Reader is the shared cryptographically secure randomness source.
// It defaults to crypto/rand.Reader; tests may swap in a deterministic
// or failing source.
var Reader io.Reader = rand.Reader

// Bytes returns n bytes read from Reader. The read either fills the
// buffer completely or fails; there is no fallback to a weaker source.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// HexString returns n random bytes hex-encoded. The resulting string is
// twice the requested byte count in length.
func HexString(n int) (string, error) {
	b, err := Bytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Int returns a uniform random value in [0, max). max must be positive.
func Int(max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, fmt.Errorf("max must be positive")
	}
	return rand.Int(Reader, max)
}
