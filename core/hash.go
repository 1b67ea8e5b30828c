package core

import (
	"encoding/hex"
	"fmt"
)

// Blake3SumSize is the size of a blake3 digest in bytes.
const Blake3SumSize = 32

// Blake3Sum is a raw blake3 digest of a managed file's contents. The core
// only stores and compares digests; computing and verifying them against
// downloaded bytes is the fetcher's job.
//
// On the wire a digest is exactly 64 lowercase hex characters.
type Blake3Sum [Blake3SumSize]byte

// ParseBlake3Sum decodes a 64-character hex string into a digest. Any other
// length, or invalid hex, is an error.
func ParseBlake3Sum(raw string) (Blake3Sum, error) {
	var sum Blake3Sum
	if len(raw) != hex.EncodedLen(Blake3SumSize) {
		return sum, fmt.Errorf("blake3 digest must be %d hex characters, got %d", hex.EncodedLen(Blake3SumSize), len(raw))
	}
	if _, err := hex.Decode(sum[:], []byte(raw)); err != nil {
		return sum, err
	}
	return sum, nil
}

func (s Blake3Sum) String() string {
	return hex.EncodeToString(s[:])
}

// MarshalText encodes the digest as lowercase hex.
func (s Blake3Sum) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(Blake3SumSize))
	hex.Encode(out, s[:])
	return out, nil
}

// UnmarshalText decodes a digest, rejecting anything that isn't exactly 32
// bytes of hex.
func (s *Blake3Sum) UnmarshalText(text []byte) error {
	sum, err := ParseBlake3Sum(string(text))
	if err != nil {
		return err
	}
	*s = sum
	return nil
}
