package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// DatasetHash fingerprints a loaded amount series
type DatasetHash Hash

func (h DatasetHash) String() string { return Hash(h).String() }

// FingerprintAmounts computes a deterministic fingerprint over an ordered
// amount series. Identical input order and values always produce identical
// fingerprints, so two runs over the same dataset are directly comparable.
func FingerprintAmounts(amounts []float64) DatasetHash {
	buf := make([]byte, 8*len(amounts))
	for i, v := range amounts {
		binary.BigEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return DatasetHash(NewHash(buf))
}
