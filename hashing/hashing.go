// Package hashing turns Hashable values into string keys for hash sets.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strconv"

	"github.com/zeebo/xxh3"
)

// HashFunc maps a Hashable to the string key used by set.Set.
// Different values may share a key; sets resolve that with Equals.
type HashFunc func(hashable Hashable) (string, error)

// Hashable values write their identity into h.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Xxh3 hashes with the 64-bit XXH3 function and returns the sum in hex.
// It is the default for in-memory sets, where keys never leave the process.
func Xxh3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return strconv.FormatUint(h.Sum64(), 16), nil
}

// Sha256 hashes with SHA-256 and returns the hex-encoded digest.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}
