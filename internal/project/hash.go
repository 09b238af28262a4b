package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is a SHA-256 content hash.
type Digest [32]byte

// HashBytes hashes raw file contents.
func HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// Combine builds a cache key: H(content || part1 || part2 ...). The order of
// parts must be deterministic.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// HashString hashes a configuration string so it can be mixed into keys.
func HashString(s string) Digest {
	return sha256.Sum256([]byte(s))
}

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool { return d == Digest{} }
