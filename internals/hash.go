package internals

import (
	"fmt"
	"strings"
)

// HashAlgo is an alias for string, but specifically can only
// be one of the identifiers for hash algorithms.
type HashAlgo string

const (
	HashSHA256     HashAlgo = `sha-256`
	HashSHA512     HashAlgo = `sha-512`
	HashSHA3_256   HashAlgo = `sha-3-256`
	HashSHA3_512   HashAlgo = `sha-3-512`
	HashBLAKE3_256 HashAlgo = `blake3-256`
)

// DefaultHash is the algorithm used unless the user asks for another one
const DefaultHash HashAlgo = HashSHA256

// SupportedHashAlgorithms returns the list of supported hash algorithms.
// The slice contains specified hash algorithm identifiers
func SupportedHashAlgorithms() []string {
	return []string{
		string(HashSHA256),
		string(HashSHA512),
		string(HashSHA3_256),
		string(HashSHA3_512),
		string(HashBLAKE3_256),
	}
}

// DigestSize returns the output size in bytes for a given hash algorithm.
// Unknown algorithms have size 0.
func (h HashAlgo) DigestSize() int {
	if !contains(SupportedHashAlgorithms(), string(h)) {
		return 0
	}
	return h.Algorithm().Size()
}

// Algorithm returns a Hash instance for the given hash algorithm name.
func (h HashAlgo) Algorithm() Hash {
	switch h {
	case HashSHA256:
		return NewSHA256()
	case HashSHA512:
		return NewSHA512()
	case HashSHA3_256:
		return NewSHA3_256()
	case HashSHA3_512:
		return NewSHA3_512()
	case HashBLAKE3_256:
		return NewBLAKE3_256()
	}
	return DefaultHash.Algorithm()
}

// HashAlgorithmFromString returns a HashAlgo instance, give the hash algorithm's name as a string
func HashAlgorithmFromString(name string) (HashAlgo, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, algo := range SupportedHashAlgorithms() {
		if name == algo {
			return HashAlgo(algo), nil
		}
	}
	return DefaultHash, fmt.Errorf(`unknown hash algorithm %q`, name)
}

// Hash is a custom interface to define operations
// a hash algorithm needs to support to fingerprint files
type Hash interface {
	// returns number of bytes of the digest
	Size() int
	// update hash state with data of file at given filepath
	ReadFile(string) error
	// update hash state with given bytes
	ReadBytes([]byte) error
	// get hash state digest
	Digest() []byte
	// get hash state digest represented as hexadecimal string
	HexDigest() string
	// get string representation of this hash algorithm
	Name() string
}
