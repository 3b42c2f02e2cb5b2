package internals

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"
)

// SHA3 implements the sponge construction based hash algorithm
// invented by Guido Bertoni, Joan Daemen, Michaël Peeters, and Gilles Van Assche (2008).
// The output size is fixed at construction (256 or 512 bits).
type SHA3 struct {
	h    hash.Hash
	name HashAlgo
}

// NewSHA3_256 returns a properly initialized SHA3 instance with 256 bits output
func NewSHA3_256() *SHA3 {
	return &SHA3{h: sha3.New256(), name: HashSHA3_256}
}

// NewSHA3_512 returns a properly initialized SHA3 instance with 512 bits output
func NewSHA3_512() *SHA3 {
	return &SHA3{h: sha3.New512(), name: HashSHA3_512}
}

// Name returns the hash algorithm's name
func (c *SHA3) Name() string {
	return string(c.name)
}

// Size returns the hash output size in bytes
func (c *SHA3) Size() int {
	return c.h.Size()
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *SHA3) ReadFile(filepath string) error {
	return streamFile(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA3) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Digest returns the digest resulting from the hash state
func (c *SHA3) Digest() []byte {
	return c.h.Sum([]byte{})
}

// HexDigest returns the digest as lowercase hexadecimal string
func (c *SHA3) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}
