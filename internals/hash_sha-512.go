package internals

import (
	"crypto/sha512"
	"encoding/hex"
	"hash"
)

// SHA512 implements the Merkle–Damgård structure based, cryptographic hash algorithm invented by NSA (2001)
type SHA512 struct {
	h hash.Hash
}

// NewSHA512 defines returns a properly initialized SHA512 instance
func NewSHA512() *SHA512 {
	c := new(SHA512)
	c.h = sha512.New()
	return c
}

// Name returns the hash algorithm's name
func (c *SHA512) Name() string {
	return string(HashSHA512)
}

// Size returns the hash output size in bytes
func (c *SHA512) Size() int {
	return 64
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *SHA512) ReadFile(filepath string) error {
	return streamFile(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA512) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Digest returns the digest resulting from the hash state
func (c *SHA512) Digest() []byte {
	return c.h.Sum([]byte{})
}

// HexDigest returns the digest as lowercase hexadecimal string
func (c *SHA512) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}
