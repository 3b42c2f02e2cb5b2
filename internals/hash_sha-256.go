package internals

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

// SHA256 implements the Merkle–Damgård structure based, cryptographic hash algorithm invented by NSA (2001)
type SHA256 struct {
	h hash.Hash
}

// NewSHA256 defines returns a properly initialized SHA256 instance
func NewSHA256() *SHA256 {
	c := new(SHA256)
	c.h = sha256.New()
	return c
}

// Name returns the hash algorithm's name
func (c *SHA256) Name() string {
	return string(HashSHA256)
}

// Size returns the hash output size in bytes
func (c *SHA256) Size() int {
	return 32
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *SHA256) ReadFile(filepath string) error {
	return streamFile(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *SHA256) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Digest returns the digest resulting from the hash state
func (c *SHA256) Digest() []byte {
	return c.h.Sum([]byte{})
}

// HexDigest returns the digest as lowercase hexadecimal string
func (c *SHA256) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}
