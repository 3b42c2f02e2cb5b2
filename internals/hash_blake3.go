package internals

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// BLAKE3_256 implements the Merkle tree based hash algorithm
// by Jack O'Connor, Jean-Philippe Aumasson, Samuel Neves, and Zooko Wilcox-O'Hearn (2020)
// with its default 256 bits output
type BLAKE3_256 struct {
	h *blake3.Hasher
}

// NewBLAKE3_256 returns a properly initialized BLAKE3_256 instance
func NewBLAKE3_256() *BLAKE3_256 {
	return &BLAKE3_256{h: blake3.New()}
}

// Name returns the hash algorithm's name
func (c *BLAKE3_256) Name() string {
	return string(HashBLAKE3_256)
}

// Size returns the hash output size in bytes
func (c *BLAKE3_256) Size() int {
	return 32
}

// ReadFile provides an interface to update the hash state with the content of an entire file
func (c *BLAKE3_256) ReadFile(filepath string) error {
	return streamFile(c.h, filepath)
}

// ReadBytes provides an interface to update the hash state with individual bytes
func (c *BLAKE3_256) ReadBytes(data []byte) error {
	_, err := c.h.Write(data)
	return err
}

// Digest returns the digest resulting from the hash state
func (c *BLAKE3_256) Digest() []byte {
	return c.h.Sum(nil)
}

// HexDigest returns the digest as lowercase hexadecimal string
func (c *BLAKE3_256) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}
