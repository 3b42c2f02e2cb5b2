package internals

import "io"

// Fingerprint is the lowercase hexadecimal digest of a file's content
type Fingerprint string

// HashFile computes the fingerprint of the regular file at path.
// If the file cannot be opened or read, a *ReadFailure is returned.
func HashFile(path string, algo HashAlgo) (Fingerprint, error) {
	h := algo.Algorithm()
	if err := h.ReadFile(path); err != nil {
		return "", &ReadFailure{Path: path, Err: err}
	}
	return Fingerprint(h.HexDigest()), nil
}

// HashReader computes the fingerprint of all data read from r
func HashReader(r io.Reader, algo HashAlgo) (Fingerprint, error) {
	h := algo.Algorithm()
	if err := streamReader(bytesWriter(h.ReadBytes), r); err != nil {
		return "", err
	}
	return Fingerprint(h.HexDigest()), nil
}
