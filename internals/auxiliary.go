package internals

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// readBufferSize is the size of the chunks a file is streamed in
const readBufferSize = 8 * 1024

// contains tests whether the given slice contains a particular string item
func contains(set []string, item string) bool {
	for _, element := range set {
		if item == element {
			return true
		}
	}
	return false
}

// streamFile writes the content of the file at path to w
// in chunks of readBufferSize bytes. The file is always closed.
func streamFile(w io.Writer, path string) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()
	return streamReader(w, fd)
}

// streamReader copies everything read from r to w
// in chunks of readBufferSize bytes
func streamReader(w io.Writer, r io.Reader) error {
	buf := make([]byte, readBufferSize)
	// hide WriterTo/ReaderFrom, so the buffer is actually used
	_, err := io.CopyBuffer(struct{ io.Writer }{w}, struct{ io.Reader }{r}, buf)
	return err
}

// bytesWriter adapts a ReadBytes method of a Hash to io.Writer
type bytesWriter func([]byte) error

func (f bytesWriter) Write(p []byte) (int, error) {
	if err := f(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// isRegular determines whether a directory entry is a regular file.
// Symlinks, devices, pipes and sockets are not.
func isRegular(mode os.FileMode) bool {
	return mode.IsRegular()
}

// keyEscape introduces an escape sequence in Snapshot keys
const keyEscape = '\\'

// CanonicalPath turns a path relative to the walk root into the
// slash-separated form used as Snapshot key. Bytes which are not valid
// UTF-8 are written as \xHH and a backslash as \\, so every filename
// survives the JSON baseline file unchanged.
func CanonicalPath(rel string) string {
	rel = path.Clean(filepath.ToSlash(rel))
	return escapeKey(strings.Trim(rel, "/"))
}

func escapeKey(name string) string {
	if utf8.ValidString(name) && !strings.ContainsRune(name, keyEscape) {
		return name
	}
	var b strings.Builder
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, `\x%02x`, name[i])
		case r == keyEscape:
			b.WriteString(`\\`)
		default:
			b.WriteString(name[i : i+size])
		}
		i += size
	}
	return b.String()
}

// unescapeKey reverses escapeKey. Malformed sequences are kept verbatim.
func unescapeKey(key string) string {
	if !strings.ContainsRune(key, keyEscape) {
		return key
	}
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c != keyEscape || i+1 >= len(key) {
			b.WriteByte(c)
			continue
		}
		switch {
		case key[i+1] == keyEscape:
			b.WriteByte(keyEscape)
			i++
		case key[i+1] == 'x' && i+4 <= len(key):
			v, err := strconv.ParseUint(key[i+2:i+4], 16, 8)
			if err != nil {
				b.WriteByte(c)
				continue
			}
			b.WriteByte(byte(v))
			i += 3
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// joinRoot turns a Snapshot key back into a filesystem path below root
func joinRoot(root, key string) string {
	return filepath.Join(root, filepath.FromSlash(unescapeKey(key)))
}
