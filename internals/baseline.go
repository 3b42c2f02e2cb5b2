package internals

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-json"
)

// DefaultBaselineFile is the baseline filename used unless configured otherwise
const DefaultBaselineFile = "file_hashes.json"

// BaselineStore reads and writes the snapshot stored at Path
type BaselineStore struct {
	Path string
}

// NewBaselineStore returns a BaselineStore persisting its snapshot at path
func NewBaselineStore(path string) *BaselineStore {
	return &BaselineStore{Path: path}
}

// Load reads the stored snapshot. A missing file is a first run
// and returns an empty Snapshot without error. An unreadable or malformed
// file also returns an empty Snapshot, together with a *BaselineError
// the caller is supposed to report as warning. Load never writes.
func (b *BaselineStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, &BaselineError{Kind: BaselineUnreadable, Path: b.Path, Err: err}
	}

	var stored Snapshot
	if err := json.Unmarshal(data, &stored); err != nil {
		return Snapshot{}, &BaselineError{Kind: BaselineCorrupt, Path: b.Path, Err: err}
	}
	if stored == nil {
		return Snapshot{}, &BaselineError{Kind: BaselineCorrupt, Path: b.Path, Err: fmt.Errorf(`expected JSON object, got null`)}
	}
	return stored, nil
}

// CheckDigests returns an error for the first fingerprint (in path order)
// which is no hex digest of algo. Such a snapshot was computed with another
// hash algorithm and every file in it compares as modified.
func (s Snapshot) CheckDigests(algo HashAlgo) error {
	size := algo.DigestSize()
	for _, path := range slices.Sorted(maps.Keys(s)) {
		digest, err := hex.DecodeString(string(s[path]))
		if err != nil || len(digest) != size {
			return fmt.Errorf(`fingerprint of '%s' is no %s digest, was the baseline created with another hash algorithm?`, path, algo)
		}
	}
	return nil
}

// Encode serializes the snapshot in the baseline file format:
// a JSON object with sorted keys, indented by four spaces
func (s Snapshot) Encode() ([]byte, error) {
	if s == nil {
		s = Snapshot{}
	}
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save replaces the stored snapshot with s. The data is written to a
// temporary file next to Path first, which is then renamed over Path.
// Thus a failing Save leaves the previous baseline intact.
func (b *BaselineStore) Save(s Snapshot) error {
	data, err := s.Encode()
	if err != nil {
		return &BaselineError{Kind: BaselineUnwritable, Path: b.Path, Err: err}
	}

	if err := writeFileAtomic(b.Path, data, 0o644); err != nil {
		return &BaselineError{Kind: BaselineUnwritable, Path: b.Path, Err: err}
	}
	return nil
}

// writeFileAtomic writes data to a temporary file in the directory of path
// and renames it to path once the data reached the disk
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	committed = true
	return nil
}
