package internals

import "os"

// Snapshot maps the slash-separated path of a file, relative to the
// scanned root, to the fingerprint of its content
type Snapshot map[string]Fingerprint

// Equal determines whether both snapshots contain the same paths with the same fingerprints
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for path, fp := range s {
		otherFP, ok := other[path]
		if !ok || otherFP != fp {
			return false
		}
	}
	return true
}

// ScanOptions defines the parameters of a scan
type ScanOptions struct {
	WalkOptions
	HashAlgorithm HashAlgo
	// Warn receives every error which caused a path to be omitted. May be nil.
	Warn func(error)
	// Stats is updated for every hashed or skipped file. May be nil.
	Stats *Statistics
}

// Scan walks the tree at root and fingerprints every regular file.
// Files which cannot be traversed or read are reported to opts.Warn
// and are not part of the returned Snapshot.
func Scan(root string, opts ScanOptions) Snapshot {
	algo := opts.HashAlgorithm
	if algo == "" {
		algo = DefaultHash
	}
	warn := opts.Warn
	if warn == nil {
		warn = func(error) {}
	}

	stats := opts.Stats
	if stats == nil {
		stats = new(Statistics)
	}

	snapshot := make(Snapshot)
	for relPath, err := range Walk(root, opts.WalkOptions) {
		if err != nil {
			stats.addFailure()
			warn(err)
			continue
		}

		path := joinRoot(root, relPath)
		fp, err := HashFile(path, algo)
		if err != nil {
			stats.addFailure()
			warn(err)
			continue
		}
		snapshot[relPath] = fp

		if info, err := os.Stat(path); err == nil {
			stats.addFile(info.Size())
		} else {
			stats.addFile(0)
		}
	}
	return snapshot
}
