// Package v1 is the public API of intact. It wires the hasher, scanner,
// baseline store and differ together the way the intact command uses them.
package v1

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meisterluk/intact-go/internals"
)

const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_PATCH = 0
const RELEASE_DATE = "2026-10-19"
const LICENSE = "MIT"

type Snapshot = internals.Snapshot
type Fingerprint = internals.Fingerprint
type Classification = internals.Classification

// CheckParameters defines a check of Directory against the baseline file at Baseline
type CheckParameters struct {
	Directory            string
	Baseline             string
	HashAlgorithm        string
	ExcludeBasename      []string
	ExcludeBasenameRegex []string
	ExcludeTree          []string
	// Warn receives non-fatal errors: unreadable files and baseline problems
	Warn func(error)
}

// CheckResult is the outcome of Check
type CheckResult struct {
	Current        Snapshot
	Stored         Snapshot
	Classification Classification
	Statistics     internals.Statistics
}

// Version returns the version number as string
func Version() string {
	return fmt.Sprintf("%d.%d.%d", VERSION_MAJOR, VERSION_MINOR, VERSION_PATCH)
}

// ValidateTarget returns a *internals.TargetError unless dir is an existing directory
func ValidateTarget(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &internals.TargetError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &internals.TargetError{Path: dir, Err: fmt.Errorf(`not a directory`)}
	}
	return nil
}

// Check scans p.Directory and compares it with the stored baseline.
// Errors are only returned for invalid parameters and a missing target,
// in which case the baseline file has not been touched.
func Check(p CheckParameters) (CheckResult, error) {
	var result CheckResult
	warn := p.Warn
	if warn == nil {
		warn = func(error) {}
	}

	algo, err := internals.HashAlgorithmFromString(p.HashAlgorithm)
	if p.HashAlgorithm == "" {
		algo, err = internals.DefaultHash, nil
	}
	if err != nil {
		return result, err
	}
	regexes, err := internals.CompileBasenameRegexes(p.ExcludeBasenameRegex)
	if err != nil {
		return result, err
	}
	if err := ValidateTarget(p.Directory); err != nil {
		return result, err
	}

	baseline := p.Baseline
	if baseline == "" {
		baseline = internals.DefaultBaselineFile
	}

	excludeTree := make([]string, 0, len(p.ExcludeTree)+1)
	for _, tree := range p.ExcludeTree {
		excludeTree = append(excludeTree, internals.CanonicalPath(tree))
	}
	if rel, ok := relativeToTree(p.Directory, baseline); ok {
		excludeTree = append(excludeTree, rel)
	}

	store := internals.NewBaselineStore(baseline)
	result.Stored, err = store.Load()
	if err != nil {
		warn(err)
	} else if err := result.Stored.CheckDigests(algo); err != nil {
		warn(fmt.Errorf(`baseline file '%s': %w`, baseline, err))
	}

	result.Current = internals.Scan(p.Directory, internals.ScanOptions{
		WalkOptions: internals.WalkOptions{
			ExcludeBasename:      p.ExcludeBasename,
			ExcludeBasenameRegex: regexes,
			ExcludeTree:          excludeTree,
		},
		HashAlgorithm: algo,
		Warn:          warn,
		Stats:         &result.Statistics,
	})

	result.Classification = internals.Diff(result.Current, result.Stored)
	return result, nil
}

// UpdateBaseline persists s as the new baseline at path
func UpdateBaseline(path string, s Snapshot) error {
	if path == "" {
		path = internals.DefaultBaselineFile
	}
	return internals.NewBaselineStore(path).Save(s)
}

// HashOfFile returns the fingerprint of the file at path
func HashOfFile(path string, hashAlgorithm string) (Fingerprint, error) {
	algo, err := internals.HashAlgorithmFromString(hashAlgorithm)
	if err != nil {
		return "", err
	}
	return internals.HashFile(path, algo)
}

// SupportedHashAlgorithms lists the identifiers accepted as hash algorithm
func SupportedHashAlgorithms() []string {
	return internals.SupportedHashAlgorithms()
}

// relativeToTree returns the Snapshot key of file relative to dir,
// if file is located inside dir
func relativeToTree(dir, file string) (string, bool) {
	absDir, err := resolvePath(dir)
	if err != nil {
		return "", false
	}
	absFileDir, err := resolvePath(filepath.Dir(file))
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absDir, filepath.Join(absFileDir, filepath.Base(file)))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return internals.CanonicalPath(rel), true
}

func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
