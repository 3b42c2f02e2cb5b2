package internals

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"regexp"
)

// WalkOptions defines which parts of a tree are excluded from a walk
type WalkOptions struct {
	// any file or directory with this particular basename is ignored
	ExcludeBasename []string
	// any file or directory with a basename matching one of these is ignored
	ExcludeBasenameRegex []*regexp.Regexp
	// paths relative to the root in CanonicalPath form; a directory excludes its subtree
	ExcludeTree []string
}

// CompileBasenameRegexes compiles POSIX regular expressions for WalkOptions.ExcludeBasenameRegex
func CompileBasenameRegexes(exprs []string) ([]*regexp.Regexp, error) {
	regexes := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		regex, err := regexp.CompilePOSIX(expr)
		if err != nil {
			return nil, fmt.Errorf(`invalid basename regex '%s': %w`, expr, err)
		}
		regexes = append(regexes, regex)
	}
	return regexes, nil
}

func (o *WalkOptions) excluded(relPath, basename string) bool {
	if contains(o.ExcludeTree, relPath) || contains(o.ExcludeBasename, basename) {
		return true
	}
	for _, regex := range o.ExcludeBasenameRegex {
		if regex.MatchString(basename) {
			return true
		}
	}
	return false
}

// Walk lazily enumerates all regular files below root.
// It yields the Snapshot key of each file, see CanonicalPath.
// Non-regular entries (symlinks, devices, pipes, sockets) are skipped silently.
// Errors for individual entries are yielded with an empty path and the walk continues.
// A nonexistent root yields nothing.
func Walk(root string, opts WalkOptions) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		// a symlinked root is followed, symlinks below it are not
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			root = resolved
		}
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root && errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				if !yield("", fmt.Errorf(`cannot traverse '%s': %w`, path, err)) {
					return filepath.SkipAll
				}
				// for directories, this is the second call reporting a failed ReadDir
				return nil
			}

			if path == root {
				if !d.IsDir() {
					return filepath.SkipAll
				}
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				if !yield("", err) {
					return filepath.SkipAll
				}
				return nil
			}
			rel = CanonicalPath(rel)

			if opts.excluded(rel, d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() || !isRegular(d.Type()) {
				return nil
			}

			if !yield(rel, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
