package internals

import "fmt"

// ReadFailure signals that a single file could not be opened or read
// while computing its fingerprint. The scan skips such files.
type ReadFailure struct {
	Path string
	Err  error
}

func (e *ReadFailure) Error() string {
	return fmt.Sprintf(`could not read file '%s': %s`, e.Path, e.Err)
}

func (e *ReadFailure) Unwrap() error {
	return e.Err
}

// BaselineErrorKind distinguishes the ways a baseline file can fail
type BaselineErrorKind int

const (
	// BaselineCorrupt means the file exists, but its content is no snapshot
	BaselineCorrupt BaselineErrorKind = iota + 1
	// BaselineUnreadable means the file exists, but could not be read
	BaselineUnreadable
	// BaselineUnwritable means a new baseline could not be persisted
	BaselineUnwritable
)

func (k BaselineErrorKind) String() string {
	switch k {
	case BaselineCorrupt:
		return "corrupt"
	case BaselineUnreadable:
		return "unreadable"
	case BaselineUnwritable:
		return "unwritable"
	}
	return "unknown"
}

// BaselineError is returned by BaselineStore operations.
// Only BaselineUnwritable is returned by Save; Load returns the others
// together with an empty Snapshot the caller can continue with.
type BaselineError struct {
	Kind BaselineErrorKind
	Path string
	Err  error
}

func (e *BaselineError) Error() string {
	switch e.Kind {
	case BaselineCorrupt:
		return fmt.Sprintf(`could not decode baseline file '%s', starting with empty baseline: %s`, e.Path, e.Err)
	case BaselineUnreadable:
		return fmt.Sprintf(`could not read baseline file '%s', starting with empty baseline: %s`, e.Path, e.Err)
	case BaselineUnwritable:
		return fmt.Sprintf(`could not write baseline file '%s': %s`, e.Path, e.Err)
	}
	return fmt.Sprintf(`baseline file '%s': %s`, e.Path, e.Err)
}

func (e *BaselineError) Unwrap() error {
	return e.Err
}

// TargetError signals that the directory to check does not exist
// or is not a directory
type TargetError struct {
	Path string
	Err  error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf(`directory not found or is not a directory: %s`, e.Path)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}
