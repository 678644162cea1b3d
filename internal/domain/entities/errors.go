package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrMissingDirectory = errors.New("missing directory")
	ErrScan             = errors.New("scan error")
	ErrCountMismatch    = errors.New("unexpected number of artifacts")
	ErrMalformedTarget  = errors.New("malformed target")
	ErrConnection       = errors.New("connection error")
	ErrRemoteRejection  = errors.New("remote rejection")
)

// PreconditionKind tells which check failed before any upload was attempted.
type PreconditionKind int

const (
	MissingDirectory PreconditionKind = iota
	ScanError
	CountMismatch
)

func (k PreconditionKind) String() string {
	switch k {
	case MissingDirectory:
		return "missing directory"
	case ScanError:
		return "scan error"
	case CountMismatch:
		return "count mismatch"
	default:
		return "unknown"
	}
}

// PreconditionError aborts a run before any network activity.
type PreconditionError struct {
	Kind     PreconditionKind
	Path     string
	Expected int
	Files    []string
	Wrapped  error
}

// NewMissingDirectoryError reports that path is absent or not a directory.
func NewMissingDirectoryError(path string, wrapped error) error {
	return &PreconditionError{Kind: MissingDirectory, Path: path, Wrapped: wrapped}
}

// NewScanError reports that the traversal of path could not complete.
func NewScanError(path string, wrapped error) error {
	return &PreconditionError{Kind: ScanError, Path: path, Wrapped: wrapped}
}

// NewCountMismatchError reports that files does not hold expected entries.
func NewCountMismatchError(path string, expected int, files []string) error {
	return &PreconditionError{Kind: CountMismatch, Path: path, Expected: expected, Files: files}
}

func (e *PreconditionError) Error() string {
	switch e.Kind {
	case MissingDirectory:
		return fmt.Sprintf("no directory found at %s", e.Path)
	case ScanError:
		return fmt.Sprintf("error searching for RPM files in %s: %v", e.Path, e.Wrapped)
	case CountMismatch:
		return fmt.Sprintf("expected %d RPMs and found %d in %s: [%s]",
			e.Expected, len(e.Files), e.Path, strings.Join(e.Files, ", "))
	default:
		return fmt.Sprintf("precondition failed for %s", e.Path)
	}
}

func (e *PreconditionError) Unwrap() error {
	return e.Wrapped
}

// Is matches the sentinel of the failed check.
func (e *PreconditionError) Is(target error) bool {
	switch e.Kind {
	case MissingDirectory:
		return target == ErrMissingDirectory
	case ScanError:
		return target == ErrScan
	case CountMismatch:
		return target == ErrCountMismatch
	default:
		return false
	}
}

// ResolveError means the upload URL built for a file is not a valid URL.
type ResolveError struct {
	URL     string
	Wrapped error
}

// NewResolveError creates a new ResolveError.
func NewResolveError(uploadURL string, wrapped error) error {
	return &ResolveError{URL: uploadURL, Wrapped: wrapped}
}

func (e *ResolveError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("repository URL malformed: %s: %v", e.URL, e.Wrapped)
	}
	return fmt.Sprintf("repository URL malformed: %s", e.URL)
}

func (e *ResolveError) Unwrap() error {
	return e.Wrapped
}

func (e *ResolveError) Is(target error) bool {
	return target == ErrMalformedTarget
}

// TransportError means the request could not be sent or its response read.
type TransportError struct {
	Op      string
	Path    string
	URL     string
	Wrapped error
}

// NewTransportError creates a new TransportError for the given target.
func NewTransportError(op string, target UploadTarget, wrapped error) error {
	return &TransportError{Op: op, Path: target.Path, URL: target.URL, Wrapped: wrapped}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not PUT file %s to %s (%s): %v", e.Path, e.URL, e.Op, e.Wrapped)
}

func (e *TransportError) Unwrap() error {
	return e.Wrapped
}

func (e *TransportError) Is(target error) bool {
	return target == ErrConnection
}

// RemoteRejectionError lists every upload the repository refused during a run.
type RemoteRejectionError struct {
	Rejections []Rejection
}

func (e *RemoteRejectionError) Error() string {
	parts := make([]string, 0, len(e.Rejections))
	for _, rejection := range e.Rejections {
		parts = append(parts, fmt.Sprintf("%s (%s)", rejection.Target.Path, rejection.Result.StatusLine()))
	}
	return fmt.Sprintf("%d upload(s) rejected by the repository: %s", len(e.Rejections), strings.Join(parts, ", "))
}

func (e *RemoteRejectionError) Is(target error) bool {
	return target == ErrRemoteRejection
}
