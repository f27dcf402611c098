package deploy

import "errors"

// Kind classifies validation and deployment failures.
type Kind int

const (
	// KindUnknown marks errors that carry no deployment classification, such as
	// OS errors propagated from the copy.
	KindUnknown Kind = iota
	// InvalidParent: the target does not exist and its parent is missing or not a directory.
	InvalidParent
	// NotADirectory: the target exists but is not a directory.
	NotADirectory
	// NoWritePermission: the write probe could not be created.
	NoWritePermission
	// AlreadyExists: a deployment occupies the target and overwrite was not authorized.
	AlreadyExists
	// VerificationFailed: the copy finished but required components are absent.
	VerificationFailed
	// SourceOverlap: the deployment root and the bundle are the same tree or nest in each other.
	SourceOverlap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case InvalidParent:
		return "InvalidParent"
	case NotADirectory:
		return "NotADirectory"
	case NoWritePermission:
		return "NoWritePermission"
	case AlreadyExists:
		return "AlreadyExists"
	case VerificationFailed:
		return "VerificationFailed"
	case SourceOverlap:
		return "SourceOverlap"
	default:
		return "Unknown"
	}
}

// Error is a classified validation or deployment failure.
type Error struct {
	Kind Kind
	// Path is the path the failure refers to.
	Path string
	// Err holds the human-readable reason and any underlying OS error.
	Err error
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidParent      = &Error{Kind: InvalidParent}
	ErrNotADirectory      = &Error{Kind: NotADirectory}
	ErrNoWritePermission  = &Error{Kind: NoWritePermission}
	ErrAlreadyExists      = &Error{Kind: AlreadyExists}
	ErrVerificationFailed = &Error{Kind: VerificationFailed}
	ErrSourceOverlap      = &Error{Kind: SourceOverlap}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
