package wrapper

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every error returned by this package matches one of them
// with errors.Is, and all of them abort the run.
var (
	// ErrUnparsableSource indicates an input that is not a valid minimal-style Go file.
	ErrUnparsableSource = errors.New("wrapper: unparsable source")
	// ErrUnknownFieldKind indicates a field whose annotations match no known kind.
	ErrUnknownFieldKind = errors.New("wrapper: unknown field kind")
	// ErrIO indicates an unreadable input or an uncreatable output.
	ErrIO = errors.New("wrapper: i/o failure")
)

// SourceError reports an input file that could not be parsed.
type SourceError struct {
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	var b strings.Builder
	b.WriteString("wrapper: cannot parse ")
	b.WriteString(e.Path)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrUnparsableSource.
func (e *SourceError) Is(target error) bool {
	return target == ErrUnparsableSource
}

// FieldError reports a field that could not be classified.
type FieldError struct {
	Type    string
	Field   string
	Tag     string
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("wrapper: field %s.%s (tag %q): %s", e.Type, e.Field, e.Tag, e.Message)
}

// Is reports whether target is ErrUnknownFieldKind.
func (e *FieldError) Is(target error) bool {
	return target == ErrUnknownFieldKind
}

// IOError reports a failed read or write.
type IOError struct {
	Op    string
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("wrapper: %s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
