package domdoc

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the loader matches exactly one of
// these through errors.Is.
var (
	ErrContainer = errors.New("fla: container error")
	ErrFormat    = errors.New("fla: format error")
)

// Attribute errors, wrapped by FormatError.
var (
	ErrMissingAttribute = errors.New("fla: missing required attribute")
	ErrInvalidAttribute = errors.New("fla: invalid attribute value")
)

// ContainerError reports that the container could not be opened or lacks
// the document entry.
type ContainerError struct {
	Path string
	Err  error
}

func (e *ContainerError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("fla: container: %v", e.Err)
	}
	return fmt.Sprintf("fla: container %q: %v", e.Path, e.Err)
}

func (e *ContainerError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrContainer) true for every ContainerError.
func (e *ContainerError) Is(target error) bool { return target == ErrContainer }

// FormatError reports malformed XML, an underivable namespace, or a required
// attribute that is missing or not convertible.
type FormatError struct {
	// Element is the slash-separated path of the offending element.
	Element string
	// Attr is the attribute name, empty for element-level failures.
	Attr string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("fla: %s: attribute %q: %v", e.Element, e.Attr, e.Err)
	}
	return fmt.Sprintf("fla: %s: %v", e.Element, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFormat) true for every FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
