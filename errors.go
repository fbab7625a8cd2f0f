package roundicon

import (
	"errors"
	"fmt"
)

var (
	errEmptyData = errors.New("empty image data")
	errNilImage  = errors.New("nil image provided")
)

// UsageError reports a command line without the required input argument.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

// DecodeError is returned when the input cannot be read or parsed as an image.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError is returned when the PNG output cannot be created or written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// ArgumentError reports an argument value that could not be interpreted,
// such as a non-integer radius or an unknown mask backend.
type ArgumentError struct {
	Name  string
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s %q", e.Name, e.Value)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }
