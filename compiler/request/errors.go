package request

import (
	"errors"
	"strings"
)

// ErrDecode indicates a malformed request payload.
var ErrDecode = errors.New("pgc: malformed request")

// DecodeError is returned when a request payload cannot be decoded.
type DecodeError struct {
	Format Format
	Cause  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("failed to deserialize request")
	if e.Format != "" {
		b.WriteString(" (")
		b.WriteString(string(e.Format))
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	b.WriteString(".\nThis may be a versioning issue between pgc and the host that produced the request.")
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// IsDecodeError reports whether the error is a DecodeError.
func IsDecodeError(err error) bool {
	var decErr *DecodeError
	return errors.As(err, &decErr)
}
