package gen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrUnsupportedTarget indicates a language or driver without a
	// registered target.
	ErrUnsupportedTarget = errors.New("pgc: unsupported target")
	// ErrMissingOption indicates a required codegen option was not set.
	ErrMissingOption = errors.New("pgc: missing configuration option")
	// ErrTemplate indicates a template could not be found or rendered.
	ErrTemplate = errors.New("pgc: template failure")
	// ErrInvalidPath indicates an output path that is not a clean relative
	// path or that was already emitted.
	ErrInvalidPath = errors.New("pgc: invalid output path")
	// ErrInvalidConfig indicates an invalid generator option.
	ErrInvalidConfig = errors.New("pgc: invalid configuration")
)

// ConfigError represents an invalid generator option.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("pgc: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("pgc: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// UnsupportedLanguageError is returned when no target exists for the
// requested language.
type UnsupportedLanguageError struct {
	Language string
}

// Error implements the error interface.
func (e *UnsupportedLanguageError) Error() string {
	return "pgc: language " + strconv.Quote(e.Language) + " is not supported"
}

// Is reports whether the target matches the sentinel error for UnsupportedLanguageError.
func (e *UnsupportedLanguageError) Is(target error) bool {
	return target == ErrUnsupportedTarget
}

// UnsupportedDriverError is returned when the language is supported but
// not with the requested driver.
type UnsupportedDriverError struct {
	Language string
	Driver   string
}

// Error implements the error interface.
func (e *UnsupportedDriverError) Error() string {
	var b strings.Builder
	b.WriteString("pgc: driver ")
	b.WriteString(strconv.Quote(e.Driver))
	b.WriteString(" is not supported for language ")
	b.WriteString(strconv.Quote(e.Language))
	if drivers := Drivers(e.Language); len(drivers) > 0 {
		b.WriteString(" (supported: ")
		b.WriteString(strings.Join(drivers, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for UnsupportedDriverError.
func (e *UnsupportedDriverError) Is(target error) bool {
	return target == ErrUnsupportedTarget
}

// MissingOptionError is returned when a target requires a codegen option
// that was not supplied.
type MissingOptionError struct {
	Language string
	Option   string
}

// Error implements the error interface.
func (e *MissingOptionError) Error() string {
	return "pgc: language " + strconv.Quote(e.Language) + " requires the codegen option " + strconv.Quote(e.Option)
}

// Is reports whether the target matches the sentinel error for MissingOptionError.
func (e *MissingOptionError) Is(target error) bool {
	return target == ErrMissingOption
}

// TemplateError is returned when a bundled template cannot be parsed or
// executed. Templates ship with pgc, so it signals a defect in pgc rather
// than in the request.
type TemplateError struct {
	Template string // template name
	Path     string // output file being rendered, if any
	Cause    error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	var b strings.Builder
	b.WriteString("pgc: failed to render template")
	if e.Template != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.Template))
	}
	if e.Path != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.Path)
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	b.WriteString(".\nThis is a bug in pgc, please report the issue.")
	return b.String()
}

// Unwrap returns the underlying error.
func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for TemplateError.
func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplate
}

// PathError is returned when an output path derived from the request is
// absolute, leaves the output root or collides with another file.
type PathError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return "pgc: output path " + strconv.Quote(e.Path) + " " + e.Reason
}

// Is reports whether the target matches the sentinel error for PathError.
func (e *PathError) Is(target error) bool {
	return target == ErrInvalidPath
}

// IsPathError reports whether the error is a PathError.
func IsPathError(err error) bool {
	return errors.Is(err, ErrInvalidPath)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsUnsupportedTarget reports whether the error is an UnsupportedLanguageError
// or an UnsupportedDriverError.
func IsUnsupportedTarget(err error) bool {
	return errors.Is(err, ErrUnsupportedTarget)
}

// IsMissingOptionError reports whether the error is a MissingOptionError.
func IsMissingOptionError(err error) bool {
	var optErr *MissingOptionError
	return errors.As(err, &optErr)
}

// IsTemplateError reports whether the error is a TemplateError.
func IsTemplateError(err error) bool {
	var tmplErr *TemplateError
	return errors.As(err, &tmplErr)
}
