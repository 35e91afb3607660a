package garnish

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrDecode indicates hex input had odd length or a non-hex digit.
	ErrDecode = errors.New("decode failed")

	// ErrParse indicates input did not match the expected textual grammar.
	ErrParse = errors.New("parse failed")

	// ErrInvalidValue indicates a literal outside an enum's declared table.
	ErrInvalidValue = errors.New("invalid value")

	// ErrKeyCollision indicates two distinct keys mapped to the same key on the other side.
	ErrKeyCollision = errors.New("key collision")

	// ErrUnsupportedType indicates a type with no canonical text form.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnexpectedWire indicates the wire value had the wrong shape (e.g. a number where a string belongs).
	ErrUnexpectedWire = errors.New("unexpected wire value")

	// ErrInvalidTag indicates a garnish struct tag has an invalid value or disagrees with the field type.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// maxInputEcho bounds how much of the offending input a FieldError keeps.
const maxInputEcho = 64

// FieldError reports a codec unit failure.
// It wraps a sentinel error with the unit kind and the input that failed.
type FieldError struct {
	Err    error  // Underlying sentinel error (ErrDecode, ErrParse, etc.)
	Kind   Kind   // Codec unit that failed
	Target string // Target type or enum name, if known
	Input  string // Offending raw input, truncated
	Cause  error  // Original error from the underlying parser
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
	if e.Target != "" {
		msg += " for " + e.Target
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" (input %q)", e.Input)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with the offending field and declared kind.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag)
	Field string // Field name that triggered the error
	Kind  string // Kind as declared in the tag, or the field type's kind
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Kind != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Kind, e.Field)
	}
	if e.Kind != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Kind)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
// Fields lists the record fields bound to the failing codec unit, when known.
type CodecError struct {
	Err    error    // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause  error    // Original error from the codec
	Fields []string // Candidate fields for a FieldError cause
}

func (e *CodecError) Error() string {
	msg := e.Err.Error()
	if len(e.Fields) > 0 {
		msg += fmt.Sprintf(" (fields %v)", e.Fields)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the codec's error, so errors.Is
// matches ErrUnmarshal as well as a unit sentinel such as ErrDecode.
func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// newFieldError creates a FieldError, truncating the echoed input.
func newFieldError(sentinel error, kind Kind, target, input string, cause error) error {
	return &FieldError{
		Err:    sentinel,
		Kind:   kind,
		Target: target,
		Input:  truncate(input),
		Cause:  cause,
	}
}

// newConfigError creates a ConfigError for tag validation failures.
func newConfigError(sentinel error, kind, field string) error {
	return &ConfigError{
		Err:   sentinel,
		Kind:  kind,
		Field: field,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error, fields []string) error {
	return &CodecError{
		Err:    sentinel,
		Cause:  cause,
		Fields: fields,
	}
}

// withKind re-stamps a FieldError produced by a shared helper with the
// calling unit's kind. Other errors pass through.
func withKind(err error, kind Kind) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		cp := *fe
		cp.Kind = kind
		return &cp
	}
	return err
}

func truncate(s string) string {
	if len(s) <= maxInputEcho {
		return s
	}
	return s[:maxInputEcho] + "..."
}

// atElement re-stamps a FieldError with kind and prefixes its cause with the
// failing element's index.
func atElement(err error, kind Kind, i int) error {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return err
	}
	cp := *fe
	cp.Kind = kind
	if cp.Cause != nil {
		cp.Cause = fmt.Errorf("element %d: %w", i, cp.Cause)
	} else {
		cp.Cause = fmt.Errorf("element %d", i)
	}
	return &cp
}
