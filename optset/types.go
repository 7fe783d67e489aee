package optset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors. Returned errors wrap these with the option name; branch
// with errors.Is.
var (
	// ErrUnknownOption indicates an argument named an undeclared option.
	ErrUnknownOption = errors.New("optset: option not found")

	// ErrValueRequired indicates a value option was given no value.
	ErrValueRequired = errors.New("optset: value not provided, but required")

	// ErrUnexpectedValue indicates a flag was given a non-empty value.
	ErrUnexpectedValue = errors.New("optset: value provided, but not expected")

	// ErrBadValue indicates a value could not be converted to the option type.
	ErrBadValue = errors.New("optset: malformed value")

	// ErrMissingRequired indicates a required option was never set.
	ErrMissingRequired = errors.New("optset: required option not set")

	// ErrUnknownType indicates a declaration named an unsupported value type.
	ErrUnknownType = errors.New("optset: unknown option type")

	// ErrDuplicateOption indicates two declarations share a name.
	ErrDuplicateOption = errors.New("optset: duplicate option")

	// ErrEmptyName indicates a declaration without a name.
	ErrEmptyName = errors.New("optset: option name is empty")

	// ErrWrongType indicates a typed lookup on an option of another type.
	ErrWrongType = errors.New("optset: option has a different type")
)

// Option is a single declared command-line option.
type Option interface {
	// Name is the option key without the leading "--".
	Name() string
	// Required reports whether Parse fails when the option is absent.
	Required() bool
	// IsSet reports whether the option appeared in the parsed arguments.
	IsSet() bool
	// NeedsValue reports whether the option takes a value.
	NeedsValue() bool
	// Set records the option as present with the raw value.
	// Flags receive an empty string.
	Set(raw string) error
	// Describe renders the option for listings; withValue appends the
	// parsed state.
	Describe(withValue bool) string
}

// Scalar lists the value types a Value option can hold.
type Scalar interface {
	int | int64 | float64 | string
}

// Flag is an option without a value.
type Flag struct {
	name     string
	required bool
	set      bool
}

// NewFlag declares a value-less option.
func NewFlag(name string, required bool) *Flag {
	return &Flag{name: name, required: required}
}

func (f *Flag) Name() string     { return f.name }
func (f *Flag) Required() bool   { return f.required }
func (f *Flag) IsSet() bool      { return f.set }
func (f *Flag) NeedsValue() bool { return false }

// Set marks the flag present. raw is ignored.
func (f *Flag) Set(string) error {
	f.set = true
	return nil
}

// Describe renders "[name]" for optional and " name " for required flags,
// followed by " <set>" when withValue is true and the flag was given.
func (f *Flag) Describe(withValue bool) string {
	s := bracket(f.name, f.required)
	if withValue && f.set {
		s += " <set>"
	}
	return s
}

// Value is an option carrying a typed value.
type Value[T Scalar] struct {
	name     string
	required bool
	set      bool
	value    T
}

// NewValue declares a typed option.
func NewValue[T Scalar](name string, required bool) *Value[T] {
	return &Value[T]{name: name, required: required}
}

func (v *Value[T]) Name() string     { return v.name }
func (v *Value[T]) Required() bool   { return v.required }
func (v *Value[T]) IsSet() bool      { return v.set }
func (v *Value[T]) NeedsValue() bool { return true }

// Get returns the parsed value, or the zero value if the option is unset.
func (v *Value[T]) Get() T { return v.value }

// Set parses raw into the option type. Empty input is ErrValueRequired;
// unparsable numbers are ErrBadValue. A failed Set leaves the option as it was.
func (v *Value[T]) Set(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: option %q", ErrValueRequired, v.name)
	}
	var err error
	switch p := any(&v.value).(type) {
	case *string:
		*p = raw
	case *int:
		var n int
		if n, err = strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			*p = n
		}
	case *int64:
		var n int64
		if n, err = strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			*p = n
		}
	case *float64:
		var f float64
		if f, err = strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			*p = f
		}
	}
	if err != nil {
		return fmt.Errorf("%w: option %q: %q is not %s", ErrBadValue, v.name, raw, typeLabel[T]())
	}
	v.set = true

	return nil
}

// Describe renders "[name TYPE]" or " name TYPE ", followed by ` = "value"`
// when withValue is true and the option was given.
func (v *Value[T]) Describe(withValue bool) string {
	s := bracket(v.name+" "+typeLabel[T](), v.required)
	if withValue && v.set {
		s += ` = "` + fmt.Sprint(v.value) + `"`
	}
	return s
}

// typeLabel names T in listings.
func typeLabel[T Scalar]() string {
	var zero T
	switch any(zero).(type) {
	case string:
		return "STRING"
	case int:
		return "INT"
	case int64:
		return "INT64"
	case float64:
		return "FLOAT"
	}
	return "<unknown type>"
}

// bracket wraps optional entries in [] and pads required ones with spaces.
func bracket(s string, required bool) string {
	if required {
		return " " + s + " "
	}
	return "[" + s + "]"
}
