package env

import "fmt"

// ErrInvalidValue reports a variable whose text does not decode into its field.
type ErrInvalidValue struct {
	Field  string
	EnvVar string
	Value  string
	Err    error
}

func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("%s=%q cannot be decoded into %s: %v", e.EnvVar, e.Value, e.Field, e.Err)
}

func (e ErrInvalidValue) Unwrap() error {
	return e.Err
}

// ErrNotStructPointer is returned when Load is not given a *struct.
type ErrNotStructPointer struct {
	Type string
}

func (e ErrNotStructPointer) Error() string {
	return fmt.Sprintf("env: Load needs a pointer to a struct, got %s", e.Type)
}

// ErrUnsupportedType reports a tagged field of a kind the loader cannot decode.
type ErrUnsupportedType struct {
	Kind string
}

func (e ErrUnsupportedType) Error() string {
	return fmt.Sprintf("env: cannot decode into %s", e.Kind)
}
