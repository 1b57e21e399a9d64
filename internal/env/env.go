// Package env fills configuration structs from environment variables.
//
// A field is bound with an `env:"NAME"` tag and may carry a `default:"value"`
// used when NAME is unset. A variable that is set but empty is kept as is.
// Strings, bools, sized ints, time.Duration and any type whose pointer
// implements encoding.TextUnmarshaler (civil.Date, time.Time) are decoded.
// Untagged struct fields are walked as sections, and every section that
// implements Validator is checked once its fields are filled.
package env

import (
	"encoding"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

// Validator is implemented by config sections that check their own values.
type Validator interface {
	Validate() error
}

var (
	durationType        = reflect.TypeFor[time.Duration]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Load fills the struct v points to, then validates it.
func Load(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer{Type: fmt.Sprintf("%T", v)}
	}

	return loadSection(rv.Elem())
}

// loadSection fills one struct level and runs its Validate method, if any.
func loadSection(section reflect.Value) error {
	typ := section.Type()

	for i := range section.NumField() {
		field := section.Field(i)
		if !field.CanSet() {
			continue
		}
		sf := typ.Field(i)

		if field.Kind() == reflect.Struct && !decodesText(field) {
			if err := loadSection(field); err != nil {
				return err
			}
			continue
		}

		name := sf.Tag.Get("env")
		if name == "" {
			continue
		}

		raw, ok := os.LookupEnv(name)
		if !ok {
			if raw, ok = sf.Tag.Lookup("default"); !ok {
				continue
			}
		}

		if err := decode(field, raw); err != nil {
			return ErrInvalidValue{Field: sf.Name, EnvVar: name, Value: raw, Err: err}
		}
	}

	if section.CanAddr() {
		if validator, ok := section.Addr().Interface().(Validator); ok {
			return validator.Validate()
		}
	}
	return nil
}

// decodesText reports whether field has its own text form and so is a leaf.
func decodesText(field reflect.Value) bool {
	return field.CanAddr() && field.Addr().Type().Implements(textUnmarshalerType)
}

func decode(field reflect.Value, raw string) error {
	if decodesText(field) {
		// Empty leaves the zero value, so an unset date stays IsZero.
		if raw == "" {
			return nil
		}
		return field.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw))
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)

	case reflect.Int64:
		if field.Type() == durationType {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
			return nil
		}
		fallthrough

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)

	default:
		return ErrUnsupportedType{Kind: field.Kind().String()}
	}

	return nil
}
