package garnish

import (
	"encoding"
	"errors"
	"reflect"
	"strconv"
	"time"
)

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	durationType        = reflect.TypeFor[time.Duration]()
)

// FormatText returns the canonical text form of v.
//
// Types implementing encoding.TextMarshaler use it. Otherwise the reflect
// kind decides: strings as-is, integers in base 10, floats in their shortest
// form, bools as "true"/"false". time.Duration uses its String form.
// Anything else fails with ErrUnsupportedType.
func FormatText[T any](v T) (string, error) {
	return formatValue(reflect.ValueOf(&v).Elem())
}

// ParseText parses s as the canonical text form of T, the inverse of
// FormatText. Invalid input fails with ErrParse carrying the parser message.
func ParseText[T any](s string) (T, error) {
	var v T
	err := parseValue(reflect.ValueOf(&v).Elem(), s)
	return v, err
}

func formatValue(rv reflect.Value) (string, error) {
	rt := rv.Type()

	var m encoding.TextMarshaler
	switch {
	case rt.Implements(textMarshalerType):
		if rt.Kind() == reflect.Pointer && rv.IsNil() {
			return "", newFieldError(ErrUnsupportedType, KindStringified, rt.String(), "", errors.New("nil pointer"))
		}
		m = rv.Interface().(encoding.TextMarshaler)
	case rv.CanAddr() && reflect.PointerTo(rt).Implements(textMarshalerType):
		m = rv.Addr().Interface().(encoding.TextMarshaler)
	}
	if m != nil {
		text, err := m.MarshalText()
		if err != nil {
			return "", newFieldError(ErrUnsupportedType, KindStringified, rt.String(), "", err)
		}
		return string(text), nil
	}

	if rt == durationType {
		return time.Duration(rv.Int()).String(), nil
	}

	switch rt.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rt.Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}

	return "", newFieldError(ErrUnsupportedType, KindStringified, rt.String(), "", nil)
}

func parseValue(rv reflect.Value, s string) error {
	rt := rv.Type()

	// Pointer types such as *big.Int get a fresh value to unmarshal into.
	if rt.Kind() == reflect.Pointer && rt.Implements(textUnmarshalerType) {
		p := reflect.New(rt.Elem())
		if err := unmarshalText(p.Interface().(encoding.TextUnmarshaler), rt, s); err != nil {
			return err
		}
		rv.Set(p)
		return nil
	}
	if reflect.PointerTo(rt).Implements(textUnmarshalerType) {
		return unmarshalText(rv.Addr().Interface().(encoding.TextUnmarshaler), rt, s)
	}

	if rt == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return newFieldError(ErrParse, KindStringified, rt.String(), s, err)
		}
		rv.SetInt(int64(d))
		return nil
	}

	switch rt.Kind() {
	case reflect.String:
		rv.SetString(s)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rt.Bits())
		if err != nil {
			return newFieldError(ErrParse, KindStringified, rt.String(), s, err)
		}
		rv.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, rt.Bits())
		if err != nil {
			return newFieldError(ErrParse, KindStringified, rt.String(), s, err)
		}
		rv.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rt.Bits())
		if err != nil {
			return newFieldError(ErrParse, KindStringified, rt.String(), s, err)
		}
		rv.SetFloat(f)
		return nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return newFieldError(ErrParse, KindStringified, rt.String(), s, err)
		}
		rv.SetBool(b)
		return nil
	}

	return newFieldError(ErrUnsupportedType, KindStringified, rt.String(), s, nil)
}

// unmarshalText keeps errors that are already FieldErrors (a garnish unit
// used as T) and wraps foreign ones in ErrParse.
func unmarshalText(u encoding.TextUnmarshaler, rt reflect.Type, s string) error {
	err := u.UnmarshalText([]byte(s))
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	return newFieldError(ErrParse, KindStringified, rt.String(), s, err)
}
