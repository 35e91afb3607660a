package garnish

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// Variant pairs an enum value with its wire literal.
type Variant[T comparable] struct {
	Value   T
	Literal string
}

// Enum is a closed, bijective table between values and string literals.
// It is built once from a single declaration and never changes, so it is
// safe for concurrent use.
//
// Enum types are usually generated by garnish-enum, which declares the
// type and wires every host hook to an Enum. Hand-written use looks like:
//
//	type Color int
//
//	const (
//	    ColorRed Color = iota
//	    ColorGreen
//	)
//
//	var colorEnum = garnish.NewEnum("Color",
//	    garnish.Variant[Color]{ColorRed, "red"},
//	    garnish.Variant[Color]{ColorGreen, "green"},
//	)
//
//	func (c Color) MarshalText() ([]byte, error)     { return colorEnum.MarshalText(c) }
//	func (c *Color) UnmarshalText(text []byte) error { return colorEnum.UnmarshalText(c, text) }
type Enum[T comparable] struct {
	name     string
	variants []Variant[T]
	literals map[T]string
	values   map[string]T
}

// NewEnum builds the table for the enum called name.
// It panics if a value or a literal appears twice: the table is a
// declaration, and a non-bijective one is a programming error.
func NewEnum[T comparable](name string, variants ...Variant[T]) *Enum[T] {
	e := &Enum[T]{
		name:     name,
		variants: append([]Variant[T](nil), variants...),
		literals: make(map[T]string, len(variants)),
		values:   make(map[string]T, len(variants)),
	}
	for _, v := range variants {
		if prev, dup := e.literals[v.Value]; dup {
			panic(fmt.Sprintf("garnish: enum %s: value %v declared for both %q and %q", name, v.Value, prev, v.Literal))
		}
		if _, dup := e.values[v.Literal]; dup {
			panic(fmt.Sprintf("garnish: enum %s: literal %q declared twice", name, v.Literal))
		}
		e.literals[v.Value] = v.Literal
		e.values[v.Literal] = v.Value
	}
	return e
}

// Name returns the enum's name.
func (e *Enum[T]) Name() string { return e.name }

// Values returns every declared value in declaration order.
func (e *Enum[T]) Values() []T {
	out := make([]T, len(e.variants))
	for i, v := range e.variants {
		out[i] = v.Value
	}
	return out
}

// Literals returns every declared literal in declaration order.
func (e *Enum[T]) Literals() []string {
	out := make([]string, len(e.variants))
	for i, v := range e.variants {
		out[i] = v.Literal
	}
	return out
}

// Contains reports whether v is a declared value.
func (e *Enum[T]) Contains(v T) bool {
	_, ok := e.literals[v]
	return ok
}

// Literal returns the literal for v. An undeclared value fails with
// ErrInvalidValue.
func (e *Enum[T]) Literal(v T) (string, error) {
	lit, ok := e.literals[v]
	if !ok {
		return "", newFieldError(ErrInvalidValue, KindEnum, e.name, fmt.Sprint(v),
			fmt.Errorf("undeclared %s value", e.name))
	}
	return lit, nil
}

// String returns the literal for v, or Name(v) for an undeclared value.
func (e *Enum[T]) String(v T) string {
	if lit, ok := e.literals[v]; ok {
		return lit
	}
	return fmt.Sprintf("%s(%v)", e.name, v)
}

// Parse returns the value declared for s. Any other string fails with
// ErrInvalidValue naming the enum and s.
func (e *Enum[T]) Parse(s string) (T, error) {
	v, ok := e.values[s]
	if !ok {
		var zero T
		return zero, newFieldError(ErrInvalidValue, KindEnum, e.name, s,
			fmt.Errorf("unknown %s variant", e.name))
	}
	return v, nil
}

// enumText adapts one value slot to the text hooks.
type enumText[T comparable] struct {
	e *Enum[T]
	v *T
}

func (t enumText[T]) MarshalText() ([]byte, error) { return t.e.MarshalText(*t.v) }

func (t enumText[T]) UnmarshalText(text []byte) error { return t.e.UnmarshalText(t.v, text) }

// MarshalText encodes v as its literal.
func (e *Enum[T]) MarshalText(v T) ([]byte, error) {
	lit, err := e.Literal(v)
	if err != nil {
		return nil, err
	}
	return []byte(lit), nil
}

// UnmarshalText decodes a literal into dst.
func (e *Enum[T]) UnmarshalText(dst *T, text []byte) error {
	v, err := e.Parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// MarshalJSON encodes v as a JSON string.
func (e *Enum[T]) MarshalJSON(v T) ([]byte, error) {
	return marshalJSONText(enumText[T]{e, &v})
}

// UnmarshalJSON decodes a JSON string into dst. A JSON null is not a
// variant and fails with ErrInvalidValue.
func (e *Enum[T]) UnmarshalJSON(dst *T, data []byte) error {
	if isJSONNull(data) {
		return e.nullError()
	}
	return unmarshalJSONText(data, KindEnum, enumText[T]{e, dst})
}

func (e *Enum[T]) nullError() error {
	return newFieldError(ErrInvalidValue, KindEnum, e.name, "null",
		fmt.Errorf("null is not a %s variant", e.name))
}

// MarshalYAML encodes v as a YAML string.
func (e *Enum[T]) MarshalYAML(v T) (any, error) {
	return marshalYAMLText(enumText[T]{e, &v})
}

// UnmarshalYAML decodes a YAML scalar into dst.
func (e *Enum[T]) UnmarshalYAML(dst *T, node *yaml.Node) error {
	return unmarshalYAMLText(node, KindEnum, enumText[T]{e, dst})
}

// EncodeMsgpack encodes v as a MessagePack string.
func (e *Enum[T]) EncodeMsgpack(enc *msgpack.Encoder, v T) error {
	return encodeMsgpackText(enc, enumText[T]{e, &v})
}

// DecodeMsgpack decodes a MessagePack string into dst.
func (e *Enum[T]) DecodeMsgpack(dec *msgpack.Decoder, dst *T) error {
	return decodeMsgpackText(dec, KindEnum, enumText[T]{e, dst})
}

// MarshalBSONValue encodes v as a BSON string.
func (e *Enum[T]) MarshalBSONValue(v T) (bsontype.Type, []byte, error) {
	return marshalBSONText(enumText[T]{e, &v})
}

// UnmarshalBSONValue decodes a BSON string into dst. A BSON null fails
// with ErrInvalidValue.
func (e *Enum[T]) UnmarshalBSONValue(dst *T, t bsontype.Type, data []byte) error {
	if t == bsontype.Null {
		return e.nullError()
	}
	return unmarshalBSONText(t, data, KindEnum, enumText[T]{e, dst})
}
