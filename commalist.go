package garnish

import (
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// JoinComma renders each value with FormatText and joins them with ",".
// Tokens are not escaped, so a value whose text contains a comma will not
// read back as one token.
func JoinComma[T any](vs []T) (string, error) {
	parts := make([]string, len(vs))
	for i, v := range vs {
		text, err := FormatText(v)
		if err != nil {
			return "", atElement(err, KindCommaList, i)
		}
		parts[i] = text
	}
	return strings.Join(parts, ","), nil
}

// SplitComma splits s on "," and parses each token with ParseText.
// Tokens are not trimmed. An empty s is one empty token, so it reads as
// [""] for strings and fails for types with no empty text form.
func SplitComma[T any](s string) ([]T, error) {
	tokens := strings.Split(s, ",")
	out := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := ParseText[T](tok)
		if err != nil {
			return nil, atElement(err, KindCommaList, i)
		}
		out[i] = v
	}
	return out, nil
}

// CommaList carries a slice as one comma-joined string, the usual shape of
// a repeated query-string parameter.
//
//	type Filter struct {
//	    IDs garnish.CommaList[int] `json:"ids"` // "ids": "10,20,30"
//	}
type CommaList[T any] []T

// GarnishKind implements Unit.
func (CommaList[T]) GarnishKind() Kind { return KindCommaList }

// String returns the joined form, or "" if an element has no text form.
func (l CommaList[T]) String() string {
	s, _ := JoinComma(l)
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (l CommaList[T]) MarshalText() ([]byte, error) {
	s, err := JoinComma(l)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *CommaList[T]) UnmarshalText(text []byte) error {
	vs, err := SplitComma[T](string(text))
	if err != nil {
		return err
	}
	*l = vs
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l CommaList[T]) MarshalJSON() ([]byte, error) { return marshalJSONText(l) }

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op.
func (l *CommaList[T]) UnmarshalJSON(data []byte) error {
	return unmarshalJSONText(data, KindCommaList, l)
}

// MarshalYAML implements yaml.Marshaler.
func (l CommaList[T]) MarshalYAML() (any, error) { return marshalYAMLText(l) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *CommaList[T]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAMLText(node, KindCommaList, l)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (l CommaList[T]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpackText(enc, l) }

// DecodeMsgpack implements msgpack.CustomDecoder.
func (l *CommaList[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(dec, KindCommaList, l)
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (l CommaList[T]) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONText(l) }

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (l *CommaList[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return unmarshalBSONText(t, data, KindCommaList, l)
}
