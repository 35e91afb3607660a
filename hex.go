package garnish

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// EncodeHex returns the lowercase hex form of b, two characters per byte.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes pairs of hex digits in either letter case.
// Odd-length input or a non-hex digit fails with ErrDecode.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, newFieldError(ErrDecode, KindHex, "", s, err)
	}
	return b, nil
}

// Hex is a byte slice carried on the wire as a lowercase hex string.
//
//	type Block struct {
//	    Hash garnish.Hex `json:"hash"`
//	}
type Hex []byte

// GarnishKind implements Unit.
func (Hex) GarnishKind() Kind { return KindHex }

// String returns the lowercase hex form.
func (h Hex) String() string { return EncodeHex(h) }

// MarshalText implements encoding.TextMarshaler.
func (h Hex) MarshalText() ([]byte, error) {
	return []byte(EncodeHex(h)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hex) UnmarshalText(text []byte) error {
	b, err := DecodeHex(string(text))
	if err != nil {
		return err
	}
	*h = b
	return nil
}

// MarshalJSON implements json.Marshaler.
func (h Hex) MarshalJSON() ([]byte, error) { return marshalJSONText(h) }

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op.
func (h *Hex) UnmarshalJSON(data []byte) error { return unmarshalJSONText(data, KindHex, h) }

// MarshalYAML implements yaml.Marshaler.
func (h Hex) MarshalYAML() (any, error) { return marshalYAMLText(h) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *Hex) UnmarshalYAML(node *yaml.Node) error { return unmarshalYAMLText(node, KindHex, h) }

// EncodeMsgpack implements msgpack.CustomEncoder.
func (h Hex) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpackText(enc, h) }

// DecodeMsgpack implements msgpack.CustomDecoder.
func (h *Hex) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpackText(dec, KindHex, h) }

// MarshalBSONValue implements bson.ValueMarshaler.
func (h Hex) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONText(h) }

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (h *Hex) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return unmarshalBSONText(t, data, KindHex, h)
}

// OptionalHex is a byte slice that may be missing.
// An invalid value encodes as null and reports IsZero, so `omitzero` drops it.
type OptionalHex struct {
	Bytes []byte
	Valid bool
}

// SomeHex returns a valid OptionalHex holding b.
func SomeHex(b []byte) OptionalHex {
	return OptionalHex{Bytes: b, Valid: true}
}

// GarnishKind implements Unit.
func (OptionalHex) GarnishKind() Kind { return KindHexOption }

// IsZero reports whether the value is missing.
func (o OptionalHex) IsZero() bool { return !o.Valid }

// MarshalJSON implements json.Marshaler.
func (o OptionalHex) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return Hex(o.Bytes).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalHex) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*o = OptionalHex{}
		return nil
	}
	s, err := unmarshalJSONString(data, KindHexOption)
	if err != nil {
		return err
	}
	return o.set(s)
}

// MarshalYAML implements yaml.Marshaler.
func (o OptionalHex) MarshalYAML() (any, error) {
	if !o.Valid {
		return nil, nil
	}
	return EncodeHex(o.Bytes), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OptionalHex) UnmarshalYAML(node *yaml.Node) error {
	if isYAMLNull(node) {
		*o = OptionalHex{}
		return nil
	}
	s, err := yamlScalar(node, KindHexOption)
	if err != nil {
		return err
	}
	return o.set(s)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (o OptionalHex) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !o.Valid {
		return enc.EncodeNil()
	}
	return enc.EncodeString(EncodeHex(o.Bytes))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (o *OptionalHex) DecodeMsgpack(dec *msgpack.Decoder) error {
	isNil, err := decodeMsgpackNil(dec)
	if err != nil {
		return err
	}
	if isNil {
		*o = OptionalHex{}
		return nil
	}
	s, err := decodeMsgpackString(dec, KindHexOption)
	if err != nil {
		return err
	}
	return o.set(s)
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (o OptionalHex) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !o.Valid {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(EncodeHex(o.Bytes))
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (o *OptionalHex) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		*o = OptionalHex{}
		return nil
	}
	s, err := unmarshalBSONString(t, data, KindHexOption)
	if err != nil {
		return err
	}
	return o.set(s)
}

func (o *OptionalHex) set(s string) error {
	b, err := DecodeHex(s)
	if err != nil {
		return withKind(err, KindHexOption)
	}
	*o = SomeHex(b)
	return nil
}

// HexList is a list of byte slices carried as a sequence of hex strings.
// One bad element fails the whole list.
type HexList [][]byte

// GarnishKind implements Unit.
func (HexList) GarnishKind() Kind { return KindHexList }

func (l HexList) strings() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l))
	for i, b := range l {
		out[i] = EncodeHex(b)
	}
	return out
}

func decodeHexStrings(ss []string) (HexList, error) {
	if ss == nil {
		return nil, nil
	}
	out := make(HexList, len(ss))
	for i, s := range ss {
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, newFieldError(ErrDecode, KindHexList, "", s, fmt.Errorf("element %d: %w", i, err))
		}
		out[i] = b
	}
	return out, nil
}

// MarshalJSON implements json.Marshaler.
func (l HexList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.strings())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op.
func (l *HexList) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	ss, err := unmarshalJSONStrings(data, KindHexList)
	if err != nil {
		return err
	}
	out, err := decodeHexStrings(ss)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l HexList) MarshalYAML() (any, error) {
	if l == nil {
		return nil, nil
	}
	return l.strings(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *HexList) UnmarshalYAML(node *yaml.Node) error {
	ss, err := yamlScalars(node, KindHexList)
	if err != nil {
		return err
	}
	out, err := decodeHexStrings(ss)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (l HexList) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackStrings(enc, l.strings())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (l *HexList) DecodeMsgpack(dec *msgpack.Decoder) error {
	ss, err := decodeMsgpackStrings(dec, KindHexList)
	if err != nil {
		return err
	}
	out, err := decodeHexStrings(ss)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (l HexList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(l.strings())
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (l *HexList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null {
		return nil
	}
	ss, err := unmarshalBSONStrings(t, data, KindHexList)
	if err != nil {
		return err
	}
	out, err := decodeHexStrings(ss)
	if err != nil {
		return err
	}
	*l = out
	return nil
}
