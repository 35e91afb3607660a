package garnish

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// Stringified carries any scalar with a canonical text form as a string.
// See FormatText for the types it accepts.
//
//	type Order struct {
//	    ID garnish.Stringified[int64] `json:"id"` // "id": "42"
//	}
type Stringified[T any] struct {
	Value T
}

// Stringify wraps v.
func Stringify[T any](v T) Stringified[T] {
	return Stringified[T]{Value: v}
}

// GarnishKind implements Unit.
func (Stringified[T]) GarnishKind() Kind { return KindStringified }

// String returns the canonical text, or "" if T has none.
func (s Stringified[T]) String() string {
	text, _ := FormatText(s.Value)
	return text
}

// MarshalText implements encoding.TextMarshaler.
func (s Stringified[T]) MarshalText() ([]byte, error) {
	text, err := FormatText(s.Value)
	if err != nil {
		return nil, withKind(err, KindStringified)
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stringified[T]) UnmarshalText(text []byte) error {
	v, err := ParseText[T](string(text))
	if err != nil {
		return withKind(err, KindStringified)
	}
	s.Value = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Stringified[T]) MarshalJSON() ([]byte, error) { return marshalJSONText(s) }

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op.
func (s *Stringified[T]) UnmarshalJSON(data []byte) error {
	return unmarshalJSONText(data, KindStringified, s)
}

// MarshalYAML implements yaml.Marshaler.
func (s Stringified[T]) MarshalYAML() (any, error) { return marshalYAMLText(s) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Stringified[T]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAMLText(node, KindStringified, s)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (s Stringified[T]) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpackText(enc, s) }

// DecodeMsgpack implements msgpack.CustomDecoder.
func (s *Stringified[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(dec, KindStringified, s)
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (s Stringified[T]) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONText(s) }

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (s *Stringified[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return unmarshalBSONText(t, data, KindStringified, s)
}

// StringifiedList carries a slice as a sequence of canonical texts.
// Order is preserved and the first bad element fails the whole list.
type StringifiedList[T any] []T

// GarnishKind implements Unit.
func (StringifiedList[T]) GarnishKind() Kind { return KindStringifiedList }

func (l StringifiedList[T]) strings() ([]string, error) {
	if l == nil {
		return nil, nil
	}
	out := make([]string, len(l))
	for i, v := range l {
		text, err := FormatText(v)
		if err != nil {
			return nil, atElement(err, KindStringifiedList, i)
		}
		out[i] = text
	}
	return out, nil
}

func (l *StringifiedList[T]) set(ss []string) error {
	if ss == nil {
		*l = nil
		return nil
	}
	out := make(StringifiedList[T], len(ss))
	for i, s := range ss {
		v, err := ParseText[T](s)
		if err != nil {
			return atElement(err, KindStringifiedList, i)
		}
		out[i] = v
	}
	*l = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l StringifiedList[T]) MarshalJSON() ([]byte, error) {
	ss, err := l.strings()
	if err != nil {
		return nil, err
	}
	return json.Marshal(ss)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op.
func (l *StringifiedList[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	ss, err := unmarshalJSONStrings(data, KindStringifiedList)
	if err != nil {
		return err
	}
	return l.set(ss)
}

// MarshalYAML implements yaml.Marshaler.
func (l StringifiedList[T]) MarshalYAML() (any, error) {
	if l == nil {
		return nil, nil
	}
	return l.strings()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringifiedList[T]) UnmarshalYAML(node *yaml.Node) error {
	ss, err := yamlScalars(node, KindStringifiedList)
	if err != nil {
		return err
	}
	return l.set(ss)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (l StringifiedList[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	ss, err := l.strings()
	if err != nil {
		return err
	}
	return encodeMsgpackStrings(enc, ss)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (l *StringifiedList[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	ss, err := decodeMsgpackStrings(dec, KindStringifiedList)
	if err != nil {
		return err
	}
	return l.set(ss)
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (l StringifiedList[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	ss, err := l.strings()
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(ss)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (l *StringifiedList[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null {
		return nil
	}
	ss, err := unmarshalBSONStrings(t, data, KindStringifiedList)
	if err != nil {
		return err
	}
	return l.set(ss)
}

// StringKeyMap carries a map with typed keys as a mapping with text keys.
// Keys go through FormatText/ParseText; values are left to the host.
//
// Two distinct wire keys that parse to the same typed key (e.g. "1" and
// "01" for an int key) reject the whole map with ErrKeyCollision, as do two
// typed keys that format to the same text.
type StringKeyMap[K comparable, V any] map[K]V

// GarnishKind implements Unit.
func (StringKeyMap[K, V]) GarnishKind() Kind { return KindStringifiedMap }

// wire returns the text-keyed form and its keys in sorted order.
func (m StringKeyMap[K, V]) wire() (map[string]V, []string, error) {
	if m == nil {
		return nil, nil, nil
	}
	out := make(map[string]V, len(m))
	for k, v := range m {
		text, err := FormatText(k)
		if err != nil {
			return nil, nil, withKind(err, KindStringifiedMap)
		}
		if _, dup := out[text]; dup {
			return nil, nil, newFieldError(ErrKeyCollision, KindStringifiedMap, "", text,
				errors.New("distinct keys format to the same text"))
		}
		out[text] = v
	}
	return out, slices.Sorted(maps.Keys(out)), nil
}

// keyedValue is one wire entry in arrival order.
type keyedValue[V any] struct {
	key   string
	value V
}

func (m *StringKeyMap[K, V]) set(entries []keyedValue[V]) error {
	out := make(StringKeyMap[K, V], len(entries))
	seen := make(map[K]string, len(entries))
	for _, e := range entries {
		k, err := ParseText[K](e.key)
		if err != nil {
			return withKind(err, KindStringifiedMap)
		}
		if prev, dup := seen[k]; dup {
			return newFieldError(ErrKeyCollision, KindStringifiedMap, "", e.key,
				fmt.Errorf("same key as %q", prev))
		}
		seen[k] = e.key
		out[k] = e.value
	}
	*m = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m StringKeyMap[K, V]) MarshalJSON() ([]byte, error) {
	w, _, err := m.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op.
func (m *StringKeyMap[K, V]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	// Sorted keys keep collision errors deterministic.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return newFieldError(ErrUnexpectedWire, KindStringifiedMap, "", string(data), err)
	}
	entries := make([]keyedValue[V], 0, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		var v V
		if err := json.Unmarshal(raw[key], &v); err != nil {
			return withKind(err, KindStringifiedMap)
		}
		entries = append(entries, keyedValue[V]{key: key, value: v})
	}
	return m.set(entries)
}

// MarshalYAML implements yaml.Marshaler.
func (m StringKeyMap[K, V]) MarshalYAML() (any, error) {
	w, _, err := m.wire()
	if err != nil || w == nil {
		return nil, err
	}
	return w, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *StringKeyMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return newFieldError(ErrUnexpectedWire, KindStringifiedMap, "", node.Value,
			fmt.Errorf("line %d: expected mapping, got %s", node.Line, yamlKindName(node.Kind)))
	}
	entries := make([]keyedValue[V], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, err := yamlScalar(node.Content[i], KindStringifiedMap)
		if err != nil {
			return err
		}
		var v V
		if err := node.Content[i+1].Decode(&v); err != nil {
			return withKind(err, KindStringifiedMap)
		}
		entries = append(entries, keyedValue[V]{key: key, value: v})
	}
	return m.set(entries)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (m StringKeyMap[K, V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	w, keys, err := m.wire()
	if err != nil {
		return err
	}
	if w == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeMapLen(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := enc.Encode(w[k]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (m *StringKeyMap[K, V]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return newFieldError(ErrUnexpectedWire, KindStringifiedMap, "", "", err)
	}
	if n < 0 {
		*m = nil
		return nil
	}
	entries := make([]keyedValue[V], 0, n)
	for i := 0; i < n; i++ {
		key, err := decodeMsgpackString(dec, KindStringifiedMap)
		if err != nil {
			return err
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return withKind(err, KindStringifiedMap)
		}
		entries = append(entries, keyedValue[V]{key: key, value: v})
	}
	return m.set(entries)
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (m StringKeyMap[K, V]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	w, keys, err := m.wire()
	if err != nil {
		return 0, nil, err
	}
	if w == nil {
		return bsontype.Null, nil, nil
	}
	doc := make(bson.D, 0, len(keys))
	for _, k := range keys {
		doc = append(doc, bson.E{Key: k, Value: w[k]})
	}
	return bson.MarshalValue(doc)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (m *StringKeyMap[K, V]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null {
		return nil
	}
	if t != bsontype.EmbeddedDocument {
		return newFieldError(ErrUnexpectedWire, KindStringifiedMap, "", "",
			fmt.Errorf("expected BSON document, got %s", t))
	}
	elems, err := bson.Raw(data).Elements()
	if err != nil {
		return newFieldError(ErrUnexpectedWire, KindStringifiedMap, "", "", err)
	}
	entries := make([]keyedValue[V], 0, len(elems))
	for _, elem := range elems {
		var v V
		if err := elem.Value().Unmarshal(&v); err != nil {
			return withKind(err, KindStringifiedMap)
		}
		entries = append(entries, keyedValue[V]{key: elem.Key(), value: v})
	}
	return m.set(entries)
}
