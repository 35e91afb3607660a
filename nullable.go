package garnish

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// State is the read-side state of a Nullable.
type State uint8

const (
	// StateAbsent means the key was missing from the wire object.
	StateAbsent State = iota

	// StateNull means the key was present with an explicit null.
	StateNull

	// StateSet means the key was present with a value.
	StateSet
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateNull:
		return "null"
	case StateSet:
		return "set"
	default:
		return "unknown"
	}
}

// Nullable keeps apart a missing key, an explicit null and a value.
//
// The zero value is absent. Hosts only call the unmarshal hooks when the key
// exists, so a field that stays absent after decoding was missing from the
// input.
//
// Writing is lossy: absent and null both encode as null, and IsZero reports
// true for both so `omitzero` drops the key. The three states are read-side
// information only.
//
// YAML and MessagePack zero the field on an explicit nil without calling
// the hook, so with those hosts a null reads back as absent.
type Nullable[T any] struct {
	value T
	state State
}

// Absent returns a Nullable for a missing key.
func Absent[T any]() Nullable[T] { return Nullable[T]{} }

// Null returns a Nullable holding an explicit null.
func Null[T any]() Nullable[T] { return Nullable[T]{state: StateNull} }

// Some returns a Nullable holding v.
func Some[T any](v T) Nullable[T] { return Nullable[T]{value: v, state: StateSet} }

// FromPtr returns Null for a nil p and Some(*p) otherwise.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}
	return Some(*p)
}

// GarnishKind implements Unit.
func (Nullable[T]) GarnishKind() Kind { return KindNullable }

// State returns which of the three states n is in.
func (n Nullable[T]) State() State { return n.state }

// IsAbsent reports whether the field was missing from the input.
func (n Nullable[T]) IsAbsent() bool { return n.state == StateAbsent }

// IsNull reports whether the field was an explicit null.
func (n Nullable[T]) IsNull() bool { return n.state == StateNull }

// IsSet reports whether n holds a value.
func (n Nullable[T]) IsSet() bool { return n.state == StateSet }

// IsZero reports whether the value writes as null.
func (n Nullable[T]) IsZero() bool { return n.state != StateSet }

// Get returns the value and whether one is set.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.state == StateSet
}

// Ptr returns a pointer to a copy of the value, or nil when none is set.
func (n Nullable[T]) Ptr() *T {
	if n.state != StateSet {
		return nil
	}
	v := n.value
	return &v
}

// Or returns the value, or def when none is set.
func (n Nullable[T]) Or(def T) T {
	if n.state != StateSet {
		return def
	}
	return n.value
}

// MarshalJSON implements json.Marshaler.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.state != StateSet {
		return jsonNull, nil
	}
	data, err := json.Marshal(n.value)
	if err != nil {
		return nil, withKind(err, KindNullable)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*n = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return withKind(err, KindNullable)
	}
	*n = Some(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (n Nullable[T]) MarshalYAML() (any, error) {
	if n.state != StateSet {
		return nil, nil
	}
	return n.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Nullable[T]) UnmarshalYAML(node *yaml.Node) error {
	if isYAMLNull(node) {
		*n = Null[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return withKind(err, KindNullable)
	}
	*n = Some(v)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (n Nullable[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if n.state != StateSet {
		return enc.EncodeNil()
	}
	return withKind(enc.Encode(n.value), KindNullable)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (n *Nullable[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	isNil, err := decodeMsgpackNil(dec)
	if err != nil {
		return err
	}
	if isNil {
		*n = Null[T]()
		return nil
	}
	var v T
	if err := dec.Decode(&v); err != nil {
		return withKind(err, KindNullable)
	}
	*n = Some(v)
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (n Nullable[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if n.state != StateSet {
		return bsontype.Null, nil, nil
	}
	t, data, err := bson.MarshalValue(n.value)
	if err != nil {
		return 0, nil, withKind(err, KindNullable)
	}
	return t, data, nil
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (n *Nullable[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		*n = Null[T]()
		return nil
	}
	var v T
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&v); err != nil {
		return withKind(err, KindNullable)
	}
	*n = Some(v)
	return nil
}
