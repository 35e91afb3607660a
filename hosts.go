package garnish

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// Helpers shared by the host hooks of every unit. Units whose wire form is a
// single string route through these so each host rejects non-string input the
// same way.

var jsonNull = []byte("null")

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), jsonNull)
}

func unmarshalJSONString(data []byte, kind Kind) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", newFieldError(ErrUnexpectedWire, kind, "", string(data), err)
	}
	return s, nil
}

func unmarshalJSONStrings(data []byte, kind Kind) ([]string, error) {
	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return nil, newFieldError(ErrUnexpectedWire, kind, "", string(data), err)
	}
	return ss, nil
}

func isYAMLNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func yamlScalar(node *yaml.Node, kind Kind) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", newFieldError(ErrUnexpectedWire, kind, "", node.Value,
			fmt.Errorf("line %d: expected scalar, got %s", node.Line, yamlKindName(node.Kind)))
	}
	return node.Value, nil
}

func yamlScalars(node *yaml.Node, kind Kind) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, newFieldError(ErrUnexpectedWire, kind, "", node.Value,
			fmt.Errorf("line %d: expected sequence, got %s", node.Line, yamlKindName(node.Kind)))
	}
	out := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		s, err := yamlScalar(item, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// decodeMsgpackNil consumes a nil if one is next and reports whether it did.
func decodeMsgpackNil(dec *msgpack.Decoder) (bool, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return false, err
	}
	if code != msgpcode.Nil {
		return false, nil
	}
	return true, dec.DecodeNil()
}

func decodeMsgpackString(dec *msgpack.Decoder, kind Kind) (string, error) {
	s, err := dec.DecodeString()
	if err != nil {
		return "", newFieldError(ErrUnexpectedWire, kind, "", "", err)
	}
	return s, nil
}

func encodeMsgpackStrings(enc *msgpack.Encoder, ss []string) error {
	if ss == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeArrayLen(len(ss)); err != nil {
		return err
	}
	for _, s := range ss {
		if err := enc.EncodeString(s); err != nil {
			return err
		}
	}
	return nil
}

func decodeMsgpackStrings(dec *msgpack.Decoder, kind Kind) ([]string, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, newFieldError(ErrUnexpectedWire, kind, "", "", err)
	}
	if n < 0 {
		return nil, nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := decodeMsgpackString(dec, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func unmarshalBSONString(t bsontype.Type, data []byte, kind Kind) (string, error) {
	s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return "", newFieldError(ErrUnexpectedWire, kind, "", "",
			fmt.Errorf("expected BSON string, got %s", t))
	}
	return s, nil
}

func unmarshalBSONStrings(t bsontype.Type, data []byte, kind Kind) ([]string, error) {
	if t != bsontype.Array {
		return nil, newFieldError(ErrUnexpectedWire, kind, "", "",
			fmt.Errorf("expected BSON array, got %s", t))
	}
	var ss []string
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&ss); err != nil {
		return nil, newFieldError(ErrUnexpectedWire, kind, "", "", err)
	}
	return ss, nil
}

// Text-form hooks. Scalar units implement encoding.TextMarshaler and
// TextUnmarshaler and delegate every host to these.

func marshalJSONText(m encoding.TextMarshaler) ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func unmarshalJSONText(data []byte, kind Kind, u encoding.TextUnmarshaler) error {
	if isJSONNull(data) {
		return nil
	}
	s, err := unmarshalJSONString(data, kind)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

func marshalYAMLText(m encoding.TextMarshaler) (any, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func unmarshalYAMLText(node *yaml.Node, kind Kind, u encoding.TextUnmarshaler) error {
	s, err := yamlScalar(node, kind)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

func encodeMsgpackText(enc *msgpack.Encoder, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	return enc.EncodeString(string(text))
}

func decodeMsgpackText(dec *msgpack.Decoder, kind Kind, u encoding.TextUnmarshaler) error {
	s, err := decodeMsgpackString(dec, kind)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

func marshalBSONText(m encoding.TextMarshaler) (bsontype.Type, []byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(string(text))
}

func unmarshalBSONText(t bsontype.Type, data []byte, kind Kind, u encoding.TextUnmarshaler) error {
	if t == bsontype.Null {
		return nil
	}
	s, err := unmarshalBSONString(t, data, kind)
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}
