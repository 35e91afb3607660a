// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/garnish"
)

// Option configures the MessagePack codec.
type Option func(*msgpackCodec)

// Strict rejects map keys that match no field of the target struct.
func Strict() Option {
	return func(c *msgpackCodec) { c.strict = true }
}

// JSONTags names struct fields by their json tags, so one set of tags
// serves both formats.
func JSONTags() Option {
	return func(c *msgpackCodec) { c.structTag = "json" }
}

// msgpackCodec implements garnish.Codec for MessagePack.
type msgpackCodec struct {
	strict    bool
	structTag string
}

// New returns a MessagePack codec.
func New(opts ...Option) garnish.Codec {
	c := &msgpackCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	if c.structTag == "" {
		return msgpack.Marshal(v)
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(c.structTag)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	if !c.strict && c.structTag == "" {
		return msgpack.Unmarshal(data, v)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields(c.strict)
	if c.structTag != "" {
		dec.SetCustomStructTag(c.structTag)
	}
	return dec.Decode(v)
}
