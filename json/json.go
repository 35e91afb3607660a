// Package json provides a JSON codec implementation.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/zoobzio/garnish"
)

// ErrTrailingData is returned by a strict codec when input continues past
// the first JSON value.
var ErrTrailingData = errors.New("json: trailing data after value")

// Option configures the JSON codec.
type Option func(*jsonCodec)

// Strict rejects object keys that match no field of the target struct.
func Strict() Option {
	return func(c *jsonCodec) { c.strict = true }
}

// Indent writes multi-line output, as json.MarshalIndent.
func Indent(prefix, indent string) Option {
	return func(c *jsonCodec) {
		c.indent = true
		c.prefix, c.indentStr = prefix, indent
	}
}

// jsonCodec implements garnish.Codec for JSON.
type jsonCodec struct {
	strict    bool
	indent    bool
	prefix    string
	indentStr string
}

// New returns a JSON codec.
func New(opts ...Option) garnish.Codec {
	c := &jsonCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent {
		return json.MarshalIndent(v, c.prefix, c.indentStr)
	}
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return json.Unmarshal(data, v)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
