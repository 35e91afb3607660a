// Package yaml provides a YAML codec implementation.
package yaml

import (
	"bytes"
	"errors"
	"io"

	"github.com/zoobzio/garnish"
	"gopkg.in/yaml.v3"
)

// Option configures the YAML codec.
type Option func(*yamlCodec)

// Strict rejects mapping keys that match no field of the target struct.
func Strict() Option {
	return func(c *yamlCodec) { c.strict = true }
}

// Indent sets the number of spaces per nesting level. yaml.v3 uses 4.
func Indent(spaces int) Option {
	return func(c *yamlCodec) { c.indent = spaces }
}

// yamlCodec implements garnish.Codec for YAML.
type yamlCodec struct {
	strict bool
	indent int
}

// New returns a YAML codec.
func New(opts ...Option) garnish.Codec {
	c := &yamlCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	if c.indent == 0 {
		return yaml.Marshal(v)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return yaml.Unmarshal(data, v)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document leaves v untouched, as yaml.Unmarshal does.
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
