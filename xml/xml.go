// Package xml provides an XML codec implementation.
//
// XML reaches codec units only through encoding.TextMarshaler and
// encoding.TextUnmarshaler, so records carried as XML are limited to the
// scalar text units: Hex, Timestamp, Stringified, CommaList and enums.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/garnish"
)

// Option configures the XML codec.
type Option func(*xmlCodec)

// Indent writes multi-line output, as xml.MarshalIndent.
func Indent(prefix, indent string) Option {
	return func(c *xmlCodec) {
		c.indent = true
		c.prefix, c.indentStr = prefix, indent
	}
}

// Header prefixes marshaled output with xml.Header.
func Header() Option {
	return func(c *xmlCodec) { c.header = true }
}

// xmlCodec implements garnish.Codec for XML.
type xmlCodec struct {
	indent    bool
	header    bool
	prefix    string
	indentStr string
}

// New returns an XML codec.
func New(opts ...Option) garnish.Codec {
	c := &xmlCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	var data []byte
	var err error
	if c.indent {
		data, err = xml.MarshalIndent(v, c.prefix, c.indentStr)
	} else {
		data, err = xml.Marshal(v)
	}
	if err != nil {
		return nil, err
	}
	if c.header {
		data = append([]byte(xml.Header), data...)
	}
	return data, nil
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
