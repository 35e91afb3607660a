// Package bson provides a BSON codec implementation.
package bson

import (
	"bytes"

	"github.com/zoobzio/garnish"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
)

// Option configures the BSON codec.
type Option func(*bsonCodec)

// JSONTags names struct fields by their json tags when no bson tag is
// present, so one set of tags serves both formats.
func JSONTags() Option {
	return func(c *bsonCodec) { c.jsonTags = true }
}

// bsonCodec implements garnish.Codec for BSON.
type bsonCodec struct {
	jsonTags bool
}

// New returns a BSON codec.
func New(opts ...Option) garnish.Codec {
	c := &bsonCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	if !c.jsonTags {
		return bson.Marshal(v)
	}

	var buf bytes.Buffer
	vw, err := bsonrw.NewBSONValueWriter(&buf)
	if err != nil {
		return nil, err
	}
	enc, err := bson.NewEncoder(vw)
	if err != nil {
		return nil, err
	}
	enc.UseJSONStructTags()
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a BSON document into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	if !c.jsonTags {
		return bson.Unmarshal(data, v)
	}

	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return err
	}
	dec.UseJSONStructTags()
	return dec.Decode(v)
}
