package garnish

import (
	"errors"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// TimestampLayout is the only accepted wire form: 24-hour clock,
// zero-padded, no zone, no sub-second precision.
const TimestampLayout = "2006-01-02 15:04:05"

var errNotCanonical = errors.New("not in canonical YYYY-MM-DD HH:MM:SS form")

// FormatTimestamp renders the wall clock of t in TimestampLayout.
// No zone conversion happens and sub-seconds are dropped.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses s strictly against TimestampLayout.
// The result carries no offset semantics and is placed in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, newFieldError(ErrParse, KindTimestamp, "", s, err)
	}
	// time.Parse tolerates fractional seconds and single-digit hours.
	if t.Format(TimestampLayout) != s {
		return time.Time{}, newFieldError(ErrParse, KindTimestamp, "", s, errNotCanonical)
	}
	return t, nil
}

// Timestamp is a naive calendar timestamp carried as "YYYY-MM-DD HH:MM:SS".
type Timestamp struct {
	time.Time
}

// NewTimestamp returns a Timestamp for the given wall clock.
func NewTimestamp(year int, month time.Month, day, hour, minute, sec int) Timestamp {
	return Timestamp{time.Date(year, month, day, hour, minute, sec, 0, time.UTC)}
}

// GarnishKind implements Unit.
func (Timestamp) GarnishKind() Kind { return KindTimestamp }

// String returns the canonical wire form.
func (t Timestamp) String() string { return FormatTimestamp(t.Time) }

// Equal reports whether both timestamps name the same wall clock second.
func (t Timestamp) Equal(u Timestamp) bool {
	return FormatTimestamp(t.Time) == FormatTimestamp(u.Time)
}

// MarshalText implements encoding.TextMarshaler.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(FormatTimestamp(t.Time)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) { return marshalJSONText(t) }

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	return unmarshalJSONText(data, KindTimestamp, t)
}

// MarshalYAML implements yaml.Marshaler.
func (t Timestamp) MarshalYAML() (any, error) { return marshalYAMLText(t) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAMLText(node, KindTimestamp, t)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (t Timestamp) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeMsgpackText(enc, t) }

// DecodeMsgpack implements msgpack.CustomDecoder.
func (t *Timestamp) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpackText(dec, KindTimestamp, t)
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONText(t) }

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (t *Timestamp) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	return unmarshalBSONText(typ, data, KindTimestamp, t)
}
