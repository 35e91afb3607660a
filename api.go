// Package garnish provides reusable field codecs for serialization hosts.
//
// A codec unit is a field type that changes how one value is written to and
// read from the wire, while the host (encoding/json, yaml.v3, msgpack, bson)
// keeps doing the traversal. Every unit implements the hooks of all four
// hosts plus encoding.TextMarshaler where it has a scalar text form, so the
// same record type works with any provider.
//
// # Units
//
//   - Hex, OptionalHex, HexList: bytes as lowercase hex strings
//   - Timestamp: a naive date-time as "YYYY-MM-DD HH:MM:SS"
//   - Stringified, StringifiedList, StringKeyMap: scalars as their canonical text
//   - CommaList: a slice as one comma-joined string
//   - Nullable: absent, null and set kept apart on read
//   - Enum: a closed set of variants with declared literals
//
// # Basic Usage
//
//	type Account struct {
//	    ID      garnish.Hex                 `json:"id"`
//	    Balance garnish.Stringified[uint64] `json:"balance"`
//	    Opened  garnish.Timestamp           `json:"opened"`
//	    Tags    garnish.CommaList[string]   `json:"tags"`
//	    Note    garnish.Nullable[string]    `json:"note,omitzero"`
//	}
//
//	b, _ := json.Marshal(acct)
//
// # Tags and the Processor
//
// Fields may declare their unit with a garnish tag. A Processor validates
// the declarations once and attributes decode failures to record fields:
//
//	type Account struct {
//	    ID garnish.Hex `json:"id" garnish:"hex"`
//	}
//
//	proc, _ := garnish.NewProcessor[Account](json.New())
//	acct, err := proc.Decode(ctx, body)
//
// # Enums
//
// The garnish-enum command generates enum types from a YAML declaration.
// Generated types delegate every hook to an Enum table.
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package garnish

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
