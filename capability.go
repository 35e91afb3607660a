package garnish

// Kind identifies a codec unit.
// Use these constants in struct tags: `garnish:"hex"`
type Kind string

const (
	// KindHex encodes []byte as a lowercase hex string.
	KindHex Kind = "hex"

	// KindHexOption encodes an optional []byte as a hex string or null.
	KindHexOption Kind = "hex.option"

	// KindHexList encodes [][]byte as a sequence of hex strings.
	KindHexList Kind = "hex.list"

	// KindTimestamp encodes a naive timestamp as "YYYY-MM-DD HH:MM:SS".
	KindTimestamp Kind = "timestamp"

	// KindStringified encodes a scalar as its canonical text.
	KindStringified Kind = "stringified"

	// KindStringifiedList encodes a slice as a sequence of canonical texts.
	KindStringifiedList Kind = "stringified.list"

	// KindStringifiedMap encodes a map with typed keys as a text-keyed mapping.
	KindStringifiedMap Kind = "stringified.map"

	// KindCommaList encodes a slice as one comma-joined string.
	KindCommaList Kind = "commalist"

	// KindNullable distinguishes absent, null and set values on read.
	KindNullable Kind = "nullable"

	// KindEnum encodes a closed set of variants as declared literals.
	KindEnum Kind = "enum"
)

// validKinds contains all valid kinds for tag validation.
var validKinds = map[Kind]bool{
	KindHex:             true,
	KindHexOption:       true,
	KindHexList:         true,
	KindTimestamp:       true,
	KindStringified:     true,
	KindStringifiedList: true,
	KindStringifiedMap:  true,
	KindCommaList:       true,
	KindNullable:        true,
	KindEnum:            true,
}

// IsValidKind returns true if the kind is a known codec unit.
func IsValidKind(k Kind) bool {
	return validKinds[k]
}

// Unit is implemented by every codec unit type.
// The processor uses it to match fields against their tag declarations.
type Unit interface {
	GarnishKind() Kind
}
