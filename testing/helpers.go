// Package testing provides fixtures shared by garnish's integration tests
// and benchmarks.
package testing

import (
	"encoding/xml"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/ksuid"

	"github.com/zoobzio/garnish"
)

// FixedRef is a stable identifier so fixtures compare equal across runs.
var FixedRef = ksuid.New()

// Profile carries every codec unit, tagged for every structured host.
type Profile struct {
	ID       garnish.Hex                          `json:"id" yaml:"id" msgpack:"id" bson:"id" garnish:"hex"`
	Avatar   garnish.OptionalHex                  `json:"avatar" yaml:"avatar" msgpack:"avatar" bson:"avatar" garnish:"hex.option"`
	Keys     garnish.HexList                      `json:"keys" yaml:"keys" msgpack:"keys" bson:"keys" garnish:"hex.list"`
	Created  garnish.Timestamp                    `json:"created" yaml:"created" msgpack:"created" bson:"created" garnish:"timestamp"`
	Ref      garnish.Stringified[ksuid.KSUID]     `json:"ref" yaml:"ref" msgpack:"ref" bson:"ref" garnish:"stringified"`
	Quota    garnish.Stringified[uint64]          `json:"quota" yaml:"quota" msgpack:"quota" bson:"quota" garnish:"stringified"`
	Scores   garnish.StringifiedList[int64]       `json:"scores" yaml:"scores" msgpack:"scores" bson:"scores" garnish:"stringified.list"`
	Limits   garnish.StringKeyMap[uint16, string] `json:"limits" yaml:"limits" msgpack:"limits" bson:"limits" garnish:"stringified.map"`
	Tags     garnish.CommaList[string]            `json:"tags" yaml:"tags" msgpack:"tags" bson:"tags" garnish:"commalist"`
	Nickname garnish.Nullable[string]             `json:"nickname,omitzero" yaml:"nickname,omitempty" msgpack:"nickname" bson:"nickname" garnish:"nullable"`
	Contact  Contact                              `json:"contact" yaml:"contact" msgpack:"contact" bson:"contact"`
}

// Contact is nested inside Profile.
type Contact struct {
	Email string      `json:"email" yaml:"email" msgpack:"email" bson:"email"`
	Key   garnish.Hex `json:"key" yaml:"key" msgpack:"key" bson:"key" garnish:"hex"`
}

// SampleProfile returns a Profile with every field set.
func SampleProfile() Profile {
	return Profile{
		ID:       garnish.Hex{0xde, 0xad, 0xbe, 0xef},
		Avatar:   garnish.SomeHex([]byte{0x00, 0x01}),
		Keys:     garnish.HexList{{0xaa}, {0xbb, 0xcc}},
		Created:  garnish.NewTimestamp(2021, 6, 1, 8, 30, 0),
		Ref:      garnish.Stringify(FixedRef),
		Quota:    garnish.Stringify[uint64](1 << 60),
		Scores:   garnish.StringifiedList[int64]{-7, 0, 1 << 40},
		Limits:   garnish.StringKeyMap[uint16, string]{80: "http", 443: "https"},
		Tags:     garnish.CommaList[string]{"admin", "beta"},
		Nickname: garnish.Some("ace"),
		Contact:  Contact{Email: "ace@example.com", Key: garnish.Hex{0x42}},
	}
}

// XMLProfile is the subset of Profile that XML can carry: scalar units
// reached through encoding.TextMarshaler.
type XMLProfile struct {
	XMLName xml.Name                    `xml:"profile"`
	ID      garnish.Hex                 `xml:"id,attr" garnish:"hex"`
	Created garnish.Timestamp           `xml:"created" garnish:"timestamp"`
	Quota   garnish.Stringified[uint64] `xml:"quota" garnish:"stringified"`
	Tags    garnish.CommaList[string]   `xml:"tags" garnish:"commalist"`
}

// SampleXMLProfile returns an XMLProfile with every field set.
func SampleXMLProfile() XMLProfile {
	return XMLProfile{
		XMLName: xml.Name{Local: "profile"},
		ID:      garnish.Hex{0xde, 0xad},
		Created: garnish.NewTimestamp(2021, 6, 1, 8, 30, 0),
		Quota:   garnish.Stringify[uint64](99),
		Tags:    garnish.CommaList[string]{"a", "b"},
	}
}

// CmpOptions compares fixtures by value, including units with unexported
// state.
func CmpOptions() []cmp.Option {
	return []cmp.Option{
		cmp.Comparer(func(a, b garnish.Timestamp) bool { return a.Equal(b) }),
		cmp.Comparer(func(a, b garnish.Nullable[string]) bool {
			av, aok := a.Get()
			bv, bok := b.Get()
			return a.State() == b.State() && aok == bok && av == bv
		}),
	}
}
