package garnish

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestEncodeHex(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{}, ""},
		{[]byte{0x00}, "00"},
		{[]byte{0xde, 0xad, 0xbe, 0xef}, "deadbeef"},
		{[]byte{0x0a, 0xff}, "0aff"},
	}

	for _, tt := range tests {
		if got := EncodeHex(tt.in); got != tt.want {
			t.Errorf("EncodeHex(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{"empty", "", []byte{}, false},
		{"lower", "deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"upper", "DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"mixed", "DeAd", []byte{0xde, 0xad}, false},
		{"odd length", "abc", nil, true},
		{"non-hex digit", "zz", nil, true},
		{"0x prefix", "0x01", nil, true},
		{"whitespace", " 01", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrDecode) {
					t.Fatalf("DecodeHex(%q) error = %v, want ErrDecode", tt.in, err)
				}
				var fe *FieldError
				if errors.As(err, &fe) && fe.Input != tt.in {
					t.Errorf("FieldError.Input = %q, want %q", fe.Input, tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeHex(%q) error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeHex(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestHex_RoundTrip(t *testing.T) {
	for _, b := range [][]byte{{}, {0x00}, {0x01, 0x02, 0xfe, 0xff}} {
		got, err := DecodeHex(EncodeHex(b))
		if err != nil {
			t.Fatalf("DecodeHex(EncodeHex(%v)) error: %v", b, err)
		}
		if diff := cmp.Diff(b, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

type hexRecord struct {
	ID     Hex         `json:"id" yaml:"id"`
	Parent OptionalHex `json:"parent,omitzero" yaml:"parent,omitempty"`
	Keys   HexList     `json:"keys" yaml:"keys"`
}

func TestHex_JSON(t *testing.T) {
	rec := hexRecord{
		ID:   Hex{0xab},
		Keys: HexList{{0x01}, {0x02, 0x03}},
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"id":"ab","keys":["01","0203"]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back hexRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if diff := cmp.Diff(rec, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestHex_JSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		kind  Kind
	}{
		{"odd length", `{"id":"abc"}`, ErrDecode, KindHex},
		{"number", `{"id":12}`, ErrUnexpectedWire, KindHex},
		{"option bad digit", `{"parent":"xy"}`, ErrDecode, KindHexOption},
		{"option number", `{"parent":1}`, ErrUnexpectedWire, KindHexOption},
		{"list element", `{"keys":["01","0g"]}`, ErrDecode, KindHexList},
		{"list scalar", `{"keys":"01"}`, ErrUnexpectedWire, KindHexList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec hexRecord
			err := json.Unmarshal([]byte(tt.input), &rec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Unmarshal(%s) error = %v, want %v", tt.input, err, tt.want)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatal("error should be a FieldError")
			}
			if fe.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", fe.Kind, tt.kind)
			}
		})
	}
}

func TestHexList_ElementIndex(t *testing.T) {
	var l HexList
	err := json.Unmarshal([]byte(`["00","11","2"]`), &l)

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Unmarshal() error = %v, want FieldError", err)
	}
	if fe.Input != "2" {
		t.Errorf("Input = %q, want %q", fe.Input, "2")
	}
	if fe.Cause == nil || !strings.HasPrefix(fe.Cause.Error(), "element 2") {
		t.Errorf("Cause = %v, want element 2 prefix", fe.Cause)
	}
	if l != nil {
		t.Errorf("list should be untouched on failure, got %v", l)
	}
}

func TestHex_JSONNull(t *testing.T) {
	rec := hexRecord{ID: Hex{0x01}, Parent: SomeHex([]byte{0x02})}
	if err := json.Unmarshal([]byte(`{"id":null,"parent":null,"keys":null}`), &rec); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if rec.ID.String() != "01" {
		t.Errorf("null should leave Hex untouched, got %s", rec.ID)
	}
	if rec.Parent.Valid {
		t.Error("null should make OptionalHex invalid")
	}
}

func TestOptionalHex(t *testing.T) {
	var zero OptionalHex
	if !zero.IsZero() {
		t.Error("zero OptionalHex should report IsZero")
	}

	data, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(invalid) = %s, want null", data)
	}

	some := SomeHex([]byte{})
	if some.IsZero() {
		t.Error("SomeHex(empty) should not report IsZero")
	}
	data, _ = json.Marshal(some)
	if string(data) != `""` {
		t.Errorf("Marshal(SomeHex(empty)) = %s, want \"\"", data)
	}

	data, _ = json.Marshal(hexRecord{})
	if string(data) != `{"id":"","keys":null}` {
		t.Errorf("Marshal(empty record) = %s", data)
	}
}

func TestHex_YAML(t *testing.T) {
	rec := hexRecord{
		ID:     Hex{0xca, 0xfe},
		Parent: SomeHex([]byte{0x01}),
		Keys:   HexList{{0xaa}},
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := "id: cafe\nparent: \"01\"\nkeys:\n    - aa\n"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}

	var back hexRecord
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if diff := cmp.Diff(rec, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestHex_YAMLWrongShape(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"sequence for hex", "id: [ab]\n"},
		{"scalar for list", "keys: ab\n"},
		{"mapping in list", "keys:\n  - a: b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec hexRecord
			err := yaml.Unmarshal([]byte(tt.input), &rec)
			if !errors.Is(err, ErrUnexpectedWire) {
				t.Errorf("Unmarshal(%q) error = %v, want ErrUnexpectedWire", tt.input, err)
			}
		})
	}
}
