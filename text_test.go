package garnish

import (
	"errors"
	"math"
	"math/big"
	"net/netip"
	"testing"
	"time"

	"github.com/segmentio/ksuid"
)

func TestFormatText(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"string", func() (string, error) { return FormatText("plain") }, "plain"},
		{"empty string", func() (string, error) { return FormatText("") }, ""},
		{"int", func() (string, error) { return FormatText(-42) }, "-42"},
		{"int64 min", func() (string, error) { return FormatText(int64(math.MinInt64)) }, "-9223372036854775808"},
		{"uint64 max", func() (string, error) { return FormatText(uint64(math.MaxUint64)) }, "18446744073709551615"},
		{"uint8", func() (string, error) { return FormatText(uint8(7)) }, "7"},
		{"float64", func() (string, error) { return FormatText(1.5) }, "1.5"},
		{"float64 exp", func() (string, error) { return FormatText(1e21) }, "1e+21"},
		{"float32", func() (string, error) { return FormatText(float32(0.1)) }, "0.1"},
		{"bool", func() (string, error) { return FormatText(true) }, "true"},
		{"duration", func() (string, error) { return FormatText(90 * time.Second) }, "1m30s"},
		{"netip", func() (string, error) { return FormatText(netip.MustParseAddr("10.0.0.1")) }, "10.0.0.1"},
		{"big int", func() (string, error) { return FormatText(big.NewInt(1 << 40)) }, "1099511627776"},
		{"hex", func() (string, error) { return FormatText(Hex{0xff}) }, "ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("FormatText() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatText_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		call func() error
	}{
		{"slice", func() error { _, err := FormatText([]int{1}); return err }},
		{"struct", func() error { _, err := FormatText(struct{}{}); return err }},
		{"map", func() error { _, err := FormatText(map[string]int{}); return err }},
		{"nil big int", func() error { var b *big.Int; _, err := FormatText(b); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrUnsupportedType) {
				t.Errorf("FormatText() error = %v, want ErrUnsupportedType", err)
			}
		})
	}
}

func TestParseText(t *testing.T) {
	if v, err := ParseText[int]("-17"); err != nil || v != -17 {
		t.Errorf("ParseText[int] = %v, %v", v, err)
	}
	if v, err := ParseText[uint64]("18446744073709551615"); err != nil || v != math.MaxUint64 {
		t.Errorf("ParseText[uint64] = %v, %v", v, err)
	}
	if v, err := ParseText[float64]("2.5e-3"); err != nil || v != 0.0025 {
		t.Errorf("ParseText[float64] = %v, %v", v, err)
	}
	if v, err := ParseText[bool]("false"); err != nil || v {
		t.Errorf("ParseText[bool] = %v, %v", v, err)
	}
	if v, err := ParseText[string](""); err != nil || v != "" {
		t.Errorf("ParseText[string] = %q, %v", v, err)
	}
	if v, err := ParseText[time.Duration]("250ms"); err != nil || v != 250*time.Millisecond {
		t.Errorf("ParseText[Duration] = %v, %v", v, err)
	}
	if v, err := ParseText[netip.Addr]("::1"); err != nil || v != netip.IPv6Loopback() {
		t.Errorf("ParseText[netip.Addr] = %v, %v", v, err)
	}
	if v, err := ParseText[*big.Int]("123456789012345678901234567890"); err != nil || v.String() != "123456789012345678901234567890" {
		t.Errorf("ParseText[*big.Int] = %v, %v", v, err)
	}

	id := ksuid.New()
	if v, err := ParseText[ksuid.KSUID](id.String()); err != nil || v != id {
		t.Errorf("ParseText[ksuid.KSUID] = %v, %v", v, err)
	}
}

func TestParseText_Errors(t *testing.T) {
	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"int overflow", func() error { _, err := ParseText[int8]("128"); return err }, ErrParse},
		{"negative uint", func() error { _, err := ParseText[uint]("-1"); return err }, ErrParse},
		{"int with space", func() error { _, err := ParseText[int](" 1"); return err }, ErrParse},
		{"int empty", func() error { _, err := ParseText[int](""); return err }, ErrParse},
		{"float garbage", func() error { _, err := ParseText[float64]("1.2.3"); return err }, ErrParse},
		{"bool word", func() error { _, err := ParseText[bool]("yes"); return err }, ErrParse},
		{"duration", func() error { _, err := ParseText[time.Duration]("5 minutes"); return err }, ErrParse},
		{"foreign unmarshaler", func() error { _, err := ParseText[netip.Addr]("999.0.0.1"); return err }, ErrParse},
		{"garnish unmarshaler", func() error { _, err := ParseText[Hex]("abc"); return err }, ErrDecode},
		{"unsupported", func() error { _, err := ParseText[[]int]("1"); return err }, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("ParseText() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseText_FieldError(t *testing.T) {
	_, err := ParseText[int16]("70000")

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("ParseText() error = %v, want FieldError", err)
	}
	if fe.Target != "int16" {
		t.Errorf("Target = %q, want %q", fe.Target, "int16")
	}
	if fe.Input != "70000" {
		t.Errorf("Input = %q, want %q", fe.Input, "70000")
	}
	if fe.Kind != KindStringified {
		t.Errorf("Kind = %q, want %q", fe.Kind, KindStringified)
	}
}

func TestText_RoundTrip(t *testing.T) {
	for _, f := range []float64{0, -0.5, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		s, err := FormatText(f)
		if err != nil {
			t.Fatalf("FormatText(%v) error: %v", f, err)
		}
		back, err := ParseText[float64](s)
		if err != nil {
			t.Fatalf("ParseText(%q) error: %v", s, err)
		}
		if back != f {
			t.Errorf("round trip %v -> %q -> %v", f, s, back)
		}
	}
}
