package garnish

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02 03:04:05"},
		{time.Date(1999, 12, 31, 23, 59, 59, 999_999_999, time.UTC), "1999-12-31 23:59:59"},
		{time.Date(2024, 6, 1, 9, 0, 0, 0, time.FixedZone("X", 5*3600)), "2024-06-01 09:00:00"},
		{time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), "0001-01-01 00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.in); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"canonical", "2024-01-02 03:04:05", false},
		{"leap day", "2024-02-29 00:00:00", false},
		{"end of day", "2024-12-31 23:59:59", false},
		{"T separator", "2024-01-02T03:04:05", true},
		{"zone suffix", "2024-01-02 03:04:05Z", true},
		{"fraction", "2024-01-02 03:04:05.5", true},
		{"single digit hour", "2024-01-02 3:04:05", true},
		{"month 13", "2024-13-01 00:00:00", true},
		{"feb 30", "2023-02-30 00:00:00", true},
		{"non leap feb 29", "2023-02-29 00:00:00", true},
		{"hour 24", "2024-01-01 24:00:00", true},
		{"date only", "2024-01-01", true},
		{"empty", "", true},
		{"trailing space", "2024-01-02 03:04:05 ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("ParseTimestamp(%q) error = %v, want ErrParse", tt.in, err)
				}
				var fe *FieldError
				if errors.As(err, &fe) && fe.Kind != KindTimestamp {
					t.Errorf("Kind = %q, want %q", fe.Kind, KindTimestamp)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error: %v", tt.in, err)
			}
			if got.Location() != time.UTC {
				t.Errorf("Location = %v, want UTC", got.Location())
			}
			if FormatTimestamp(got) != tt.in {
				t.Errorf("round trip = %q, want %q", FormatTimestamp(got), tt.in)
			}
		})
	}
}

func TestTimestamp_Equal(t *testing.T) {
	a := NewTimestamp(2024, 1, 1, 0, 0, 0)
	b := Timestamp{time.Date(2024, 1, 1, 0, 0, 0, 500, time.FixedZone("Y", -3600))}
	c := NewTimestamp(2024, 1, 1, 0, 0, 1)

	if !a.Equal(b) {
		t.Error("timestamps with the same wall clock should be equal")
	}
	if a.Equal(c) {
		t.Error("timestamps a second apart should differ")
	}
}

type event struct {
	At Timestamp `json:"at" yaml:"at"`
}

func TestTimestamp_JSON(t *testing.T) {
	data, err := json.Marshal(event{At: NewTimestamp(2021, 7, 4, 18, 30, 0)})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"at":"2021-07-04 18:30:00"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back event
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back.At.String() != "2021-07-04 18:30:00" {
		t.Errorf("At = %s", back.At)
	}

	if err := json.Unmarshal([]byte(`{"at":"2021-07-04T18:30:00Z"}`), &back); !errors.Is(err, ErrParse) {
		t.Errorf("Unmarshal(RFC 3339) error = %v, want ErrParse", err)
	}
	if err := json.Unmarshal([]byte(`{"at":1625423400}`), &back); !errors.Is(err, ErrUnexpectedWire) {
		t.Errorf("Unmarshal(number) error = %v, want ErrUnexpectedWire", err)
	}
}

func TestTimestamp_YAML(t *testing.T) {
	data, err := yaml.Marshal(event{At: NewTimestamp(2021, 7, 4, 18, 30, 0)})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var back event
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v\n%s", err, data)
	}
	if back.At.String() != "2021-07-04 18:30:00" {
		t.Errorf("At = %s", back.At)
	}

	// YAML's own timestamp resolution must not get in the way.
	if err := yaml.Unmarshal([]byte("at: 2021-07-04 18:30:00\n"), &back); err != nil {
		t.Fatalf("Unmarshal(plain scalar) error: %v", err)
	}
	if back.At.String() != "2021-07-04 18:30:00" {
		t.Errorf("At = %s", back.At)
	}
}
