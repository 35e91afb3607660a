package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zoobzio/garnish"
	"github.com/zoobzio/garnish/json"
)

func TestSampleProfile_Valid(t *testing.T) {
	p := SampleProfile()

	if !p.Avatar.Valid || !p.Nickname.IsSet() {
		t.Error("SampleProfile() should set optional fields")
	}
	if p.Ref.Value != FixedRef {
		t.Errorf("Ref = %v, want FixedRef", p.Ref.Value)
	}
	if diff := cmp.Diff(SampleProfile(), p, CmpOptions()...); diff != "" {
		t.Errorf("SampleProfile() not stable (-want +got):\n%s", diff)
	}
}

func TestProfile_Plans(t *testing.T) {
	proc, err := garnish.NewProcessor[Profile](json.New(), garnish.WithRequireTags(), garnish.WithSilent())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}
	if got := len(proc.Fields()); got != 11 {
		t.Errorf("Fields() = %d plans, want 11 (10 top-level units and Contact.Key)", got)
	}

	if _, err := garnish.NewProcessor[XMLProfile](json.New(), garnish.WithRequireTags(), garnish.WithSilent()); err != nil {
		t.Errorf("NewProcessor[XMLProfile]() error: %v", err)
	}
}

func TestCmpOptions(t *testing.T) {
	a, b := SampleProfile(), SampleProfile()
	b.Nickname = garnish.Null[string]()
	if cmp.Equal(a, b, CmpOptions()...) {
		t.Error("CmpOptions() should tell set and null apart")
	}
}
