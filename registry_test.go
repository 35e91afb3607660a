package garnish_test

import (
	"testing"

	"github.com/zoobzio/garnish"
	"github.com/zoobzio/garnish/json"
	"github.com/zoobzio/garnish/yaml"
)

type CacheTestRecord struct {
	ID garnish.Hex `json:"id" yaml:"id" garnish:"hex"`
}

type BadCacheRecord struct {
	Name string `garnish:"hex"`
}

func TestUse_Caching(t *testing.T) {
	garnish.Reset()

	p1, err := garnish.Use[CacheTestRecord](json.New())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	p2, err := garnish.Use[CacheTestRecord](json.New())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if p1 != p2 {
		t.Error("Use() should return cached processor")
	}
}

func TestUse_DifferentCodecs(t *testing.T) {
	garnish.Reset()

	p1, _ := garnish.Use[CacheTestRecord](json.New())
	p2, _ := garnish.Use[CacheTestRecord](yaml.New())

	if p1 == p2 {
		t.Error("different content types should get different processors")
	}
	if p2.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want application/yaml", p2.ContentType())
	}
}

func TestUse_InvalidTagNotCached(t *testing.T) {
	garnish.Reset()

	if _, err := garnish.Use[BadCacheRecord](json.New()); err == nil {
		t.Fatal("Use() should fail for an invalid tag")
	}
	if _, err := garnish.Use[BadCacheRecord](json.New()); err == nil {
		t.Error("Use() should fail again rather than return a cached nil")
	}
}

func TestReset(t *testing.T) {
	p1, _ := garnish.Use[CacheTestRecord](json.New())

	garnish.Reset()

	p2, _ := garnish.Use[CacheTestRecord](json.New())

	if p1 == p2 {
		t.Error("Reset() should clear cache, new processor expected")
	}
}
