package httpx

import (
	"net/url"
	"strings"
	"testing"
)

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var out map[string]interface{}
	err := DecodeLooseJSON(strings.NewReader(`{"a":1}{"b":2}`), &out)
	if err == nil {
		t.Fatalf("expected error for multiple objects")
	}
}

func TestDecodeJSONUnknownField(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"x","extra":true}`), &out)
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestParseLimitOffsetDefaults(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{}, 20, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 20 || offset != 0 {
		t.Fatalf("expected defaults 20/0, got %d/%d", limit, offset)
	}
}

func TestParseLimitOffsetClampsMax(t *testing.T) {
	values := url.Values{"limit": {"500"}, "offset": {"40"}}
	limit, offset, err := ParseLimitOffset(values, 20, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 100 || offset != 40 {
		t.Fatalf("expected 100/40, got %d/%d", limit, offset)
	}
}

func TestParseLimitOffsetInvalid(t *testing.T) {
	if _, _, err := ParseLimitOffset(url.Values{"limit": {"0"}}, 20, 100); err == nil {
		t.Fatalf("expected error for non-positive limit")
	}
	if _, _, err := ParseLimitOffset(url.Values{"offset": {"-1"}}, 20, 100); err == nil {
		t.Fatalf("expected error for negative offset")
	}
}
