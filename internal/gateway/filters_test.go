package gateway

import (
	"net/url"
	"testing"
)

func TestFilters_Encode_DropRule(t *testing.T) {
	// An empty filter parameter means "match nothing" to the backend, so
	// absent, empty-string and nil values must vanish entirely.
	f := Filters{
		"q":                  "algebra",
		"category":           "",
		"level":              nil,
		"search_in_teachers": true,
	}

	got, err := url.ParseQuery(f.Encode())
	if err != nil {
		t.Fatalf("ParseQuery(%q) error = %v", f.Encode(), err)
	}

	if got.Get("q") != "algebra" {
		t.Errorf("q = %q; want %q", got.Get("q"), "algebra")
	}
	if got.Get("search_in_teachers") != "true" {
		t.Errorf("search_in_teachers = %q; want %q", got.Get("search_in_teachers"), "true")
	}
	if _, ok := got["category"]; ok {
		t.Error("category present; want omitted")
	}
	if _, ok := got["level"]; ok {
		t.Error("level present; want omitted")
	}
}

func TestFilters_Encode_FalseIsKept(t *testing.T) {
	// false is a real value (it disables a backend default), only nil and
	// "" are dropped.
	f := Filters{"search_in_materials": false}

	got, _ := url.ParseQuery(f.Encode())
	if got.Get("search_in_materials") != "false" {
		t.Errorf("search_in_materials = %q; want %q", got.Get("search_in_materials"), "false")
	}
}

func TestFilters_Encode_EscapesValues(t *testing.T) {
	f := Filters{"q": "linear algebra & more", "teacher_name": "Müller"}

	encoded := f.Encode()
	got, err := url.ParseQuery(encoded)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error = %v", encoded, err)
	}
	if got.Get("q") != "linear algebra & more" {
		t.Errorf("q = %q; want round-tripped original", got.Get("q"))
	}
	if got.Get("teacher_name") != "Müller" {
		t.Errorf("teacher_name = %q; want %q", got.Get("teacher_name"), "Müller")
	}
}

func TestFilters_Encode_Numbers(t *testing.T) {
	f := Filters{"limit": 20, "teacher_id": 7}

	got, _ := url.ParseQuery(f.Encode())
	if got.Get("limit") != "20" {
		t.Errorf("limit = %q; want %q", got.Get("limit"), "20")
	}
	if got.Get("teacher_id") != "7" {
		t.Errorf("teacher_id = %q; want %q", got.Get("teacher_id"), "7")
	}
}

func TestFilters_Encode_Deterministic(t *testing.T) {
	f := Filters{"b": "2", "a": "1", "c": "3"}

	if f.Encode() != "a=1&b=2&c=3" {
		t.Errorf("Encode() = %q; want sorted key order", f.Encode())
	}
}

func TestFilters_Encode_Empty(t *testing.T) {
	if got := (Filters{}).Encode(); got != "" {
		t.Errorf("Encode() = %q; want empty", got)
	}
	if got := (Filters(nil)).Encode(); got != "" {
		t.Errorf("Encode() on nil = %q; want empty", got)
	}
}
