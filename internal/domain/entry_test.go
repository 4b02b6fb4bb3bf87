package domain

import (
	"testing"
	"time"
)

func TestNewSavedEntry(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	e := NewSavedEntry("  Hello World  ", at)

	if e.Type != SavedStringType {
		t.Errorf("Type = %q, want %q", e.Type, SavedStringType)
	}
	if e.Value != "  Hello World  " {
		t.Errorf("Value = %q, want verbatim input", e.Value)
	}
	if !e.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v", e.Timestamp, at)
	}

	doc := e.Document()
	if doc[FieldType] != SavedStringType || doc[FieldValue] != "  Hello World  " {
		t.Errorf("Document() = %v", doc)
	}
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{name: "nil document", doc: nil, want: "none"},
		{name: "missing value", doc: Document{"type": "saved-string"}, want: "none"},
		{name: "null value", doc: Document{"value": nil}, want: "null"},
		{name: "string value", doc: Document{"value": "hello"}, want: "hello"},
		{name: "empty string value", doc: Document{"value": ""}, want: ""},
		{name: "non-string value", doc: Document{"value": int32(42)}, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayValue(tt.doc); got != tt.want {
				t.Errorf("DisplayValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	doc := NewSavedEntry("x", time.Now()).Document()

	if !SavedEntryFilter().Matches(doc) {
		t.Error("SavedEntryFilter should match a saved entry")
	}
	if (Filter{"type": "other"}).Matches(doc) {
		t.Error("filter with different type should not match")
	}
	if (Filter{"missing": "x"}).Matches(doc) {
		t.Error("filter on absent field should not match")
	}
	if !(Filter{}).Matches(doc) {
		t.Error("empty filter should match everything")
	}
}
