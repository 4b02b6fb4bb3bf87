package domain

import (
	"fmt"
	"reflect"
	"time"
)

// SavedStringType tags every record written by the tool.
const SavedStringType = "saved-string"

// NoneDisplay is printed when no previous value exists.
const NoneDisplay = "none"

// Field names of a persisted SavedEntry.
const (
	FieldType      = "type"
	FieldValue     = "value"
	FieldTimestamp = "timestamp"
)

// SavedEntry is the persisted record. Value is stored verbatim.
type SavedEntry struct {
	Type      string    `bson:"type" json:"type"`
	Value     string    `bson:"value" json:"value"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// NewSavedEntry creates a tagged entry for value stamped with at.
func NewSavedEntry(value string, at time.Time) SavedEntry {
	return SavedEntry{
		Type:      SavedStringType,
		Value:     value,
		Timestamp: at,
	}
}

// Document is a record as returned by a storage lookup.
type Document map[string]any

// Filter is an unordered equality filter: every key must equal its value.
type Filter map[string]any

// Sort orders a lookup by a single field.
type Sort struct {
	Field      string
	Descending bool
}

// SavedEntryFilter selects records written by this tool.
func SavedEntryFilter() Filter {
	return Filter{FieldType: SavedStringType}
}

// LatestFirst orders entries newest first.
func LatestFirst() *Sort {
	return &Sort{Field: FieldTimestamp, Descending: true}
}

// NullDisplay is printed for a value field that is present but null.
const NullDisplay = "null"

// DisplayValue renders the value field of doc, or NoneDisplay if doc is nil
// or carries no value field.
func DisplayValue(doc Document) string {
	if doc == nil {
		return NoneDisplay
	}
	v, ok := doc[FieldValue]
	if !ok {
		return NoneDisplay
	}
	if v == nil {
		return NullDisplay
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Matches reports whether doc satisfies every equality in f.
func (f Filter) Matches(doc Document) bool {
	for k, want := range f {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// Document returns the entry in its generic document form.
func (e SavedEntry) Document() Document {
	return Document{
		FieldType:      e.Type,
		FieldValue:     e.Value,
		FieldTimestamp: e.Timestamp,
	}
}
