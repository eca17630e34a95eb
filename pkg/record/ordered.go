package record

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Field is one key/value pair in an OrderedRecord.
type Field struct {
	Key   string
	Value any
}

// OrderedRecord is a JSON object whose members marshal in the sequence
// they were appended instead of Go's alphabetical map-key order. Clean
// and Duration build one of these for every activity they emit, so the
// on-disk artifact and the HTTP response both carry the field order
// spec.md §4.1 documents (Element Name, CWA, GUID, coordinate fields,
// flattened geometry, Volume, then the six bounding-box fields) rather
// than whatever order a bare map happens to encode in.
type OrderedRecord []Field

// Get returns the value stored under key, or (nil, false) if absent.
// Tests use this instead of map indexing.
func (o OrderedRecord) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the fields as a JSON object in Order, never
// falling back to Go's default map encoding.
func (o OrderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// OrderedBuilder assembles an OrderedRecord field by field in the
// order Set/SetIf are called, matching the way clean.go and
// duration/compute.go build a record section by section.
type OrderedBuilder struct {
	fields OrderedRecord
}

// Set appends key/value unconditionally.
func (b *OrderedBuilder) Set(key string, value any) *OrderedBuilder {
	b.fields = append(b.fields, Field{Key: key, Value: value})
	return b
}

// SetIf appends key/value only when present is true, for optional
// fields like the coordinate and bounding-box groups that only appear
// when their source geometry was available.
func (b *OrderedBuilder) SetIf(present bool, key string, value any) *OrderedBuilder {
	if present {
		b.Set(key, value)
	}
	return b
}

// Build returns the assembled OrderedRecord.
func (b *OrderedBuilder) Build() OrderedRecord {
	return b.fields
}

// SortedKeys returns m's keys in sorted order, skipping any key present
// in exclude. Used for the "flattened geometry" block, whose internal
// order spec.md does not pin but which must still be deterministic
// rather than dependent on Go's map iteration.
func SortedKeys(m Record, exclude map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if exclude[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
