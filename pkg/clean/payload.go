package clean

import (
	"github.com/quietstack/cadschedule/pkg/record"
	"github.com/quietstack/cadschedule/pkg/schederr"
)

// Payload is the coerced request body: the record array to clean, plus
// an optional dependency-rules object found either at the body's root
// or nested inside one of the records.
type Payload struct {
	Records      []record.Record
	Dependencies map[string]any
}

// dependencyKeys is the set (in lookup order) under which a dependency
// rules object may appear at the payload root.
var dependencyKeys = []string{"dependencies", "dependency_rules", "dictionary", "dependencyRules"}

// nestedDependencyKeys is the lookup order used when scanning individual
// records for a nested rules holder, tried in this order per spec.md §4.1.
var nestedDependencyKeys = []string{"dependencyRules", "DependencyRules", "dependencies", "dependency_rules", "dictionary"}

// CoercePayload accepts the two shapes spec.md §4.1 and §6 describe for
// /v1/clean: a bare array of objects, or an object holding the array
// under "activities"/"data" plus an optional dependency-rules object.
// Any other shape, or an array containing a non-object element, is a
// schederr KindInputShape error (HTTP 422).
func CoercePayload(body any) (Payload, error) {
	switch b := body.(type) {
	case []any:
		recs, err := toRecordSlice(b)
		if err != nil {
			return Payload{}, err
		}
		return Payload{Records: recs}, nil

	case map[string]any:
		data := b["activities"]
		if data == nil {
			data = b["data"]
		}

		var recs []record.Record
		switch d := data.(type) {
		case nil:
			recs = nil
		case []any:
			rs, err := toRecordSlice(d)
			if err != nil {
				return Payload{}, err
			}
			recs = rs
		default:
			return Payload{}, schederr.New(schederr.KindInputShape,
				"body dict 'activities' or 'data' field must be an array of objects")
		}

		deps, err := findRootDependencies(b)
		if err != nil {
			return Payload{}, err
		}
		if deps == nil {
			deps = findNestedDependencies(recs)
		}

		return Payload{Records: recs, Dependencies: deps}, nil

	default:
		return Payload{}, schederr.New(schederr.KindInputShape, "unsupported body format")
	}
}

func toRecordSlice(arr []any) ([]record.Record, error) {
	out := make([]record.Record, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, schederr.New(schederr.KindInputShape, "array must contain objects")
		}
		out = append(out, record.Record(m))
	}
	return out, nil
}

func findRootDependencies(body map[string]any) (map[string]any, error) {
	for _, k := range dependencyKeys {
		v, ok := body[k]
		if !ok || v == nil {
			continue
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, schederr.New(schederr.KindInputShape, "dependencies must be an object if provided")
		}
		return m, nil
	}
	return nil, nil
}

func findNestedDependencies(records []record.Record) map[string]any {
	for _, rec := range records {
		for _, k := range nestedDependencyKeys {
			if v, ok := rec[k]; ok && v != nil {
				if m, ok := v.(map[string]any); ok {
					return m
				}
			}
		}
	}
	return nil
}
