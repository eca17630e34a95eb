package record

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quietstack/cadschedule/pkg/schederr"
)

// Record is an unconstrained mapping of string keys to scalar/string
// values, exactly as spec'd: a raw CAD extract row, a cleaned
// activity, or any stage's output. Stages never mutate a Record in
// place; each stage builds a new one.
type Record map[string]any

// Clone returns a shallow copy, which can be changed without mutating
// the original map.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// GetString returns the string form of a field, or "" if absent or nil.
func (r Record) GetString(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return strings.TrimSpace(toString(v))
}

// GetFloat parses a field as a float64. Returns (0, false) if the
// field is absent, nil, or not parseable as a number — the "unparseable
// → null" rule from spec.md §4.1, surfaced as a zero value plus ok=false
// so callers can distinguish "missing" from "zero".
func (r Record) GetFloat(key string) (float64, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, false
	}
	return ToFloat(v)
}

// ToFloat coerces an arbitrary JSON-decoded value (float64, string,
// json.Number-as-string, int) to a float64. Scientific notation in
// string form (e.g. "9.99999974737875E-06") parses via strconv.ParseFloat.
func ToFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// CoerceList converts a JSON-decoded value into a Record slice. It is
// used by every stage that reads a prior stage's artifact directly off
// disk, where the stored shape is always a bare array of objects. A
// non-array value, or an array containing a non-object element, is a
// schederr KindInputShape error (HTTP 422).
func CoerceList(v any) ([]Record, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, schederr.New(schederr.KindInputShape, "artifact is not a list")
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, schederr.New(schederr.KindInputShape, "artifact array must contain objects")
		}
		out = append(out, Record(m))
	}
	return out, nil
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return ""
	}
}

var wsRun = regexp.MustCompile(`\s+`)
var underscoreRun = regexp.MustCompile(`_+`)

// NormJoinKey normalizes a layer name for the Clean-stage join: collapse
// whitespace runs to a single underscore, then collapse underscore runs,
// then lowercase. This is the exact normalization spec.md §4.1 requires
// for matching layers to solids.
func NormJoinKey(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	t = wsRun.ReplaceAllString(t, "_")
	t = underscoreRun.ReplaceAllString(t, "_")
	return t
}

// NormFold is the single case-insensitive, whitespace-collapsing
// comparison key used for Category/Class checks, activity-type names,
// and dependency-rules keys: trim, collapse internal whitespace to a
// single space, then fold case. Two strings compare equal under this
// function iff spec.md considers them the "same" type/category name.
func NormFold(s string) string {
	t := strings.TrimSpace(s)
	t = wsRun.ReplaceAllString(t, " ")
	return strings.ToLower(t)
}
