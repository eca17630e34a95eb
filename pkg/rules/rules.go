package rules

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quietstack/cadschedule/pkg/record"
)

// Rules holds a normalized, deduplicated view of a user-supplied
// dependency-rules object: current-type (case-folded) to an ordered,
// deduplicated list of allowed predecessor-type names in their
// original casing.
type Rules struct {
	byNormKey map[string][]string
}

// Parse builds a Rules from a raw decoded-JSON object: each value is
// expected to be a list whose items stringify to predecessor-type
// names. Entries that aren't lists are ignored rather than erroring —
// spec.md only requires the rules object to be a JSON object overall;
// malformed per-key values simply contribute no predecessors.
func Parse(raw map[string]any) *Rules {
	m := make(map[string][]string, len(raw))
	for k, v := range raw {
		list, ok := v.([]any)
		if !ok {
			continue
		}
		m[record.NormFold(k)] = dedupPreserveOrder(list)
	}
	return &Rules{byNormKey: m}
}

func dedupPreserveOrder(list []any) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, item := range list {
		name := fmt.Sprint(item)
		key := record.NormFold(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}

// AllowedPredecessors returns the deduplicated predecessor-type list
// configured for currentType, and whether currentType appears in the
// rules at all (case-insensitively).
func (r *Rules) AllowedPredecessors(currentType string) ([]string, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.byNormKey[record.NormFold(currentType)]
	return v, ok
}

// LoadFile reads a dependency-rules JSON object from path. A missing
// file is not an error — it returns (nil, nil) so callers fall back to
// defaults, per spec.md §4.3.
func LoadFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading dependency rules: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dependency rules: %w", err)
	}
	return Parse(raw), nil
}

// SaveFile persists the raw dependency-rules object (as supplied by the
// caller, unnormalized) to path with 2-space indentation, matching the
// rest of the pipeline's JSON artifact convention.
func SaveFile(path string, raw map[string]any) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dependency rules: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
