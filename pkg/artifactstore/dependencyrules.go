package artifactstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// dependencyRulesFile is not stage-archived like the rest of the
// pipeline artifacts: it's a single latest-only file written once by
// Clean and read by Sequence, per spec.md §6.
const dependencyRulesFile = "dependency_rules.json"

func (s *Store) DependencyRulesPath() string {
	return filepath.Join(s.dir, dependencyRulesFile)
}

// WriteDependencyRules persists a raw (unnormalized) dependency-rules
// object, as supplied by the Clean request, to dependency_rules.json.
func (s *Store) WriteDependencyRules(raw map[string]any) error {
	buf, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dependency rules: %w", err)
	}
	return writeFileAtomic(s.DependencyRulesPath(), buf)
}

// ReadDependencyRules loads dependency_rules.json. A missing file is
// not an error — it returns (nil, false, nil) so Sequence falls back
// to the default rule table, per spec.md §4.3.
func (s *Store) ReadDependencyRules() (map[string]any, bool, error) {
	data, err := os.ReadFile(s.DependencyRulesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading dependency rules: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("parsing dependency rules: %w", err)
	}
	return raw, true, nil
}
