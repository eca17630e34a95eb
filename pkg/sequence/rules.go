package sequence

import (
	"github.com/quietstack/cadschedule/pkg/record"
	schedrules "github.com/quietstack/cadschedule/pkg/rules"
)

// predRule is one allowed-predecessor entry for a current activity
// type: the predecessor type name, an optional horizontal overlap
// threshold, and an optional vertical adjacency window.
type predRule struct {
	predType string
	hasHoriz bool
	horiz    float64
	hasVert  bool
	vertLow  float64
	vertUp   float64
}

// defaultRules is the fixed predecessor-rule table, keyed by
// case-folded current activity type, per spec.md §4.3.
var defaultRules = map[string][]predRule{
	"equipment": {
		{predType: "Concrete", hasVert: true, vertLow: 0.5, vertUp: 0.2, hasHoriz: true, horiz: 0.8},
		{predType: "Piling", hasVert: true, vertLow: 0.5, vertUp: 0.2, hasHoriz: true, horiz: 0.8},
		{predType: "Civil Works", hasVert: true, vertLow: 0.5, vertUp: 0.2, hasHoriz: true, horiz: 0.8},
	},
	"grout": {
		{predType: "Concrete", hasVert: true, vertLow: 0.2, vertUp: 0.2, hasHoriz: true, horiz: 0.8},
	},
	"piling":  {},
	"concrete": {},
	"piping": {
		{predType: "Concrete", hasVert: true, vertLow: 0.5, vertUp: 0.2, hasHoriz: true, horiz: 0.8},
	},
	"piping insulation": {
		{predType: "Piping", hasHoriz: true, horiz: 0.8},
	},
	"cable tray": {
		{predType: "Concrete", hasVert: true, vertLow: 0.5, vertUp: 0.2, hasHoriz: true, horiz: 0.8},
	},
	"electrical": {
		{predType: "Cable Tray", hasHoriz: true, horiz: 0.6},
		{predType: "UG Conduit", hasHoriz: true, horiz: 0.6},
	},
	"instrumentation": {
		{predType: "Piping", hasHoriz: true, horiz: 0.6},
	},
	"ug conduit": {
		{predType: "Civil Works", hasHoriz: true, horiz: 0.6},
	},
	"transformer": {
		{predType: "Concrete", hasVert: true, vertLow: 0.5, vertUp: 0.2, hasHoriz: true, horiz: 0.8},
	},
	"civil works": {},
}

// defaultRulePair finds the default rule entry (if any) for a given
// (currentType, predType) pair, used to carry over horiz/vert
// thresholds when a user dependency-rules object overrides the
// predecessor-type list but not its geometry thresholds.
func defaultRulePair(currentType, predType string) (predRule, bool) {
	list, ok := defaultRules[record.NormFold(currentType)]
	if !ok {
		return predRule{}, false
	}
	predKey := record.NormFold(predType)
	for _, r := range list {
		if record.NormFold(r.predType) == predKey {
			return r, true
		}
	}
	return predRule{}, false
}

// ruleListFor computes the allowed-predecessor rule list for
// currentType. When userRules supplies an explicit list for this type,
// it is used verbatim (already deduplicated by pkg/rules), with each
// entry's geometry thresholds taken from the default table when a
// matching default pair exists, or {horiz: 0.8, no vert} otherwise —
// the resolution documented in SPEC_FULL.md §3 for this Open Question.
// Types the user rules object does not mention still get their default
// list.
func ruleListFor(currentType string, userRules *schedrules.Rules) []predRule {
	if userRules != nil {
		if preds, ok := userRules.AllowedPredecessors(currentType); ok {
			out := make([]predRule, 0, len(preds))
			for _, p := range preds {
				if base, found := defaultRulePair(currentType, p); found {
					base.predType = p
					out = append(out, base)
				} else {
					out = append(out, predRule{predType: p, hasHoriz: true, horiz: 0.8})
				}
			}
			return out
		}
	}
	return defaultRules[record.NormFold(currentType)]
}
