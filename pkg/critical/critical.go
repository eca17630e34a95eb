package critical

import "github.com/quietstack/cadschedule/pkg/record"

// Critical merges extra (already CoerceExtra'd) into the base
// sequence node list and runs the full CPM pass, returning the
// CPM-annotated activity list in stable topological order. See
// spec.md §4.4.
func Critical(base []record.Record, extra []record.Record) []Node {
	activities := MergeActivities(base, extra)
	return Compute(activities)
}
