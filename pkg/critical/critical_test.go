package critical

import (
	"math"
	"testing"

	"github.com/quietstack/cadschedule/pkg/record"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func baseActivity(id string, duration float64, preds ...string) record.Record {
	predsAny := make([]any, len(preds))
	for i, p := range preds {
		predsAny[i] = p
	}
	return record.Record{
		"ScheduleActivityID": id,
		"Type":               "Concrete",
		"Duration":           duration,
		"CWA":                "1A01",
		"TaskType":           "Construct",
		"Predecessors":       predsAny,
	}
}

// TestScenarioS5 pins spec.md §8 scenario S5: a linear chain
// A(2) -> B(3) -> C(1).
func TestScenarioS5(t *testing.T) {
	base := []record.Record{
		baseActivity("A", 2),
		baseActivity("B", 3, "A"),
		baseActivity("C", 1, "B"),
	}
	nodes := Critical(base, nil)
	byID := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		byID[n.ScheduleActivityID] = n
	}

	cases := []struct {
		id         string
		es, ef     float64
		ls, lf     float64
	}{
		{"A", 0, 2, 0, 2},
		{"B", 2, 5, 2, 5},
		{"C", 5, 6, 5, 6},
	}
	for _, c := range cases {
		n, ok := byID[c.id]
		if !ok {
			t.Fatalf("missing node %s", c.id)
		}
		if !approxEqual(n.ES, c.es) || !approxEqual(n.EF, c.ef) {
			t.Errorf("%s: ES/EF = %v/%v, want %v/%v", c.id, n.ES, n.EF, c.es, c.ef)
		}
		if !approxEqual(n.LS, c.ls) || !approxEqual(n.LF, c.lf) {
			t.Errorf("%s: LS/LF = %v/%v, want %v/%v", c.id, n.LS, n.LF, c.ls, c.lf)
		}
		if !approxEqual(n.Float, 0) {
			t.Errorf("%s: Float = %v, want 0", c.id, n.Float)
		}
		if !n.Critical {
			t.Errorf("%s: expected Critical = true", c.id)
		}
	}

	finish := 0.0
	for _, n := range nodes {
		if n.EF > finish {
			finish = n.EF
		}
	}
	if !approxEqual(finish, 6) {
		t.Errorf("project finish = %v, want 6", finish)
	}
}

func TestCPMIdempotent(t *testing.T) {
	base := []record.Record{
		baseActivity("A", 2),
		baseActivity("B", 3, "A"),
	}
	first := Critical(base, nil)
	second := Critical(base, nil)
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ScheduleActivityID != second[i].ScheduleActivityID {
			t.Errorf("order mismatch at %d: %s vs %s", i, first[i].ScheduleActivityID, second[i].ScheduleActivityID)
		}
		if first[i].ES != second[i].ES || first[i].EF != second[i].EF {
			t.Errorf("non-idempotent CPM output at %s", first[i].ScheduleActivityID)
		}
	}
}

func TestMergeOverwritesAndUnionsPredecessors(t *testing.T) {
	base := []record.Record{baseActivity("A", 2), baseActivity("B", 3, "A")}
	extra := []record.Record{
		{"ScheduleActivityID": "B", "Duration": 4.0, "Predecessors": []any{"A", "Z"}},
		{"ScheduleActivityID": "Z", "Duration": 1.0},
	}
	merged := MergeActivities(base, extra)

	byID := make(map[string]Activity, len(merged))
	for _, a := range merged {
		byID[a.ScheduleActivityID] = a
	}

	b := byID["B"]
	if b.Duration != 4.0 {
		t.Errorf("B.Duration = %v, want 4", b.Duration)
	}
	if len(b.Predecessors) != 2 || b.Predecessors[0] != "A" || b.Predecessors[1] != "Z" {
		t.Errorf("B.Predecessors = %v, want [A Z]", b.Predecessors)
	}

	z, ok := byID["Z"]
	if !ok {
		t.Fatalf("expected Z to be added as a new activity")
	}
	if z.TaskType != "Construct" {
		t.Errorf("Z.TaskType = %q, want Construct (default)", z.TaskType)
	}
}

func TestToposortTieBreaksLexicographically(t *testing.T) {
	base := []record.Record{
		baseActivity("Zeta", 1),
		baseActivity("Alpha", 1),
		baseActivity("Mu", 1),
	}
	nodes := Critical(base, nil)
	if nodes[0].ScheduleActivityID != "Alpha" || nodes[1].ScheduleActivityID != "Mu" || nodes[2].ScheduleActivityID != "Zeta" {
		t.Errorf("expected lexicographic order, got %v", []string{nodes[0].ScheduleActivityID, nodes[1].ScheduleActivityID, nodes[2].ScheduleActivityID})
	}
}

func TestCoerceExtraActivitiesKey(t *testing.T) {
	body := map[string]any{
		"activities": []any{
			map[string]any{"ScheduleActivityID": "X", "Duration": 2.0},
		},
	}
	recs, err := CoerceExtra(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].GetString("ScheduleActivityID") != "X" {
		t.Errorf("unexpected records: %+v", recs)
	}
}

func TestCoerceExtraSingleActivityObject(t *testing.T) {
	body := map[string]any{"ScheduleActivityID": "Y", "Duration": 3.0}
	recs, err := CoerceExtra(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].GetString("ScheduleActivityID") != "Y" {
		t.Errorf("unexpected records: %+v", recs)
	}
}

func TestCoerceExtraRejectsNonObjectArrayEntries(t *testing.T) {
	if _, err := CoerceExtra([]any{"not-an-object"}); err == nil {
		t.Fatalf("expected error for non-object array entry")
	}
}
