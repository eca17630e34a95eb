package sequence

import (
	"testing"

	"github.com/quietstack/cadschedule/pkg/record"
)

func boxRecord(name, actType, cwa string, xMin, xMax, yMin, yMax, minZ, maxZ float64) record.Record {
	return record.Record{
		"Element Name": name,
		"Type":         actType,
		"CWA":          cwa,
		"MinOfMinX":    xMin,
		"MaxOfMaxX":    xMax,
		"MinOfMinY":    yMin,
		"MaxOfMaxY":    yMax,
		"MinOfMinZ":    minZ,
		"MaxOfMaxZ":    maxZ,
		"Duration":     1.0,
	}
}

// TestScenarioS4 pins spec.md §8 scenario S4: an Equipment activity with
// two Concrete candidates in the same CWA. The Equipment sits at
// MinOfMinZ=2.0; A tops out at 1.9 with overlap 0.9 (score 0.8), B at
// 2.1 with overlap 0.85 (score 0.75). Both pass the checks; A must win.
func TestScenarioS4(t *testing.T) {
	equip := boxRecord("Eq1", "Equipment", "1A01", 0, 10, 0, 10, 2.0, 3.0)
	concreteA := boxRecord("ConcA", "Concrete", "1A01", 0, 10, 1, 11, 0, 1.9)
	concreteB := boxRecord("ConcB", "Concrete", "1A01", 0, 10, 1.5, 11.5, 0, 2.1)

	edges, _ := Sequence([]record.Record{equip, concreteA, concreteB}, nil)

	var got *Edge
	for i := range edges {
		if edges[i].ScheduleActivityID == "Eq1" {
			got = &edges[i]
		}
	}
	if got == nil {
		t.Fatalf("no edge emitted for Eq1, edges=%+v", edges)
	}
	if got.Predecessor != "ConcA" {
		t.Errorf("predecessor = %q, want ConcA", got.Predecessor)
	}
	if got.Rel != "FS" || got.TaskType != "Construct" {
		t.Errorf("unexpected edge shape: %+v", got)
	}
}

func TestSequenceSkipsActivitiesWithoutCWA(t *testing.T) {
	noCwa := record.Record{"Element Name": "Orphan", "Type": "Equipment", "CWA": "", "Duration": 1.0}
	edges, nodes := Sequence([]record.Record{noCwa}, nil)
	if len(edges) != 0 {
		t.Errorf("expected no edges, got %+v", edges)
	}
	if len(nodes) != 1 || nodes[0].ScheduleActivityID != "Orphan" {
		t.Errorf("expected orphan to still appear as a node, got %+v", nodes)
	}
}

func TestSequenceGroupsAreIndependent(t *testing.T) {
	equipA := boxRecord("EqA", "Equipment", "1A01", 0, 10, 0, 10, 5, 6)
	concA := boxRecord("ConcA", "Concrete", "1A01", 0, 10, 0, 10, 0, 5)
	equipB := boxRecord("EqB", "Equipment", "1A02", 0, 10, 0, 10, 5, 6)

	edges, _ := Sequence([]record.Record{equipA, concA, equipB}, nil)
	for _, e := range edges {
		if e.ScheduleActivityID == "EqB" {
			t.Errorf("EqB should have no candidate predecessor in its own CWA, got %+v", e)
		}
	}
}

// TestBuildNodeListOrdersByDependency checks a simple A<-B chain yields
// predecessor-before-successor ordering, tie-broken by original index.
func TestBuildNodeListOrdersByDependency(t *testing.T) {
	equip := boxRecord("Eq1", "Equipment", "1A01", 0, 10, 0, 10, 5, 6)
	conc := boxRecord("ConcA", "Concrete", "1A01", 0, 10, 0, 10, 0, 5)

	_, nodes := Sequence([]record.Record{equip, conc}, nil)
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].ScheduleActivityID != "ConcA" || nodes[1].ScheduleActivityID != "Eq1" {
		t.Errorf("expected ConcA before Eq1, got %+v", nodes)
	}
}

func TestBuildNodeListDedupesByElementName(t *testing.T) {
	equip := boxRecord("Eq1", "Equipment", "1A01", 0, 10, 0, 10, 5, 6)
	dup := boxRecord("Eq1", "Equipment", "1A01", 0, 10, 0, 10, 5, 6)
	_, nodes := Sequence([]record.Record{equip, dup}, nil)
	if len(nodes) != 1 {
		t.Errorf("expected dedup to 1 node, got %d: %+v", len(nodes), nodes)
	}
}
