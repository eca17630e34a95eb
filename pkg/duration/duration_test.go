package duration

import (
	"math"
	"testing"

	"github.com/quietstack/cadschedule/pkg/record"
)

func concreteRecord(name string, volume float64) record.Record {
	return record.Record{"Element Name": name, "Volume": volume}
}

// TestScenarioS2 pins spec.md §8 scenario S2: three Concrete activities
// with volumes 1, 8, 27 yield a Duration of 3 days for the median one.
func TestScenarioS2(t *testing.T) {
	recs := []record.Record{
		concreteRecord("Foo_Install_Concrete_A", 1),
		concreteRecord("Foo_Install_Concrete_B", 8),
		concreteRecord("Foo_Install_Concrete_C", 27),
	}
	out, err := ComputeDurations(recs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var median8Duration float64
	for _, r := range out {
		volume, _ := r.Get("Volume")
		if v, _ := volume.(float64); v == 8 {
			duration, _ := r.Get("Duration")
			median8Duration, _ = duration.(float64)
		}
	}
	if median8Duration != 3 {
		t.Errorf("Duration for median volume = %v, want 3", median8Duration)
	}
}

// TestScenarioS3TypeClassification pins spec.md §8 scenario S3.
func TestScenarioS3TypeClassification(t *testing.T) {
	actType, isSet := ExtractType("Foo_Install_Piping_Insulation_Bar")
	if actType != "Piping Insulation" || isSet {
		t.Errorf("got (%q, %v), want (\"Piping Insulation\", false)", actType, isSet)
	}

	actType, isSet = ExtractType("Foo_Set_V101_Bar")
	if actType != "Equipment" || !isSet {
		t.Errorf("got (%q, %v), want (\"Equipment\", true)", actType, isSet)
	}
	if sub := moduleSubtype("Foo_Set_V101_Bar"); sub != "module_valve" {
		t.Errorf("moduleSubtype = %q, want module_valve", sub)
	}
}

func TestComputeDurationsAllPositiveIntegers(t *testing.T) {
	recs := []record.Record{
		concreteRecord("A_Install_Concrete_1", 5),
		concreteRecord("B_Install_Grout_1", 2),
		{"Element Name": "C_Set_PUMP01"},
	}
	out, err := ComputeDurations(recs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(recs) {
		t.Fatalf("record count changed: got %d want %d", len(out), len(recs))
	}
	for _, r := range out {
		durationV, present := r.Get("Duration")
		d, ok := durationV.(float64)
		if !present || !ok {
			t.Fatalf("missing Duration on %v", r)
		}
		if d != math.Trunc(d) || d < 1 {
			t.Errorf("Duration %v is not a positive integer", d)
		}
	}
}

func TestComputeDurationsMissingExponentErrors(t *testing.T) {
	recs := []record.Record{
		{"Element Name": "Foo_Install_Unmapped_Bar", "Volume": 1.0},
	}
	if _, err := ComputeDurations(recs); err == nil {
		t.Fatalf("expected error for unmapped install type")
	}
}

func TestCoordinateFieldsRemoved(t *testing.T) {
	recs := []record.Record{
		{
			"Element Name": "A_Install_Concrete_1",
			"Volume":       1.0,
			"Position X":   1.0,
			"X Coordinate": 1.0,
		},
	}
	out, _ := ComputeDurations(recs)
	for _, k := range coordFieldsToDrop {
		if _, present := out[0].Get(k); present {
			t.Errorf("field %q was not removed", k)
		}
	}
}
