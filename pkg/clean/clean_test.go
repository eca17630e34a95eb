package clean

import (
	"math"
	"testing"

	"github.com/quietstack/cadschedule/pkg/record"
)

func approxEqual(t *testing.T, got, want float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: got %v want %v", msg, got, want)
	}
}

// TestCleanScenarioS1 pins spec.md §8 scenario S1: CWA extraction,
// Volume, and bounding box from a single layer/solid pair.
func TestCleanScenarioS1(t *testing.T) {
	layer := record.Record{
		"Element Name":   "CWA_ASU-1A01_FoundationSlab",
		"Category/Class": "Layer",
		"GUID":           "layer-guid-1",
	}
	solid := record.Record{
		"Element Name":              "CWA_ASU-1A01_FoundationSlab",
		"Category/Class":            "3D Solid",
		"AutoCAD Geometry.Position X": 10.0,
		"AutoCAD Geometry.Position Y": 0.0,
		"AutoCAD Geometry.Position Z": 0.0,
		"AutoCAD Geometry.Length":     4.0,
		"AutoCAD Geometry.Width":      2.0,
		"AutoCAD Geometry.Height":     1.0,
	}

	out := Clean([]record.Record{layer, solid})
	if len(out) != 1 {
		t.Fatalf("expected 1 cleaned record, got %d", len(out))
	}
	rec := out[0]

	cwa, _ := rec.Get("CWA")
	if cwa != "1A01" {
		t.Errorf("CWA = %v, want 1A01", cwa)
	}
	volume, _ := rec.Get("Volume")
	v, _ := volume.(float64)
	approxEqual(t, v, 8.0, "Volume")
	minXv, _ := rec.Get("MinOfMinX")
	maxXv, _ := rec.Get("MaxOfMaxX")
	minX, _ := minXv.(float64)
	maxX, _ := maxXv.(float64)
	approxEqual(t, minX, 8.0, "MinOfMinX")
	approxEqual(t, maxX, 12.0, "MaxOfMaxX")
	minZv, _ := rec.Get("MinOfMinZ")
	maxZv, _ := rec.Get("MaxOfMaxZ")
	minZ, _ := minZv.(float64)
	maxZ, _ := maxZv.(float64)
	approxEqual(t, minZ, 0.0, "MinOfMinZ")
	approxEqual(t, maxZ, 1.0, "MaxOfMaxZ")

	// Spec.md §4.1 field order: Element Name, CWA, GUID, coordinate
	// fields, flattened geometry, Volume, then the six bbox fields.
	wantOrder := []string{
		"Element Name", "CWA", "GUID",
		"Height", "Length", "Position X", "Position Y", "Position Z", "Width",
		"Volume", "MinOfMinX", "MaxOfMaxX", "MinOfMinY", "MaxOfMaxY", "MinOfMinZ", "MaxOfMaxZ",
	}
	if len(rec) != len(wantOrder) {
		t.Fatalf("field count = %d, want %d", len(rec), len(wantOrder))
	}
	for i, f := range rec {
		if f.Key != wantOrder[i] {
			t.Errorf("field %d = %q, want %q", i, f.Key, wantOrder[i])
		}
	}
}

// TestCleanDropsSolidTypeAndRotation covers invariant 1: geometry keys
// whose short name starts with "solid type" or "rotation" never appear,
// including numbered duplicates.
func TestCleanDropsSolidTypeAndRotation(t *testing.T) {
	layer := record.Record{"Element Name": "X", "Category/Class": "Layer"}
	solid := record.Record{
		"Element Name":             "X",
		"Category/Class":           "3D Solid",
		"AutoCAD Geometry.Solid type":      "Box",
		"AutoCAD Geometry.Solid type (2)":  "Box2",
		"AutoCAD Geometry.Rotation":        0.0,
		"AutoCAD Geometry.Rotation (2)":    1.0,
		"AutoCAD Geometry.Height":          1.0,
	}
	out := Clean([]record.Record{layer, solid})
	rec := out[0]
	for _, f := range rec {
		if f.Key == "Height" {
			continue
		}
		if len(f.Key) >= 10 && f.Key[:10] == "Solid type" {
			t.Errorf("unexpected solid type key %q survived", f.Key)
		}
		if len(f.Key) >= 8 && f.Key[:8] == "Rotation" {
			t.Errorf("unexpected rotation key %q survived", f.Key)
		}
	}
	if _, present := rec.Get("Solid type"); present {
		t.Errorf("Solid type key survived")
	}
	if _, present := rec.Get("Rotation"); present {
		t.Errorf("Rotation key survived")
	}
}

// TestExtractCWA covers both capture-precedence patterns of spec.md §4.1.
func TestExtractCWA(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"prefixed", "CWA_ASU-1A01_FoundationSlab", "1A01", true},
		{"prefixed spaced", "CWA ASU - 2B02 - Wall", "2B02", true},
		{"bare asu", "Some_ASU-3C03_Duct", "3C03", true},
		{"no match", "Random_Layer_Name", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractCWA(tc.in)
			if ok != tc.ok || got != tc.want {
				t.Errorf("ExtractCWA(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestCoercePayloadArray(t *testing.T) {
	body := []any{
		map[string]any{"Category/Class": "Layer"},
	}
	p, err := CoercePayload(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(p.Records))
	}
}

func TestCoercePayloadRejectsNonObjectArrayEntries(t *testing.T) {
	body := []any{"not-an-object"}
	if _, err := CoercePayload(body); err == nil {
		t.Fatalf("expected error for non-object array entry")
	}
}

func TestCoercePayloadNestedDependencies(t *testing.T) {
	body := map[string]any{
		"activities": []any{
			map[string]any{
				"Category/Class": "Layer",
				"DependencyRules": map[string]any{
					"Equipment": []any{"Concrete"},
				},
			},
		},
	}
	p, err := CoercePayload(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Dependencies == nil {
		t.Fatalf("expected nested dependency rules to be found")
	}
}
