package clean

import (
	"regexp"
	"strings"

	"github.com/quietstack/cadschedule/pkg/record"
)

const autoGeomPrefix = "AutoCAD Geometry."

// layerKeyFields is the precedence order for locating the name a layer
// or solid is filed under, per spec.md §4.1.
var layerKeyFields = []string{"Item.Layer", "General.Layer", "Item.Name", "General.Name", "Element Name"}

var coordFields = []string{"X Coordinate", "Y Coordinate", "Z Coordinate"}

// cwaSpaceRun collapses underscore/whitespace runs to a single space so
// the CWA regexes below can match across "CWA_ASU-1A01", "CWA ASU - 1A01",
// and similar layer-name spellings.
var cwaSpaceRun = regexp.MustCompile(`[_\s]+`)

var cwaWithPrefix = regexp.MustCompile(`(?i)\bCWA\b\s*ASU\s*-\s*([A-Za-z0-9]+)`)
var cwaBare = regexp.MustCompile(`(?i)\bASU\s*-\s*([A-Za-z0-9]+)`)

// numericGeomMarkers lists the substrings (checked against the
// lowercased, prefix-stripped geometry key) that mark a value as a
// float to coerce.
var numericGeomMarkers = []string{"position x", "position y", "position z", "height", "length", "width"}

// ExtractCWA pulls the Construction Work Area token out of a layer name,
// returning ("", false) when no ASU- pattern is present.
func ExtractCWA(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	norm := cwaSpaceRun.ReplaceAllString(name, " ")
	if m := cwaWithPrefix.FindStringSubmatch(norm); m != nil {
		return m[1], true
	}
	if m := cwaBare.FindStringSubmatch(norm); m != nil {
		return m[1], true
	}
	return "", false
}

func layerKey(rec record.Record) string {
	for _, field := range layerKeyFields {
		if v, ok := rec[field]; ok && v != nil {
			if s := rec.GetString(field); s != "" {
				return s
			}
		}
	}
	return ""
}

func category(rec record.Record) string {
	return record.NormFold(rec.GetString("Category/Class"))
}

// collectGeometry extracts the AutoCAD Geometry.* fields of rec,
// stripping the prefix, dropping solid-type/rotation keys (including
// numbered duplicates like "Solid type (2)"), and coercing the
// position/height/length/width fields to float64.
func collectGeometry(rec record.Record) record.Record {
	geom := make(record.Record)
	for k, v := range rec {
		if !strings.HasPrefix(k, autoGeomPrefix) {
			continue
		}
		short := k[len(autoGeomPrefix):]
		shortLower := strings.ToLower(short)
		if strings.HasPrefix(shortLower, "solid type") || strings.HasPrefix(shortLower, "rotation") {
			continue
		}
		if isNumericGeomKey(shortLower) {
			if f, ok := record.ToFloat(v); ok {
				geom[short] = f
			} else {
				geom[short] = nil
			}
		} else {
			geom[short] = v
		}
	}
	return geom
}

func isNumericGeomKey(shortLower string) bool {
	for _, marker := range numericGeomMarkers {
		if strings.Contains(shortLower, marker) {
			return true
		}
	}
	return false
}

func geomFloat(geom record.Record, key string) (float64, bool) {
	v, ok := geom[key]
	if !ok || v == nil {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Clean joins every "layer" record with the first "3d solid" record
// sharing its normalized layer-name key and flattens the result into a
// cleaned activity record, per spec.md §4.1.
func Clean(records []record.Record) []record.OrderedRecord {
	var layers, solids []record.Record
	for _, r := range records {
		switch category(r) {
		case "layer":
			layers = append(layers, r)
		case "3d solid":
			solids = append(solids, r)
		}
	}

	solidsByLayer := make(map[string][]record.Record)
	for _, s := range solids {
		key := record.NormJoinKey(layerKey(s))
		if key == "" {
			continue
		}
		solidsByLayer[key] = append(solidsByLayer[key], s)
	}

	cleaned := make([]record.OrderedRecord, 0, len(layers))
	for _, layer := range layers {
		cleaned = append(cleaned, cleanOne(layer, solidsByLayer))
	}
	return cleaned
}

// bboxFieldOrder is the axis-paired order spec.md §4.1 documents for
// the six bounding-box fields: X pair, then Y, then Z.
var bboxFieldOrder = []string{"MinOfMinX", "MaxOfMaxX", "MinOfMinY", "MaxOfMaxY", "MinOfMinZ", "MaxOfMaxZ"}

func cleanOne(layer record.Record, solidsByLayer map[string][]record.Record) record.OrderedRecord {
	layerName := layerKey(layer)
	joinKey := record.NormJoinKey(layerName)

	cwa, ok := ExtractCWA(layerName)
	if !ok {
		cwa, ok = ExtractCWA(layer.GetString("Element Name"))
	}

	// Take the first matching solid whose collected geometry is
	// non-empty; solids with no retained AutoCAD Geometry.* keys are
	// skipped in favor of the next match, per clean_service.py.
	var geom record.Record
	for _, s := range solidsByLayer[joinKey] {
		g := collectGeometry(s)
		if len(g) > 0 {
			geom = g
			break
		}
	}
	if geom == nil {
		geom = record.Record{}
	}

	h, hasH := geomFloat(geom, "Height")
	l, hasL := geomFloat(geom, "Length")
	w, hasW := geomFloat(geom, "Width")

	bbox := make(record.Record, 7)
	if hasH && hasL && hasW {
		bbox["Volume"] = h * l * w
	}

	px, hasPX := geomFloat(geom, "Position X")
	py, hasPY := geomFloat(geom, "Position Y")
	pz, hasPZ := geomFloat(geom, "Position Z")

	if hasPX && hasL {
		bbox["MinOfMinX"] = px - l/2.0
		bbox["MaxOfMaxX"] = px + l/2.0
	}
	if hasPY && hasW {
		bbox["MinOfMinY"] = py - w/2.0
		bbox["MaxOfMaxY"] = py + w/2.0
	}
	if hasPZ && hasH {
		bbox["MinOfMinZ"] = pz
		bbox["MaxOfMaxZ"] = pz + h
	}

	// Assemble in the exact order spec.md §4.1 documents: Element Name,
	// CWA, GUID, coordinate fields when present, then flattened
	// geometry (sorted for determinism — its internal order is not
	// spec'd), then Volume, then the six bounding-box fields.
	var b record.OrderedBuilder
	if v, present := layer["Element Name"]; present {
		b.Set("Element Name", v)
	}
	if ok {
		b.Set("CWA", cwa)
	} else {
		b.Set("CWA", nil) // always emitted, nil when no ASU- match
	}
	if v, present := layer["GUID"]; present {
		b.Set("GUID", v)
	}
	for _, cf := range coordFields {
		if v, present := layer[cf]; present {
			f, okFloat := record.ToFloat(v)
			if okFloat {
				b.Set(cf, f)
			} else {
				b.Set(cf, nil)
			}
		}
	}
	for _, k := range record.SortedKeys(geom, nil) {
		b.Set(k, geom[k])
	}
	if v, present := bbox["Volume"]; present {
		b.Set("Volume", v)
	}
	for _, k := range bboxFieldOrder {
		if v, present := bbox[k]; present {
			b.Set(k, v)
		}
	}

	return b.Build()
}
