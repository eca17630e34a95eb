package duration

import (
	"math"

	"github.com/quietstack/cadschedule/pkg/record"
	"github.com/quietstack/cadschedule/pkg/schederr"
)

var coordFieldsToDrop = []string{
	"X Coordinate", "Y Coordinate", "Z Coordinate",
	"Position X", "Position Y", "Position Z",
}

// leadFieldOrder is the prefix spec.md §3 carries forward unchanged
// from the cleaned activity; bboxFieldOrder mirrors clean.go's
// axis-paired bounding-box suffix.
var leadFieldOrder = []string{"Element Name", "CWA", "GUID"}
var bboxFieldOrder = []string{"MinOfMinX", "MaxOfMaxX", "MinOfMinY", "MaxOfMaxY", "MinOfMinZ", "MaxOfMaxZ"}

// ComputeDurations enriches every cleaned activity with a Type and an
// integer Duration, per spec.md §4.2. Returns a schederr
// KindConfiguration error if an activity's inferred Type has no entry
// in the install exponent table.
func ComputeDurations(records []record.Record) ([]record.OrderedRecord, error) {
	typeMetrics := make(map[string][]float64)
	var setVolumes []float64

	names := make([]string, len(records))
	actTypes := make([]string, len(records))
	isSets := make([]bool, len(records))

	for i, rec := range records {
		name := rec.GetString("Element Name")
		names[i] = name
		actType, isSet := ExtractType(name)
		actTypes[i] = actType
		isSets[i] = isSet
		v := volumeFor(rec)
		if isSet {
			setVolumes = append(setVolumes, v)
		} else if actType != "" {
			typeMetrics[actType] = append(typeMetrics[actType], metricFor(actType, rec))
		}
	}

	typeMedian := make(map[string]float64, len(typeMetrics))
	for t, vs := range typeMetrics {
		typeMedian[t] = median(vs)
	}
	setMedian := median(setVolumes)

	out := make([]record.OrderedRecord, len(records))
	for i, rec := range records {
		actType := actTypes[i]
		isSet := isSets[i]
		v := volumeFor(rec)

		var days float64
		if isSet {
			subtype := moduleSubtype(names[i])
			beta := equipSubtypeExponent[subtype]
			base := equipSubtypeBaseDays[subtype]
			denom := setMedian
			if denom <= 0 {
				denom = 1
			}
			days = base * math.Pow(v/denom, beta)
			days = clamp(days, equipBounds)
		} else {
			beta, ok := installExponents[actType]
			if !ok {
				label := actType
				if label == "" {
					label = "UNKNOWN"
				}
				return nil, schederr.New(schederr.KindConfiguration,
					"missing exponent for type '%s' in install exponent table", label)
			}
			base := installBaseDays[actType]
			metric := metricFor(actType, rec)
			denom := typeMedian[actType]
			if denom <= 0 {
				denom = 1
			}
			days = base * math.Pow(metric/denom, beta)
			b, ok := installBounds[actType]
			if !ok {
				b = defaultInstallBounds
			}
			days = clamp(days, b)
			if actType == "Concrete" {
				days *= 0.5
			}
		}

		days = math.Ceil(math.Max(1.0, days*1.5))

		out[i] = buildEnriched(rec, actType, days)
	}

	return out, nil
}

// buildEnriched assembles the enriched activity in the field order
// spec.md §3/§4.2 implies: the cleaned activity's lead fields, its
// flattened geometry (sorted, minus the dropped coordinate/position
// fields), Volume and the bbox suffix, then the newly computed Type
// and Duration appended at the end.
func buildEnriched(rec record.Record, actType string, duration float64) record.OrderedRecord {
	drop := make(map[string]bool, len(leadFieldOrder)+len(bboxFieldOrder)+len(coordFieldsToDrop)+1)
	for _, k := range leadFieldOrder {
		drop[k] = true
	}
	for _, k := range bboxFieldOrder {
		drop[k] = true
	}
	for _, k := range coordFieldsToDrop {
		drop[k] = true
	}
	drop["Volume"] = true

	var b record.OrderedBuilder
	for _, k := range leadFieldOrder {
		if v, present := rec[k]; present {
			b.Set(k, v)
		}
	}
	for _, k := range record.SortedKeys(rec, drop) {
		b.Set(k, rec[k])
	}
	if v, present := rec["Volume"]; present {
		b.Set("Volume", v)
	}
	for _, k := range bboxFieldOrder {
		if v, present := rec[k]; present {
			b.Set(k, v)
		}
	}
	b.Set("Type", actType)
	b.Set("Duration", duration)
	return b.Build()
}
