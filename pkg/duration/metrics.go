package duration

import (
	"sort"

	"github.com/quietstack/cadschedule/pkg/record"
)

func floatField(rec record.Record, key string) float64 {
	f, ok := rec.GetFloat(key)
	if !ok {
		return 0
	}
	return f
}

// volumeFor returns rec's Volume if present, else Height*Length*Width,
// else the bounding-box extent product, else 0. Mirrors
// duration_service.py:_volume_for_record.
func volumeFor(rec record.Record) float64 {
	if v, ok := rec.GetFloat("Volume"); ok {
		if v < 0 {
			return 0
		}
		return v
	}
	h, hOK := rec.GetFloat("Height")
	l, lOK := rec.GetFloat("Length")
	w, wOK := rec.GetFloat("Width")
	if hOK && lOK && wOK {
		v := h * l * w
		if v < 0 {
			return 0
		}
		return v
	}
	x1, x1OK := rec.GetFloat("MinOfMinX")
	x2, x2OK := rec.GetFloat("MaxOfMaxX")
	y1, y1OK := rec.GetFloat("MinOfMinY")
	y2, y2OK := rec.GetFloat("MaxOfMaxY")
	z1, z1OK := rec.GetFloat("MinOfMinZ")
	z2, z2OK := rec.GetFloat("MaxOfMaxZ")
	if x1OK && x2OK && y1OK && y2OK && z1OK && z2OK {
		dx := max0(x2 - x1)
		dy := max0(y2 - y1)
		dz := max0(z2 - z1)
		return max0(dx * dy * dz)
	}
	return 0
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func runLengthFor(rec record.Record) float64 {
	l := floatField(rec, "Length")
	w := floatField(rec, "Width")
	if l > w {
		return l
	}
	return w
}

func areaFor(rec record.Record) float64 {
	l := floatField(rec, "Length")
	w := floatField(rec, "Width")
	return max0(l * w)
}

func heightFor(rec record.Record) float64 {
	return floatField(rec, "Height")
}

// metricFor selects the geometry measure that scales act_type's
// duration, per spec.md §4.2's metric table.
func metricFor(actType string, rec record.Record) float64 {
	switch {
	case volumeTypes[actType]:
		return volumeFor(rec)
	case runTypes[actType]:
		return runLengthFor(rec)
	case areaTypes[actType]:
		return areaFor(rec)
	case actType == "Piling":
		return heightFor(rec)
	default:
		return volumeFor(rec)
	}
}

// median returns the median of values, or 0 for an empty slice.
func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}
