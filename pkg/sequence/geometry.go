package sequence

import "github.com/quietstack/cadschedule/pkg/record"

// getBox reads an activity's 2D bounding box, returning ok=false if any
// of the four fields is missing or non-numeric — "zero-area or missing
// box → 0" per spec.md §4.3.
func getBox(rec record.Record) (box, bool) {
	x1, ok1 := rec.GetFloat("MinOfMinX")
	x2, ok2 := rec.GetFloat("MaxOfMaxX")
	y1, ok3 := rec.GetFloat("MinOfMinY")
	y2, ok4 := rec.GetFloat("MaxOfMaxY")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return box{}, false
	}
	return box{xMin: x1, xMax: x2, yMin: y1, yMax: y2}, true
}

// overlapRatio is the maximum of overlap/area1 and overlap/area2 — not
// IoU, per spec.md §4.3 / §9. Returns 0 for a zero-area box.
func overlapRatio(b1, b2 box) float64 {
	overlapX := max0(minF(b1.xMax, b2.xMax) - maxF(b1.xMin, b2.xMin))
	overlapY := max0(minF(b1.yMax, b2.yMax) - maxF(b1.yMin, b2.yMin))
	overlapArea := overlapX * overlapY

	a1 := max0((b1.xMax - b1.xMin) * (b1.yMax - b1.yMin))
	a2 := max0((b2.xMax - b2.xMin) * (b2.yMax - b2.yMin))
	if a1 <= 0 || a2 <= 0 {
		return 0
	}
	r1 := overlapArea / a1
	r2 := overlapArea / a2
	if r1 > r2 {
		return r1
	}
	return r2
}

// verticalAdjacent checks pred.MaxOfMaxZ - thLow < current.MinOfMinZ <
// pred.MaxOfMaxZ + thUp, per spec.md §4.3.
func verticalAdjacent(predMaxZ, currMinZ, thLow, thUp float64) bool {
	return currMinZ > (predMaxZ-thLow) && currMinZ < (predMaxZ+thUp)
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
