package sequence

// Edge is a Finish-to-Start predecessor relation between two
// activities in the same CWA. See spec.md §3.
type Edge struct {
	ScheduleActivityID string `json:"ScheduleActivityID"`
	Predecessor        string `json:"Predecessor"`
	Rel                string `json:"Rel"`
	TaskType           string `json:"TaskType"`
}

// Node is an activity emitted in the stable topological order the
// Sequence stage computes. See spec.md §3.
type Node struct {
	ScheduleActivityID string  `json:"ScheduleActivityID"`
	Type               string  `json:"Type"`
	Duration           float64 `json:"Duration"`
	CWA                string  `json:"CWA"`
	TaskType           string  `json:"TaskType"`
}

// box is an activity's 2D (X/Y) bounding rectangle.
type box struct {
	xMin, xMax, yMin, yMax float64
}
