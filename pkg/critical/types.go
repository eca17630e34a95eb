package critical

// Activity is a merged, pre-CPM node: a sequence node plus its
// predecessor list (denormalized so the forward/backward pass doesn't
// need to re-derive it from edges).
type Activity struct {
	ScheduleActivityID string
	Type               string
	Duration           float64
	CWA                string
	TaskType           string
	Predecessors       []string
}

// Node is a CPM-annotated activity, per spec.md §3.
type Node struct {
	ScheduleActivityID string   `json:"ScheduleActivityID"`
	Type               string   `json:"Type"`
	Duration           float64  `json:"Duration"`
	CWA                string   `json:"CWA"`
	TaskType           string   `json:"TaskType"`
	Predecessors       []string `json:"Predecessors"`
	ES                 float64  `json:"ES"`
	EF                 float64  `json:"EF"`
	LS                 float64  `json:"LS"`
	LF                 float64  `json:"LF"`
	Float              float64  `json:"Float"`
	Critical           bool     `json:"Critical"`
}
