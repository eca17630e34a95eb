package critical

import (
	"encoding/json"

	"github.com/quietstack/cadschedule/pkg/record"
	"github.com/quietstack/cadschedule/pkg/schederr"
)

// CoerceExtra accepts the shapes spec.md §4.4 / §6 allow for the
// Critical stage's request body: a bare array of activity objects, an
// object holding the array under "output" (itself a list, or a JSON
// string decoding to a list) or "activities", or a single object that
// itself looks like an activity (has ScheduleActivityID and Duration).
// An empty/nil body is not an error — it simply contributes no extras.
func CoerceExtra(body any) ([]record.Record, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []any:
		return toRecordSlice(b)
	case map[string]any:
		if out, ok := b["output"]; ok {
			if list, ok := out.([]any); ok {
				return toRecordSlice(list)
			}
			if s, ok := out.(string); ok {
				var decoded any
				if err := json.Unmarshal([]byte(s), &decoded); err != nil {
					return nil, schederr.New(schederr.KindInputShape, "extra activities 'output' string is not valid JSON: %v", err)
				}
				if list, ok := decoded.([]any); ok {
					return toRecordSlice(list)
				}
			}
		}
		if data, ok := b["activities"].([]any); ok {
			return toRecordSlice(data)
		}
		if _, hasID := b["ScheduleActivityID"]; hasID {
			if _, hasDur := b["Duration"]; hasDur {
				return []record.Record{record.Record(b)}, nil
			}
		}
		return nil, nil
	default:
		return nil, schederr.New(schederr.KindInputShape, "unsupported extra activities payload format")
	}
}

func toRecordSlice(items []any) ([]record.Record, error) {
	out := make([]record.Record, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, schederr.New(schederr.KindInputShape, "extra activities array must contain objects")
		}
		out = append(out, record.Record(m))
	}
	return out, nil
}

// MergeActivities merges extra activity records into the base sequence
// node list, keyed by ScheduleActivityID, per spec.md §4.4. Base order
// is preserved; new IDs from extra are appended in the order
// encountered.
func MergeActivities(base, extra []record.Record) []Activity {
	byID := make(map[string]*Activity)
	var order []string

	for _, rec := range base {
		id := rec.GetString("ScheduleActivityID")
		if id == "" {
			continue
		}
		if _, ok := byID[id]; !ok {
			order = append(order, id)
		}
		duration, _ := rec.GetFloat("Duration")
		byID[id] = &Activity{
			ScheduleActivityID: id,
			Type:               rec.GetString("Type"),
			Duration:           duration,
			CWA:                rec.GetString("CWA"),
			TaskType:           rec.GetString("TaskType"),
			Predecessors:       stringList(rec["Predecessors"]),
		}
	}

	for _, rec := range extra {
		id := rec.GetString("ScheduleActivityID")
		if id == "" {
			continue
		}
		a, exists := byID[id]
		if !exists {
			taskType := rec.GetString("TaskType")
			if taskType == "" {
				taskType = "Construct"
			}
			duration, _ := rec.GetFloat("Duration")
			a = &Activity{
				ScheduleActivityID: id,
				Type:               rec.GetString("Type"),
				Duration:           duration,
				CWA:                rec.GetString("CWA"),
				TaskType:           taskType,
				Predecessors:       stringList(rec["Predecessors"]),
			}
			byID[id] = a
			order = append(order, id)
			continue
		}
		if v := rec.GetString("Type"); v != "" {
			a.Type = v
		}
		if _, present := rec["Duration"]; present {
			if d, ok := rec.GetFloat("Duration"); ok {
				a.Duration = d
			}
		}
		if v := rec.GetString("CWA"); v != "" {
			a.CWA = v
		}
		if v := rec.GetString("TaskType"); v != "" {
			a.TaskType = v
		}
		extraPreds := stringList(rec["Predecessors"])
		if len(extraPreds) > 0 {
			seen := make(map[string]bool, len(a.Predecessors))
			for _, p := range a.Predecessors {
				seen[p] = true
			}
			for _, p := range extraPreds {
				if seen[p] {
					continue
				}
				seen[p] = true
				a.Predecessors = append(a.Predecessors, p)
			}
		}
	}

	out := make([]Activity, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
