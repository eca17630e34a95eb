package critical

import (
	"math"
	"sort"
)

// toposort computes a reproducible topological order over activities:
// Kahn's algorithm with the ready queue sorted lexicographically by ID
// at each step; any residual (cyclic or referencing unknown
// predecessors) nodes are appended, also sorted lexicographically. See
// spec.md §4.4.
func toposort(byID map[string]*Activity) []string {
	indeg := make(map[string]int, len(byID))
	adj := make(map[string][]string, len(byID))
	for id := range byID {
		indeg[id] = 0
	}
	for id, a := range byID {
		for _, p := range a.Predecessors {
			if _, ok := byID[p]; !ok {
				continue
			}
			adj[p] = append(adj[p], id)
			indeg[id]++
		}
	}

	var ready []string
	for id, d := range indeg {
		if d == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	var order []string
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)
		for _, m := range adj[n] {
			indeg[m]--
			if indeg[m] == 0 {
				ready = append(ready, m)
			}
		}
		sort.Strings(ready)
	}

	if len(order) < len(byID) {
		seen := make(map[string]bool, len(order))
		for _, id := range order {
			seen[id] = true
		}
		var remaining []string
		for id := range byID {
			if !seen[id] {
				remaining = append(remaining, id)
			}
		}
		sort.Strings(remaining)
		order = append(order, remaining...)
	}
	return order
}

// Compute runs the full Critical stage CPM pass over a merged activity
// set: topological ordering, forward pass (ES/EF), and backward pass
// (LF/LS/Float/Critical). See spec.md §4.4.
func Compute(activities []Activity) []Node {
	byID := make(map[string]*Activity, len(activities))
	for i := range activities {
		byID[activities[i].ScheduleActivityID] = &activities[i]
	}

	order := toposort(byID)

	es := make(map[string]float64, len(order))
	ef := make(map[string]float64, len(order))
	for _, id := range order {
		a := byID[id]
		maxEF := 0.0
		for _, p := range a.Predecessors {
			if _, ok := byID[p]; !ok {
				continue
			}
			if ef[p] > maxEF {
				maxEF = ef[p]
			}
		}
		es[id] = maxEF
		ef[id] = maxEF + a.Duration
	}

	projectFinish := 0.0
	for _, id := range order {
		if ef[id] > projectFinish {
			projectFinish = ef[id]
		}
	}

	successors := make(map[string][]string, len(order))
	for _, id := range order {
		a := byID[id]
		for _, p := range a.Predecessors {
			if _, ok := byID[p]; !ok {
				continue
			}
			successors[p] = append(successors[p], id)
		}
	}

	lf := make(map[string]float64, len(order))
	ls := make(map[string]float64, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		a := byID[id]
		succ := successors[id]
		if len(succ) == 0 {
			lf[id] = projectFinish
		} else {
			min := math.Inf(1)
			for _, s := range succ {
				if es[s] < min {
					min = es[s]
				}
			}
			lf[id] = min
		}
		ls[id] = lf[id] - a.Duration
	}

	nodes := make([]Node, 0, len(order))
	for _, id := range order {
		a := byID[id]
		float := ls[id] - es[id]
		nodes = append(nodes, Node{
			ScheduleActivityID: id,
			Type:               a.Type,
			Duration:           a.Duration,
			CWA:                a.CWA,
			TaskType:           a.TaskType,
			Predecessors:       a.Predecessors,
			ES:                 es[id],
			EF:                 ef[id],
			LS:                 ls[id],
			LF:                 lf[id],
			Float:              float,
			Critical:           math.Abs(float) < 1e-9,
		})
	}
	return nodes
}
