package sequence

import (
	"strings"

	"github.com/quietstack/cadschedule/pkg/record"
	schedrules "github.com/quietstack/cadschedule/pkg/rules"
)

// activity is a lightweight view over a duration-stage record, cached
// once per Sequence() call so edge selection doesn't re-parse floats
// for every candidate pair.
type activity struct {
	rec     record.Record
	name    string
	actType string
	cwa     string
	box     box
	hasBox  bool
	minZ    float64
	hasMinZ bool
	maxZ    float64
	hasMaxZ bool
}

func newActivity(rec record.Record) activity {
	b, hasBox := getBox(rec)
	minZ, hasMinZ := rec.GetFloat("MinOfMinZ")
	maxZ, hasMaxZ := rec.GetFloat("MaxOfMaxZ")
	return activity{
		rec:     rec,
		name:    rec.GetString("Element Name"),
		actType: rec.GetString("Type"),
		cwa:     strings.TrimSpace(rec.GetString("CWA")),
		box:     b,
		hasBox:  hasBox,
		minZ:    minZ,
		hasMinZ: hasMinZ,
		maxZ:    maxZ,
		hasMaxZ: hasMaxZ,
	}
}

// Sequence computes the predecessor edges and the ordered activity
// node list for a Duration-stage output, per spec.md §4.3. Activities
// lacking a CWA take no part in predecessor selection (they get no
// edges) but still appear in the node list; edges only connect
// activities within the same CWA.
func Sequence(records []record.Record, userRules *schedrules.Rules) ([]Edge, []Node) {
	groupOrder := make([]string, 0)
	groups := make(map[string][]activity)
	for _, rec := range records {
		a := newActivity(rec)
		if a.cwa == "" {
			continue
		}
		if _, seen := groups[a.cwa]; !seen {
			groupOrder = append(groupOrder, a.cwa)
		}
		groups[a.cwa] = append(groups[a.cwa], a)
	}

	var edges []Edge
	for _, cwa := range groupOrder {
		edges = append(edges, sequenceGroup(groups[cwa], userRules)...)
	}

	nodes := buildNodeList(records, edges)
	return edges, nodes
}

// sequenceGroup evaluates predecessor selection within a single CWA's
// activities, in their original relative order.
func sequenceGroup(group []activity, userRules *schedrules.Rules) []Edge {
	var edges []Edge
	for i, cur := range group {
		ruleList := ruleListFor(cur.actType, userRules)
		for _, rule := range ruleList {
			bestScore := -1.0
			bestName := ""
			found := false
			for j, cand := range group {
				if i == j {
					continue
				}
				if record.NormFold(cand.actType) != record.NormFold(rule.predType) {
					continue
				}
				if rule.hasHoriz {
					if !cur.hasBox || !cand.hasBox {
						continue
					}
					if overlapRatio(cur.box, cand.box) < rule.horiz {
						continue
					}
				}
				if rule.hasVert {
					if !cand.hasMaxZ || !cur.hasMinZ {
						continue
					}
					if !verticalAdjacent(cand.maxZ, cur.minZ, rule.vertLow, rule.vertUp) {
						continue
					}
				}

				score := 0.0
				if rule.hasVert && cand.hasMaxZ && cur.hasMinZ {
					score -= absF(cur.minZ - cand.maxZ)
				}
				if rule.hasHoriz && cur.hasBox && cand.hasBox {
					score += overlapRatio(cur.box, cand.box)
				}
				if score > bestScore {
					bestScore = score
					bestName = cand.name
					found = true
				}
			}
			if found {
				edges = append(edges, Edge{
					ScheduleActivityID: cur.name,
					Predecessor:        bestName,
					Rel:                "FS",
					TaskType:           "Construct",
				})
			}
		}
	}
	return edges
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// buildNodeList deduplicates records by Element Name (first occurrence
// wins), runs Kahn's algorithm over the edges with ties broken by
// original input index, and appends any residual nodes (cycles or
// disconnected) in original order. See spec.md §4.3.
func buildNodeList(records []record.Record, edges []Edge) []Node {
	indexByName := make(map[string]int)
	recByName := make(map[string]record.Record)
	var order []string
	for i, rec := range records {
		name := rec.GetString("Element Name")
		if name == "" {
			continue
		}
		if _, ok := indexByName[name]; ok {
			continue
		}
		indexByName[name] = i
		recByName[name] = rec
		order = append(order, name)
	}

	adj := make(map[string][]string, len(order))
	indeg := make(map[string]int, len(order))
	for _, n := range order {
		indeg[n] = 0
	}
	for _, e := range edges {
		if _, ok := indexByName[e.Predecessor]; !ok {
			continue
		}
		if _, ok := indexByName[e.ScheduleActivityID]; !ok {
			continue
		}
		adj[e.Predecessor] = append(adj[e.Predecessor], e.ScheduleActivityID)
		indeg[e.ScheduleActivityID]++
	}

	var ready []string
	for _, n := range order {
		if indeg[n] == 0 {
			ready = append(ready, n)
		}
	}
	sortByIndex(ready, indexByName)

	var ordered []string
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		ordered = append(ordered, n)
		for _, m := range adj[n] {
			indeg[m]--
			if indeg[m] == 0 {
				ready = append(ready, m)
			}
		}
		sortByIndex(ready, indexByName)
	}

	if len(ordered) < len(order) {
		orderedSet := make(map[string]bool, len(ordered))
		for _, n := range ordered {
			orderedSet[n] = true
		}
		var remaining []string
		for _, n := range order {
			if !orderedSet[n] {
				remaining = append(remaining, n)
			}
		}
		sortByIndex(remaining, indexByName)
		ordered = append(ordered, remaining...)
	}

	nodes := make([]Node, 0, len(ordered))
	for _, name := range ordered {
		rec := recByName[name]
		duration, _ := rec.GetFloat("Duration")
		nodes = append(nodes, Node{
			ScheduleActivityID: name,
			Type:               rec.GetString("Type"),
			Duration:           duration,
			CWA:                rec.GetString("CWA"),
			TaskType:           "Construct",
		})
	}
	return nodes
}

// sortByIndex performs a stable insertion sort by original input index.
// The ready queue is always small relative to total activities, so a
// simple insertion sort keeps the stability guarantee explicit without
// reaching for sort.SliceStable's less-obvious comparator semantics.
func sortByIndex(names []string, indexByName map[string]int) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && indexByName[names[j-1]] > indexByName[names[j]]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
}
