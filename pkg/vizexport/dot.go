package vizexport

import (
	"github.com/emicklei/dot"

	"github.com/quietstack/cadschedule/pkg/sequence"
)

// ExportDOT renders the Sequence stage's predecessor graph as
// Graphviz DOT text: one edge per Edge, drawn predecessor -> current
// since a Finish-to-Start relation means the predecessor's finish
// gates the successor's start.
func ExportDOT(edges []sequence.Edge) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	nodes := make(map[string]dot.Node)
	nodeFor := func(id string) dot.Node {
		if n, ok := nodes[id]; ok {
			return n
		}
		n := g.Node(id)
		nodes[id] = n
		return n
	}

	for _, e := range edges {
		pred := nodeFor(e.Predecessor)
		cur := nodeFor(e.ScheduleActivityID)
		g.Edge(pred, cur, e.Rel)
	}

	return g.String()
}
