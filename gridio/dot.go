package gridio

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/gridsssp/sssp"
)

// Colors used in the DOT export.
const (
	dotColorSource = "#1f77b4"
	dotColorNode   = "#dddddd"
	dotColorTree   = "#333333"
)

// tightEpsilon absorbs rounding when deciding whether an edge lies on a
// shortest path.
const tightEpsilon = 1e-9

// WriteDOT renders res as a Graphviz digraph. Every reachable coordinate
// becomes a node labelled with its coordinate and distance; every edge
// u→v with dist(u)+w == dist(v) (a shortest-path tree candidate) becomes
// a graph edge labelled with its weight. Edges into or out of unreachable
// coordinates are skipped.
func WriteDOT(w io.Writer, res *sssp.Result, edges []sssp.Edge) error {
	space := res.Space()
	graph := gographviz.NewGraph()
	if err := graph.SetName("sssp"); err != nil {
		return err
	}
	if err := graph.SetDir(true); err != nil {
		return err
	}
	for attr, val := range map[string]string{
		"rankdir": "LR",
		"nodesep": "0.4",
		"ranksep": "0.3",
	} {
		if err := graph.AddAttr("sssp", attr, val); err != nil {
			return err
		}
	}

	for c, d := range res.Reachable() {
		fill := dotColorNode
		if c == res.Source {
			fill = dotColorSource
		}
		err := graph.AddNode("sssp", nodeID(space.Format(c)), map[string]string{
			"label":     fmt.Sprintf(`"%s\n%s"`, space.Format(c), strconv.FormatFloat(d, 'g', distancePrecision, 64)),
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": strconv.Quote(fill),
			"fontsize":  "10",
		})
		if err != nil {
			return err
		}
	}

	for _, e := range edges {
		du, ok := res.Distance(e.From)
		if !ok {
			continue
		}
		dv, ok := res.Distance(e.To)
		if !ok || e.From == e.To {
			continue
		}
		if diff := du + e.Weight - dv; diff > tightEpsilon || diff < -tightEpsilon {
			continue
		}
		err := graph.AddEdge(nodeID(space.Format(e.From)), nodeID(space.Format(e.To)), true, map[string]string{
			"label": strconv.Quote(strconv.FormatFloat(e.Weight, 'g', -1, 64)),
			"color": strconv.Quote(dotColorTree),
		})
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, graph.String())

	return err
}

// nodeID quotes a formatted coordinate so it is a valid DOT identifier.
func nodeID(s string) string {
	return strconv.Quote(s)
}
