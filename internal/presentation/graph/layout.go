package graph

import "github.com/aretw0/hanoi/pkg/domain"

// Position places one call node on a drawing grid: leaves occupy
// consecutive columns left-to-right, depth maps to the row.
type Position struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label"`
}

// Layout computes grid positions for every node in the trace, indexed by
// node ID. Inner nodes are centered over the span of their children.
func Layout(trace *domain.Trace) []Position {
	positions := make([]Position, len(trace.Nodes))

	// Leaves get columns in tree order; a post-order pass centers parents.
	nextX := 0
	var place func(id int) (left, right int)
	place = func(id int) (int, int) {
		node := trace.Nodes[id]
		pos := Position{Y: node.Depth, Label: NodeLabel(node)}

		if len(node.Children) == 0 {
			pos.X = nextX
			nextX++
			positions[id] = pos
			return pos.X, pos.X
		}

		first, _ := place(node.Children[0])
		_, last := place(node.Children[len(node.Children)-1])
		pos.X = (first + last) / 2
		positions[id] = pos
		return first, last
	}
	if len(trace.Nodes) > 0 {
		place(0)
	}
	return positions
}

// Edge is a parent→child link in the call tree.
type Edge struct {
	Parent int `json:"parent"`
	Child  int `json:"child"`
}

// Edges lists the parent→child links in node order.
func Edges(trace *domain.Trace) []Edge {
	edges := make([]Edge, 0, len(trace.Nodes)-1)
	for _, node := range trace.Nodes {
		for _, child := range node.Children {
			edges = append(edges, Edge{Parent: node.ID, Child: child})
		}
	}
	return edges
}
