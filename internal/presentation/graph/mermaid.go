package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Overlay selects a playback position to visualize on the tree: node
// coloring is derived from the trace's PhaseAt, never from mutating nodes.
type Overlay struct {
	// EventIndex is the highest applied event sequence number.
	// Use -1 for "nothing has run yet".
	EventIndex int
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a trace's
// call tree. Node shapes carry semantics:
// - Root call: ((Circle))
// - Leaf call (n=1): [/Parallelogram/]
// - Inner call: [Rectangle]
// If an overlay is provided, completed and active calls get phase styles.
func GenerateMermaid(trace *domain.Trace, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range trace.Nodes {
		id := mermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.Parent < 0:
			opener, closer = "((", "))" // Circle
		case node.Disks == 1:
			opener, closer = "[/", "/]" // Parallelogram
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, NodeLabel(node), closer))

		for _, child := range node.Children {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, mermaidID(child)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Phase Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef completed fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for _, node := range trace.Nodes {
			switch trace.PhaseAt(node.ID, overlay.EventIndex) {
			case domain.PhaseCompleted:
				sb.WriteString(fmt.Sprintf("    class %s completed;\n", mermaidID(node.ID)))
			case domain.PhaseActive:
				sb.WriteString(fmt.Sprintf("    class %s active;\n", mermaidID(node.ID)))
			}
		}
	}

	return sb.String()
}

// NodeLabel renders the call parameters, e.g. "n=3 A→C (aux B)".
func NodeLabel(node domain.CallNode) string {
	return fmt.Sprintf("n=%d %s→%s (aux %s)", node.Disks, node.From, node.To, node.Aux)
}

func mermaidID(id int) string {
	return fmt.Sprintf("call%d", id)
}
