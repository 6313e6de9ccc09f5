package tree

import (
	"fmt"
	"strings"

	"github.com/rendis/uiwire/pkg/protocol"
)

// RenderText renders the graph as an indented tree, one component per
// line. The root-convention node comes first, followed by any other
// unreferenced component as its own top-level tree. References to
// undefined ids render with a missing marker; back references on the
// current path are cut with a cycle marker instead of recursing.
func RenderText(g *Graph) string {
	var b strings.Builder
	for i, id := range textRoots(g) {
		if i > 0 {
			b.WriteString("\n")
		}
		renderSubtree(&b, g, id, "", "", map[string]bool{})
	}
	return b.String()
}

// textRoots picks the top-level lines: the root node when defined, then
// every unreferenced component in document order. A batch where every
// component is referenced (a pure cycle) falls back to its first
// component so the output is never empty.
func textRoots(g *Graph) []string {
	referenced := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		referenced[e.To] = true
	}

	var roots []string
	if g.Contains(protocol.RootComponentID) {
		roots = append(roots, protocol.RootComponentID)
	}
	for _, n := range g.Nodes {
		if n.ID != protocol.RootComponentID && !referenced[n.ID] {
			roots = append(roots, n.ID)
		}
	}
	if len(roots) == 0 && len(g.Nodes) > 0 {
		roots = append(roots, g.Nodes[0].ID)
	}
	return roots
}

// renderSubtree writes the line for id and recurses into its children.
// prefix carries ancestor indentation; connector is "├── ", "└── ", or
// "" for a top-level line. onPath holds the ids of the current descent.
func renderSubtree(b *strings.Builder, g *Graph, id, prefix, connector string, onPath map[string]bool) {
	label := textLabel(g, id)
	if onPath[id] {
		b.WriteString(prefix + connector + label + " (cycle)\n")
		return
	}
	b.WriteString(prefix + connector + label + "\n")

	children := g.Children(id)
	if len(children) == 0 {
		return
	}

	onPath[id] = true
	childPrefix := prefix
	switch connector {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}
	for i, child := range children {
		conn := "├── "
		if i == len(children)-1 {
			conn = "└── "
		}
		renderSubtree(b, g, child, childPrefix, conn, onPath)
	}
	delete(onPath, id)
}

// textLabel formats one line of the text tree.
func textLabel(g *Graph, id string) string {
	node, ok := g.Node(id)
	if !ok {
		return id + " (missing)"
	}
	kind := node.Kind
	if kind == "" {
		kind = "?"
	}
	return fmt.Sprintf("%s [%s]", id, kind)
}

// RenderMermaid renders the graph as a Mermaid flowchart. Containers
// draw as subroutine boxes, interactive components as stadiums, content
// as plain boxes, and the root node as a circle. Undefined reference
// targets get dashed marker nodes.
func RenderMermaid(g *Graph) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	for _, node := range g.Nodes {
		b.WriteString(fmt.Sprintf("    %s\n", mermaidNodeDef(node)))
	}

	var missing []string
	seenMissing := make(map[string]bool)
	for _, e := range g.Edges {
		if !g.Contains(e.To) && !seenMissing[e.To] {
			seenMissing[e.To] = true
			missing = append(missing, e.To)
		}
	}
	for _, id := range missing {
		b.WriteString(fmt.Sprintf("    %s[%q]\n", mermaidSafeID(id), id+" (missing)"))
	}

	for _, e := range g.Edges {
		label := ""
		if e.Label != "" {
			label = fmt.Sprintf("|%s|", e.Label)
		}
		b.WriteString(fmt.Sprintf("    %s -->%s %s\n",
			mermaidSafeID(e.From), label, mermaidSafeID(e.To)))
	}

	if len(missing) > 0 {
		b.WriteString("\n")
		b.WriteString("    classDef missing fill:#8b1a1a,stroke:#5c0e0e,color:#fff,stroke-dasharray:5 5\n")
		for _, id := range missing {
			b.WriteString(fmt.Sprintf("    class %s missing\n", mermaidSafeID(id)))
		}
	}

	return b.String()
}

// mermaidNodeDef returns a node definition with a shape matching the
// component's role.
func mermaidNodeDef(node Node) string {
	id := mermaidSafeID(node.ID)
	label := node.ID
	if node.Kind != "" {
		label = node.Kind + ": " + node.ID
	}

	switch {
	case node.ID == protocol.RootComponentID:
		return fmt.Sprintf("%s((%q))", id, label)
	case isContainerKind(node.Kind):
		return fmt.Sprintf("%s[[%q]]", id, label)
	case isInteractiveKind(node.Kind):
		return fmt.Sprintf("%s([%q])", id, label)
	default:
		return fmt.Sprintf("%s[%q]", id, label)
	}
}

// mermaidSafeID converts a component id to a Mermaid-safe identifier.
func mermaidSafeID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", " ", "_")
	return r.Replace(id)
}

func isContainerKind(kind string) bool {
	switch kind {
	case protocol.KindRow, protocol.KindColumn, protocol.KindList,
		protocol.KindCard, protocol.KindTabs, protocol.KindModal:
		return true
	}
	return false
}

func isInteractiveKind(kind string) bool {
	switch kind {
	case protocol.KindButton, protocol.KindCheckBox, protocol.KindTextField,
		protocol.KindDateTimeInput, protocol.KindChoicePicker, protocol.KindSlider:
		return true
	}
	return false
}
