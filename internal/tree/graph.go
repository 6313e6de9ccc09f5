// Package tree builds and inspects the reference graph of a component
// batch: which components point at which, whether the root convention
// holds, and whether references dangle or cycle. It backs the CLI tree
// command and the MCP tree tool; validation never depends on it.
//
// The builder reads wire-decoded prop shapes (string ids, []any child
// lists, map tab items). Anything else is skipped rather than reported;
// shape problems are the validator's job.
package tree

import (
	"github.com/rendis/uiwire/pkg/protocol"
)

// Node is one component in the reference graph.
type Node struct {
	ID   string
	Kind string
}

// Edge is one parent→child reference. Label names the carrying field
// for scalar references (child, trigger, content) and the tab title for
// tab references; entries of a children array carry no label.
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is the reference graph of one updateComponents batch. Nodes and
// Edges keep document order.
type Graph struct {
	Version protocol.Version
	Nodes   []Node
	Edges   []Edge

	// Duplicates lists ids defined more than once, in first-collision
	// order. The first definition wins everywhere else.
	Duplicates []string

	index    map[string]int
	children map[string][]string
}

// Build constructs the reference graph of components. The version
// selects which field names carry references (tabs vs tabItems,
// trigger/content vs entryPointChild/contentChild); when the canonical
// name is absent the other revision's name is read instead, so
// mixed-revision payloads still produce a usable graph.
func Build(components []protocol.Component, version protocol.Version) *Graph {
	version = version.Normalize()
	g := &Graph{
		Version:  version,
		index:    make(map[string]int, len(components)),
		children: make(map[string][]string, len(components)),
	}

	dupSeen := make(map[string]bool)
	for _, c := range components {
		if c.ID == "" {
			continue // anonymous entries cannot be referenced or drawn
		}
		if _, exists := g.index[c.ID]; exists {
			if !dupSeen[c.ID] {
				dupSeen[c.ID] = true
				g.Duplicates = append(g.Duplicates, c.ID)
			}
			continue
		}
		g.index[c.ID] = len(g.Nodes)
		g.Nodes = append(g.Nodes, Node{ID: c.ID, Kind: c.Kind})

		for _, e := range componentEdges(c, version == protocol.Version01) {
			g.Edges = append(g.Edges, e)
			g.children[e.From] = append(g.children[e.From], e.To)
		}
	}
	return g
}

// Node returns the first-defined node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// Contains reports whether the batch defines a component with this id.
func (g *Graph) Contains(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Children returns the ids the component references, in document order,
// repeats included. The targets are not necessarily defined.
func (g *Graph) Children(id string) []string {
	return g.children[id]
}

// componentEdges extracts the outgoing references of one component.
func componentEdges(c protocol.Component, legacy bool) []Edge {
	var edges []Edge

	switch c.Kind {
	case protocol.KindRow, protocol.KindColumn, protocol.KindList:
		if items, ok := c.Props["children"].([]any); ok {
			for _, item := range items {
				if id, ok := item.(string); ok && id != "" {
					edges = append(edges, Edge{From: c.ID, To: id})
				}
			}
		}

	case protocol.KindCard, protocol.KindButton:
		edges = appendScalarEdge(edges, c, "child")

	case protocol.KindModal:
		edges = appendScalarEdge(edges, c, presentName(c, legacy, "trigger", "entryPointChild"))
		edges = appendScalarEdge(edges, c, presentName(c, legacy, "content", "contentChild"))

	case protocol.KindTabs:
		prop := presentName(c, legacy, "tabs", "tabItems")
		items, ok := c.Props[prop].([]any)
		if !ok {
			break
		}
		for _, item := range items {
			tab, ok := item.(map[string]any)
			if !ok {
				continue
			}
			child, ok := tab["child"].(string)
			if !ok || child == "" {
				continue
			}
			label := "tab"
			if title, ok := tab["title"].(string); ok && title != "" {
				label = title
			}
			edges = append(edges, Edge{From: c.ID, To: child, Label: label})
		}
	}

	return edges
}

// appendScalarEdge adds an edge for a single-id reference field when it
// holds a non-empty string.
func appendScalarEdge(edges []Edge, c protocol.Component, prop string) []Edge {
	if id, ok := c.Props[prop].(string); ok && id != "" {
		edges = append(edges, Edge{From: c.ID, To: id, Label: prop})
	}
	return edges
}

// presentName picks the revision-canonical field name, falling back to
// the other revision's name when the canonical one is absent.
func presentName(c protocol.Component, legacy bool, modern, old string) string {
	primary, fallback := modern, old
	if legacy {
		primary, fallback = old, modern
	}
	if _, ok := c.Props[primary]; ok {
		return primary
	}
	if _, ok := c.Props[fallback]; ok {
		return fallback
	}
	return primary
}
