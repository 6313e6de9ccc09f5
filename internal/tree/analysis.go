package tree

import (
	"sort"

	"github.com/rendis/uiwire/pkg/protocol"
)

// DanglingRef is a reference to an id the batch never defines.
type DanglingRef struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Report is the outcome of analyzing a reference graph.
type Report struct {
	// Root is the id of the root-convention node, "" when the batch has
	// none.
	Root string `json:"root"`

	// Duplicates lists ids defined more than once.
	Duplicates []string `json:"duplicates,omitempty"`

	// Dangling lists references whose target the batch never defines,
	// in document order.
	Dangling []DanglingRef `json:"dangling,omitempty"`

	// CycleNodes lists ids trapped in or behind a reference cycle,
	// sorted.
	CycleNodes []string `json:"cycleNodes,omitempty"`

	// Unreachable lists ids the root cannot reach, sorted. Empty when
	// the batch has no root node or contains a cycle.
	Unreachable []string `json:"unreachable,omitempty"`
}

// Clean reports whether the graph has none of the findings.
func (r Report) Clean() bool {
	return len(r.Duplicates) == 0 &&
		len(r.Dangling) == 0 &&
		len(r.CycleNodes) == 0 &&
		len(r.Unreachable) == 0
}

// Analyze inspects a reference graph for duplicate definitions,
// dangling references, cycles (Kahn's algorithm), and components the
// root cannot reach (BFS). A cycle suppresses reachability analysis
// since reachability is ill-defined on a cyclic graph.
func Analyze(g *Graph) Report {
	report := Report{Duplicates: g.Duplicates}

	if g.Contains(protocol.RootComponentID) {
		report.Root = protocol.RootComponentID
	}

	for _, e := range g.Edges {
		if !g.Contains(e.To) {
			report.Dangling = append(report.Dangling, DanglingRef{From: e.From, To: e.To})
		}
	}

	// Adjacency over defined targets only, deduplicated per parent so
	// repeated children count one incoming edge.
	out := make(map[string][]string, len(g.Nodes))
	inDegree := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		inDegree[n.ID] = 0
	}
	for _, n := range g.Nodes {
		seen := make(map[string]bool)
		for _, child := range g.children[n.ID] {
			if !g.Contains(child) || seen[child] {
				continue
			}
			seen[child] = true
			out[n.ID] = append(out[n.ID], child)
			inDegree[child]++
		}
	}

	// Kahn's algorithm: whatever never reaches degree zero is on or
	// behind a cycle.
	queue := make([]string, 0, len(g.Nodes))
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	visited := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visited++
		for _, child := range out[node] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if visited != len(g.Nodes) {
		for id, deg := range inDegree {
			if deg > 0 {
				report.CycleNodes = append(report.CycleNodes, id)
			}
		}
		sort.Strings(report.CycleNodes)
		return report
	}

	if report.Root == "" {
		return report
	}

	reachable := map[string]bool{report.Root: true}
	bfs := []string{report.Root}
	for len(bfs) > 0 {
		node := bfs[0]
		bfs = bfs[1:]
		for _, child := range out[node] {
			if !reachable[child] {
				reachable[child] = true
				bfs = append(bfs, child)
			}
		}
	}

	for _, n := range g.Nodes {
		if !reachable[n.ID] {
			report.Unreachable = append(report.Unreachable, n.ID)
		}
	}
	sort.Strings(report.Unreachable)

	return report
}
