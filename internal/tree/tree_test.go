package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/uiwire/pkg/protocol"
)

// surfaceBatch is a small well-formed batch: a root column over a text,
// a card, and a button.
func surfaceBatch() []protocol.Component {
	return []protocol.Component{
		{ID: "root", Kind: protocol.KindColumn, Props: map[string]any{
			"children": []any{"title", "body", "cta"},
		}},
		{ID: "title", Kind: protocol.KindText, Props: map[string]any{"text": "Welcome"}},
		{ID: "body", Kind: protocol.KindCard, Props: map[string]any{"child": "bodyText"}},
		{ID: "bodyText", Kind: protocol.KindText, Props: map[string]any{
			"text": map[string]any{"path": "/greeting"},
		}},
		{ID: "cta", Kind: protocol.KindButton, Props: map[string]any{
			"child":  "ctaLabel",
			"action": map[string]any{"event": map[string]any{"name": "go"}},
		}},
		{ID: "ctaLabel", Kind: protocol.KindText, Props: map[string]any{"text": "Go"}},
	}
}

// --- Graph construction ---

func TestBuild_NodesAndEdges(t *testing.T) {
	g := Build(surfaceBatch(), protocol.Version02)

	assert.Len(t, g.Nodes, 6)
	assert.True(t, g.Contains("root"))
	assert.True(t, g.Contains("ctaLabel"))

	node, ok := g.Node("body")
	require.True(t, ok)
	assert.Equal(t, protocol.KindCard, node.Kind)

	assert.Equal(t, []string{"title", "body", "cta"}, g.Children("root"))
	assert.Equal(t, []string{"bodyText"}, g.Children("body"))
	assert.Equal(t, []string{"ctaLabel"}, g.Children("cta"))
	assert.Empty(t, g.Children("title"))

	assert.Contains(t, g.Edges, Edge{From: "root", To: "title"})
	assert.Contains(t, g.Edges, Edge{From: "body", To: "bodyText", Label: "child"})
	assert.Contains(t, g.Edges, Edge{From: "cta", To: "ctaLabel", Label: "child"})
}

func TestBuild_ModalAndTabs(t *testing.T) {
	components := []protocol.Component{
		{ID: "dialog", Kind: protocol.KindModal, Props: map[string]any{
			"trigger": "openBtn",
			"content": "dialogBody",
		}},
		{ID: "nav", Kind: protocol.KindTabs, Props: map[string]any{
			"tabs": []any{
				map[string]any{"title": "Home", "child": "homePane"},
				map[string]any{"title": map[string]any{"path": "/tab2/title"}, "child": "aboutPane"},
			},
		}},
	}

	g := Build(components, protocol.Version02)

	assert.Contains(t, g.Edges, Edge{From: "dialog", To: "openBtn", Label: "trigger"})
	assert.Contains(t, g.Edges, Edge{From: "dialog", To: "dialogBody", Label: "content"})
	assert.Contains(t, g.Edges, Edge{From: "nav", To: "homePane", Label: "Home"})
	// Non-string titles fall back to the generic tab label.
	assert.Contains(t, g.Edges, Edge{From: "nav", To: "aboutPane", Label: "tab"})
}

func TestBuild_LegacyFieldNames(t *testing.T) {
	components := []protocol.Component{
		{ID: "dialog", Kind: protocol.KindModal, Props: map[string]any{
			"entryPointChild": "openBtn",
			"contentChild":    "dialogBody",
		}},
		{ID: "nav", Kind: protocol.KindTabs, Props: map[string]any{
			"tabItems": []any{
				map[string]any{"title": "Home", "child": "homePane"},
			},
		}},
	}

	g := Build(components, protocol.Version01)

	assert.Contains(t, g.Edges, Edge{From: "dialog", To: "openBtn", Label: "entryPointChild"})
	assert.Contains(t, g.Edges, Edge{From: "dialog", To: "dialogBody", Label: "contentChild"})
	assert.Contains(t, g.Edges, Edge{From: "nav", To: "homePane", Label: "Home"})
}

func TestBuild_FieldNameFallback(t *testing.T) {
	// A 0.2 graph still picks up legacy names when the canonical ones
	// are absent, so mixed payloads stay drawable.
	components := []protocol.Component{
		{ID: "dialog", Kind: protocol.KindModal, Props: map[string]any{
			"entryPointChild": "openBtn",
			"contentChild":    "dialogBody",
		}},
	}

	g := Build(components, protocol.Version02)

	assert.Len(t, g.Edges, 2)
	assert.Equal(t, []string{"openBtn", "dialogBody"}, g.Children("dialog"))
}

func TestBuild_DuplicateIDs_FirstDefinitionWins(t *testing.T) {
	components := []protocol.Component{
		{ID: "x", Kind: protocol.KindText, Props: map[string]any{"text": "first"}},
		{ID: "x", Kind: protocol.KindCard, Props: map[string]any{"child": "y"}},
		{ID: "x", Kind: protocol.KindDivider, Props: map[string]any{}},
	}

	g := Build(components, protocol.Version02)

	assert.Len(t, g.Nodes, 1)
	assert.Equal(t, []string{"x"}, g.Duplicates, "each duplicated id reported once")

	node, _ := g.Node("x")
	assert.Equal(t, protocol.KindText, node.Kind)
	assert.Empty(t, g.Children("x"), "edges of later definitions are ignored")
}

func TestBuild_SkipsMalformedShapes(t *testing.T) {
	components := []protocol.Component{
		{ID: "", Kind: protocol.KindText, Props: map[string]any{"text": "anonymous"}},
		{ID: "row", Kind: protocol.KindRow, Props: map[string]any{"children": "not-an-array"}},
		{ID: "col", Kind: protocol.KindColumn, Props: map[string]any{
			"children": []any{"ok", 42, nil, ""},
		}},
		{ID: "card", Kind: protocol.KindCard, Props: map[string]any{"child": 7}},
	}

	g := Build(components, protocol.Version02)

	assert.Len(t, g.Nodes, 3, "anonymous entries are dropped")
	assert.Empty(t, g.Children("row"))
	assert.Equal(t, []string{"ok"}, g.Children("col"), "non-string entries are skipped")
	assert.Empty(t, g.Children("card"))
}

// --- Analysis ---

func TestAnalyze_CleanTree(t *testing.T) {
	report := Analyze(Build(surfaceBatch(), protocol.Version02))

	assert.True(t, report.Clean())
	assert.Equal(t, "root", report.Root)
	assert.Empty(t, report.Duplicates)
	assert.Empty(t, report.Dangling)
	assert.Empty(t, report.CycleNodes)
	assert.Empty(t, report.Unreachable)
}

func TestAnalyze_DanglingReference(t *testing.T) {
	components := append(surfaceBatch(), protocol.Component{
		ID: "extra", Kind: protocol.KindCard, Props: map[string]any{"child": "ghost"},
	})
	// Wire extra into the tree so dangling is the only finding besides
	// unreachability of nothing.
	components[0].Props["children"] = []any{"title", "body", "cta", "extra"}

	report := Analyze(Build(components, protocol.Version02))

	assert.False(t, report.Clean())
	assert.Equal(t, []DanglingRef{{From: "extra", To: "ghost"}}, report.Dangling)
	assert.Empty(t, report.CycleNodes)
	assert.Empty(t, report.Unreachable, "dangling targets are not unreachable nodes")
}

func TestAnalyze_Cycle(t *testing.T) {
	components := []protocol.Component{
		{ID: "root", Kind: protocol.KindColumn, Props: map[string]any{"children": []any{"a"}}},
		{ID: "a", Kind: protocol.KindCard, Props: map[string]any{"child": "b"}},
		{ID: "b", Kind: protocol.KindCard, Props: map[string]any{"child": "a"}},
	}

	report := Analyze(Build(components, protocol.Version02))

	assert.False(t, report.Clean())
	assert.Equal(t, []string{"a", "b"}, report.CycleNodes)
	assert.Empty(t, report.Unreachable, "reachability is suppressed on cyclic graphs")
}

func TestAnalyze_SelfReference(t *testing.T) {
	components := []protocol.Component{
		{ID: "ouroboros", Kind: protocol.KindCard, Props: map[string]any{"child": "ouroboros"}},
	}

	report := Analyze(Build(components, protocol.Version02))

	assert.Equal(t, []string{"ouroboros"}, report.CycleNodes)
}

func TestAnalyze_UnreachableFromRoot(t *testing.T) {
	components := append(surfaceBatch(),
		protocol.Component{ID: "orphan", Kind: protocol.KindText, Props: map[string]any{"text": "lost"}},
		protocol.Component{ID: "island", Kind: protocol.KindCard, Props: map[string]any{"child": "orphan"}},
	)

	report := Analyze(Build(components, protocol.Version02))

	assert.Equal(t, []string{"island", "orphan"}, report.Unreachable)
	assert.Empty(t, report.Dangling)
}

func TestAnalyze_NoRootNode(t *testing.T) {
	components := []protocol.Component{
		{ID: "a", Kind: protocol.KindText, Props: map[string]any{"text": "x"}},
		{ID: "b", Kind: protocol.KindText, Props: map[string]any{"text": "y"}},
	}

	report := Analyze(Build(components, protocol.Version02))

	assert.Equal(t, "", report.Root)
	assert.Empty(t, report.Unreachable, "no root means no reachability judgment")
	assert.True(t, report.Clean())
}

func TestAnalyze_RepeatedChildCountsOnce(t *testing.T) {
	components := []protocol.Component{
		{ID: "root", Kind: protocol.KindRow, Props: map[string]any{
			"children": []any{"twice", "twice"},
		}},
		{ID: "twice", Kind: protocol.KindText, Props: map[string]any{"text": "x"}},
	}

	report := Analyze(Build(components, protocol.Version02))

	assert.True(t, report.Clean())
}

// --- Text rendering ---

func TestRenderText_Tree(t *testing.T) {
	out := RenderText(Build(surfaceBatch(), protocol.Version02))

	want := "root [Column]\n" +
		"├── title [Text]\n" +
		"├── body [Card]\n" +
		"│   └── bodyText [Text]\n" +
		"└── cta [Button]\n" +
		"    └── ctaLabel [Text]\n"
	assert.Equal(t, want, out)
}

func TestRenderText_MissingTarget(t *testing.T) {
	components := []protocol.Component{
		{ID: "root", Kind: protocol.KindCard, Props: map[string]any{"child": "ghost"}},
	}

	out := RenderText(Build(components, protocol.Version02))

	assert.Contains(t, out, "ghost (missing)")
}

func TestRenderText_OrphanGetsOwnTree(t *testing.T) {
	components := append(surfaceBatch(), protocol.Component{
		ID: "orphan", Kind: protocol.KindText, Props: map[string]any{"text": "lost"},
	})

	out := RenderText(Build(components, protocol.Version02))

	assert.Contains(t, out, "\n\norphan [Text]\n")
}

func TestRenderText_CycleCut(t *testing.T) {
	components := []protocol.Component{
		{ID: "a", Kind: protocol.KindCard, Props: map[string]any{"child": "b"}},
		{ID: "b", Kind: protocol.KindCard, Props: map[string]any{"child": "a"}},
	}

	out := RenderText(Build(components, protocol.Version02))

	assert.Contains(t, out, "(cycle)")
}

// --- Mermaid rendering ---

func TestRenderMermaid_Shapes(t *testing.T) {
	out := RenderMermaid(Build(surfaceBatch(), protocol.Version02))

	assert.Contains(t, out, "graph TD")

	// Root draws as a circle, containers as subroutine boxes,
	// interactive components as stadiums, content as plain boxes.
	assert.Contains(t, out, `root((`)
	assert.Contains(t, out, `body[[`)
	assert.Contains(t, out, `cta([`)
	assert.Contains(t, out, `title["Text: title"]`)

	assert.Contains(t, out, "root --> title")
	assert.Contains(t, out, "body -->|child| bodyText")
}

func TestRenderMermaid_MissingTargets(t *testing.T) {
	components := []protocol.Component{
		{ID: "root", Kind: protocol.KindCard, Props: map[string]any{"child": "ghost"}},
	}

	out := RenderMermaid(Build(components, protocol.Version02))

	assert.Contains(t, out, `ghost["ghost (missing)"]`)
	assert.Contains(t, out, "classDef missing")
	assert.Contains(t, out, "class ghost missing")
}

func TestRenderMermaid_SafeIDs(t *testing.T) {
	components := []protocol.Component{
		{ID: "my-card", Kind: protocol.KindCard, Props: map[string]any{"child": "body.text"}},
		{ID: "body.text", Kind: protocol.KindText, Props: map[string]any{"text": "x"}},
	}

	out := RenderMermaid(Build(components, protocol.Version02))

	assert.Contains(t, out, "my_card -->|child| body_text")
}

func TestMermaidSafeID(t *testing.T) {
	assert.Equal(t, "a_b_c", mermaidSafeID("a.b.c"))
	assert.Equal(t, "my_card", mermaidSafeID("my-card"))
	assert.Equal(t, "simple", mermaidSafeID("simple"))
}
