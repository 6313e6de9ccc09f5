package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rendis/uiwire/internal/tree"
	"github.com/rendis/uiwire/pkg/protocol"
)

func runTree(args []string) {
	cfg := loadConfig()

	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	format := fs.String("format", "text", "rendering format: text or mermaid")
	verFlag := fs.String("version", cfg.Version, "protocol revision for child-reference names: 0.1 or 0.2 (default: 0.2)")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	if *format != "text" && *format != "mermaid" {
		fmt.Fprintln(os.Stderr, "Error: format must be text or mermaid")
		os.Exit(2)
	}
	ver := protocol.Version(*verFlag)
	if *verFlag != "" && !ver.Known() {
		fmt.Fprintf(os.Stderr, "Error: unsupported protocol version %q (supported: 0.1, 0.2)\n", *verFlag)
		os.Exit(2)
	}

	input := "-"
	if fs.NArg() > 0 {
		input = fs.Arg(0)
	}
	data, name, err := readInput(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	comps, err := decodeComponents(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
		os.Exit(1)
	}

	g := tree.Build(comps, ver)
	report := tree.Analyze(g)

	if *format == "mermaid" {
		fmt.Print(tree.RenderMermaid(g))
	} else {
		fmt.Print(tree.RenderText(g))
	}

	// Findings go to stderr so the rendering stays pipeable.
	printTreeFindings(os.Stderr, report)
}

// decodeComponents accepts either a bare component array or a single
// updateComponents envelope.
func decodeComponents(data []byte) ([]protocol.Component, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var comps []protocol.Component
		if err := json.Unmarshal(trimmed, &comps); err != nil {
			return nil, fmt.Errorf("input is not a component array: %w", err)
		}
		return comps, nil
	}

	var msg protocol.Message
	if err := json.Unmarshal(trimmed, &msg); err != nil {
		return nil, fmt.Errorf("input is not a component array or a message: %w", err)
	}
	if msg.UpdateComponents == nil {
		return nil, fmt.Errorf("message carries no updateComponents payload")
	}
	return msg.UpdateComponents.Components, nil
}

func printTreeFindings(w io.Writer, report tree.Report) {
	for _, id := range report.Duplicates {
		fmt.Fprintf(w, "warning: duplicate component id %q\n", id)
	}
	for _, ref := range report.Dangling {
		fmt.Fprintf(w, "warning: %s references undefined component %q\n", ref.From, ref.To)
	}
	if len(report.CycleNodes) > 0 {
		fmt.Fprintf(w, "warning: reference cycle through %s\n", strings.Join(report.CycleNodes, ", "))
	}
	for _, id := range report.Unreachable {
		fmt.Fprintf(w, "warning: %q is unreachable from root\n", id)
	}
	if report.Root == "" {
		fmt.Fprintf(w, "warning: batch has no %q component\n", protocol.RootComponentID)
	}
}
