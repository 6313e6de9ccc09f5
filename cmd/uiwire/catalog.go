package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rendis/uiwire/pkg/catalog"
	"github.com/rendis/uiwire/pkg/protocol"
)

func runCatalog(args []string) {
	cfg := loadConfig()

	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	verFlag := fs.String("version", cfg.Version, "protocol revision for required fields: 0.1 or 0.2 (default: 0.2)")
	kind := fs.String("kind", "", "show one component kind")
	format := fs.String("format", "text", "output format: text or json")
	defs := fs.String("definitions", "", "load kind definitions from a JSON file instead of the standard catalog")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	if *format != "text" && *format != "json" {
		fmt.Fprintln(os.Stderr, "Error: format must be text or json")
		os.Exit(2)
	}
	ver := protocol.Version(*verFlag)
	if *verFlag != "" && !ver.Known() {
		fmt.Fprintf(os.Stderr, "Error: unsupported protocol version %q (supported: 0.1, 0.2)\n", *verFlag)
		os.Exit(2)
	}
	ver = ver.Normalize()

	cat := catalog.Standard()
	if *defs != "" {
		data, err := os.ReadFile(*defs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cat, err = catalog.Load(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	type entry struct {
		Kind     string   `json:"kind"`
		Required []string `json:"required"`
	}

	var entries []entry
	if *kind != "" {
		def, ok := cat.Definition(*kind)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown component kind %q\n", *kind)
			os.Exit(1)
		}
		entries = append(entries, entry{Kind: def.Kind, Required: requiredList(def.RequiredFor(ver))})
	} else {
		for _, k := range cat.Kinds() {
			def, ok := cat.Definition(k)
			if !ok {
				continue
			}
			entries = append(entries, entry{Kind: def.Kind, Required: requiredList(def.RequiredFor(ver))})
		}
	}

	if *format == "json" {
		out, err := json.MarshalIndent(map[string]any{
			"version":    ver,
			"components": entries,
		}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "KIND\tREQUIRED (revision %s)\n", ver)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Kind, strings.Join(e.Required, ", "))
	}
	tw.Flush()
}

// requiredList keeps required-field lists as arrays, never null.
func requiredList(fields []string) []string {
	if fields == nil {
		return []string{}
	}
	return fields
}
