package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rendis/uiwire/internal/compute"
	"github.com/rendis/uiwire/pkg/protocol"
)

func runEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	lang := fs.String("lang", "", "expression language: cel, jq, or expr (default: cel)")
	dataFlag := fs.String("data", "", "data model as inline JSON or @file")
	surfaceFlag := fs.String("surface", "", "surface metadata as inline JSON or @file")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: uiwire eval [flags] <expression>")
		os.Exit(2)
	}
	expression := fs.Arg(0)

	data, err := decodeScopeArg(*dataFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: data: %v\n", err)
		os.Exit(2)
	}
	surface, err := decodeScopeArg(*surfaceFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: surface: %v\n", err)
		os.Exit(2)
	}

	evaluator, err := compute.NewEvaluator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	value, err := evaluator.Evaluate(context.Background(),
		protocol.Expr{Source: expression, Lang: *lang},
		compute.Scope{Data: data, Surface: surface})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := json.Marshal(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: result is not JSON-encodable: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// decodeScopeArg reads a scope map from inline JSON or, with a leading
// @, from a file. Numbers decode as float64 so all three engines can
// do arithmetic on them.
func decodeScopeArg(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	blob := []byte(raw)
	if strings.HasPrefix(raw, "@") {
		var err error
		blob, err = os.ReadFile(raw[1:])
		if err != nil {
			return nil, err
		}
	}
	var m map[string]any
	if err := json.Unmarshal(blob, &m); err != nil {
		return nil, fmt.Errorf("not a JSON object: %w", err)
	}
	return m, nil
}
