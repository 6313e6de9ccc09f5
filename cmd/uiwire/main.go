package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rendis/uiwire/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "lint":
		runLint(args)
	case "tree":
		runTree(args)
	case "schema":
		runSchema(args)
	case "catalog":
		runCatalog(args)
	case "eval":
		runEval(args)
	case "mcp":
		runMCP(args)
	case "version", "-v", "--version":
		printVersion()
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		printUsage(os.Stderr)
		os.Exit(2)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `uiwire lints and inspects streaming UI protocol messages.

Usage:
  uiwire <command> [flags] [args]

Commands:
  lint      validate messages from files or stdin
  tree      render a component batch as a tree or Mermaid flowchart
  schema    print an embedded wire schema document
  catalog   list component kinds and their required fields
  eval      evaluate a computed-value expression against a data model
  mcp       serve the tooling over MCP stdio
  version   print the build version

Run "uiwire <command> -h" for command flags.
`)
}

// newLogger builds the CLI logger: slog text on stderr wrapped in the
// correlation handler so surface ids and message indexes attach from
// context.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	inner := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(logging.NewCorrelationHandler(inner))
}
