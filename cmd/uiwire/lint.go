package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rendis/uiwire/internal/session"
	"github.com/rendis/uiwire/pkg/protocol"
	"github.com/rendis/uiwire/pkg/validate"
)

// lintOptions bundles the validation options with the CLI-only knobs.
type lintOptions struct {
	validate.Options
	Format      string
	Conformance bool
	Stream      bool
	Workers     int
}

// lintReport is the outcome for one input. Valid reflects everything
// the caller asked for: the permissive path, and the schema path when
// conformance was requested.
type lintReport struct {
	Input       string                 `json:"input"`
	Valid       bool                   `json:"valid"`
	Errors      []protocol.Issue       `json:"errors"`
	Warnings    []protocol.Issue       `json:"warnings"`
	Conformance *validate.SchemaResult `json:"conformance,omitempty"`
}

func runLint(args []string) {
	cfg := loadConfig()

	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	strict := fs.Bool("strict", cfg.Strict, "enable catalog-convention warnings")
	verFlag := fs.String("version", cfg.Version, "protocol revision to validate against: 0.1 or 0.2 (default: 0.2)")
	allow := fs.String("allow", "", "comma-separated component kinds exempt from the unknown-type warning")
	format := fs.String("format", cfg.Format, "output format: text or json")
	conformance := fs.Bool("conformance", false, "also run the JSON Schema path")
	stream := fs.Bool("stream", false, "treat each input line as one message (JSON Lines) and lint surface lifecycle")
	workers := fs.Int("workers", cfg.Workers, "parallel validation workers for message arrays")
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

	opts := lintOptions{
		Options: validate.Options{
			Strict:            *strict,
			AllowedComponents: splitKinds(*allow),
			Version:           ver,
		},
		Format:      *format,
		Conformance: *conformance,
		Stream:      *stream,
		Workers:     *workers,
	}

	var sv *validate.SchemaValidator
	if opts.Conformance {
		var err error
		sv, err = validate.NewSchemaValidator(ver)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger := newLogger(cfg.LogLevel)

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	exit := 0
	for _, input := range inputs {
		data, name, err := readInput(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exit = 1
			continue
		}

		report := lintBytes(name, data, opts, sv)
		if !report.Valid {
			exit = 1
		}
		logger.Debug("input linted",
			"input", name,
			"valid", report.Valid,
			"errors", len(report.Errors),
			"warnings", len(report.Warnings))

		if opts.Format == "json" {
			line, marshalErr := json.Marshal(report)
			if marshalErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", marshalErr)
				exit = 1
				continue
			}
			fmt.Println(string(line))
		} else {
			fmt.Print(formatReportText(report))
		}
	}
	os.Exit(exit)
}

// readInput loads one input; "-" means stdin.
func readInput(path string) ([]byte, string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin", err
	}
	data, err := os.ReadFile(path)
	return data, path, err
}

// lintBytes runs the requested checks over one input's bytes.
func lintBytes(name string, data []byte, opts lintOptions, sv *validate.SchemaValidator) lintReport {
	var result *protocol.Result
	if opts.Stream {
		result = lintStream(data, opts.Options)
	} else {
		result = lintDocument(data, opts.Options, opts.Workers)
	}

	report := lintReport{
		Input:    name,
		Valid:    result.Valid(),
		Errors:   result.Errors,
		Warnings: result.Warnings,
	}
	if report.Errors == nil {
		report.Errors = []protocol.Issue{}
	}
	if report.Warnings == nil {
		report.Warnings = []protocol.Issue{}
	}

	if sv != nil {
		sr := runConformanceBytes(data, opts.Stream, sv)
		report.Conformance = &sr
		if !sr.Valid {
			report.Valid = false
		}
	}
	return report
}

// lintDocument validates a whole-document input: a message array fans
// out over the worker pool, anything else validates as one message.
func lintDocument(data []byte, opts validate.Options, workers int) *protocol.Result {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		result := &protocol.Result{}
		result.AddError("", protocol.CodeInvalidMessageType, "input is not valid JSON")
		return result
	}
	if msgs, isArray := v.([]any); isArray {
		return validate.ValidateMessagesConcurrent(msgs, opts, workers)
	}
	return validate.ValidateMessage(v, opts)
}

// lintStream validates one JSON Lines message per line and layers the
// surface-lifecycle lint on top. Blank lines are skipped; a line that
// fails to decode still consumes a stream position so issue paths stay
// aligned with line order.
func lintStream(data []byte, opts validate.Options) *protocol.Result {
	result := &protocol.Result{}
	tracker := session.NewTracker()

	idx := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(line))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			result.AddError(fmt.Sprintf("messages[%d]", idx),
				protocol.CodeInvalidMessageType, "line is not valid JSON")
			tracker.Observe(protocol.Message{})
			idx++
			continue
		}

		r := validate.ValidateMessage(v, opts)
		r.Prefix(fmt.Sprintf("messages[%d]", idx))
		result.Merge(r)

		var msg protocol.Message
		_ = json.Unmarshal(line, &msg)
		for _, issue := range tracker.Observe(msg) {
			result.AddWarning(issue.Path, issue.Code, issue.Message)
		}
		idx++
	}
	if err := scanner.Err(); err != nil {
		result.AddError("", protocol.CodeInvalidMessageType,
			"input is not readable line-by-line: "+err.Error())
	}
	return result
}

// runConformanceBytes pushes the raw input through the schema path.
func runConformanceBytes(data []byte, stream bool, sv *validate.SchemaValidator) validate.SchemaResult {
	if stream {
		return sv.ValidateServerMessages(decodeStreamDocs(data))
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return validate.SchemaResult{
			Errors: []validate.SchemaIssue{{Path: "/", Message: "input is not valid JSON"}},
		}
	}
	if msgs, isArray := v.([]any); isArray {
		return sv.ValidateServerMessages(msgs)
	}
	return sv.ValidateServerMessage(v)
}

// decodeStreamDocs decodes JSON Lines into one document per line.
// Undecodable lines become null entries so they hold their position
// and surface as schema violations.
func decodeStreamDocs(data []byte) []any {
	var docs []any
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var v any
		if err := json.Unmarshal(line, &v); err != nil {
			docs = append(docs, nil)
			continue
		}
		docs = append(docs, v)
	}
	return docs
}

// formatReportText renders one report the way a compiler prints
// diagnostics: a summary line, then one line per finding.
func formatReportText(r lintReport) string {
	var b strings.Builder

	switch {
	case r.Valid && len(r.Warnings) == 0:
		fmt.Fprintf(&b, "%s: valid\n", r.Input)
	case r.Valid:
		fmt.Fprintf(&b, "%s: valid (%s)\n", r.Input, countNoun(len(r.Warnings), "warning"))
	default:
		fmt.Fprintf(&b, "%s: invalid (%s, %s)\n", r.Input,
			countNoun(len(r.Errors), "error"), countNoun(len(r.Warnings), "warning"))
	}

	for _, issue := range r.Errors {
		b.WriteString(formatIssueLine("error", issue))
	}
	for _, issue := range r.Warnings {
		b.WriteString(formatIssueLine("warning", issue))
	}

	if r.Conformance != nil && !r.Conformance.Valid {
		fmt.Fprintf(&b, "  schema: %s\n", countNoun(len(r.Conformance.Errors), "violation"))
		for _, issue := range r.Conformance.Errors {
			fmt.Fprintf(&b, "    %s: %s\n", issue.Path, issue.Message)
		}
	}
	return b.String()
}

func formatIssueLine(severity string, issue protocol.Issue) string {
	if issue.Path == "" {
		return fmt.Sprintf("  %s [%s] %s\n", severity, issue.Code, issue.Message)
	}
	return fmt.Sprintf("  %s [%s] %s: %s\n", severity, issue.Code, issue.Path, issue.Message)
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// splitKinds parses a comma-separated kind list.
func splitKinds(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
