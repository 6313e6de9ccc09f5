package main

import (
	"strings"
	"testing"

	"github.com/rendis/uiwire/internal/session"
	"github.com/rendis/uiwire/pkg/protocol"
	"github.com/rendis/uiwire/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Document mode ---

func TestLintDocumentValid(t *testing.T) {
	opts := lintOptions{Format: "text", Workers: 2}
	report := lintBytes("in.json",
		[]byte(`{"createSurface": {"surfaceId": "main", "catalogId": "standard"}}`),
		opts, nil)

	assert.Equal(t, "in.json", report.Input)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.Nil(t, report.Conformance)
}

func TestLintDocumentBatchInvalid(t *testing.T) {
	input := `[
		{"createSurface": {"surfaceId": "main", "catalogId": "standard"}},
		{"deleteSurface": {}}
	]`

	report := lintBytes("batch.json", []byte(input), lintOptions{Workers: 4}, nil)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, protocol.CodeMissingSurfaceID, report.Errors[0].Code)
	assert.Equal(t, "messages[1].deleteSurface.surfaceId", report.Errors[0].Path)
}

func TestLintDocumentMalformed(t *testing.T) {
	report := lintBytes("bad.json", []byte("{oops"), lintOptions{}, nil)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, protocol.CodeInvalidMessageType, report.Errors[0].Code)
}

func TestLintConformanceFlipsValidity(t *testing.T) {
	sv, err := validate.NewSchemaValidator(protocol.Version02)
	require.NoError(t, err)

	// A stray envelope key passes the permissive path but fails the
	// schema path; the report reflects both.
	input := `{"createSurface": {"surfaceId": "main", "catalogId": "standard"}, "stray": 1}`
	report := lintBytes("in.json", []byte(input), lintOptions{Conformance: true}, sv)

	assert.Empty(t, report.Errors)
	require.NotNil(t, report.Conformance)
	assert.False(t, report.Conformance.Valid)
	assert.False(t, report.Valid)
}

// --- Stream mode ---

func TestLintStreamLifecycle(t *testing.T) {
	input := strings.Join([]string{
		`{"createSurface": {"surfaceId": "main", "catalogId": "standard"}}`,
		``,
		`{"updateDataModel": {"surfaceId": "main", "path": "/user", "op": "replace", "value": {"name": "x"}}}`,
		`{"deleteSurface": {"surfaceId": "main"}}`,
		`{"updateDataModel": {"surfaceId": "main", "path": "/user", "op": "replace", "value": 1}}`,
	}, "\n")

	result := lintStream([]byte(input), validate.Options{})
	assert.True(t, result.Valid())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, session.CodeUnknownSurface, result.Warnings[0].Code)
	assert.Equal(t, "messages[3].updateDataModel.surfaceId", result.Warnings[0].Path)
}

func TestLintStreamBadLineHoldsPosition(t *testing.T) {
	input := strings.Join([]string{
		`{not json`,
		`{"createSurface": {"surfaceId": "a", "catalogId": "c"}}`,
		`{"createSurface": {"surfaceId": "a", "catalogId": "c"}}`,
	}, "\n")

	result := lintStream([]byte(input), validate.Options{})
	assert.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "messages[0]", result.Errors[0].Path)
	assert.Equal(t, protocol.CodeInvalidMessageType, result.Errors[0].Code)

	// The repeated create lands at the position after the bad line.
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, session.CodeSurfaceAlreadyExists, result.Warnings[0].Code)
	assert.Equal(t, "messages[2].createSurface.surfaceId", result.Warnings[0].Path)
}

func TestDecodeStreamDocs(t *testing.T) {
	docs := decodeStreamDocs([]byte("{\"a\": 1}\n\nnot json\n[1, 2]\n"))
	require.Len(t, docs, 3)
	assert.Equal(t, map[string]any{"a": float64(1)}, docs[0])
	assert.Nil(t, docs[1])
	assert.Equal(t, []any{float64(1), float64(2)}, docs[2])
}

// --- Text output ---

func TestFormatReportText(t *testing.T) {
	report := lintReport{
		Input: "ui.json",
		Valid: false,
		Errors: []protocol.Issue{{
			Path:     "createSurface.surfaceId",
			Code:     protocol.CodeMissingSurfaceID,
			Message:  "surfaceId is missing or empty",
			Severity: protocol.SeverityError,
		}},
		Warnings: []protocol.Issue{{
			Path:     "createSurface.theme.primaryColor",
			Code:     protocol.CodeInvalidPrimaryColor,
			Message:  "primaryColor must be a #RRGGBB string",
			Severity: protocol.SeverityWarning,
		}},
	}

	out := formatReportText(report)
	assert.Contains(t, out, "ui.json: invalid (1 error, 1 warning)")
	assert.Contains(t, out, "  error [MISSING_SURFACE_ID] createSurface.surfaceId: surfaceId is missing or empty")
	assert.Contains(t, out, "  warning [INVALID_PRIMARY_COLOR]")
}

func TestFormatReportTextValid(t *testing.T) {
	out := formatReportText(lintReport{Input: "stdin", Valid: true})
	assert.Equal(t, "stdin: valid\n", out)
}

func TestFormatReportTextSchemaSection(t *testing.T) {
	report := lintReport{
		Input: "in.json",
		Valid: false,
		Conformance: &validate.SchemaResult{
			Valid:  false,
			Errors: []validate.SchemaIssue{{Path: "/", Message: "additional properties not allowed"}},
		},
	}

	out := formatReportText(report)
	assert.Contains(t, out, "  schema: 1 violation")
	assert.Contains(t, out, "    /: additional properties not allowed")
}

// --- Small helpers ---

func TestCountNoun(t *testing.T) {
	assert.Equal(t, "1 error", countNoun(1, "error"))
	assert.Equal(t, "0 errors", countNoun(0, "error"))
	assert.Equal(t, "3 warnings", countNoun(3, "warning"))
}

func TestSplitKinds(t *testing.T) {
	assert.Nil(t, splitKinds(""))
	assert.Equal(t, []string{"Blink"}, splitKinds("Blink"))
	assert.Equal(t, []string{"Blink", "Marquee"}, splitKinds(" Blink , Marquee ,"))
}
