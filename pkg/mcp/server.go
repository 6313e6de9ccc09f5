package mcp

import (
	"context"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rendis/uiwire/internal/compute"
	"github.com/rendis/uiwire/pkg/catalog"
	"github.com/rendis/uiwire/pkg/protocol"
	"github.com/rendis/uiwire/pkg/validate"
)

// UIWireServerDeps holds the dependencies for creating a UIWireServer.
// Nil fields fall back to defaults: the standard catalog, a fresh
// expression evaluator, and a text logger on stderr.
type UIWireServerDeps struct {
	Catalog   *catalog.Catalog
	Evaluator *compute.Evaluator
	Logger    *slog.Logger
}

// UIWireServer wraps an MCP server with the protocol tooling: message
// validation, catalog and schema introspection, component-tree
// analysis, and computed-value preview.
type UIWireServer struct {
	catalog   *catalog.Catalog
	evaluator *compute.Evaluator
	schemas   map[protocol.Version]*validate.SchemaValidator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewUIWireServer creates a new UIWireServer with all 5 tools
// registered. The wire schemas for both protocol revisions are
// compiled here so conformance calls never pay compilation cost.
func NewUIWireServer(deps UIWireServerDeps) (*UIWireServer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	cat := deps.Catalog
	if cat == nil {
		cat = catalog.Standard()
	}

	eval := deps.Evaluator
	if eval == nil {
		var err error
		eval, err = compute.NewEvaluator()
		if err != nil {
			return nil, err
		}
	}

	schemas := make(map[protocol.Version]*validate.SchemaValidator, 2)
	for _, v := range []protocol.Version{protocol.Version01, protocol.Version02} {
		sv, err := validate.NewSchemaValidator(v)
		if err != nil {
			return nil, err
		}
		schemas[v] = sv
	}

	s := &UIWireServer{
		catalog:   cat,
		evaluator: eval,
		schemas:   schemas,
		logger:    logger,
	}

	mcpSrv := server.NewMCPServer(
		"uiwire",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions("uiwire validates streaming UI protocol messages. Use uiwire.validate to lint messages, uiwire.catalog to list component kinds and their required fields, uiwire.schema to fetch a wire schema document, uiwire.tree to analyze and render a component tree, and uiwire.eval to preview a computed-value expression against a data model."),
	)

	mcpSrv.AddTools(s.tools()...)
	s.mcpServer = mcpSrv
	return s, nil
}

// Serve starts the stdio transport and blocks until ctx is cancelled or stdin closes.
func (s *UIWireServer) Serve(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcpServer)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

// MCPServer returns the underlying MCPServer for testing or custom transports.
func (s *UIWireServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// tools returns the 5 registered MCP tools as ServerTool entries.
func (s *UIWireServer) tools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: validateTool(), Handler: s.handleValidate},
		{Tool: catalogTool(), Handler: s.handleCatalog},
		{Tool: schemaTool(), Handler: s.handleSchema},
		{Tool: treeTool(), Handler: s.handleTree},
		{Tool: evalTool(), Handler: s.handleEval},
	}
}

// --- Tool definitions ---

func validateTool() mcp.Tool {
	return mcp.NewTool("uiwire.validate",
		mcp.WithDescription("Validate UI protocol messages and collect structured errors and warnings"),
		mcp.WithString("messages", mcp.Required(), mcp.Description("JSON text holding one message object or an array of messages")),
		mcp.WithString("version", mcp.Enum("0.1", "0.2"), mcp.Description("Protocol revision to validate against (default: 0.2)")),
		mcp.WithString("strict", mcp.Description("Enable catalog-convention warnings: true or false (default: false)")),
		mcp.WithString("allowed_components", mcp.Description("Comma-separated component kinds exempt from the unknown-type warning in strict mode")),
		mcp.WithString("conformance", mcp.Description("Also run the JSON Schema path and wrap the output as {result, conformance}: true or false (default: false)")),
	)
}

func catalogTool() mcp.Tool {
	return mcp.NewTool("uiwire.catalog",
		mcp.WithDescription("List component kinds and their required fields"),
		mcp.WithString("version", mcp.Enum("0.1", "0.2"), mcp.Description("Protocol revision to resolve required fields for (default: 0.2)")),
		mcp.WithString("kind", mcp.Description("Return the definition of one component kind instead of the whole catalog")),
	)
}

func schemaTool() mcp.Tool {
	return mcp.NewTool("uiwire.schema",
		mcp.WithDescription("Return an embedded wire schema document (JSON Schema Draft 2020-12)"),
		mcp.WithString("envelope", mcp.Enum("server", "client"), mcp.Description("Schema to return: server (agent-to-client messages) or client (client-to-agent events). Default: server")),
		mcp.WithString("version", mcp.Enum("0.1", "0.2"), mcp.Description("Protocol revision of the server schema (default: 0.2; ignored for client)")),
	)
}

func treeTool() mcp.Tool {
	return mcp.NewTool("uiwire.tree",
		mcp.WithDescription("Analyze a component batch's reference graph and render it as an indented tree or a Mermaid flowchart"),
		mcp.WithString("components", mcp.Required(), mcp.Description("JSON array of component objects, as carried by updateComponents")),
		mcp.WithString("version", mcp.Enum("0.1", "0.2"), mcp.Description("Protocol revision for child-reference property names (default: 0.2)")),
		mcp.WithString("format", mcp.Enum("text", "mermaid"), mcp.Description("Rendering format (default: text)")),
	)
}

func evalTool() mcp.Tool {
	return mcp.NewTool("uiwire.eval",
		mcp.WithDescription("Evaluate a computed-value expression against a data model and return the result"),
		mcp.WithString("expr", mcp.Required(), mcp.Description("Expression source text")),
		mcp.WithString("lang", mcp.Enum("cel", "jq", "expr"), mcp.Description("Expression language (default: cel)")),
		mcp.WithObject("data", mcp.Description("Data model the expression sees as the 'data' variable")),
		mcp.WithObject("surface", mcp.Description("Surface metadata the expression sees as the 'surface' variable")),
	)
}
