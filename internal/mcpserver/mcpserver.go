// Package mcpserver exposes augur analyses as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers all augur analysis tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all augur tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "augur",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_snapshot",
		Description: "Run unified analysis over a code graph snapshot at basic, comprehensive, or deep level. Returns counts, complexity distributions, architecture layers, insights, and recommendations depending on level.",
	}, handleAnalyzeSnapshot)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "codebase_summary",
		Description: "Compute codebase-wide entity metrics: complexity and maintainability averages, documentation and test coverage, dead code percentage, technical debt, health score, and grade.",
	}, handleCodebaseSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "detect_cycles",
		Description: "Detect circular import dependencies between files. Cycles mixing static and dynamic imports on the same file pair are flagged as problematic.",
	}, handleDetectCycles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_complexity",
		Description: "Compute cyclomatic complexity, cognitive complexity, maintainability index, and Halstead metrics per function and file.",
	}, handleAnalyzeComplexity)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_cohesion",
		Description: "Compute class cohesion, external coupling, and file-level afferent/efferent coupling with instability.",
	}, handleAnalyzeCohesion)
}
