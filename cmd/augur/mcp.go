package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mgraile/augur/internal/mcpserver"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes augur's analyzers
as tools that LLMs can invoke against code graph snapshots.

To use with an MCP client, add to your config:
  {
    "mcpServers": {
      "augur": {
        "command": "augur",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - analyze_snapshot    Unified analysis at basic/comprehensive/deep level
  - codebase_summary    Entity metrics, health score, and grade
  - detect_cycles       Circular import dependencies
  - analyze_complexity  Cyclomatic, cognitive, and Halstead metrics
  - analyze_cohesion    Class cohesion and file coupling`,
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	server := mcpserver.NewServer(version)
	return server.Run(context.Background())
}
