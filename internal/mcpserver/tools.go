package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/mgraile/augur/pkg/analyzer/cohesion"
	"github.com/mgraile/augur/pkg/analyzer/complexity"
	"github.com/mgraile/augur/pkg/analyzer/cycles"
	"github.com/mgraile/augur/pkg/analyzer/engine"
	"github.com/mgraile/augur/pkg/analyzer/entity"
	"github.com/mgraile/augur/pkg/codegraph"
)

// SnapshotInput is the base input for all analysis tools.
type SnapshotInput struct {
	Snapshot string `json:"snapshot" jsonschema:"Path to the code graph snapshot JSON file."`
}

// AnalyzeSnapshotInput adds the engine level.
type AnalyzeSnapshotInput struct {
	SnapshotInput
	Level string `json:"level,omitempty" jsonschema:"Analysis level: basic, comprehensive, or deep. Default comprehensive."`
}

func loadSnapshot(input SnapshotInput) (*codegraph.Snapshot, error) {
	return codegraph.Load(input.Snapshot)
}

func toolResult(data any) (*mcp.CallToolResult, any, error) {
	text, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(text)},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

func handleAnalyzeSnapshot(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeSnapshotInput) (*mcp.CallToolResult, any, error) {
	snap, err := loadSnapshot(input.SnapshotInput)
	if err != nil {
		return toolError(err.Error())
	}

	level, err := engine.ParseLevel(input.Level)
	if err != nil {
		return toolError(err.Error())
	}
	if input.Level == "" {
		level = engine.LevelComprehensive
	}

	eng, err := engine.New(snap)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(eng.Analyze(ctx, level))
}

func handleCodebaseSummary(ctx context.Context, req *mcp.CallToolRequest, input SnapshotInput) (*mcp.CallToolResult, any, error) {
	snap, err := loadSnapshot(input)
	if err != nil {
		return toolError(err.Error())
	}

	calc, err := entity.NewCalculator(snap)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(calc.Summary())
}

func handleDetectCycles(ctx context.Context, req *mcp.CallToolRequest, input SnapshotInput) (*mcp.CallToolResult, any, error) {
	snap, err := loadSnapshot(input)
	if err != nil {
		return toolError(err.Error())
	}

	result, err := cycles.New().Analyze(ctx, snap)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result)
}

func handleAnalyzeComplexity(ctx context.Context, req *mcp.CallToolRequest, input SnapshotInput) (*mcp.CallToolResult, any, error) {
	snap, err := loadSnapshot(input)
	if err != nil {
		return toolError(err.Error())
	}

	result, err := complexity.New().Analyze(ctx, snap)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result)
}

func handleAnalyzeCohesion(ctx context.Context, req *mcp.CallToolRequest, input SnapshotInput) (*mcp.CallToolResult, any, error) {
	snap, err := loadSnapshot(input)
	if err != nil {
		return toolError(err.Error())
	}

	result, err := cohesion.New().Analyze(ctx, snap)
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(result)
}
