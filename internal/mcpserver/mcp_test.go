package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TestServerCreation verifies the MCP server can be created without panicking.
func TestServerCreation(t *testing.T) {
	server := NewServer("1.0.0-test")
	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
	if server.server == nil {
		t.Fatal("NewServer().server is nil")
	}
}

// TestServerCreationEmptyVersion verifies empty version defaults to "dev".
func TestServerCreationEmptyVersion(t *testing.T) {
	if server := NewServer(""); server == nil {
		t.Fatal("NewServer(\"\") returned nil")
	}
}

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	data := `{
  "files": [
    {"path": "app.py", "source": "import core\n"},
    {"path": "core.py", "source": "x = 1\n"}
  ],
  "functions": [
    {"name": "run", "filepath": "app.py", "source": "def run():\n    pass\n"}
  ],
  "imports": [
    {"from_file": "app.py", "to_file": "core.py", "module": "core"}
  ]
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHandleAnalyzeSnapshot(t *testing.T) {
	path := writeSnapshot(t)

	result, _, err := handleAnalyzeSnapshot(context.Background(), nil, AnalyzeSnapshotInput{
		SnapshotInput: SnapshotInput{Snapshot: path},
		Level:         "basic",
	})
	if err != nil {
		t.Fatalf("handleAnalyzeSnapshot failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("handleAnalyzeSnapshot returned tool error: %+v", result.Content)
	}
	if len(result.Content) == 0 {
		t.Fatal("handleAnalyzeSnapshot returned no content")
	}
}

func TestHandleAnalyzeSnapshot_BadLevel(t *testing.T) {
	path := writeSnapshot(t)

	result, _, err := handleAnalyzeSnapshot(context.Background(), nil, AnalyzeSnapshotInput{
		SnapshotInput: SnapshotInput{Snapshot: path},
		Level:         "bogus",
	})
	if err != nil {
		t.Fatalf("handleAnalyzeSnapshot failed: %v", err)
	}
	if !result.IsError {
		t.Error("handleAnalyzeSnapshot should flag an unknown level as a tool error")
	}
}

func TestHandleCodebaseSummary(t *testing.T) {
	path := writeSnapshot(t)

	result, _, err := handleCodebaseSummary(context.Background(), nil, SnapshotInput{Snapshot: path})
	if err != nil {
		t.Fatalf("handleCodebaseSummary failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("handleCodebaseSummary returned tool error: %+v", result.Content)
	}
}

func TestHandleDetectCycles_MissingFile(t *testing.T) {
	result, _, err := handleDetectCycles(context.Background(), nil, SnapshotInput{
		Snapshot: filepath.Join(t.TempDir(), "missing.json"),
	})
	if err != nil {
		t.Fatalf("handleDetectCycles failed: %v", err)
	}
	if !result.IsError {
		t.Error("handleDetectCycles should report a missing snapshot as a tool error")
	}
}

func TestToolErrorPrefix(t *testing.T) {
	result, _, err := toolError("boom")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("toolError result should be flagged as an error")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("tool error content is %T, want *mcp.TextContent", result.Content[0])
	}
	if !strings.Contains(text.Text, "boom") {
		t.Errorf("tool error content missing message: %s", text.Text)
	}
}
