package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/kayz/vidprompt/internal/config"
	"github.com/kayz/vidprompt/internal/promptbuild"
	"github.com/mark3labs/mcp-go/mcp"
)

func TestToolsetSchema(t *testing.T) {
	entries := toolset(promptbuild.NewBuilder(config.RenderConfig{}))
	if len(entries) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(entries))
	}
	if entries[0].tool.Name != ToolRenderVideoPrompt || entries[1].tool.Name != ToolListPromptOptions {
		t.Fatalf("unexpected tool names: %q %q", entries[0].tool.Name, entries[1].tool.Name)
	}

	props := entries[0].tool.InputSchema.Properties
	for _, field := range append(promptbuild.Fields(), "format") {
		if _, ok := props[field]; !ok {
			t.Fatalf("render tool is missing %q", field)
		}
	}
	if len(entries[0].tool.InputSchema.Required) != 0 {
		t.Fatalf("all render arguments should be optional: %v", entries[0].tool.InputSchema.Required)
	}
}

func TestDescribeField(t *testing.T) {
	if got := describeField(promptbuild.FieldLighting); !strings.Contains(got, "Golden Hour") {
		t.Fatalf("expected lighting suggestions, got %q", got)
	}
	if got := describeField(promptbuild.FieldSubject); !strings.Contains(got, "golden retriever") {
		t.Fatalf("unexpected subject description %q", got)
	}
}

func TestToolHandlersRender(t *testing.T) {
	entries := toolset(promptbuild.NewBuilder(config.RenderConfig{DefaultFormat: "toon"}))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"visualStyle": "Anime"}
	result, err := entries[0].handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned unexpected error: %v", err)
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok || text.Text != "style: Anime" {
		t.Fatalf("unexpected result: %#v", result.Content)
	}
}

func TestNewServer(t *testing.T) {
	if s := NewServer("vidprompt", ServerVersion, promptbuild.NewBuilder(config.RenderConfig{})); s == nil {
		t.Fatalf("expected server")
	}
}
