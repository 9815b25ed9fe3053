package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kayz/vidprompt/internal/catalog"
	"github.com/kayz/vidprompt/internal/debug"
	"github.com/kayz/vidprompt/internal/promptbuild"
	"github.com/mark3labs/mcp-go/mcp"
)

// PromptTools serves the prompt rendering tools over MCP.
type PromptTools struct {
	builder *promptbuild.Builder
}

func NewPromptTools(builder *promptbuild.Builder) *PromptTools {
	return &PromptTools{builder: builder}
}

// Render renders a video prompt from the eight scene fields and an optional
// format. Missing fields are treated as blank.
func (t *PromptTools) Render(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data promptbuild.PromptData
	for _, field := range promptbuild.Fields() {
		value, err := stringArg(req, field)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		data.Set(field, value)
	}

	format, err := stringArg(req, "format")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := t.builder.Build(promptbuild.RenderRequest{Format: promptbuild.Format(format), Data: data})
	debug.Log("render_video_prompt: format=%s empty=%v", res.Format, res.Empty)
	return mcp.NewToolResultText(res.Output), nil
}

// ListOptions returns the option catalog as JSON.
func (t *PromptTools) ListOptions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(catalog.Snapshot(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode options: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func stringArg(req mcp.CallToolRequest, name string) (string, error) {
	raw, ok := req.Params.Arguments[name]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return s, nil
}
