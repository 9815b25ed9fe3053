// Package mcp exposes prompt rendering as Model Context Protocol tools.
package mcp

import (
	"context"
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/kayz/vidprompt/internal/catalog"
	"github.com/kayz/vidprompt/internal/promptbuild"
	"github.com/kayz/vidprompt/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerVersion is reported to MCP clients and by the version command.
const ServerVersion = "0.3.0"

const (
	ToolRenderVideoPrompt = "render_video_prompt"
	ToolListPromptOptions = "list_prompt_options"
)

type toolEntry struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

var fieldDescriptions = map[string]string{
	promptbuild.FieldSubject:    "The entity or character in the scene, e.g. A golden retriever puppy",
	promptbuild.FieldAction:     "What the subject is doing, e.g. running through a meadow",
	promptbuild.FieldLocation:   "The setting, e.g. sunlit countryside field",
	promptbuild.FieldAtmosphere: "Soundscape description, e.g. Birds chirping, gentle breeze",
}

func toolset(builder *promptbuild.Builder) []toolEntry {
	pt := tools.NewPromptTools(builder)

	opts := []mcp.ToolOption{
		mcp.WithDescription("Render a structured video scene description as a text prompt (markdown, toon or json). All fields are optional."),
	}
	for _, field := range promptbuild.Fields() {
		opts = append(opts, mcp.WithString(field, mcp.Description(describeField(field))))
	}
	formats := make([]string, 0, 3)
	for _, f := range promptbuild.Formats() {
		formats = append(formats, string(f))
	}
	opts = append(opts, mcp.WithString("format",
		mcp.Description("Output format. Defaults to the configured default format."),
		mcp.Enum(formats...),
	))

	return []toolEntry{
		{tool: mcp.NewTool(ToolRenderVideoPrompt, opts...), handler: pt.Render},
		{
			tool:    mcp.NewTool(ToolListPromptOptions, mcp.WithDescription("List the suggested camera, lighting and visual style options.")),
			handler: pt.ListOptions,
		},
	}
}

func describeField(field string) string {
	if d, ok := fieldDescriptions[field]; ok {
		return d
	}
	if options := catalog.OptionsFor(field); len(options) > 0 {
		return "Suggested values: " + strings.Join(options, ", ") + ". Any text is accepted."
	}
	return field
}

// NewServer builds an MCP server with the prompt tools registered.
func NewServer(name, version string, builder *promptbuild.Builder) *server.MCPServer {
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(false))
	for _, t := range toolset(builder) {
		s.AddTool(t.tool, t.handler)
	}
	return s
}

// Serve runs s over the given stdio streams until ctx is done or in closes.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(stdlog.New(os.Stderr, "[MCP] ", stdlog.LstdFlags))
	return stdio.Listen(ctx, in, out)
}
