package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kayz/vidprompt/internal/logger"
	"github.com/kayz/vidprompt/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve prompt rendering as MCP tools over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing:
  render_video_prompt   render the scene fields as markdown, toon or json
  list_prompt_options   list suggested camera, lighting and style values

Logs go to stderr so the protocol stream stays clean.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		name := cfg.MCP.Name
		if name == "" {
			name = "vidprompt"
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s := mcp.NewServer(name, mcp.ServerVersion, newBuilder(cfg))
		logger.Info("MCP server %s %s ready on stdio", name, mcp.ServerVersion)
		if err := mcp.Serve(ctx, s, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
