package cmd

import (
	"fmt"
	"os"

	"github.com/kayz/vidprompt/internal/promptbuild"
	"github.com/kayz/vidprompt/internal/tui"
	"github.com/spf13/cobra"
)

var (
	formRequestPath string
	formOutputPath  string
	formFormat      string
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill in a video prompt interactively with a live preview",
	Long: `Open the terminal form. Arrow keys move between fields and cycle options,
tab switches the preview format, ctrl+s inserts the Markdown prompt
(printed to stdout, or written to --output) and esc cancels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		builder := newBuilder(cfg)

		var initial promptbuild.PromptData
		if formRequestPath != "" {
			req, err := promptbuild.LoadRequest(formRequestPath)
			if err != nil {
				return fmt.Errorf("load request: %w", err)
			}
			initial = req.Data
		}

		format := builder.DefaultFormat()
		if formFormat != "" {
			format = promptbuild.Format(formFormat)
		}

		text, confirmed, err := tui.Run(initial, format, os.Stdin, os.Stderr)
		if err != nil {
			return fmt.Errorf("run form: %w", err)
		}
		if !confirmed {
			return nil
		}
		return writeOutput(cmd, formOutputPath, text)
	},
}

func init() {
	formCmd.Flags().StringVar(&formRequestPath, "request", "", "Pre-fill the form from a JSON or YAML request file")
	formCmd.Flags().StringVar(&formOutputPath, "output", "", "Write the inserted prompt to file (default: stdout)")
	formCmd.Flags().StringVar(&formFormat, "format", "", "Initial preview format: markdown, toon, json")
	rootCmd.AddCommand(formCmd)
}
