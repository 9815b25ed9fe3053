package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kayz/vidprompt/internal/catalog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newOptionsCommand() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List suggested camera, lighting and visual style values",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := catalog.Snapshot()
			switch strings.ToLower(strings.TrimSpace(outputFormat)) {
			case "", "text":
				fmt.Fprint(cmd.OutOrStdout(), formatOptionsText(snapshot))
			case "json":
				data, err := json.MarshalIndent(snapshot, "", "  ")
				if err != nil {
					return fmt.Errorf("encode options: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "yaml":
				data, err := yaml.Marshal(snapshot)
				if err != nil {
					return fmt.Errorf("encode options: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
			default:
				return fmt.Errorf("unsupported --output-format %q (use text, json or yaml)", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output-format", "o", "text", "Output format: text, json, yaml")
	return cmd
}

func formatOptionsText(o catalog.Options) string {
	var b strings.Builder
	writeList := func(title string, values []string) {
		b.WriteString(title + ":\n")
		for _, v := range values {
			b.WriteString("  - " + v + "\n")
		}
		b.WriteString("\n")
	}
	writeList("Camera Movements", o.CameraMovements)
	writeList("Camera Angles", o.CameraAngles)
	writeList("Lighting", o.Lighting)

	b.WriteString("Visual Styles:\n")
	for _, c := range o.VisualStyles {
		b.WriteString("  " + c.Name + ":\n")
		for _, s := range c.Styles {
			b.WriteString("    - " + s + "\n")
		}
	}
	b.WriteString("\nFormats: " + strings.Join(o.Formats, ", ") + "\n")
	return b.String()
}

func init() {
	rootCmd.AddCommand(newOptionsCommand())
}
