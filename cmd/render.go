package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/kayz/vidprompt/internal/logger"
	"github.com/kayz/vidprompt/internal/promptbuild"
	"github.com/kayz/vidprompt/internal/tui"
	"github.com/spf13/cobra"
)

// fieldFlags maps CLI flags onto PromptData fields.
var fieldFlags = []struct {
	field string
	flag  string
	usage string
}{
	{promptbuild.FieldSubject, "subject", "The entity or character in the scene"},
	{promptbuild.FieldAction, "action", "What the subject is doing"},
	{promptbuild.FieldLocation, "location", "The setting"},
	{promptbuild.FieldCameraMovement, "camera-movement", "Camera movement, e.g. \"Dolly In\""},
	{promptbuild.FieldCameraAngle, "camera-angle", "Camera angle, e.g. \"Low Angle\""},
	{promptbuild.FieldLighting, "lighting", "Lighting, e.g. \"Golden Hour\""},
	{promptbuild.FieldAtmosphere, "atmosphere", "Soundscape description"},
	{promptbuild.FieldVisualStyle, "visual-style", "Visual style, e.g. \"Cinematic\""},
}

type renderOptions struct {
	requestPath string
	outputPath  string
	format      string
	all         bool
	fields      map[string]*string
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{fields: make(map[string]*string, len(fieldFlags))}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a video prompt as markdown, toon or json",
		Example: `  vidprompt render --subject "A golden retriever puppy" --camera-movement "Dolly In"
  vidprompt render --request scene.yaml --format json
  vidprompt render --request scene.json --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.requestPath, "request", "", "Path to a JSON or YAML request file ({format, data})")
	cmd.Flags().StringVar(&opts.outputPath, "output", "", "Write output to file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: markdown, toon, json (default from config)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Render every format")
	for _, ff := range fieldFlags {
		opts.fields[ff.field] = cmd.Flags().String(ff.flag, "", ff.usage)
	}
	return cmd
}

// buildRequest merges the request file with explicitly set flags.
func buildRequest(cmd *cobra.Command, opts *renderOptions) (promptbuild.RenderRequest, error) {
	var req promptbuild.RenderRequest
	if opts.requestPath != "" {
		loaded, err := promptbuild.LoadRequest(opts.requestPath)
		if err != nil {
			return req, fmt.Errorf("load request: %w", err)
		}
		req = loaded
	}
	for _, ff := range fieldFlags {
		if cmd.Flags().Changed(ff.flag) {
			req.Data.Set(ff.field, *opts.fields[ff.field])
		}
	}
	if cmd.Flags().Changed("format") {
		req.Format = promptbuild.Format(opts.format)
	}
	if req.Format != "" {
		if _, ok := promptbuild.ParseFormat(string(req.Format)); !ok {
			logger.Warn("Unknown format %q, rendering markdown", req.Format)
		}
	}
	return req, nil
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	builder := newBuilder(loadConfig())

	req, err := buildRequest(cmd, opts)
	if err != nil {
		return err
	}
	if req.Data.IsEmpty() {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.EmptyPreview)
	}

	var out string
	if opts.all {
		parts := make([]string, 0, len(promptbuild.Formats()))
		for _, f := range promptbuild.Formats() {
			res := builder.Build(promptbuild.RenderRequest{Format: f, Data: req.Data})
			parts = append(parts, fmt.Sprintf("== %s ==\n%s", strings.ToUpper(string(f)), res.Output))
		}
		out = strings.Join(parts, "\n\n")
	} else {
		out = builder.Build(req).Output
	}

	return writeOutput(cmd, opts.outputPath, out)
}

func writeOutput(cmd *cobra.Command, path, out string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("Wrote prompt to %s", path)
	return nil
}

func init() {
	rootCmd.AddCommand(newRenderCommand())
}
