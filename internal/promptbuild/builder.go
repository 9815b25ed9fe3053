package promptbuild

import (
	"github.com/kayz/vidprompt/internal/config"
	"github.com/kayz/vidprompt/internal/logger"
)

// Format selects an output renderer.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatTOON     Format = "toon"
	FormatJSON     Format = "json"
)

// Formats lists the recognised formats in the order the preview offers them.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatTOON, FormatJSON}
}

// ParseFormat reports whether s is exactly one of the recognised format
// names. Matching is case-sensitive; anything else maps to Markdown.
func ParseFormat(s string) (Format, bool) {
	f := Format(s)
	switch f {
	case FormatMarkdown, FormatTOON, FormatJSON:
		return f, true
	default:
		return FormatMarkdown, false
	}
}

// Render dispatches to the renderer for format. Unrecognised values render
// Markdown.
func Render(data PromptData, format Format) string {
	switch format {
	case FormatMarkdown:
		return RenderMarkdown(data)
	case FormatTOON:
		return RenderTOON(data)
	case FormatJSON:
		return RenderJSON(data)
	default:
		return RenderMarkdown(data)
	}
}

// Builder resolves the requested format against configured defaults before
// dispatching. It holds no per-request state and is safe for concurrent use.
type Builder struct {
	cfg config.RenderConfig
}

// NewBuilder creates a new Builder from config.
func NewBuilder(cfg config.RenderConfig) *Builder {
	return &Builder{cfg: cfg}
}

// DefaultFormat is the format used when a request leaves it blank.
func (b *Builder) DefaultFormat() Format {
	f, ok := ParseFormat(b.cfg.DefaultFormat)
	if !ok && b.cfg.DefaultFormat != "" {
		logger.Warn("Unknown default format %q in config, using markdown", b.cfg.DefaultFormat)
	}
	return f
}

// Build renders req and reports the format that was actually used.
func (b *Builder) Build(req RenderRequest) Result {
	format := b.resolveFormat(req.Format)
	return Result{
		Format: format,
		Output: Render(req.Data, format),
		Empty:  req.Data.IsEmpty(),
	}
}

func (b *Builder) resolveFormat(requested Format) Format {
	if requested == "" {
		return b.DefaultFormat()
	}
	f, ok := ParseFormat(string(requested))
	if !ok {
		logger.Debug("Unknown format %q, falling back to markdown", requested)
	}
	return f
}
