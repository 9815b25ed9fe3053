package promptbuild

import (
	"fmt"
	"strings"
	"unicode"
)

const markdownTitle = "# Video Prompt"

// RenderMarkdown renders data as a Markdown document. Values are written
// verbatim; Markdown metacharacters are not escaped.
func RenderMarkdown(data PromptData) string {
	lines := []string{markdownTitle + "\n"}

	groups := data.Groups()
	for i, g := range groups {
		lines = append(lines, "## "+g.Title)
		for _, e := range g.Entries {
			lines = append(lines, fmt.Sprintf("- **%s:** %s", e.Label, e.Value))
		}
		if i < len(groups)-1 {
			lines = append(lines, "")
		}
	}

	return strings.TrimFunc(strings.Join(lines, "\n"), isTrimSpace)
}

// isTrimSpace matches the whitespace set stripped by JavaScript's trim():
// Unicode white space and line terminators plus the BOM, but not NEL.
func isTrimSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return unicode.IsSpace(r) && r != '\u0085'
}
