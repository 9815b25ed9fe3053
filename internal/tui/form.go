// Package tui implements the interactive terminal form for building a video
// prompt with a live preview.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kayz/vidprompt/internal/catalog"
	"github.com/kayz/vidprompt/internal/promptbuild"
)

// EmptyPreview is shown instead of the render while every field is blank.
const EmptyPreview = "Fill in the form to generate a prompt..."

type fieldKind int

const (
	textField fieldKind = iota
	choiceField
	categoryField
)

type formField struct {
	key         string // promptbuild field name; empty for the style category
	label       string
	section     string
	kind        fieldKind
	placeholder string
}

var formFields = []formField{
	{key: promptbuild.FieldSubject, label: "Subject *", section: "Core Content", kind: textField, placeholder: "e.g., A golden retriever puppy"},
	{key: promptbuild.FieldAction, label: "Action *", section: "Core Content", kind: textField, placeholder: "e.g., running through a meadow"},
	{key: promptbuild.FieldLocation, label: "Location *", section: "Core Content", kind: textField, placeholder: "e.g., sunlit countryside field"},
	{key: promptbuild.FieldCameraMovement, label: "Camera Movement", section: "Cinematics", kind: choiceField, placeholder: "Select movement"},
	{key: promptbuild.FieldCameraAngle, label: "Camera Angle", section: "Cinematics", kind: choiceField, placeholder: "Select angle"},
	{key: promptbuild.FieldLighting, label: "Lighting", section: "Cinematics", kind: choiceField, placeholder: "Select lighting"},
	{label: "Style Category", section: "Visual Style", kind: categoryField, placeholder: "Select category"},
	{key: promptbuild.FieldVisualStyle, label: "Style", section: "Visual Style", kind: choiceField, placeholder: "Select style"},
	{key: promptbuild.FieldAtmosphere, label: "Atmosphere", section: "Audio", kind: textField, placeholder: "e.g., Birds chirping, gentle breeze, distant laughter"},
}

// Model is the bubbletea model for the form. Every edit changes exactly one
// field of the underlying PromptData.
type Model struct {
	data      promptbuild.PromptData
	category  string
	inputs    []textinput.Model
	cursor    int
	format    promptbuild.Format
	keys      keyMap
	result    string
	confirmed bool
	width     int
}

// New creates a form pre-filled with initial, previewing in format.
func New(initial promptbuild.PromptData, format promptbuild.Format) Model {
	f, _ := promptbuild.ParseFormat(string(format))
	m := Model{
		data:   initial,
		format: f,
		keys:   newKeyMap(),
		inputs: make([]textinput.Model, len(formFields)),
	}
	if cat, ok := catalog.CategoryOf(initial.VisualStyle); ok {
		m.category = cat
	}
	for i, field := range formFields {
		if field.kind != textField {
			continue
		}
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.CharLimit = 0
		ti.Width = 50
		ti.SetValue(initial.Get(field.key))
		m.inputs[i] = ti
	}
	m.focus(0)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			return m.confirm()
		case key.Matches(msg, m.keys.Enter):
			if m.cursor == len(formFields)-1 {
				return m.confirm()
			}
			m.focus(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.focus(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.focus(m.cursor - 1)
			return m, nil
		case key.Matches(msg, m.keys.Format):
			m.format = nextFormat(m.format)
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		}

		field := formFields[m.cursor]
		if field.kind != textField {
			switch {
			case key.Matches(msg, m.keys.Left):
				m.cycle(-1)
			case key.Matches(msg, m.keys.Right):
				m.cycle(1)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
		m.data.Set(field.key, m.inputs[m.cursor].Value())
		return m, cmd
	}

	if formFields[m.cursor].kind == textField {
		var cmd tea.Cmd
		m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
		return m, cmd
	}
	return m, nil
}

// focus moves the cursor to field i (wrapping) and focuses its text input.
func (m *Model) focus(i int) {
	n := len(formFields)
	i = ((i % n) + n) % n
	for j := range m.inputs {
		if formFields[j].kind == textField {
			m.inputs[j].Blur()
		}
	}
	m.cursor = i
	if formFields[i].kind == textField {
		m.inputs[i].Focus()
	}
}

func (m *Model) cycle(delta int) {
	field := formFields[m.cursor]
	choices := append([]string{""}, m.optionsFor(field)...)
	idx := 0
	current := m.valueOf(field)
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(choices)) % len(choices)
	m.setValue(field, choices[idx])
}

func (m *Model) optionsFor(field formField) []string {
	switch {
	case field.kind == categoryField:
		return catalog.Categories()
	case field.key == promptbuild.FieldVisualStyle:
		return catalog.StylesFor(m.category)
	default:
		return catalog.OptionsFor(field.key)
	}
}

func (m *Model) valueOf(field formField) string {
	if field.kind == categoryField {
		return m.category
	}
	return m.data.Get(field.key)
}

func (m *Model) setValue(field formField, value string) {
	if field.kind == categoryField {
		m.category = value
		return
	}
	m.data.Set(field.key, value)
}

func (m *Model) reset() {
	m.data = promptbuild.PromptData{}
	m.category = ""
	for i, field := range formFields {
		if field.kind == textField {
			m.inputs[i].SetValue("")
		}
	}
	m.focus(0)
}

// confirm records the Markdown render, which is what gets inserted.
func (m Model) confirm() (tea.Model, tea.Cmd) {
	m.result = promptbuild.Render(m.data, promptbuild.FormatMarkdown)
	m.confirmed = true
	return m, tea.Quit
}

func nextFormat(f promptbuild.Format) promptbuild.Format {
	formats := promptbuild.Formats()
	for i, candidate := range formats {
		if candidate == f {
			return formats[(i+1)%len(formats)]
		}
	}
	return formats[0]
}

// Data returns the current form contents.
func (m Model) Data() promptbuild.PromptData { return m.data }

// Format returns the preview format.
func (m Model) Format() promptbuild.Format { return m.format }

// Result returns the inserted text and whether the form was confirmed.
func (m Model) Result() (string, bool) { return m.result, m.confirmed }

// Preview returns what the preview pane currently shows.
func (m Model) Preview() string {
	if m.data.IsEmpty() {
		return EmptyPreview
	}
	return promptbuild.Render(m.data, m.format)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Video Prompt Generator"))
	b.WriteString("\n")

	section := ""
	for i, field := range formFields {
		if field.section != section {
			section = field.section
			b.WriteString("\n")
			b.WriteString(titleStyle.Render(section))
			b.WriteString("\n")
		}
		label := labelStyle.Render(field.label)
		marker := "  "
		if i == m.cursor {
			label = focusedStyle.Render(field.label)
			marker = "> "
		}
		b.WriteString(marker + label + " " + m.fieldView(i, field) + "\n")
	}

	b.WriteString("\n")
	var tabs []string
	for _, f := range promptbuild.Formats() {
		style := tabStyle
		if f == m.format {
			style = activeTab
		}
		tabs = append(tabs, style.Render(strings.ToUpper(string(f))))
	}
	b.WriteString(titleStyle.Render("Generated Prompt") + "  " + strings.Join(tabs, " "))
	b.WriteString("\n")

	preview := previewStyle
	if m.width > 4 {
		preview = preview.Width(m.width - 4)
	}
	b.WriteString(preview.Render(m.Preview()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(helpLine(m.keys)))
	return b.String()
}

func (m Model) fieldView(i int, field formField) string {
	if field.kind == textField {
		return m.inputs[i].View()
	}
	value := m.valueOf(field)
	if value == "" {
		value = mutedStyle.Render(field.placeholder)
	}
	if field.key == promptbuild.FieldVisualStyle && m.category == "" && m.data.VisualStyle == "" {
		value = mutedStyle.Render("Select a category first")
	}
	return "‹ " + value + " ›"
}

func helpLine(k keyMap) string {
	var parts []string
	for _, binding := range k.help() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Run shows the form on out and blocks until it is confirmed or cancelled.
// The returned text is empty when the user cancelled.
func Run(initial promptbuild.PromptData, format promptbuild.Format, in io.Reader, out io.Writer) (string, bool, error) {
	p := tea.NewProgram(New(initial, format), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	m, ok := final.(Model)
	if !ok {
		return "", false, nil
	}
	text, confirmed := m.Result()
	return text, confirmed, nil
}
