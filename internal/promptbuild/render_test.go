package promptbuild

import (
	"encoding/json"
	"strings"
	"testing"
)

func puppyScene() PromptData {
	return PromptData{
		Subject:        "A golden retriever puppy",
		Action:         "running through a meadow",
		CameraMovement: "Dolly In",
		Lighting:       "Golden Hour",
		VisualStyle:    "Cinematic",
	}
}

func TestRenderMarkdownScenario(t *testing.T) {
	want := `# Video Prompt

## Scene
- **Subject:** A golden retriever puppy
- **Action:** running through a meadow

## Cinematics
- **Camera Movement:** Dolly In
- **Lighting:** Golden Hour

## Style
- **Visual Style:** Cinematic`

	got := RenderMarkdown(puppyScene())
	if got != want {
		t.Fatalf("unexpected markdown:\n%s\n--- want ---\n%s", got, want)
	}
	for _, absent := range []string{"Location", "Camera Angle", "## Audio"} {
		if strings.Contains(got, absent) {
			t.Fatalf("expected %q to be omitted, got:\n%s", absent, got)
		}
	}
}

func TestRenderMarkdownAllGroups(t *testing.T) {
	data := PromptData{
		Subject:        "a lighthouse keeper",
		Action:         "climbing the stairs",
		Location:       "a rocky island",
		CameraMovement: "Tilt Up",
		CameraAngle:    "Low Angle",
		Lighting:       "Blue Hour",
		Atmosphere:     "waves crashing, gulls",
		VisualStyle:    "Oil Painting",
	}
	want := `# Video Prompt

## Scene
- **Subject:** a lighthouse keeper
- **Action:** climbing the stairs
- **Location:** a rocky island

## Cinematics
- **Camera Movement:** Tilt Up
- **Camera Angle:** Low Angle
- **Lighting:** Blue Hour

## Style
- **Visual Style:** Oil Painting

## Audio
- **Atmosphere:** waves crashing, gulls`

	if got := RenderMarkdown(data); got != want {
		t.Fatalf("unexpected markdown:\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderMarkdownPassesValuesThrough(t *testing.T) {
	got := RenderMarkdown(PromptData{Subject: "*bold* _cat_ <b>"})
	if !strings.Contains(got, "- **Subject:** *bold* _cat_ <b>") {
		t.Fatalf("expected verbatim value, got:\n%s", got)
	}
}

func TestRenderTOONScenario(t *testing.T) {
	want := `context:
  subject: A golden retriever puppy
  action: running through a meadow
cinematics:
  movement: Dolly In
  lighting: Golden Hour
style: Cinematic`

	if got := RenderTOON(puppyScene()); got != want {
		t.Fatalf("unexpected toon:\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderTOONAudioOnly(t *testing.T) {
	want := "audio:\n  atmosphere: distant thunder"
	if got := RenderTOON(PromptData{Atmosphere: "distant thunder"}); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := RenderTOON(PromptData{Subject: "cat"}); strings.Contains(got, "audio") {
		t.Fatalf("empty atmosphere must not produce an audio key, got %q", got)
	}
}

func TestQuoteTOON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "plain text", want: "plain text"},
		{name: "empty", in: "", want: `""`},
		{name: "leading dash", in: "-leading-dash", want: `"-leading-dash"`},
		{name: "dashes only", in: "---", want: `"---"`},
		{name: "newline", in: "line1\nline2", want: `"line1\nline2"`},
		{name: "carriage return", in: "line1\rline2", want: `"line1\rline2"`},
		{name: "leading space", in: " padded", want: `" padded"`},
		{name: "trailing space", in: "padded ", want: `"padded "`},
		{name: "embedded quote", in: `say "hi"`, want: `"say \"hi\""`},
		{name: "inner dash", in: "slow-motion", want: "slow-motion"},
		{name: "numeric", in: "42", want: "42"},
		{name: "tab only", in: "a\tb", want: "a\tb"},
		{name: "html not escaped", in: "-a<b&c>", want: `"-a<b&c>"`},
		{name: "colon", in: "time: dusk", want: "time: dusk"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := quoteTOON(tc.in); got != tc.want {
				t.Fatalf("quoteTOON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRenderTOONQuotesNestedValues(t *testing.T) {
	got := RenderTOON(PromptData{Subject: "-dash", Action: "runs\nfast", VisualStyle: "Anime"})
	want := "context:\n  subject: \"-dash\"\n  action: \"runs\\nfast\"\nstyle: Anime"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderJSONScenario(t *testing.T) {
	want := `{
  "scene": {
    "subject": "A golden retriever puppy",
    "action": "running through a meadow"
  },
  "cinematics": {
    "movement": "Dolly In",
    "lighting": "Golden Hour"
  },
  "style": "Cinematic"
}`
	if got := RenderJSON(puppyScene()); got != want {
		t.Fatalf("unexpected json:\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderJSONDoesNotEscapeHTML(t *testing.T) {
	got := RenderJSON(PromptData{Subject: "cats & dogs <3"})
	if !strings.Contains(got, `"subject": "cats & dogs <3"`) {
		t.Fatalf("expected raw html characters, got:\n%s", got)
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	inputs := []PromptData{
		{},
		puppyScene(),
		{Atmosphere: "rain on a tin roof"},
		{CameraAngle: "Dutch Angle", Location: "alley"},
	}
	allowed := map[string]bool{"scene": true, "cinematics": true, "style": true, "audio": true}

	for _, data := range inputs {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(RenderJSON(data)), &parsed); err != nil {
			t.Fatalf("json output does not parse: %v", err)
		}
		present := make(map[string]bool)
		for _, g := range data.Groups() {
			present[string(g.ID)] = true
		}
		for k := range parsed {
			if !allowed[k] {
				t.Fatalf("unexpected key %q", k)
			}
			if !present[k] {
				t.Fatalf("key %q present without its group", k)
			}
		}
		if len(parsed) != len(present) {
			t.Fatalf("expected %d keys, got %d (%v)", len(present), len(parsed), parsed)
		}
	}
}

func TestEmptyDataRendering(t *testing.T) {
	var data PromptData
	if got := RenderMarkdown(data); got != "# Video Prompt" {
		t.Fatalf("markdown: got %q", got)
	}
	if got := RenderTOON(data); got != "" {
		t.Fatalf("toon: got %q", got)
	}
	if got := RenderJSON(data); got != "{}" {
		t.Fatalf("json: got %q", got)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	data := puppyScene()
	data.Atmosphere = "wind"
	for _, f := range Formats() {
		first := Render(data, f)
		for i := 0; i < 5; i++ {
			if got := Render(data, f); got != first {
				t.Fatalf("%s render changed between calls", f)
			}
		}
	}
}

func TestGroupInclusionIsMonotonic(t *testing.T) {
	tests := []struct {
		field   string
		heading string
		toonKey string
		jsonKey string
	}{
		{FieldSubject, "## Scene", "context:", `"scene"`},
		{FieldAction, "## Scene", "context:", `"scene"`},
		{FieldLocation, "## Scene", "context:", `"scene"`},
		{FieldCameraMovement, "## Cinematics", "cinematics:", `"cinematics"`},
		{FieldCameraAngle, "## Cinematics", "cinematics:", `"cinematics"`},
		{FieldLighting, "## Cinematics", "cinematics:", `"cinematics"`},
		{FieldVisualStyle, "## Style", "style:", `"style"`},
		{FieldAtmosphere, "## Audio", "audio:", `"audio"`},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			var data PromptData
			if strings.Contains(RenderMarkdown(data), tc.heading) ||
				strings.Contains(RenderTOON(data), tc.toonKey) ||
				strings.Contains(RenderJSON(data), tc.jsonKey) {
				t.Fatalf("group for %s present before the field was set", tc.field)
			}
			if !data.Set(tc.field, "value") {
				t.Fatalf("Set(%s) rejected a known field", tc.field)
			}
			if !strings.Contains(RenderMarkdown(data), tc.heading) {
				t.Fatalf("markdown missing %q", tc.heading)
			}
			if !strings.Contains(RenderTOON(data), tc.toonKey) {
				t.Fatalf("toon missing %q", tc.toonKey)
			}
			if !strings.Contains(RenderJSON(data), tc.jsonKey) {
				t.Fatalf("json missing %q", tc.jsonKey)
			}
		})
	}
}

func TestFieldOrderIsFormatIndependent(t *testing.T) {
	data := PromptData{
		Subject: "s", Action: "a", Location: "l",
		CameraMovement: "m", CameraAngle: "g", Lighting: "li",
	}
	check := func(name, out string, markers []string) {
		t.Helper()
		last := -1
		for _, marker := range markers {
			idx := strings.Index(out, marker)
			if idx <= last {
				t.Fatalf("%s: expected %q after previous marker in:\n%s", name, marker, out)
			}
			last = idx
		}
	}
	check("markdown", RenderMarkdown(data), []string{"Subject:", "Action:", "Location:", "Camera Movement:", "Camera Angle:", "Lighting:"})
	check("toon", RenderTOON(data), []string{"subject:", "action:", "location:", "movement:", "angle:", "lighting:"})
	check("json", RenderJSON(data), []string{`"subject"`, `"action"`, `"location"`, `"movement"`, `"angle"`, `"lighting"`})
}

func TestRenderFallsBackToMarkdown(t *testing.T) {
	data := puppyScene()
	want := Render(data, FormatMarkdown)
	for _, f := range []Format{"xml", "", "JSON", "yaml"} {
		if got := Render(data, f); got != want {
			t.Fatalf("Render(%q) should equal markdown output", f)
		}
	}
	if Render(data, FormatTOON) != RenderTOON(data) || Render(data, FormatJSON) != RenderJSON(data) {
		t.Fatalf("dispatcher picked the wrong renderer")
	}
}

func TestRenderJSONEscapesLineSeparators(t *testing.T) {
	got := RenderJSON(PromptData{VisualStyle: "a\u2028b\u2029c"})
	if got != "{\n  \"style\": \"a\\u2028b\\u2029c\"\n}" {
		t.Fatalf("unexpected json: %q", got)
	}
}

func TestRenderMarkdownTrimsTrailingBOM(t *testing.T) {
	got := RenderMarkdown(PromptData{Atmosphere: "rain\ufeff  "})
	if !strings.HasSuffix(got, "- **Atmosphere:** rain") {
		t.Fatalf("expected trailing BOM and spaces trimmed, got %q", got)
	}
	if got := RenderMarkdown(PromptData{Atmosphere: "rain\u0085"}); !strings.HasSuffix(got, "rain\u0085") {
		t.Fatalf("NEL is not trimmed, got %q", got)
	}
}
