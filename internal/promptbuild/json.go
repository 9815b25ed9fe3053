package promptbuild

import (
	"bytes"
	"encoding/json"
	"strings"
)

type jsonScene struct {
	Subject  string `json:"subject,omitempty"`
	Action   string `json:"action,omitempty"`
	Location string `json:"location,omitempty"`
}

type jsonCinematics struct {
	Movement string `json:"movement,omitempty"`
	Angle    string `json:"angle,omitempty"`
	Lighting string `json:"lighting,omitempty"`
}

type jsonAudio struct {
	Atmosphere string `json:"atmosphere,omitempty"`
}

// jsonDocument fixes the key order: scene, cinematics, style, audio.
type jsonDocument struct {
	Scene      *jsonScene      `json:"scene,omitempty"`
	Cinematics *jsonCinematics `json:"cinematics,omitempty"`
	Style      string          `json:"style,omitempty"`
	Audio      *jsonAudio      `json:"audio,omitempty"`
}

// RenderJSON renders data as 2-space indented JSON. Absent groups and absent
// fields are omitted, so empty data renders as "{}".
func RenderJSON(data PromptData) string {
	var doc jsonDocument
	for _, g := range data.Groups() {
		switch g.ID {
		case GroupScene:
			doc.Scene = &jsonScene{
				Subject:  g.Value("subject"),
				Action:   g.Value("action"),
				Location: g.Value("location"),
			}
		case GroupCinematics:
			doc.Cinematics = &jsonCinematics{
				Movement: g.Value("movement"),
				Angle:    g.Value("angle"),
				Lighting: g.Value("lighting"),
			}
		case GroupStyle:
			doc.Style = g.Value("style")
		case GroupAudio:
			doc.Audio = &jsonAudio{Atmosphere: g.Value("atmosphere")}
		}
	}
	return encodeJSON(doc, "  ")
}

// jsonString quotes s with standard JSON escaping.
func jsonString(s string) string {
	return encodeJSON(s, "")
}

// encodeJSON marshals without HTML escaping and without the encoder's
// trailing newline.
func encodeJSON(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		// strings and the document structs above always encode
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
