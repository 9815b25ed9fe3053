package promptbuild

// PromptData describes one video scene. Every field is optional and an empty
// string means the field was left blank. Values are opaque text.
type PromptData struct {
	Subject        string `json:"subject" yaml:"subject"`
	Action         string `json:"action" yaml:"action"`
	Location       string `json:"location" yaml:"location"`
	CameraMovement string `json:"cameraMovement" yaml:"cameraMovement"`
	CameraAngle    string `json:"cameraAngle" yaml:"cameraAngle"`
	Lighting       string `json:"lighting" yaml:"lighting"`
	Atmosphere     string `json:"atmosphere" yaml:"atmosphere"`
	VisualStyle    string `json:"visualStyle" yaml:"visualStyle"`
}

// Field names as they appear in requests and edit messages.
const (
	FieldSubject        = "subject"
	FieldAction         = "action"
	FieldLocation       = "location"
	FieldCameraMovement = "cameraMovement"
	FieldCameraAngle    = "cameraAngle"
	FieldLighting       = "lighting"
	FieldAtmosphere     = "atmosphere"
	FieldVisualStyle    = "visualStyle"
)

var fieldOrder = []string{
	FieldSubject,
	FieldAction,
	FieldLocation,
	FieldCameraMovement,
	FieldCameraAngle,
	FieldLighting,
	FieldAtmosphere,
	FieldVisualStyle,
}

// Fields returns the eight field names in canonical order.
func Fields() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// IsEmpty reports whether every field is blank.
func (d PromptData) IsEmpty() bool {
	return d == PromptData{}
}

// Get returns the value of the named field, or "" for an unknown name.
func (d PromptData) Get(field string) string {
	switch field {
	case FieldSubject:
		return d.Subject
	case FieldAction:
		return d.Action
	case FieldLocation:
		return d.Location
	case FieldCameraMovement:
		return d.CameraMovement
	case FieldCameraAngle:
		return d.CameraAngle
	case FieldLighting:
		return d.Lighting
	case FieldAtmosphere:
		return d.Atmosphere
	case FieldVisualStyle:
		return d.VisualStyle
	default:
		return ""
	}
}

// Set updates a single field. It reports false and leaves d untouched when
// the field name is unknown.
func (d *PromptData) Set(field, value string) bool {
	switch field {
	case FieldSubject:
		d.Subject = value
	case FieldAction:
		d.Action = value
	case FieldLocation:
		d.Location = value
	case FieldCameraMovement:
		d.CameraMovement = value
	case FieldCameraAngle:
		d.CameraAngle = value
	case FieldLighting:
		d.Lighting = value
	case FieldAtmosphere:
		d.Atmosphere = value
	case FieldVisualStyle:
		d.VisualStyle = value
	default:
		return false
	}
	return true
}

// RenderRequest is the on-disk and on-the-wire request shape.
type RenderRequest struct {
	Format Format     `json:"format,omitempty" yaml:"format,omitempty"`
	Data   PromptData `json:"data" yaml:"data"`
}

// Result is a rendered prompt together with the format actually used.
type Result struct {
	Format Format `json:"format"`
	Output string `json:"output"`
	Empty  bool   `json:"empty"`
}
