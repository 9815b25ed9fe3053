// Package catalog holds the option lists the form surfaces offer for the
// enumerated fields. Renderers never consult it: any string is a valid value.
package catalog

import "github.com/kayz/vidprompt/internal/promptbuild"

// StyleCategory groups visual styles for selection. The category itself is
// never part of the prompt.
type StyleCategory struct {
	Name   string   `json:"name" yaml:"name"`
	Styles []string `json:"styles" yaml:"styles"`
}

var cameraMovements = []string{
	"Static",
	"Pan Left",
	"Pan Right",
	"Tilt Up",
	"Tilt Down",
	"Dolly In",
	"Dolly Out",
	"Tracking Shot",
}

var cameraAngles = []string{"Eye Level", "Low Angle", "High Angle", "Bird's Eye", "Dutch Angle"}

var lightingOptions = []string{"Natural", "Golden Hour", "Blue Hour", "High Key", "Low Key", "Neon"}

var visualStyles = []StyleCategory{
	{Name: "Photorealistic", Styles: []string{"Cinematic", "Documentary", "Portrait", "Landscape"}},
	{Name: "Digital/3D", Styles: []string{"CGI", "Motion Graphics", "VFX", "Game Engine"}},
	{Name: "Artistic", Styles: []string{"Anime", "Watercolor", "Oil Painting", "Sketch"}},
}

func CameraMovements() []string { return clone(cameraMovements) }

func CameraAngles() []string { return clone(cameraAngles) }

func LightingOptions() []string { return clone(lightingOptions) }

// Categories returns the visual style category names in display order.
func Categories() []string {
	out := make([]string, 0, len(visualStyles))
	for _, c := range visualStyles {
		out = append(out, c.Name)
	}
	return out
}

// StylesFor returns the styles of a category, or nil for an unknown one.
func StylesFor(category string) []string {
	for _, c := range visualStyles {
		if c.Name == category {
			return clone(c.Styles)
		}
	}
	return nil
}

// AllStyles flattens every category's styles in catalog order.
func AllStyles() []string {
	var out []string
	for _, c := range visualStyles {
		out = append(out, c.Styles...)
	}
	return out
}

// CategoryOf finds the category a style belongs to.
func CategoryOf(style string) (string, bool) {
	for _, c := range visualStyles {
		for _, s := range c.Styles {
			if s == style {
				return c.Name, true
			}
		}
	}
	return "", false
}

// OptionsFor returns the choices for an enumerated field and nil for
// free-text fields.
func OptionsFor(field string) []string {
	switch field {
	case promptbuild.FieldCameraMovement:
		return CameraMovements()
	case promptbuild.FieldCameraAngle:
		return CameraAngles()
	case promptbuild.FieldLighting:
		return LightingOptions()
	case promptbuild.FieldVisualStyle:
		return AllStyles()
	default:
		return nil
	}
}

// Options is the whole catalog in a serialisable form.
type Options struct {
	CameraMovements []string        `json:"cameraMovements" yaml:"cameraMovements"`
	CameraAngles    []string        `json:"cameraAngles" yaml:"cameraAngles"`
	Lighting        []string        `json:"lighting" yaml:"lighting"`
	VisualStyles    []StyleCategory `json:"visualStyles" yaml:"visualStyles"`
	Formats         []string        `json:"formats" yaml:"formats"`
}

func Snapshot() Options {
	styles := make([]StyleCategory, 0, len(visualStyles))
	for _, c := range visualStyles {
		styles = append(styles, StyleCategory{Name: c.Name, Styles: clone(c.Styles)})
	}
	formats := make([]string, 0, 3)
	for _, f := range promptbuild.Formats() {
		formats = append(formats, string(f))
	}
	return Options{
		CameraMovements: CameraMovements(),
		CameraAngles:    CameraAngles(),
		Lighting:        LightingOptions(),
		VisualStyles:    styles,
		Formats:         formats,
	}
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
