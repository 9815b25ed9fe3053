package promptbuild

// GroupID names a logical section of the rendered prompt.
type GroupID string

const (
	GroupScene      GroupID = "scene"
	GroupCinematics GroupID = "cinematics"
	GroupStyle      GroupID = "style"
	GroupAudio      GroupID = "audio"
)

// Entry is one non-empty field inside a group.
type Entry struct {
	Field string // request field name, e.g. cameraMovement
	Key   string // structured key, e.g. movement
	Label string // human label, e.g. Camera Movement
	Value string
}

// Group is a present section with only its non-empty members, in fixed order.
type Group struct {
	ID      GroupID
	Title   string
	Scalar  bool // structured formats emit the single entry as a bare value
	Entries []Entry
}

type member struct {
	field string
	key   string
	label string
}

type groupSpec struct {
	id      GroupID
	title   string
	scalar  bool
	members []member
}

var groupLayout = []groupSpec{
	{
		id:    GroupScene,
		title: "Scene",
		members: []member{
			{field: FieldSubject, key: "subject", label: "Subject"},
			{field: FieldAction, key: "action", label: "Action"},
			{field: FieldLocation, key: "location", label: "Location"},
		},
	},
	{
		id:    GroupCinematics,
		title: "Cinematics",
		members: []member{
			{field: FieldCameraMovement, key: "movement", label: "Camera Movement"},
			{field: FieldCameraAngle, key: "angle", label: "Camera Angle"},
			{field: FieldLighting, key: "lighting", label: "Lighting"},
		},
	},
	{
		id:     GroupStyle,
		title:  "Style",
		scalar: true,
		members: []member{
			{field: FieldVisualStyle, key: "style", label: "Visual Style"},
		},
	},
	{
		id:    GroupAudio,
		title: "Audio",
		members: []member{
			{field: FieldAtmosphere, key: "atmosphere", label: "Atmosphere"},
		},
	},
}

// Groups returns the present groups in the order Scene, Cinematics, Style,
// Audio. A group is present when at least one of its members is non-empty.
func (d PromptData) Groups() []Group {
	var groups []Group
	for _, spec := range groupLayout {
		var entries []Entry
		for _, m := range spec.members {
			value := d.Get(m.field)
			if value == "" {
				continue
			}
			entries = append(entries, Entry{Field: m.field, Key: m.key, Label: m.label, Value: value})
		}
		if len(entries) == 0 {
			continue
		}
		groups = append(groups, Group{ID: spec.id, Title: spec.title, Scalar: spec.scalar, Entries: entries})
	}
	return groups
}

// Value returns the entry value stored under the structured key.
func (g Group) Value(key string) string {
	for _, e := range g.Entries {
		if e.Key == key {
			return e.Value
		}
	}
	return ""
}
