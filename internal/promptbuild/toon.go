package promptbuild

import (
	"strings"
)

// toonNode is either a scalar (children == nil) or a nested object.
type toonNode struct {
	key      string
	value    string
	children []toonNode
}

// toonKeys maps group IDs to their top-level key in the compact notation.
var toonKeys = map[GroupID]string{
	GroupScene:      "context",
	GroupCinematics: "cinematics",
	GroupStyle:      "style",
	GroupAudio:      "audio",
}

// RenderTOON renders data in the compact indentation-based object notation.
// Nested objects print "key:" and indent their children by two spaces;
// scalars print "key: value". Empty data renders as "".
func RenderTOON(data PromptData) string {
	lines := emitTOON(nil, buildTOONTree(data), 0)
	return strings.Join(lines, "\n")
}

func buildTOONTree(data PromptData) []toonNode {
	var nodes []toonNode
	for _, g := range data.Groups() {
		key := toonKeys[g.ID]
		if g.Scalar {
			nodes = append(nodes, toonNode{key: key, value: g.Entries[0].Value})
			continue
		}
		children := make([]toonNode, 0, len(g.Entries))
		for _, e := range g.Entries {
			children = append(children, toonNode{key: e.Key, value: e.Value})
		}
		nodes = append(nodes, toonNode{key: key, children: children})
	}
	return nodes
}

func emitTOON(lines []string, nodes []toonNode, indent int) []string {
	pad := strings.Repeat(" ", indent)
	for _, n := range nodes {
		if n.children != nil {
			lines = append(lines, pad+n.key+":")
			lines = emitTOON(lines, n.children, indent+2)
			continue
		}
		lines = append(lines, pad+n.key+": "+quoteTOON(n.value))
	}
	return lines
}

// quoteTOON applies the scalar quoting rules in order. Anything not matched
// is emitted bare.
func quoteTOON(s string) string {
	switch {
	case s == "":
		return `""`
	case strings.ContainsAny(s, "\n\r"):
		return jsonString(s)
	case strings.HasPrefix(s, " ") || strings.HasSuffix(s, " "):
		return jsonString(s)
	case strings.HasPrefix(s, "-"):
		return jsonString(s)
	case strings.Contains(s, `"`):
		return jsonString(s)
	default:
		return s
	}
}
