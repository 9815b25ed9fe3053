package promptbuild

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRequest reads a render request from a JSON or YAML file. The format is
// chosen by extension: .yaml and .yml are YAML, anything else is JSON.
func LoadRequest(path string) (RenderRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RenderRequest{}, fmt.Errorf("read request file %s: %w", path, err)
	}
	req, err := ParseRequest(data, isYAMLPath(path))
	if err != nil {
		return RenderRequest{}, fmt.Errorf("parse request file %s: %w", path, err)
	}
	return req, nil
}

// ParseRequest decodes a render request. Missing fields stay empty and an
// empty document is an empty request.
func ParseRequest(data []byte, asYAML bool) (RenderRequest, error) {
	var req RenderRequest
	if len(bytes.TrimSpace(data)) == 0 {
		return req, nil
	}
	if asYAML {
		if err := yaml.Unmarshal(data, &req); err != nil {
			return RenderRequest{}, err
		}
		return req, nil
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return RenderRequest{}, err
	}
	return req, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
