package promptbuild

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRequestYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	content := `format: toon
data:
  subject: A golden retriever puppy
  cameraMovement: Dolly In
  visualStyle: Cinematic
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write request: %v", err)
	}

	req, err := LoadRequest(path)
	if err != nil {
		t.Fatalf("LoadRequest failed: %v", err)
	}
	if req.Format != FormatTOON {
		t.Fatalf("expected toon, got %q", req.Format)
	}
	if req.Data.Subject != "A golden retriever puppy" || req.Data.CameraMovement != "Dolly In" || req.Data.VisualStyle != "Cinematic" {
		t.Fatalf("unexpected data: %#v", req.Data)
	}
	if req.Data.Action != "" || req.Data.Atmosphere != "" {
		t.Fatalf("missing keys should decode as empty: %#v", req.Data)
	}
}

func TestLoadRequestJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	content := `{"format":"json","data":{"action":"jumping","atmosphere":"crowd cheering"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write request: %v", err)
	}

	req, err := LoadRequest(path)
	if err != nil {
		t.Fatalf("LoadRequest failed: %v", err)
	}
	if req.Format != FormatJSON || req.Data.Action != "jumping" || req.Data.Atmosphere != "crowd cheering" {
		t.Fatalf("unexpected request: %#v", req)
	}
}

func TestParseRequestEdgeCases(t *testing.T) {
	req, err := ParseRequest([]byte("  \n"), false)
	if err != nil {
		t.Fatalf("empty document should parse: %v", err)
	}
	if !req.Data.IsEmpty() || req.Format != "" {
		t.Fatalf("expected empty request, got %#v", req)
	}

	if _, err := ParseRequest([]byte(`{"data":`), false); err == nil {
		t.Fatalf("expected error for truncated json")
	}
	if _, err := ParseRequest([]byte("data: [unclosed"), true); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}

func TestLoadRequestMissingFile(t *testing.T) {
	if _, err := LoadRequest(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
