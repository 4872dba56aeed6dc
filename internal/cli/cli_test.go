package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/eduviz/internal/domain/content"
	"github.com/yungbote/eduviz/internal/generator"
	"github.com/yungbote/eduviz/internal/mesh"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "-v", "show", "me", "force", "and", "motion")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	var got generateOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := generateOutput{
		GeneratedResponse: content.GeneratedResponse{
			GeneratedText: "The visualization shows how force and motion works in physics.",
			AnimationType: "physics",
			Subject:       content.SubjectPhysics,
			Parameters:    content.DefaultParameters(),
		},
		PrimitiveType: "sphere",
		Concept:       "force and motion",
		Object:        "visualization",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("generate output mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateCommandWithoutPrompt(t *testing.T) {
	out, err := run(t, "generate")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, `"subject": "default"`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if strings.Contains(out, "primitive_type") {
		t.Fatalf("non-verbose output should omit primitive_type: %s", out)
	}
}

func TestSubjectsCommand(t *testing.T) {
	out, err := run(t, "subjects")
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	var got []generator.SubjectInfo
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(generator.Subjects(), got); diff != "" {
		t.Fatalf("subjects mismatch (-want +got):\n%s", diff)
	}

	out, err = run(t, "subjects", "--format", "yaml")
	if err != nil {
		t.Fatalf("subjects yaml: %v", err)
	}
	var fromYAML []generator.SubjectInfo
	if err := yaml.Unmarshal([]byte(out), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if diff := cmp.Diff(generator.Subjects(), fromYAML); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}

	if _, err := run(t, "subjects", "--format", "xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestMeshCommand(t *testing.T) {
	out, err := run(t, "mesh", "cube", "--size", "2")
	if err != nil {
		t.Fatalf("mesh: %v", err)
	}
	var m mesh.Mesh
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(mesh.GetMesh("cube", 2), m); diff != "" {
		t.Fatalf("mesh mismatch (-want +got):\n%s", diff)
	}

	p := filepath.Join(t.TempDir(), "sphere.png")
	if _, err := run(t, "mesh", "sphere", "--png", p, "--px", "96"); err != nil {
		t.Fatalf("mesh png: %v", err)
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG")) {
		t.Fatalf("not a png")
	}

	if _, err := run(t, "mesh"); err == nil {
		t.Fatalf("expected arg error")
	}
}
