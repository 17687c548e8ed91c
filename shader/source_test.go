package shader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.frag")
	src := "#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSource(path, Fragment)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if got != src {
		t.Errorf("LoadSource returned %q, want %q", got, src)
	}
}

func TestLoadSourceMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.vert")
	_, err := LoadSource(path, Vertex)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestLoadSourceEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.vert")
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSource(path, Vertex); !errors.Is(err, ErrEmptySource) {
		t.Errorf("got %v, want ErrEmptySource", err)
	}
}

func TestDefaultSources(t *testing.T) {
	for _, stage := range []Stage{Vertex, Fragment} {
		src, err := LoadSource("", stage)
		if err != nil {
			t.Fatalf("%v: %v", stage, err)
		}
		if v := Version(src); v != "330 core" {
			t.Errorf("%v: version %q, want \"330 core\"", stage, v)
		}
		if NeedsTranslation(src) {
			t.Errorf("%v: built-in shader should not need translation", stage)
		}
	}

	vs, _ := DefaultSource(Vertex)
	for _, want := range []string{"location = 0", "location = 1", "uniform mat4 transform"} {
		if !strings.Contains(vs, want) {
			t.Errorf("default vertex shader missing %q", want)
		}
	}

	if _, err := DefaultSource(Stage(7)); err == nil {
		t.Error("expected error for unknown stage")
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"#version 330 core\nvoid main(){}", "330 core"},
		{"// header\n\n  #version   300   es\nprecision highp float;", "300 es"},
		{"void main(){}", ""},
	}
	for _, tt := range tests {
		if got := Version(tt.src); got != tt.want {
			t.Errorf("Version(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestNeedsTranslation(t *testing.T) {
	if !NeedsTranslation("#version 300 es\nvoid main(){}") {
		t.Error("GLSL ES 3.00 should need translation")
	}
	if NeedsTranslation("#version 410 core\nvoid main(){}") {
		t.Error("desktop GLSL should not need translation")
	}
	if NeedsTranslation("void main(){}") {
		t.Error("source without #version should not need translation")
	}
}

func TestStageString(t *testing.T) {
	if Vertex.String() != "vertex" || Fragment.String() != "fragment" {
		t.Errorf("unexpected stage names %q %q", Vertex, Fragment)
	}
}
