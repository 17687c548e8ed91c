package shader

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed shaders/default.vert shaders/default.frag
var defaults embed.FS

// Stage is a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

// String returns the stage name understood by the shader translator.
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

var ErrEmptySource = errors.New("shader source is empty")

// LoadSource reads the shader for stage from path. An empty path selects the
// built-in shader for that stage.
func LoadSource(path string, stage Stage) (string, error) {
	if path == "" {
		return DefaultSource(stage)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("incorrect filepath %s: %w", path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptySource)
	}
	return string(data), nil
}

// DefaultSource returns the built-in shader for stage.
func DefaultSource(stage Stage) (string, error) {
	var name string
	switch stage {
	case Vertex:
		name = "shaders/default.vert"
	case Fragment:
		name = "shaders/default.frag"
	default:
		return "", fmt.Errorf("no default shader for %v", stage)
	}
	data, err := defaults.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Version returns the argument of the first #version directive, or "" when
// the source has none.
func Version(source string) string {
	sc := bufio.NewScanner(strings.NewReader(source))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if rest, ok := strings.CutPrefix(line, "#version"); ok {
			return strings.Join(strings.Fields(rest), " ")
		}
	}
	return ""
}

// NeedsTranslation reports whether source is GLSL ES and has to go through the
// translator before a desktop core context will compile it.
func NeedsTranslation(source string) bool {
	return strings.HasSuffix(Version(source), " es")
}
