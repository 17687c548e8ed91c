package shader

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	xlate "github.com/richinsley/glquad/translator"
)

// Program is a linked vertex/fragment shader pair.
type Program struct {
	ID uint32
	// names maps source uniform names to the names in the compiled code.
	// It is empty unless the sources were translated.
	names map[string]string
}

// NewProgram compiles and links the two sources. GLSL ES sources are
// translated to desktop GLSL first.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	names := make(map[string]string)

	vs, err := prepare(vertexSource, Vertex, names)
	if err != nil {
		return nil, err
	}
	fs, err := prepare(fragmentSource, Fragment, names)
	if err != nil {
		return nil, err
	}

	id, err := newProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, names: names}, nil
}

func prepare(source string, stage Stage, names map[string]string) (string, error) {
	if !NeedsTranslation(source) {
		return source, nil
	}
	log.Printf("Translating %s shader (%s)", stage, Version(source))
	code, mapped, err := xlate.Translate(source, stage.String())
	if err != nil {
		return "", err
	}
	for k, v := range mapped {
		names[k] = v
	}
	return code, nil
}

// Use installs the program as part of the current rendering state.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// UniformLocation returns the location of the named uniform, or -1 if the
// program does not use it.
func (p *Program) UniformLocation(name string) int32 {
	if mapped, ok := p.names[name]; ok {
		name = mapped
	}
	return gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	// the linked program keeps its own copy
	defer gl.DeleteShader(vertexShader)
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	if program == 0 {
		return 0, fmt.Errorf("failed to create shader program")
	}
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}
