package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Options struct {
	Width          *int
	Height         *int
	Title          *string
	VertexShader   *string // path to the vertex shader, empty for the built-in one
	FragmentShader *string // path to the fragment shader, empty for the built-in one
	Texture        *string // optional image mapped onto the quad
	FlipTexture    *bool
	Wireframe      *bool
	ClearColor     *string // "r,g,b[,a]" in the 0..1 range
	Spin           *float64
	VSync          *bool
	Help           *bool
	// Recording options
	RecordFile *string
	FPS        *int
	Duration   *float64 // seconds before the window closes itself, 0 runs until Escape
	FFMPEGPath *string
}

var ErrInvalidColor = errors.New("invalid color")

// Default returns an Options value populated with the same defaults the
// command line flags use.
func Default() *Options {
	return &Options{
		Width:          intp(800),
		Height:         intp(600),
		Title:          strp("Triangle"),
		VertexShader:   strp(""),
		FragmentShader: strp(""),
		Texture:        strp(""),
		FlipTexture:    boolp(true),
		Wireframe:      boolp(true),
		ClearColor:     strp("0.2,0.3,0.3,1.0"),
		Spin:           floatp(0),
		VSync:          boolp(true),
		Help:           boolp(false),
		RecordFile:     strp(""),
		FPS:            intp(60),
		Duration:       floatp(0),
		FFMPEGPath:     strp(""),
	}
}

// Validate checks the option values that would otherwise fail deep inside GLFW or ffmpeg.
func (o *Options) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", *o.Width, *o.Height)
	}
	if *o.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *o.FPS)
	}
	if *o.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %v", *o.Duration)
	}
	if _, err := ParseColor(*o.ClearColor); err != nil {
		return err
	}
	return nil
}

// Recording reports whether frames should be captured to a file.
func (o *Options) Recording() bool {
	return o.RecordFile != nil && *o.RecordFile != ""
}

// ParseColor parses "r,g,b" or "r,g,b,a". Alpha defaults to 1.
func ParseColor(s string) ([4]float32, error) {
	rgba := [4]float32{0, 0, 0, 1}
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return rgba, fmt.Errorf("%w %q: want 3 or 4 components", ErrInvalidColor, s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return rgba, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		if v < 0 || v > 1 {
			return rgba, fmt.Errorf("%w %q: component %d out of range", ErrInvalidColor, s, i)
		}
		rgba[i] = float32(v)
	}
	return rgba, nil
}

func intp(v int) *int           { return &v }
func strp(v string) *string     { return &v }
func boolp(v bool) *bool        { return &v }
func floatp(v float64) *float64 { return &v }
