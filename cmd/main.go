package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/richinsley/glquad/glfwcontext"
	options "github.com/richinsley/glquad/options"
	renderer "github.com/richinsley/glquad/renderer"
)

func runQuad(opts *options.Options) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create glfw window: %w", err)
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderContext(ctx, opts)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	log.Println("Starting render loop...")
	return r.Run()
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.Options{
		Width:          flag.Int("width", 800, "Window width"),
		Height:         flag.Int("height", 600, "Window height"),
		Title:          flag.String("title", "Triangle", "Window title"),
		VertexShader:   flag.String("vert", "", "Path to the vertex shader (built-in shader if empty)"),
		FragmentShader: flag.String("frag", "", "Path to the fragment shader (built-in shader if empty)"),
		Texture:        flag.String("texture", "", "Optional image to map onto the quad"),
		FlipTexture:    flag.Bool("flip", true, "Flip the texture vertically on load"),
		Wireframe:      flag.Bool("wireframe", true, "Draw polygons as outlines (toggle with W)"),
		ClearColor:     flag.String("clear", "0.2,0.3,0.3,1.0", "Background color as r,g,b[,a]"),
		Spin:           flag.Float64("spin", 0, "Rotation speed in radians per second (pause with Space)"),
		VSync:          flag.Bool("vsync", true, "Synchronize buffer swaps with the display"),
		Help:           flag.Bool("help", false, "Show help message"),
		RecordFile:     flag.String("record", "", "Record the window to this video file"),
		FPS:            flag.Int("fps", 60, "Frames per second of the recording"),
		Duration:       flag.Float64("duration", 0, "Close the window after this many seconds (0 = until Escape)"),
		FFMPEGPath:     flag.String("ffmpeg", "", "Path to ffmpeg executable"),
	}
	flag.Parse()

	if *opts.Help {
		fmt.Println("OpenGL quad demo")
		flag.PrintDefaults()
		return
	}

	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if err := runQuad(opts); err != nil {
		log.Fatalf("%v", err)
	}
}
