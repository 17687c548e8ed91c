package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/glquad/graphics"
	"github.com/richinsley/glquad/input"
	"github.com/richinsley/glquad/mesh"
	options "github.com/richinsley/glquad/options"
	"github.com/richinsley/glquad/recorder"
	"github.com/richinsley/glquad/shader"
	"github.com/richinsley/glquad/texture"
	"github.com/richinsley/glquad/transform"
)

var glInitOnce sync.Once

// RenderContext owns the GPU objects for the quad and draws them each frame.
type RenderContext struct {
	context    graphics.Context
	keys       *input.KeyProcessor
	program    *shader.Program
	buffers    *mesh.Buffers
	texture    *texture.Texture
	spinner    *transform.Spinner
	recorder   *recorder.Recorder
	pixels     []byte
	clearColor [4]float32
	wireframe  bool
	duration   float64

	transformLoc  int32
	useTextureLoc int32
	textureLoc    int32
}

// NewRenderContext prepares OpenGL on the context's thread and uploads the
// shader program, mesh and optional texture.
func NewRenderContext(ctx graphics.Context, opts *options.Options) (*RenderContext, error) {
	clearColor, err := options.ParseColor(*opts.ClearColor)
	if err != nil {
		return nil, err
	}

	r := &RenderContext{
		context:    ctx,
		clearColor: clearColor,
		wireframe:  *opts.Wireframe,
		duration:   *opts.Duration,
		spinner:    transform.NewSpinner(*opts.Spin),
	}

	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
		if initErr == nil {
			log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
		}
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	fbWidth, fbHeight := ctx.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	ctx.SetResizeCallback(func(width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	if err := r.initProgram(opts); err != nil {
		r.Shutdown()
		return nil, err
	}

	m := mesh.Quad()
	if *opts.Texture != "" {
		r.texture, err = texture.Load(*opts.Texture, *opts.FlipTexture)
		if err != nil {
			r.Shutdown()
			return nil, err
		}
		m = mesh.TexturedQuad()
	}

	r.buffers, err = mesh.Upload(m)
	if err != nil {
		r.Shutdown()
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}

	if opts.Recording() {
		r.recorder, err = recorder.New(opts, fbWidth, fbHeight)
		if err != nil {
			r.Shutdown()
			return nil, err
		}
		r.pixels = make([]byte, r.recorder.FrameSize())
	}

	r.keys = input.NewKeyProcessor(ctx)
	r.keys.OnPress(graphics.KeyW, r.ToggleWireframe)
	r.keys.OnPress(graphics.KeySpace, r.spinner.Toggle)

	return r, nil
}

func (r *RenderContext) initProgram(opts *options.Options) error {
	vs, err := shader.LoadSource(*opts.VertexShader, shader.Vertex)
	if err != nil {
		return err
	}
	fs, err := shader.LoadSource(*opts.FragmentShader, shader.Fragment)
	if err != nil {
		return err
	}
	r.program, err = shader.NewProgram(vs, fs)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}

	r.program.Use()
	r.transformLoc = r.program.UniformLocation("transform")
	r.useTextureLoc = r.program.UniformLocation("useTexture")
	r.textureLoc = r.program.UniformLocation("texture1")
	if r.textureLoc != -1 {
		gl.Uniform1i(r.textureLoc, 0)
	}
	gl.UseProgram(0)
	return nil
}

// ToggleWireframe switches between outline and filled polygons.
func (r *RenderContext) ToggleWireframe() {
	r.wireframe = !r.wireframe
	log.Printf("Wireframe: %v", r.wireframe)
}

// Render draws the quad with the current program.
func (r *RenderContext) Render() {
	r.program.Use()

	if r.transformLoc != -1 {
		model := r.spinner.Advance(r.now())
		gl.UniformMatrix4fv(r.transformLoc, 1, false, &model[0])
	}
	if r.useTextureLoc != -1 {
		var use int32
		if r.texture != nil {
			use = 1
		}
		gl.Uniform1i(r.useTextureLoc, use)
	}
	if r.texture != nil {
		r.texture.Bind(0)
	}

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	r.buffers.Draw()
}

// Run drives the render loop until the window is asked to close.
func (r *RenderContext) Run() error {
	if r.recorder != nil {
		r.recorder.Start()
	}

	start := r.now()
	for !r.context.ShouldClose() {
		r.keys.ProcessInput()

		gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)

		r.Render()

		if r.recorder != nil {
			if err := r.capture(); err != nil {
				log.Printf("Error capturing frame: %v", err)
				r.context.SetShouldClose(true)
			}
		}

		r.context.EndFrame()

		if r.duration > 0 && r.now()-start >= r.duration {
			log.Printf("Duration of %.2fs reached", r.duration)
			r.context.SetShouldClose(true)
		}
	}

	if r.recorder != nil {
		return r.recorder.Close()
	}
	return nil
}

// now is the animation clock. While recording it follows the frame count
// so that captured frames are evenly spaced at the recording rate.
func (r *RenderContext) now() float64 {
	if r.recorder != nil {
		return r.recorder.Time()
	}
	return r.context.Time()
}

func (r *RenderContext) capture() error {
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.recorder.Width), int32(r.recorder.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.pixels))
	return r.recorder.WriteFrame(r.pixels)
}

// Shutdown releases every GPU object created by NewRenderContext. The window
// itself belongs to the graphics context.
func (r *RenderContext) Shutdown() {
	if r.buffers != nil {
		r.buffers.Destroy()
		r.buffers = nil
	}
	if r.texture != nil {
		r.texture.Destroy()
		r.texture = nil
	}
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}
