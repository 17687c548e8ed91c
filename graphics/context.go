package graphics

// Key identifies a keyboard key independently of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
)

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// KeyPressed reports whether key is currently held down.
	KeyPressed(Key) bool
	// SetResizeCallback registers f to run whenever the framebuffer is resized.
	SetResizeCallback(f func(width, height int))
}
