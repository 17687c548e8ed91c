package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Model returns the model matrix at time t for a quad spinning about the Z
// axis at speed radians per second. A zero speed yields the identity.
func Model(t float64, speed float64) mgl32.Mat4 {
	if speed == 0 {
		return mgl32.Ident4()
	}
	angle := math.Mod(t*speed, 2*math.Pi)
	return mgl32.HomogRotate3DZ(float32(angle))
}

// Spinner accumulates rotation time while it is running so that pausing
// and resuming does not make the quad jump.
type Spinner struct {
	Speed   float64
	paused  bool
	elapsed float64
	last    float64
	started bool
}

func NewSpinner(speed float64) *Spinner {
	return &Spinner{Speed: speed}
}

// Toggle pauses or resumes the rotation.
func (s *Spinner) Toggle() {
	s.paused = !s.paused
}

func (s *Spinner) Paused() bool {
	return s.paused
}

// Advance moves the clock to now and returns the current model matrix.
func (s *Spinner) Advance(now float64) mgl32.Mat4 {
	if s.started && !s.paused {
		s.elapsed += now - s.last
	}
	s.last = now
	s.started = true
	return Model(s.elapsed, s.Speed)
}
