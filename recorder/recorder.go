package recorder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	options "github.com/richinsley/glquad/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const queueDepth = 3

var (
	ErrNotStarted = errors.New("recorder not started")
	ErrFrameSize  = errors.New("frame has wrong size")
)

// Frame is one captured RGBA framebuffer, bottom row first.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// Recorder encodes captured frames to a video file with an ffmpeg child process.
type Recorder struct {
	Width  int
	Height int
	FPS    int

	output     string
	ffmpegPath string

	frames chan *Frame
	done   chan error
	pts    int64

	mu  sync.Mutex
	err error // first encoder failure
}

// New prepares a recorder for frames of the given size. Nothing is started
// until Start is called.
func New(opts *options.Options, width, height int) (*Recorder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid recording size %dx%d", width, height)
	}
	return &Recorder{
		Width:      width,
		Height:     height,
		FPS:        *opts.FPS,
		output:     *opts.RecordFile,
		ffmpegPath: *opts.FFMPEGPath,
	}, nil
}

// FrameSize is the number of bytes WriteFrame expects.
func (r *Recorder) FrameSize() int {
	return r.Width * r.Height * 4
}

// Args returns the ffmpeg input and output arguments for raw RGBA frames.
func (r *Recorder) Args() (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", r.Width, r.Height),
		"framerate": r.FPS,
	}
	outputArgs = ffmpeg.KwArgs{
		// glReadPixels returns the bottom row first
		"vf":      "vflip",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	return
}

// Start launches ffmpeg and the goroutine feeding it.
func (r *Recorder) Start() {
	r.frames = make(chan *Frame, queueDepth)
	r.done = make(chan error, 1)

	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := r.Args()
	cmd := ffmpeg.Input("pipe:", inputArgs).
		Output(r.output, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if r.ffmpegPath != "" {
		cmd = cmd.SetFfmpegPath(r.ffmpegPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := cmd.Run()
		if err != nil {
			r.fail(fmt.Errorf("ffmpeg failed: %w", err))
		}
		// unblock the writer if ffmpeg exits early
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	go r.encode(pipeWriter, errc)
	log.Printf("Recording %dx%d @ %d fps to %s", r.Width, r.Height, r.FPS, r.output)
}

func (r *Recorder) encode(w *io.PipeWriter, errc <-chan error) {
	for frame := range r.frames {
		if r.Err() != nil {
			continue // drain
		}
		if _, err := w.Write(frame.Pixels); err != nil {
			r.fail(fmt.Errorf("failed to write frame %d: %w", frame.PTS, err))
		}
	}
	w.Close()
	<-errc
	r.done <- r.Err()
}

// fail records err unless an earlier failure is already recorded.
func (r *Recorder) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
		log.Printf("Error: %v", err)
	}
}

// Err returns the first error hit by ffmpeg or the frame writer.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// WriteFrame queues a copy of pixels for encoding. It blocks when the
// encoder is behind.
func (r *Recorder) WriteFrame(pixels []byte) error {
	if r.frames == nil {
		return ErrNotStarted
	}
	if err := r.Err(); err != nil {
		return err
	}
	if len(pixels) != r.FrameSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(pixels), r.FrameSize())
	}
	buf := make([]byte, len(pixels))
	copy(buf, pixels)
	r.frames <- &Frame{Pixels: buf, PTS: r.pts}
	r.pts++
	return nil
}

// Frames returns the number of frames queued so far.
func (r *Recorder) Frames() int64 {
	return r.pts
}

// Time is the presentation time of the next frame in seconds. Recording
// is driven by this clock so the output plays back at FPS regardless of the
// display refresh rate.
func (r *Recorder) Time() float64 {
	return float64(r.pts) / float64(r.FPS)
}

// Close flushes the queue and waits for ffmpeg to exit.
func (r *Recorder) Close() error {
	if r.frames == nil {
		return ErrNotStarted
	}
	close(r.frames)
	err := <-r.done
	r.frames = nil
	if err == nil {
		log.Printf("Recorded %d frames to %s", r.pts, r.output)
	}
	return err
}
