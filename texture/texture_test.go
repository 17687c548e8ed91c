package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// twoRows is a 2x2 image with a red top row and a blue bottom row.
func twoRows() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	return img
}

func TestToRGBAFlip(t *testing.T) {
	src := twoRows()

	same := ToRGBA(src, false)
	if got := same.RGBAAt(0, 0); got.R != 255 {
		t.Errorf("unflipped top pixel = %v, want red", got)
	}

	flipped := ToRGBA(src, true)
	if got := flipped.RGBAAt(0, 0); got.B != 255 {
		t.Errorf("flipped top pixel = %v, want blue", got)
	}
	if got := flipped.RGBAAt(1, 1); got.R != 255 {
		t.Errorf("flipped bottom pixel = %v, want red", got)
	}
}

func TestToRGBAOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	src.SetRGBA(10, 10, color.RGBA{G: 255, A: 255})

	out := ToRGBA(src, false)
	if out.Rect.Min != (image.Point{}) {
		t.Errorf("bounds start at %v, want origin", out.Rect.Min)
	}
	if out.Rect.Dx() != 3 || out.Rect.Dy() != 2 {
		t.Errorf("size = %dx%d, want 3x2", out.Rect.Dx(), out.Rect.Dy())
	}
	if got := out.RGBAAt(0, 0); got.G != 255 {
		t.Errorf("origin pixel = %v, want green", got)
	}
}

func TestDecodeFormats(t *testing.T) {
	dir := t.TempDir()
	encoders := map[string]func(*os.File, image.Image) error{
		"wall.png": func(f *os.File, img image.Image) error { return png.Encode(f, img) },
		"wall.bmp": func(f *os.File, img image.Image) error { return bmp.Encode(f, img) },
	}
	for name, encode := range encoders {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := encode(f, twoRows()); err != nil {
			t.Fatal(err)
		}
		f.Close()

		rgba, err := Decode(path, true)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := rgba.RGBAAt(0, 0); got.B != 255 || got.R != 0 {
			t.Errorf("%s: flipped top pixel = %v, want blue", name, got)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Decode(filepath.Join(dir, "missing.jpg"), false); err == nil {
		t.Error("expected error for missing file")
	}

	junk := filepath.Join(dir, "junk.jpg")
	if err := os.WriteFile(junk, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(junk, false); err == nil {
		t.Error("expected error for undecodable file")
	}
}
