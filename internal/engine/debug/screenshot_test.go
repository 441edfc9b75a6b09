package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFlipPixels(t *testing.T) {
	// 1x2 image: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipPixels: %v", err)
	}
	if img.RGBAAt(0, 0).B != 255 || img.RGBAAt(0, 1).R != 255 {
		t.Errorf("rows not flipped: top %v bottom %v", img.RGBAAt(0, 0), img.RGBAAt(0, 1))
	}
}

func TestFlipPixelsSizeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		width  int
		height int
	}{
		{"short", 3, 1, 1},
		{"long", 12, 1, 2},
		{"zero size", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FlipPixels(make([]byte, tt.n), tt.width, tt.height); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "house")
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 20, 15, 0, 0, time.UTC) }

	pixels := make([]byte, 4*3*4)
	for i := range pixels {
		pixels[i] = 200
	}
	path, err := sc.CaptureFromPixels(pixels, 4, 3)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := filepath.Join(dir, "house_2024-03-01_20-15-00.000.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("size = %v", img.Bounds())
	}
}

func TestFilenameWithoutDir(t *testing.T) {
	sc := NewScreenshotCapture("", "shot")
	sc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	if got := sc.Filename(); got != "shot_2024-01-02_03-04-05.000.png" {
		t.Errorf("Filename = %q", got)
	}
}
