package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/trimmonitor/pkg/mocks"
	"github.com/user/trimmonitor/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func pngRenderer() *mocks.Renderer {
	return &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil // PNG header
		},
	}
}

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveMatchFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, pngRenderer())

	img := image.NewRGBA(image.Rect(0, 0, 960, 540))
	if err := sink.SaveMatchFrame(3, img); err != nil {
		t.Fatalf("SaveMatchFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "match-frames", "gen-0003.png")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved[1:4]) != "PNG" {
		t.Errorf("expected PNG data, got %x", saved)
	}
}

func TestSink_SavePanel(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, pngRenderer())

	for _, name := range []string{"top", "bottom", "monitor"} {
		if err := sink.SavePanel(name, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
			t.Fatalf("SavePanel(%s) failed: %v", name, err)
		}
	}

	for _, name := range []string{"top", "bottom", "monitor"} {
		expectedPath := filepath.Join(testBaseDir, "panels", name+".png")
		if _, ok := fs.GetFile(expectedPath); !ok {
			t.Errorf("expected file to be saved at %s", expectedPath)
		}
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	encodeErr := errors.New("encode failed")
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, encodeErr
		},
	}
	sink := New(testBaseDir, fs, renderer)

	err := sink.SavePanel("top", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, encodeErr) {
		t.Errorf("expected wrapped encode error, got %v", err)
	}
}

func TestSink_MkdirError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.MkdirAllFunc = func(path string) error {
		return errors.New("read-only")
	}
	sink := New(testBaseDir, fs, pngRenderer())

	if err := sink.SaveMatchFrame(1, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected an error")
	}
}
