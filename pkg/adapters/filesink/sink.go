// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/trimmonitor/pkg/ports"
)

// Sink saves debug output as PNG files under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveMatchFrame saves a decoded match frame as match-frames/gen-NNNN.png.
func (s *Sink) SaveMatchFrame(generation uint64, img image.Image) error {
	dir := filepath.Join(s.baseDir, "match-frames")
	return s.savePNG(dir, fmt.Sprintf("gen-%04d.png", generation), img)
}

// SavePanel saves a rendered panel as panels/<name>.png.
func (s *Sink) SavePanel(name string, img image.Image) error {
	dir := filepath.Join(s.baseDir, "panels")
	return s.savePNG(dir, name+".png", img)
}

func (s *Sink) savePNG(dir, name string, img image.Image) error {
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(dir, name), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
