package summarizer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/trimmonitor/pkg/mocks"
)

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string { return "# summary\n" }), fs)

	path := filepath.Join("out", "reports", "summary.md")
	if err := w.Write(path, NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile(path)
	if !ok || string(data) != "# summary\n" {
		t.Errorf("unexpected file content %q", data)
	}
	if exists, _ := fs.Exists(filepath.Join("out", "reports")); !exists {
		t.Error("expected the parent directory created")
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("disk full")
	}
	w := NewWriter(NewMarkdownFormatter(), fs)

	if err := w.Write("summary.md", NewSummary()); err == nil {
		t.Error("expected an error")
	}
}
