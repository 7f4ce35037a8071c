package osfilesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fsys := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "match_frame.png")
	testData := []byte("png bytes")

	if err := fsys.WriteFile(testPath, testData); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fsys.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestFileSystem_WriteFileCreatesPrivateParentDirs(t *testing.T) {
	fsys := New()
	tmpDir := t.TempDir()

	dir := filepath.Join(tmpDir, ".trimmonitor", "trim")
	testPath := filepath.Join(dir, "match_frame.png")
	if err := fsys.WriteFile(testPath, []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat dir: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		t.Errorf("expected user-private directory, got %o", perm)
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fsys := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(testPath, []byte("test"), 0o644); err != nil {
		t.Fatal(err)
	}

	exists, err := fsys.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	exists, err = fsys.Exists(filepath.Join(tmpDir, "nonexistent.txt"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}
}

func TestFileSystem_RemoveMissingIsNotExist(t *testing.T) {
	fsys := New()
	tmpDir := t.TempDir()

	err := fsys.Remove(filepath.Join(tmpDir, "match_frame.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFileSystem_Remove(t *testing.T) {
	fsys := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(testPath, []byte("test"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := fsys.Remove(testPath); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if exists, _ := fsys.Exists(testPath); exists {
		t.Error("expected file to be removed")
	}
}
