package ports

// FileSystem abstracts the file operations used for the scratch match frame.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories as needed.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// Remove deletes a file. A missing file is reported as an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	Remove(path string) error
}
