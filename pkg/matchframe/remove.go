package matchframe

import (
	"errors"
	"io/fs"

	"github.com/user/trimmonitor/pkg/ports"
)

// RemoveStale deletes path if it exists. A missing file is not an error; every
// other failure is returned. It reports whether a file was removed.
func RemoveStale(fsys ports.FileSystem, path string) (bool, error) {
	err := fsys.Remove(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
