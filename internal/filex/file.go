// Package filex contains small filesystem helpers shared by the client:
// preparing the local store location and validating media files before
// they are submitted for verification.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the parent directory of path (with all
// intermediate directories) if it does not exist yet, and returns path
// unchanged. Used to prepare the location of the local session store.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return path, nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return path, nil
}

// CheckUploadFile verifies that path refers to a regular file not larger
// than maxSize bytes. It returns the file size on success.
func CheckUploadFile(path string, maxSize int64) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", path)
	}
	if fi.Size() > maxSize {
		return 0, fmt.Errorf("%s is too large: %d bytes (max %d)", path, fi.Size(), maxSize)
	}
	return fi.Size(), nil
}
