package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"eventhub/internal/domain"
)

// LocalStore writes uploaded files into a single directory on the local
// filesystem and returns paths of the form "uploads/<filename>".
//
// Filenames are taken from the upload as-is: a second upload with the same
// name overwrites the first (last write wins). Collision handling is out of
// scope for now; image paths stay stable across re-uploads because of it.
type LocalStore struct {
	dir string
}

// NewLocalStore creates a LocalStore rooted at dir, creating the directory if
// needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

var _ domain.FileStore = (*LocalStore)(nil)

// Save writes file under the store directory as filename and returns the
// relative path to persist on the owning record.
func (s *LocalStore) Save(file io.Reader, filename string) (string, error) {
	// Strip any client-supplied directory components.
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	dstPath := filepath.Join(s.dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("write file %s: %w", dstPath, err)
	}
	return "uploads/" + name, nil
}
