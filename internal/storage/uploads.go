package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// UploadStore writes uploaded documents to a local directory under generated
// names. Files are referenced by name in driver rows and served statically.
type UploadStore struct {
	dir string
}

// NewUploadStore creates the upload directory if it does not exist yet.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file and returns its generated name. The name
// combines the upload timestamp with a random id plus the original
// extension, so concurrent uploads in the same millisecond cannot collide.
func (s *UploadStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(fh.Filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored file by its generated name.
func (s *UploadStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, name))
}
