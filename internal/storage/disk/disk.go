package disk

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedFileType is returned when either the file extension or the
// declared content type is outside the allow-lists. Nothing is written in
// that case.
var ErrUnsupportedFileType = errors.New("unsupported file type")

var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".svg":  {},
	".pdf":  {},
}

var allowedContentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"image/svg+xml":   {},
	"application/pdf": {},
}

// Storage owns the flat directory that holds every uploaded file.
type Storage struct {
	dir string
}

// New ensures the storage directory exists and returns a Storage over it.
func New(dir string) (*Storage, error) {
	const op = "storage.disk.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{dir: dir}, nil
}

// Dir returns the storage directory path.
func (s *Storage) Dir() string {
	return s.dir
}

// SaveUpload validates the original filename and declared content type
// against the allow-lists and writes the payload to the storage directory
// under the derived name. The derived name carries no uniqueness suffix, so
// a second upload with the same original name overwrites the first file.
// The write completes before SaveUpload returns.
func (s *Storage) SaveUpload(filename, contentType string, r io.Reader) (string, error) {
	const op = "storage.disk.SaveUpload"

	name := storedName(filename)

	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%s: %q: %w", op, ext, ErrUnsupportedFileType)
	}
	if _, ok := allowedContentTypes[strings.ToLower(contentType)]; !ok {
		return "", fmt.Errorf("%s: %q: %w", op, contentType, ErrUnsupportedFileType)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, err = io.Copy(dst, r); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err = dst.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return name, nil
}

// Remove deletes a stored file. A file that is already absent is not an
// error, so Remove is idempotent.
func (s *Storage) Remove(filename string) error {
	const op = "storage.disk.Remove"

	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// storedName derives the on-disk name from the uploaded file's original
// name: its base name with the original extension, nothing else. Collisions
// between uploads sharing an original name are accepted behavior.
func storedName(filename string) string {
	return filepath.Base(filename)
}

// uniqueStoredName appends a timestamp+random suffix to the base name.
// Not called: the collision-free naming policy is still an open product
// decision, see DESIGN.md.
func uniqueStoredName(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	suffix := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Int63n(1e9))

	return fmt.Sprintf("%s-%s%s", base, suffix, ext)
}
