package disk_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"imageUploader/internal/storage/disk"
)

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	storage, err := disk.New(dir)
	require.NoError(t, err)
	require.Equal(t, dir, storage.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestSaveUpload(t *testing.T) {
	storage, err := disk.New(t.TempDir())
	require.NoError(t, err)

	content := []byte("fake png bytes")

	name, err := storage.SaveUpload("picture.png", "image/png", bytes.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, "picture.png", name)

	saved, err := os.ReadFile(filepath.Join(storage.Dir(), "picture.png"))
	require.NoError(t, err)
	require.Equal(t, content, saved)
}

func TestSaveUploadRejectsDisallowedExtension(t *testing.T) {
	storage, err := disk.New(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveUpload("malware.exe", "image/png", bytes.NewReader([]byte("MZ")))
	require.Error(t, err)
	require.True(t, errors.Is(err, disk.ErrUnsupportedFileType))

	entries, err := os.ReadDir(storage.Dir())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSaveUploadRejectsDisallowedContentType(t *testing.T) {
	storage, err := disk.New(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveUpload("picture.png", "application/octet-stream", bytes.NewReader([]byte("data")))
	require.True(t, errors.Is(err, disk.ErrUnsupportedFileType))

	entries, err := os.ReadDir(storage.Dir())
	require.NoError(t, err)
	require.Empty(t, entries)
}

// Two uploads sharing an original name land on the same path; the second
// write wins. This is the accepted naming policy, not a defect being
// worked around.
func TestSaveUploadCollisionOverwrites(t *testing.T) {
	storage, err := disk.New(t.TempDir())
	require.NoError(t, err)

	first := []byte("first upload")
	second := []byte("second upload")

	name1, err := storage.SaveUpload("photo.jpg", "image/jpeg", bytes.NewReader(first))
	require.NoError(t, err)

	name2, err := storage.SaveUpload("photo.jpg", "image/jpeg", bytes.NewReader(second))
	require.NoError(t, err)

	require.Equal(t, name1, name2)

	saved, err := os.ReadFile(filepath.Join(storage.Dir(), name1))
	require.NoError(t, err)
	require.Equal(t, second, saved)
}

func TestSaveUploadStripsDirectoryComponents(t *testing.T) {
	storage, err := disk.New(t.TempDir())
	require.NoError(t, err)

	name, err := storage.SaveUpload("../escape.png", "image/png", bytes.NewReader([]byte("data")))
	require.NoError(t, err)
	require.Equal(t, "escape.png", name)

	_, err = os.Stat(filepath.Join(storage.Dir(), "escape.png"))
	require.NoError(t, err)
}

func TestRemove(t *testing.T) {
	storage, err := disk.New(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveUpload("picture.png", "image/png", bytes.NewReader([]byte("data")))
	require.NoError(t, err)

	require.NoError(t, storage.Remove("picture.png"))

	_, err = os.Stat(filepath.Join(storage.Dir(), "picture.png"))
	require.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFileIsNotAnError(t *testing.T) {
	storage, err := disk.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Remove("never-existed.png"))
}
