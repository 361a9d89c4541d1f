package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

// fileHeader builds a *multipart.FileHeader the way the HTTP server would.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["photo"][0]
}

func TestStore_SaveImage(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root)

	name, err := s.SaveImage(fileHeader(t, "me.jpg", pngHeader), "users", "user-1-1700000000000")

	require.NoError(t, err)
	assert.Equal(t, "user-1-1700000000000.png", name)

	saved, err := os.ReadFile(filepath.Join(root, "users", name))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, saved)
}

func TestStore_SaveImage_RejectsNonImages(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root)

	_, err := s.SaveImage(fileHeader(t, "cv.png", []byte("%PDF-1.4 not a picture")), "users", "user-1")

	assert.ErrorIs(t, err, domain.ErrNotAnImage)
	_, statErr := os.Stat(filepath.Join(root, "users"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_SaveImage_KeepsNameInsideDir(t *testing.T) {
	root := t.TempDir()
	s := NewStore(root)

	name, err := s.SaveImage(fileHeader(t, "x.png", pngHeader), "tours", "../../escape")

	require.NoError(t, err)
	assert.Equal(t, "escape.png", name)
	assert.FileExists(t, filepath.Join(root, "tours", "escape.png"))
}
