package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/gabriel-vasile/mimetype"
)

// Store keeps uploaded images on disk below root, e.g. root/tours/<name>.jpg.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// SaveImage sniffs the upload, rejects anything that is not an image and
// writes it as dir/name plus the detected extension. It returns the file name.
func (s *Store) SaveImage(fh *multipart.FileHeader, dir, name string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("detect upload type: %w", err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", domain.ErrNotAnImage
	}

	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	target := filepath.Join(s.root, dir)
	if err = os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := filepath.Base(name) + mt.Extension()
	dst, err := os.Create(filepath.Join(target, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return filename, nil
}
