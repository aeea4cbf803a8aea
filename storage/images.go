package storage

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"world-scribe/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// UploadsDir is the image folder inside every World folder.
const UploadsDir = "uploads"

var (
	ErrImageNotFound   = errors.New("image not found")
	ErrInvalidFilename = errors.New("invalid image filename")
	ErrEmptyImage      = errors.New("image is empty")
)

// ImageStore keeps uploaded image bytes in a World's uploads folder.
// Files are addressed only by the opaque names it generates.
type ImageStore struct {
	fs   hackpadfs.FS
	root string
}

// NewImageStore returns a store rooted at root inside fs, creating the folder
// if needed. root uses slash-separated io/fs paths.
func NewImageStore(fs hackpadfs.FS, root string) (*ImageStore, error) {
	root = path.Clean(root)
	if err := hackpadfs.MkdirAll(fs, root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image folder: %w", err)
	}
	return &ImageStore{fs: fs, root: root}, nil
}

// NewOSImageStore returns a store backed by the operating system folder dir.
func NewOSImageStore(dir string) (*ImageStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	fs := osfs.NewFS()
	root, err := fs.FromOSPath(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image folder %q: %w", dir, err)
	}
	return NewImageStore(fs, root)
}

// Save writes data under a fresh random filename. The MIME type is taken
// from declared unless it is empty or generic, in which case it is sniffed.
func (s *ImageStore) Save(data []byte, declared string) (models.ImageDescriptor, error) {
	if len(data) == 0 {
		return models.ImageDescriptor{}, ErrEmptyImage
	}

	desc := models.ImageDescriptor{
		Filename: strings.ReplaceAll(uuid.New().String(), "-", ""),
		MimeType: DetectMimeType(data, declared),
	}

	if err := hackpadfs.WriteFullFile(s.fs, s.path(desc.Filename), data, 0644); err != nil {
		return models.ImageDescriptor{}, fmt.Errorf("failed to write image: %w", err)
	}
	return desc, nil
}

// Read returns the bytes of filename, or ErrImageNotFound.
func (s *ImageStore) Read(filename string) ([]byte, error) {
	if !validFilename(filename) {
		return nil, ErrInvalidFilename
	}

	data, err := hackpadfs.ReadFile(s.fs, s.path(filename))
	if errors.Is(err, hackpadfs.ErrNotExist) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

// Delete removes filename. A missing file is not an error.
func (s *ImageStore) Delete(filename string) error {
	if !validFilename(filename) {
		return ErrInvalidFilename
	}

	err := hackpadfs.Remove(s.fs, s.path(filename))
	if err != nil && !errors.Is(err, hackpadfs.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// Exists reports whether filename is present in the store.
func (s *ImageStore) Exists(filename string) (bool, error) {
	if !validFilename(filename) {
		return false, ErrInvalidFilename
	}

	_, err := hackpadfs.Stat(s.fs, s.path(filename))
	if errors.Is(err, hackpadfs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func (s *ImageStore) path(filename string) string {
	return path.Join(s.root, filename)
}

func validFilename(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// DetectMimeType returns declared unless it is empty or application/octet-stream,
// otherwise the type sniffed from data.
func DetectMimeType(data []byte, declared string) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(data).String()
}
