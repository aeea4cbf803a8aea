package services

import "world-scribe/models"

// ImageStore defines the file operations services need for entity images.
// Production uses storage.ImageStore.
type ImageStore interface {
	Save(data []byte, mimeType string) (models.ImageDescriptor, error)
	Read(filename string) ([]byte, error)
	Delete(filename string) error
}

// Image is an image file together with its recorded MIME type.
type Image struct {
	Data     []byte
	MimeType string
}
