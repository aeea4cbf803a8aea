package services

import (
	"errors"
	"fmt"
	"log/slog"

	"world-scribe/models"
	"world-scribe/storage"
)

// replaceImage writes the new file before update points the row at it. If the
// row update fails the new file is removed again; otherwise the old file is
// removed best-effort.
func replaceImage(images ImageStore, logger *slog.Logger, data []byte, mimeType string, old *models.ImageDescriptor, update func(*models.ImageDescriptor) error) (*models.ImageDescriptor, error) {
	if len(data) == 0 {
		return nil, NewValidationError("Image file is required")
	}

	desc, err := images.Save(data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	if err := update(&desc); err != nil {
		removeImage(images, logger, desc.Filename)
		return nil, err
	}

	if old != nil {
		removeImage(images, logger, old.Filename)
	}
	return &desc, nil
}

// readImage loads the file behind desc. A missing descriptor or file is reported
// as "Image does not exist for <entity> '<id>'".
func readImage(images ImageStore, desc *models.ImageDescriptor, entity string, id int64) (*Image, error) {
	if desc == nil {
		return nil, imageNotFound(entity, id)
	}

	data, err := images.Read(desc.Filename)
	if errors.Is(err, storage.ErrImageNotFound) {
		return nil, imageNotFound(entity, id)
	}
	if err != nil {
		return nil, err
	}
	return &Image{Data: data, MimeType: desc.MimeType}, nil
}

func removeImage(images ImageStore, logger *slog.Logger, filename string) {
	if err := images.Delete(filename); err != nil {
		logger.Warn("failed to remove image file", "filename", filename, "error", err)
	}
}
