package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageDescriptor points at a file in a World's uploads folder.
// It is stored in image columns as {"filename": ..., "mimetype": ...}.
type ImageDescriptor struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimetype"`
}

// Value implements driver.Valuer. A nil *ImageDescriptor is written as NULL.
func (d ImageDescriptor) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// NullImage scans a nullable image column.
type NullImage struct {
	Image ImageDescriptor
	Valid bool
}

// Scan implements sql.Scanner. NULL and empty text both mean "no image".
func (n *NullImage) Scan(src any) error {
	n.Image, n.Valid = ImageDescriptor{}, false

	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported image column type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, &n.Image); err != nil {
		return fmt.Errorf("invalid image descriptor: %w", err)
	}
	n.Valid = n.Image.Filename != ""
	return nil
}

// Ptr returns the descriptor, or nil when the column was empty.
func (n NullImage) Ptr() *ImageDescriptor {
	if !n.Valid {
		return nil
	}
	img := n.Image
	return &img
}
