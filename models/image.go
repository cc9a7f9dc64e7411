package models

import "image"

// Offset is a 2D displacement of an image relative to its sub-page.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DiaryImage is a picture placed on a sub-page.
type DiaryImage struct {
	ID        string  `json:"id"`
	SubPageID string  `json:"subPageId"`
	DiaryID   string  `json:"diaryId"`
	Offset    Offset  `json:"offset"`
	Scale     float64 `json:"scale"`
	Rotation  float64 `json:"rotation"`
	URL       string  `json:"url"`

	// ObjectName is the blob storage key the image was uploaded under.
	// Empty for images referencing an external URL.
	ObjectName string `json:"objectName,omitempty"`

	// Bitmap is decoded from URL on demand and never persisted.
	Bitmap image.Image `json:"-"`
}
