package models

import (
	"time"

	"github.com/google/uuid"
)

// Image is one uploaded file's record: the name it is stored under on disk,
// the public path it is served from, and when it arrived. Records are never
// updated in place.
type Image struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UploadedAt time.Time `json:"uploadedAt"`
}
