package models

import (
	"fmt"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
)

type File struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MimeType     string    `gorm:"type:varchar(100);not null" json:"mime_type"`
	OriginalName string    `gorm:"type:varchar(255);not null" json:"original_name"`
	Path         string    `gorm:"type:varchar(500);not null" json:"path"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidatePath guards against a file id uploaded for another purpose being
// substituted; the stored path must live under the expected directory.
func (f *File) ValidatePath(expectedPrefix string) error {
	if !strings.HasPrefix(f.Path, expectedPrefix+"/") {
		return fmt.Errorf("File Path doesn't match with %s", expectedPrefix)
	}
	return nil
}
