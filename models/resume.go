package models

import "time"

// Resume is an uploaded CV document. At most one row has IsActive = true at
// any time; the activation rule in ResumeService enforces it at write time.
type Resume struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"type:varchar(100);not null;default:'My Resume'" form:"title"`
	File       string    `gorm:"type:varchar(255);not null"` // blob store reference
	// No gorm default here: a default tag makes GORM drop the zero value
	// from the INSERT, which would silently store false as true. The upload
	// form supplies the active-by-default behavior instead.
	IsActive   bool      `gorm:"index" form:"is_active"`
	UploadedAt time.Time `gorm:"autoCreateTime"`
}
