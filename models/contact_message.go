package models

import "time"

// ContactMessage is a visitor submission from the contact form. Visitors only
// ever create rows; the owner toggles IsRead from the panel.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Subject   string    `gorm:"type:varchar(200);not null"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
