package models

import "github.com/google/uuid"

// Testimonial is a client quote. Rating is rendered client-side as star
// glyphs; no bound is enforced here.
type Testimonial struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Client  string    `json:"client" gorm:"type:text;not null"`
	Company string    `json:"company" gorm:"type:text"`
	Message string    `json:"message" gorm:"type:text"`
	Rating  int       `json:"rating" gorm:"not null;default:0"`
	Image   string    `json:"image" gorm:"type:text"`
}
