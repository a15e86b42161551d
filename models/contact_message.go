package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is an append-only record of a contact-form submission.
// Created only by the public contact endpoint, read only by admins.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`
}
