package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mwhitford/portfolio-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add appends a contact message to the log
func (r *ContactRepo) Add(message *models.ContactMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	return r.db.Create(message).Error
}

// FindAll returns every contact message, most recent first
func (r *ContactRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}
