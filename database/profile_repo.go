package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mwhitford/portfolio-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Find returns the singleton profile, or nil when none exists.
func (r *ProfileRepo) Find() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Replace deletes every existing profile row and inserts the given one.
// Last write wins; there is no merge.
func (r *ProfileRepo) Replace(profile *models.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		return tx.Create(profile).Error
	})
}

// Count returns the number of profile rows.
func (r *ProfileRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Count(&count).Error
	return count, err
}

// Add inserts a profile without touching existing rows. Used by seeding.
func (r *ProfileRepo) Add(profile *models.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return r.db.Create(profile).Error
}
