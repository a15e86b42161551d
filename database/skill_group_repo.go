package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mwhitford/portfolio-backend/models"
)

type SkillGroupRepo struct {
	db *gorm.DB
}

func NewSkillGroupRepo(db *gorm.DB) *SkillGroupRepo {
	return &SkillGroupRepo{db}
}

// FindAll returns all skill groups from the database
func (r *SkillGroupRepo) FindAll() ([]*models.SkillGroup, error) {
	var groups []*models.SkillGroup
	err := r.db.Find(&groups).Error
	return groups, err
}

// FindByID returns a skill group by its ID, or nil when it does not exist
func (r *SkillGroupRepo) FindByID(id uuid.UUID) (*models.SkillGroup, error) {
	var group models.SkillGroup
	err := r.db.First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Add inserts a new skill group into the database
func (r *SkillGroupRepo) Add(group *models.SkillGroup) error {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	return r.db.Create(group).Error
}

// AddAll bulk-inserts skill groups. Used by seeding.
func (r *SkillGroupRepo) AddAll(groups []*models.SkillGroup) error {
	for _, group := range groups {
		if group.ID == uuid.Nil {
			group.ID = uuid.New()
		}
	}
	return r.db.Create(groups).Error
}

// Update replaces an existing skill group in the database
func (r *SkillGroupRepo) Update(group *models.SkillGroup) error {
	return r.db.Save(group).Error
}

// Delete removes a skill group from the database by id
func (r *SkillGroupRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SkillGroup{}, "id = ?", id).Error
}

// Count returns the number of skill group rows
func (r *SkillGroupRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SkillGroup{}).Count(&count).Error
	return count, err
}
