package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mwhitford/portfolio-backend/models"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db}
}

// FindAll returns all testimonials from the database
func (r *TestimonialRepo) FindAll() ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	err := r.db.Find(&testimonials).Error
	return testimonials, err
}

// FindByID returns a testimonial by its ID, or nil when it does not exist
func (r *TestimonialRepo) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Add inserts a new testimonial into the database
func (r *TestimonialRepo) Add(testimonial *models.Testimonial) error {
	if testimonial.ID == uuid.Nil {
		testimonial.ID = uuid.New()
	}
	return r.db.Create(testimonial).Error
}

// AddAll bulk-inserts testimonials. Used by seeding.
func (r *TestimonialRepo) AddAll(testimonials []*models.Testimonial) error {
	for _, testimonial := range testimonials {
		if testimonial.ID == uuid.Nil {
			testimonial.ID = uuid.New()
		}
	}
	return r.db.Create(testimonials).Error
}

// Update replaces an existing testimonial in the database
func (r *TestimonialRepo) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete removes a testimonial from the database by id
func (r *TestimonialRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Testimonial{}, "id = ?", id).Error
}

// Count returns the number of testimonial rows
func (r *TestimonialRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Testimonial{}).Count(&count).Error
	return count, err
}
