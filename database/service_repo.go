package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mwhitford/portfolio-backend/models"
)

type ServiceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{db}
}

// FindAll returns all services from the database
func (r *ServiceRepo) FindAll() ([]*models.Service, error) {
	var services []*models.Service
	err := r.db.Find(&services).Error
	return services, err
}

// FindByID returns a service by its ID, or nil when it does not exist
func (r *ServiceRepo) FindByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Add inserts a new service into the database
func (r *ServiceRepo) Add(service *models.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	return r.db.Create(service).Error
}

// AddAll bulk-inserts services. Used by seeding.
func (r *ServiceRepo) AddAll(services []*models.Service) error {
	for _, service := range services {
		if service.ID == uuid.Nil {
			service.ID = uuid.New()
		}
	}
	return r.db.Create(services).Error
}

// Update replaces an existing service in the database
func (r *ServiceRepo) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

// Delete removes a service from the database by id
func (r *ServiceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}

// Count returns the number of service rows
func (r *ServiceRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Count(&count).Error
	return count, err
}
