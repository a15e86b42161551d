package database

import (
	"gorm.io/gorm"

	"github.com/mwhitford/portfolio-backend/models"
)

type Database struct {
	profileRepo     *ProfileRepo
	skillGroupRepo  *SkillGroupRepo
	serviceRepo     *ServiceRepo
	projectRepo     *ProjectRepo
	testimonialRepo *TestimonialRepo
	contactRepo     *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:     NewProfileRepo(db),
		skillGroupRepo:  NewSkillGroupRepo(db),
		serviceRepo:     NewServiceRepo(db),
		projectRepo:     NewProjectRepo(db),
		testimonialRepo: NewTestimonialRepo(db),
		contactRepo:     NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) SkillGroupRepo() *SkillGroupRepo {
	return d.skillGroupRepo
}

func (d Database) ServiceRepo() *ServiceRepo {
	return d.serviceRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// Migrate creates or updates the schema for every collection.
func (d Database) Migrate() error {
	return d.profileRepo.db.AutoMigrate(
		&models.Profile{},
		&models.SkillGroup{},
		&models.Service{},
		&models.Project{},
		&models.Testimonial{},
		&models.ContactMessage{},
	)
}
