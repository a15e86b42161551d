package api

import (
	"github.com/mwhitford/portfolio-backend/database"
	"github.com/mwhitford/portfolio-backend/uploads"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, c map[string]string, uploadStore *uploads.Store) *routeHandlers {
	return &routeHandlers{
		authHandler:        newAuthHandler(c),
		uploadHandler:      newUploadHandler(uploadStore),
		profileHandler:     newProfileHandler(database.ProfileRepo()),
		skillGroupHandler:  newSkillGroupHandler(database.SkillGroupRepo()),
		serviceHandler:     newServiceHandler(database.ServiceRepo()),
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		testimonialHandler: newTestimonialHandler(database.TestimonialRepo()),
		contactHandler:     newContactHandler(database.ContactRepo(), c),
	}
}
