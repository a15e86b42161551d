package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes sets up the unauthenticated read-only API
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/profile", handlers.profileHandler.getProfile())
		r.Get("/api/skills", handlers.skillGroupHandler.getAllSkillGroups())
		r.Get("/api/services", handlers.serviceHandler.getAllServices())
		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/projects/featured", handlers.projectHandler.getFeaturedProjects())
		r.Get("/api/testimonials", handlers.testimonialHandler.getAllTestimonials())
		r.Post("/api/contact", handlers.contactHandler.submitContactMessage())
	})
}

// setupAdminRoutes sets up the admin surface. Everything except login sits
// behind the bearer-token gate.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/admin/login", handlers.authHandler.login())

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/admin/upload", handlers.uploadHandler.upload())

			r.Get("/admin/profile", handlers.profileHandler.getAdminProfile())
			r.Post("/admin/profile", handlers.profileHandler.replaceProfile())

			r.Get("/admin/skills", handlers.skillGroupHandler.getAllSkillGroups())
			r.Post("/admin/skills", handlers.skillGroupHandler.createSkillGroup())
			r.Put("/admin/skills/{skillGroupID}", handlers.skillGroupHandler.updateSkillGroup())
			r.Delete("/admin/skills/{skillGroupID}", handlers.skillGroupHandler.deleteSkillGroup())

			r.Get("/admin/services", handlers.serviceHandler.getAllServices())
			r.Post("/admin/services", handlers.serviceHandler.createService())
			r.Put("/admin/services/{serviceID}", handlers.serviceHandler.updateService())
			r.Delete("/admin/services/{serviceID}", handlers.serviceHandler.deleteService())

			r.Get("/admin/projects", handlers.projectHandler.getAllProjects())
			r.Post("/admin/projects", handlers.projectHandler.createProject())
			r.Put("/admin/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/admin/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Get("/admin/testimonials", handlers.testimonialHandler.getAllTestimonials())
			r.Post("/admin/testimonials", handlers.testimonialHandler.createTestimonial())
			r.Put("/admin/testimonials/{testimonialID}", handlers.testimonialHandler.updateTestimonial())
			r.Delete("/admin/testimonials/{testimonialID}", handlers.testimonialHandler.deleteTestimonial())

			r.Get("/admin/contacts", handlers.contactHandler.getAllContactMessages())
		})
	})
}

// setupStaticRoutes serves uploaded images and the front-end assets, with
// a single-page-app fallback to index.html for unmatched routes.
func setupStaticRoutes(r chi.Router, publicDir, uploadDir string) {
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	r.NotFound(spaHandler(publicDir))
}

func spaHandler(publicDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin" {
			http.ServeFile(w, r, filepath.Join(publicDir, "admin.html"))
			return
		}

		// r.URL.Path is rooted, so Clean cannot escape publicDir
		requested := filepath.Join(publicDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			http.ServeFile(w, r, requested)
			return
		}

		http.ServeFile(w, r, filepath.Join(publicDir, "index.html"))
	}
}
