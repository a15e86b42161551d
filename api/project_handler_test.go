package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/mwhitford/portfolio-backend/models"
)

func createProjectViaAPI(t *testing.T, router http.Handler, title string, featured bool) models.Project {
	t.Helper()

	recorder := doJSON(t, router, http.MethodPost, "/admin/projects", adminToken(t), map[string]any{
		"title":        title,
		"description":  "a project",
		"category":     "web",
		"technologies": []string{"Go"},
		"featured":     featured,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status 201 creating project, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var project models.Project
	decodeBody(t, recorder, &project)
	return project
}

func TestFeaturedProjectsAreExactSubset(t *testing.T) {
	router, _, _ := newTestRouter(t)

	featured := createProjectViaAPI(t, router, "Featured One", true)
	createProjectViaAPI(t, router, "Plain One", false)

	allRecorder := doJSON(t, router, http.MethodGet, "/api/projects", "", nil)
	if allRecorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", allRecorder.Code)
	}
	var all []models.Project
	decodeBody(t, allRecorder, &all)
	if len(all) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(all))
	}

	featuredRecorder := doJSON(t, router, http.MethodGet, "/api/projects/featured", "", nil)
	if featuredRecorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", featuredRecorder.Code)
	}
	var featuredList []models.Project
	decodeBody(t, featuredRecorder, &featuredList)
	if len(featuredList) != 1 {
		t.Fatalf("expected exactly 1 featured project, got %d", len(featuredList))
	}
	if featuredList[0].ID != featured.ID {
		t.Fatalf("expected featured project %s, got %s", featured.ID, featuredList[0].ID)
	}
}

func TestCreateProjectRequiresTitle(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/admin/projects", adminToken(t), map[string]any{
		"description": "untitled",
	})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}
}

func TestUpdateProjectReplacesRow(t *testing.T) {
	router, _, _ := newTestRouter(t)

	project := createProjectViaAPI(t, router, "Before", false)

	recorder := doJSON(t, router, http.MethodPut, "/admin/projects/"+project.ID.String(), adminToken(t), map[string]any{
		"title":    "After",
		"featured": true,
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var updated models.Project
	decodeBody(t, recorder, &updated)
	if updated.ID != project.ID {
		t.Fatalf("expected id to be preserved, got %s", updated.ID)
	}
	if updated.Title != "After" || !updated.Featured {
		t.Fatalf("expected updated fields, got %+v", updated)
	}
}

func TestUpdateMissingProjectReturns404(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPut, "/admin/projects/"+uuid.NewString(), adminToken(t), map[string]any{
		"title": "Ghost",
	})

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", recorder.Code)
	}
}

func TestDeleteMissingProjectReportsSuccess(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodDelete, "/admin/projects/"+uuid.NewString(), adminToken(t), nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var resp map[string]string
	decodeBody(t, recorder, &resp)
	if resp["status"] != "success" {
		t.Fatalf("expected success-shaped response, got %v", resp)
	}
}

func TestDeleteProjectRemovesRow(t *testing.T) {
	router, db, _ := newTestRouter(t)

	project := createProjectViaAPI(t, router, "Doomed", false)

	recorder := doJSON(t, router, http.MethodDelete, "/admin/projects/"+project.ID.String(), adminToken(t), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	remaining, err := db.ProjectRepo().FindByID(project.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if remaining != nil {
		t.Fatal("expected the project to be gone")
	}
}
