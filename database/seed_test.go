package database

import (
	"os"
	"path/filepath"
	"testing"
)

const testFixture = `{
  "profile": {
    "name": "Test Owner",
    "title": "Developer",
    "email": "[email protected]",
    "social": {"github": "https://github.com/owner"}
  },
  "skills": [
    {"category": "Frontend", "items": ["HTML", "CSS"]},
    {"category": "Backend", "items": ["Go"]}
  ],
  "services": [
    {"title": "Web Development", "price": "from $500", "features": ["Design"]}
  ],
  "projects": [
    {"title": "Project One", "featured": true, "technologies": ["Go"]},
    {"title": "Project Two", "featured": false}
  ],
  "testimonials": [
    {"client": "Dana", "company": "Acme", "rating": 5}
  ]
}`

func newTestDatabase(t *testing.T) Database {
	t.Helper()

	gormDB, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	db := New(gormDB)
	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	return db
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func collectionCounts(t *testing.T, db Database) [5]int64 {
	t.Helper()

	var counts [5]int64
	var err error
	if counts[0], err = db.ProfileRepo().Count(); err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if counts[1], err = db.SkillGroupRepo().Count(); err != nil {
		t.Fatalf("count skill groups: %v", err)
	}
	if counts[2], err = db.ServiceRepo().Count(); err != nil {
		t.Fatalf("count services: %v", err)
	}
	if counts[3], err = db.ProjectRepo().Count(); err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if counts[4], err = db.TestimonialRepo().Count(); err != nil {
		t.Fatalf("count testimonials: %v", err)
	}
	return counts
}

func TestSeedPopulatesEmptyCollections(t *testing.T) {
	db := newTestDatabase(t)
	fixture := writeFixture(t, testFixture)

	if err := db.Seed(fixture); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	counts := collectionCounts(t, db)
	want := [5]int64{1, 2, 1, 2, 1}
	if counts != want {
		t.Fatalf("expected counts %v after seeding, got %v", want, counts)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDatabase(t)
	fixture := writeFixture(t, testFixture)

	if err := db.Seed(fixture); err != nil {
		t.Fatalf("first Seed returned error: %v", err)
	}
	first := collectionCounts(t, db)

	if err := db.Seed(fixture); err != nil {
		t.Fatalf("second Seed returned error: %v", err)
	}
	second := collectionCounts(t, db)

	if first != second {
		t.Fatalf("expected counts unchanged after re-seeding, got %v then %v", first, second)
	}
}

func TestSeedSkipsPopulatedCollection(t *testing.T) {
	db := newTestDatabase(t)

	existing := newTestProject("Existing")
	if err := db.ProjectRepo().Add(existing); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	fixture := writeFixture(t, testFixture)
	if err := db.Seed(fixture); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	count, err := db.ProjectRepo().Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected projects left untouched (1 row), got %d", count)
	}

	// Other collections were still empty and must be seeded
	skillCount, err := db.SkillGroupRepo().Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if skillCount != 2 {
		t.Fatalf("expected 2 seeded skill groups, got %d", skillCount)
	}
}

func TestSeedMissingFileIsNoop(t *testing.T) {
	db := newTestDatabase(t)

	if err := db.Seed(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("expected missing fixture to be a no-op, got %v", err)
	}

	counts := collectionCounts(t, db)
	if counts != [5]int64{} {
		t.Fatalf("expected all collections empty, got %v", counts)
	}
}

func TestSeedMalformedFixtureFails(t *testing.T) {
	db := newTestDatabase(t)
	fixture := writeFixture(t, "{not json")

	if err := db.Seed(fixture); err == nil {
		t.Fatal("expected an error for a malformed fixture")
	}
}
