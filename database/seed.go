package database

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mwhitford/portfolio-backend/models"
)

// seedFile mirrors the top-level keys of the bundled fixture.
type seedFile struct {
	Profile      *models.Profile       `json:"profile"`
	Skills       []*models.SkillGroup  `json:"skills"`
	Services     []*models.Service     `json:"services"`
	Projects     []*models.Project     `json:"projects"`
	Testimonials []*models.Testimonial `json:"testimonials"`
}

// Seed populates each empty collection from the fixture at path. A
// collection that already has rows is left untouched, so running it on
// every startup is a no-op in steady state. A missing fixture file is
// not an error; a malformed one or a failed insert is.
func (d Database) Seed(path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Info().Str("path", path).Msg("No seed file found, skipping seeding")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", path, err)
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed: parse %s: %w", path, err)
	}

	if data.Profile != nil {
		count, err := d.profileRepo.Count()
		if err != nil {
			return fmt.Errorf("seed: count profiles: %w", err)
		}
		if count == 0 {
			if err := d.profileRepo.Add(data.Profile); err != nil {
				return fmt.Errorf("seed: profile: %w", err)
			}
			log.Info().Msg("Seeded profile")
		}
	}

	if len(data.Skills) > 0 {
		count, err := d.skillGroupRepo.Count()
		if err != nil {
			return fmt.Errorf("seed: count skills: %w", err)
		}
		if count == 0 {
			if err := d.skillGroupRepo.AddAll(data.Skills); err != nil {
				return fmt.Errorf("seed: skills: %w", err)
			}
			log.Info().Int("count", len(data.Skills)).Msg("Seeded skills")
		}
	}

	if len(data.Services) > 0 {
		count, err := d.serviceRepo.Count()
		if err != nil {
			return fmt.Errorf("seed: count services: %w", err)
		}
		if count == 0 {
			if err := d.serviceRepo.AddAll(data.Services); err != nil {
				return fmt.Errorf("seed: services: %w", err)
			}
			log.Info().Int("count", len(data.Services)).Msg("Seeded services")
		}
	}

	if len(data.Projects) > 0 {
		count, err := d.projectRepo.Count()
		if err != nil {
			return fmt.Errorf("seed: count projects: %w", err)
		}
		if count == 0 {
			if err := d.projectRepo.AddAll(data.Projects); err != nil {
				return fmt.Errorf("seed: projects: %w", err)
			}
			log.Info().Int("count", len(data.Projects)).Msg("Seeded projects")
		}
	}

	if len(data.Testimonials) > 0 {
		count, err := d.testimonialRepo.Count()
		if err != nil {
			return fmt.Errorf("seed: count testimonials: %w", err)
		}
		if count == 0 {
			if err := d.testimonialRepo.AddAll(data.Testimonials); err != nil {
				return fmt.Errorf("seed: testimonials: %w", err)
			}
			log.Info().Int("count", len(data.Testimonials)).Msg("Seeded testimonials")
		}
	}

	return nil
}
