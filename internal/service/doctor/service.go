package doctor

import (
	"strings"

	"github.com/vitalsync/portal-api/internal/model"
	apperrors "github.com/vitalsync/portal-api/pkg/errors"
)

// Service serves the static doctor directory. The directory is built once at
// startup and never mutated, so reads need no locking.
type Service struct {
	doctors []*model.Doctor
}

func NewService() *Service {
	return &Service{doctors: seedDoctors()}
}

// List returns the directory, optionally filtered by case-insensitive exact
// specialty match.
func (s *Service) List(specialty string) []*model.Doctor {
	if specialty == "" {
		return s.doctors
	}

	filtered := make([]*model.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		if strings.EqualFold(d.Specialty, specialty) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func (s *Service) Get(id string) (*model.Doctor, error) {
	for _, d := range s.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, apperrors.NotFound("Doctor not found", nil)
}
