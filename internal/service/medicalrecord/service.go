package medicalrecord

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/repository"
	apperrors "github.com/vitalsync/portal-api/pkg/errors"
)

const listLimit = 100

type Service struct {
	repo repository.MedicalRecordRepository
}

func NewService(repo repository.MedicalRecordRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, patientID uuid.UUID, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	record := &model.MedicalRecord{
		ID:          uuid.New(),
		PatientID:   patientID,
		Title:       req.Title,
		RecordType:  req.RecordType,
		Description: req.Description,
		FileURL:     req.FileURL,
		Date:        req.Date,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create medical record: %w", err)
	}
	return record, nil
}

func (s *Service) List(ctx context.Context, patientID uuid.UUID) ([]*model.MedicalRecord, error) {
	return s.repo.ListByPatient(ctx, patientID, listLimit)
}

// Delete hard-deletes an owner-scoped record.
func (s *Service) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Record not found", err)
		}
		return fmt.Errorf("failed to delete medical record: %w", err)
	}
	return nil
}
