package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/repository"
)

const recentLimit = 5

type Service struct {
	appointments repository.AppointmentRepository
	records      repository.MedicalRecordRepository
}

func NewService(appointments repository.AppointmentRepository, records repository.MedicalRecordRepository) *Service {
	return &Service{
		appointments: appointments,
		records:      records,
	}
}

// Stats runs four independent queries. The numbers may be mutually
// inconsistent under concurrent writes; the aggregate is not a snapshot.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*model.DashboardStats, error) {
	total, err := s.appointments.CountByPatient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}

	upcoming, err := s.appointments.CountByPatientAndStatus(ctx, userID, model.AppointmentStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming appointments: %w", err)
	}

	totalRecords, err := s.records.CountByPatient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count medical records: %w", err)
	}

	recent, err := s.appointments.ListByPatient(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent appointments: %w", err)
	}

	return &model.DashboardStats{
		TotalAppointments:    total,
		UpcomingAppointments: upcoming,
		TotalRecords:         totalRecords,
		RecentAppointments:   recent,
	}, nil
}
