package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vitalsync/portal-api/internal/email"
	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/repository"
	"github.com/vitalsync/portal-api/internal/service/doctor"
	apperrors "github.com/vitalsync/portal-api/pkg/errors"
)

// listLimit caps the owner-scoped listing.
const listLimit = 100

type Service struct {
	repo      repository.AppointmentRepository
	doctorSvc *doctor.Service
	emailSvc  email.Service
}

func NewService(repo repository.AppointmentRepository, doctorSvc *doctor.Service, emailSvc email.Service) *Service {
	return &Service{
		repo:      repo,
		doctorSvc: doctorSvc,
		emailSvc:  emailSvc,
	}
}

// Create books an appointment for the patient. The doctor's display fields
// are denormalized into the row at booking time. Overlapping bookings are
// allowed, there is no conflict detection.
func (s *Service) Create(ctx context.Context, patient *model.User, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	doc, err := s.doctorSvc.Get(req.DoctorID)
	if err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		ID:              uuid.New(),
		PatientID:       patient.ID,
		DoctorID:        doc.ID,
		DoctorName:      doc.Name,
		DoctorSpecialty: doc.Specialty,
		Date:            req.Date,
		Time:            req.Time,
		Reason:          req.Reason,
		Notes:           req.Notes,
		Status:          model.AppointmentStatusScheduled,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	go func() {
		if err := s.emailSvc.SendAppointmentConfirmation(context.Background(), patient.Email, appointment); err != nil {
			log.Warn().Err(err).Str("appointment_id", appointment.ID.String()).
				Msg("failed to send appointment confirmation")
		}
	}()

	return appointment, nil
}

// List returns the caller's appointments, newest date first. Cancelled
// appointments stay in the list.
func (s *Service) List(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID, listLimit)
}

// Cancel soft-deletes by flipping status. Cancelling an already cancelled
// appointment succeeds; only a row that does not exist for this owner is 404.
func (s *Service) Cancel(ctx context.Context, id, patientID uuid.UUID) error {
	if err := s.repo.Cancel(ctx, id, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Appointment not found", err)
		}
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	return nil
}
