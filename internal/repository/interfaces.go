package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vitalsync/portal-api/internal/model"
)

// ErrNotFound is returned when a query scoped by id (and owner) matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert trips the unique email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *model.UpdateProfileRequest) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.Appointment, error)
	Cancel(ctx context.Context, id, patientID uuid.UUID) error
	CountByPatient(ctx context.Context, patientID uuid.UUID) (int, error)
	CountByPatientAndStatus(ctx context.Context, patientID uuid.UUID, status model.AppointmentStatus) (int, error)
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *model.MedicalRecord) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.MedicalRecord, error)
	Delete(ctx context.Context, id, patientID uuid.UUID) error
	CountByPatient(ctx context.Context, patientID uuid.UUID) (int, error)
}

type ChatRepository interface {
	Create(ctx context.Context, message *model.ChatMessage) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*model.ChatMessage, error)
}
