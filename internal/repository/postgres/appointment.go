package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/repository"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, patient_id, doctor_id, doctor_name, doctor_specialty,
			date, time, reason, notes, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.DoctorName,
		appointment.DoctorSpecialty,
		appointment.Date,
		appointment.Time,
		appointment.Reason,
		appointment.Notes,
		appointment.Status,
		appointment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, doctor_name, doctor_specialty,
			   date, time, reason, notes, status, created_at
		FROM appointments
		WHERE patient_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2
	`

	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, patientID, limit); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// Cancel marks the appointment cancelled when it belongs to the patient.
// Re-cancelling an already cancelled appointment is a successful no-op.
func (r *appointmentRepository) Cancel(ctx context.Context, id, patientID uuid.UUID) error {
	query := `
		UPDATE appointments
		SET status = $1
		WHERE id = $2 AND patient_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, model.AppointmentStatusCancelled, id, patientID)
	if err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) CountByPatient(ctx context.Context, patientID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM appointments WHERE patient_id = $1`
	if err := r.db.GetContext(ctx, &count, query, patientID); err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

func (r *appointmentRepository) CountByPatientAndStatus(ctx context.Context, patientID uuid.UUID, status model.AppointmentStatus) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM appointments WHERE patient_id = $1 AND status = $2`
	if err := r.db.GetContext(ctx, &count, query, patientID, status); err != nil {
		return 0, fmt.Errorf("failed to count appointments by status: %w", err)
	}
	return count, nil
}
