package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/repository"
)

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (
			id, patient_id, title, record_type,
			description, file_url, date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.PatientID,
		record.Title,
		record.RecordType,
		record.Description,
		record.FileURL,
		record.Date,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.MedicalRecord, error) {
	query := `
		SELECT id, patient_id, title, record_type,
			   description, file_url, date, created_at
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2
	`

	records := []*model.MedicalRecord{}
	if err := r.db.SelectContext(ctx, &records, query, patientID, limit); err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}

func (r *medicalRecordRepository) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	query := `DELETE FROM medical_records WHERE id = $1 AND patient_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, patientID)
	if err != nil {
		return fmt.Errorf("failed to delete medical record: %w", err)
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

func (r *medicalRecordRepository) CountByPatient(ctx context.Context, patientID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM medical_records WHERE patient_id = $1`
	if err := r.db.GetContext(ctx, &count, query, patientID); err != nil {
		return 0, fmt.Errorf("failed to count medical records: %w", err)
	}
	return count, nil
}
