package model

import (
	"time"

	"github.com/google/uuid"
)

type MedicalRecord struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PatientID   uuid.UUID `json:"patient_id" db:"patient_id"`
	Title       string    `json:"title" db:"title"`
	RecordType  string    `json:"record_type" db:"record_type"`
	Description *string   `json:"description" db:"description"`
	FileURL     *string   `json:"file_url" db:"file_url"`
	Date        string    `json:"date" db:"date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateMedicalRecordRequest struct {
	Title       string  `json:"title" binding:"required"`
	RecordType  string  `json:"record_type" binding:"required"`
	Description *string `json:"description"`
	FileURL     *string `json:"file_url"`
	Date        string  `json:"date" binding:"required"`
}
