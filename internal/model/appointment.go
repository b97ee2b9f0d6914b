package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment carries the doctor's name and specialty denormalized at
// booking time; they are not kept in sync with directory changes.
type Appointment struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	PatientID       uuid.UUID         `json:"patient_id" db:"patient_id"`
	DoctorID        string            `json:"doctor_id" db:"doctor_id"`
	DoctorName      string            `json:"doctor_name" db:"doctor_name"`
	DoctorSpecialty string            `json:"doctor_specialty" db:"doctor_specialty"`
	Date            string            `json:"date" db:"date"`
	Time            string            `json:"time" db:"time"`
	Reason          string            `json:"reason" db:"reason"`
	Notes           *string           `json:"notes" db:"notes"`
	Status          AppointmentStatus `json:"status" db:"status"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}

type CreateAppointmentRequest struct {
	DoctorID string  `json:"doctor_id" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Time     string  `json:"time" binding:"required"`
	Reason   string  `json:"reason" binding:"required"`
	Notes    *string `json:"notes"`
}
