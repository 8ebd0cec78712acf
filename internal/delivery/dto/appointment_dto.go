package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID       `json:"patient_id"`
	DoctorID        uuid.UUID       `json:"doctor_id" validate:"required"`
	HospitalID      uuid.UUID       `json:"hospital_id" validate:"required"`
	AppointmentTime time.Time       `json:"appointment_time" validate:"required"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
}

// UpdateAppointmentRequest reschedules an appointment; nil fields keep their value.
type UpdateAppointmentRequest struct {
	DoctorID        *uuid.UUID       `json:"doctor_id"`
	HospitalID      *uuid.UUID       `json:"hospital_id"`
	AppointmentTime *time.Time       `json:"appointment_time"`
	AmountPaid      *decimal.Decimal `json:"amount_paid"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       uuid.UUID       `json:"patient_id"`
	PatientName     string          `json:"patient_name,omitempty"`
	DoctorID        uuid.UUID       `json:"doctor_id"`
	DoctorName      string          `json:"doctor_name,omitempty"`
	HospitalID      uuid.UUID       `json:"hospital_id"`
	HospitalName    string          `json:"hospital_name,omitempty"`
	AppointmentTime time.Time       `json:"appointment_time"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	CreatedAt       time.Time       `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
