package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAvailabilityRequest struct {
	DoctorID   uuid.UUID `json:"doctor_id" validate:"required"`
	HospitalID uuid.UUID `json:"hospital_id" validate:"required"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required"`
}

type UpdateAvailabilityRequest struct {
	HospitalID *uuid.UUID `json:"hospital_id"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
}

// Response DTOs

type AvailabilityResponse struct {
	ID           uuid.UUID `json:"id"`
	DoctorID     uuid.UUID `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name,omitempty"`
	HospitalID   uuid.UUID `json:"hospital_id"`
	HospitalName string    `json:"hospital_name,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

type AvailabilityListResponse struct {
	Availability []AvailabilityResponse `json:"availability"`
	Total        int                    `json:"total"`
}
