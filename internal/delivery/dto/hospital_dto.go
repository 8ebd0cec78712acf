package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateHospitalRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location" validate:"required,max=255"`
}

type UpdateHospitalRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Location *string `json:"location" validate:"omitempty,min=1,max=255"`
}

// Response DTOs

type HospitalResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Location    string               `json:"location"`
	CreatedBy   uuid.UUID            `json:"created_by"`
	Departments []DepartmentResponse `json:"departments,omitempty"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}

// HospitalDoctorResponse is a doctor practising at a hospital with the local fee.
type HospitalDoctorResponse struct {
	DoctorResponse
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

type HospitalDoctorListResponse struct {
	Doctors []HospitalDoctorResponse `json:"doctors"`
	Total   int                      `json:"total"`
}
