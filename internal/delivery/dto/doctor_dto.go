package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type AssociateHospitalRequest struct {
	HospitalID      uuid.UUID       `json:"hospital_id" validate:"required"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

type UpdateConsultationFeeRequest struct {
	HospitalID      uuid.UUID       `json:"hospital_id" validate:"required"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

// Response DTOs

type DoctorProfileResponse struct {
	Qualifications  string   `json:"qualifications"`
	Specializations []string `json:"specializations"`
	Experience      int      `json:"experience"`
}

type DoctorResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Gender          string    `json:"gender,omitempty"`
	Qualifications  string    `json:"qualifications"`
	Specializations []string  `json:"specializations"`
	Experience      int       `json:"experience"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// DoctorHospitalResponse is one doctor-hospital association with its fee.
type DoctorHospitalResponse struct {
	DoctorID        uuid.UUID       `json:"doctor_id"`
	HospitalID      uuid.UUID       `json:"hospital_id"`
	HospitalName    string          `json:"hospital_name,omitempty"`
	Location        string          `json:"location,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

type DoctorHospitalListResponse struct {
	Hospitals []DoctorHospitalResponse `json:"hospitals"`
	Total     int                      `json:"total"`
}
