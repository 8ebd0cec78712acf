package dto

import "github.com/google/uuid"

// Request DTOs

type CreateDepartmentRequest struct {
	Name       string    `json:"name" validate:"required,max=255"`
	HospitalID uuid.UUID `json:"hospital_id" validate:"required"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Response DTOs

type DepartmentResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	HospitalID   uuid.UUID `json:"hospital_id"`
	HospitalName string    `json:"hospital_name,omitempty"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}

type HospitalRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DepartmentNameGroup lists every hospital that has a department called Name.
type DepartmentNameGroup struct {
	Name      string        `json:"name"`
	Hospitals []HospitalRef `json:"hospitals"`
}

type DepartmentNameListResponse struct {
	Names []DepartmentNameGroup `json:"names"`
	Total int                   `json:"total"`
}
