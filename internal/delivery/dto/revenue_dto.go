package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HospitalEarnings struct {
	HospitalID    uuid.UUID       `json:"hospital_id"`
	HospitalName  string          `json:"hospital_name"`
	Earnings      decimal.Decimal `json:"earnings"`
	Consultations int64           `json:"consultations"`
}

type MonthlyEarnings struct {
	Month         string          `json:"month"` // YYYY-MM
	Earnings      decimal.Decimal `json:"earnings"`
	Consultations int64           `json:"consultations"`
}

type DoctorEarningsResponse struct {
	DoctorID           uuid.UUID          `json:"doctor_id"`
	TotalEarnings      decimal.Decimal    `json:"total_earnings"`
	TotalConsultations int64              `json:"total_consultations"`
	ByHospital         []HospitalEarnings `json:"by_hospital"`
	ByMonth            []MonthlyEarnings  `json:"by_month"`
}

type DoctorStats struct {
	TotalEarnings       decimal.Decimal `json:"total_earnings"`
	TotalConsultations  int64           `json:"total_consultations"`
	TotalPatients       int64           `json:"total_patients"`
	AssociatedHospitals int             `json:"associated_hospitals"`
}

type DoctorDashboardResponse struct {
	Doctor             DoctorResponse        `json:"doctor"`
	Stats              DoctorStats           `json:"stats"`
	RecentAppointments []AppointmentResponse `json:"recent_appointments"`
	Hospitals          []HospitalEarnings    `json:"hospitals"`
	MonthlyEarnings    []MonthlyEarnings     `json:"monthly_earnings"`
}

type HospitalRevenueResponse struct {
	HospitalID         uuid.UUID       `json:"hospital_id"`
	HospitalName       string          `json:"hospital_name"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalConsultations int64           `json:"total_consultations"`
}

type DoctorRevenue struct {
	DoctorID      uuid.UUID       `json:"doctor_id"`
	DoctorName    string          `json:"doctor_name"`
	Revenue       decimal.Decimal `json:"revenue"`
	Consultations int64           `json:"consultations"`
}

type HospitalDoctorRevenueResponse struct {
	HospitalID uuid.UUID       `json:"hospital_id"`
	Doctors    []DoctorRevenue `json:"doctors"`
}

type DepartmentRevenue struct {
	DepartmentID   uuid.UUID       `json:"department_id"`
	DepartmentName string          `json:"department_name"`
	Revenue        decimal.Decimal `json:"revenue"`
	Consultations  int64           `json:"consultations"`
}

type HospitalDepartmentRevenueResponse struct {
	HospitalID  uuid.UUID           `json:"hospital_id"`
	Departments []DepartmentRevenue `json:"departments"`
}

type HospitalDashboardResponse struct {
	Hospital           HospitalResponse `json:"hospital"`
	TotalConsultations int64            `json:"total_consultations"`
	TotalRevenue       decimal.Decimal  `json:"total_revenue"`
	AssociatedDoctors  int64            `json:"associated_doctors"`
	DepartmentsCount   int64            `json:"departments_count"`
}
