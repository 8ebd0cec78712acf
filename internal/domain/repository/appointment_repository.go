package repository

import (
	"time"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Appointment, error)
	// FindBySlot returns the appointment occupying (doctor, hospital, t), skipping excludeID when it is not uuid.Nil.
	FindBySlot(db *gorm.DB, doctorID, hospitalID uuid.UUID, t time.Time, excludeID uuid.UUID) (*entity.Appointment, error)
	FindRecentByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit int) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
	DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
	CountPatientsByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error)

	SumByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.RevenueTotal, error)
	SumByDoctorGroupedByHospital(db *gorm.DB, doctorID uuid.UUID) ([]entity.HospitalRevenueRow, error)
	SumByDoctorGroupedByMonth(db *gorm.DB, doctorID uuid.UUID, since time.Time) ([]entity.MonthlyRevenueRow, error)
	SumByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (*entity.RevenueTotal, error)
	SumByHospitalGroupedByDoctor(db *gorm.DB, hospitalID uuid.UUID) ([]entity.DoctorRevenueRow, error)
	SumByHospitalGroupedByDepartment(db *gorm.DB, hospitalID uuid.UUID) ([]entity.DepartmentRevenueRow, error)
}
