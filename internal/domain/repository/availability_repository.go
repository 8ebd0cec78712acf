package repository

import (
	"time"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Create(db *gorm.DB, availability *entity.Availability) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Availability, error)
	FindAll(db *gorm.DB) ([]entity.Availability, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Availability, error)
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Availability, error)
	FindByDoctorAndHospital(db *gorm.DB, doctorID, hospitalID uuid.UUID) ([]entity.Availability, error)
	// FindContaining returns a window of the doctor at the hospital covering t, or nil.
	FindContaining(db *gorm.DB, doctorID, hospitalID uuid.UUID, t time.Time) (*entity.Availability, error)
	Update(db *gorm.DB, availability *entity.Availability) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
	DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
}
