package repository

import (
	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorHospitalRepository interface {
	Create(db *gorm.DB, dh *entity.DoctorHospital) error
	Find(db *gorm.DB, doctorID, hospitalID uuid.UUID) (*entity.DoctorHospital, error)
	// FindForUpdate locks the association row; db must be a transaction.
	FindForUpdate(db *gorm.DB, doctorID, hospitalID uuid.UUID) (*entity.DoctorHospital, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorHospital, error)
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.DoctorHospital, error)
	Update(db *gorm.DB, dh *entity.DoctorHospital) error
	CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
	DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
}
