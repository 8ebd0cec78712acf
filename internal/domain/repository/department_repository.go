package repository

import (
	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error)
	FindAll(db *gorm.DB) ([]entity.Department, error)
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Department, error)
	// FindByName looks up name within one hospital, skipping excludeID when it is not uuid.Nil.
	FindByName(db *gorm.DB, hospitalID uuid.UUID, name string, excludeID uuid.UUID) (*entity.Department, error)
	Update(db *gorm.DB, department *entity.Department) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
	DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error)
}
