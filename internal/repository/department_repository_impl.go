package repository

import (
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	return db.Omit(clause.Associations).Create(department).Error
}

func (r *departmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error) {
	var department entity.Department
	err := db.Preload("Hospital").Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	var departments []entity.Department
	err := db.Preload("Hospital").Order("name ASC").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Department, error) {
	var departments []entity.Department
	err := db.Where("hospital_id = ?", hospitalID).Order("name ASC").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) FindByName(db *gorm.DB, hospitalID uuid.UUID, name string, excludeID uuid.UUID) (*entity.Department, error) {
	var department entity.Department
	query := db.Where("hospital_id = ? AND name = ?", hospitalID, name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) Update(db *gorm.DB, department *entity.Department) error {
	return db.Omit(clause.Associations).Save(department).Error
}

func (r *departmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Department{})
	return result.RowsAffected, result.Error
}

func (r *departmentRepository) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Department{}).Where("hospital_id = ?", hospitalID).Count(&count).Error
	return count, err
}

func (r *departmentRepository) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	result := db.Where("hospital_id = ?", hospitalID).Delete(&entity.Department{})
	return result.RowsAffected, result.Error
}
