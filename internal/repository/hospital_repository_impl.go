package repository

import (
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

func (r *hospitalRepository) Create(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Omit(clause.Associations).Create(hospital).Error
}

func (r *hospitalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.Preload("Departments").Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindByName(db *gorm.DB, name string) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.Where("name = ?", name).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindAll(db *gorm.DB) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.Preload("Departments").Order("name ASC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) Update(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Omit(clause.Associations).Save(hospital).Error
}

func (r *hospitalRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Hospital{})
	return result.RowsAffected, result.Error
}
