package repository

import (
	"errors"
	"time"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) Create(db *gorm.DB, availability *entity.Availability) error {
	return db.Omit(clause.Associations).Create(availability).Error
}

func (r *availabilityRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Availability, error) {
	var availability entity.Availability
	err := db.Preload("Doctor").Preload("Hospital").Where("id = ?", id).First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) FindAll(db *gorm.DB) ([]entity.Availability, error) {
	var rows []entity.Availability
	err := db.Preload("Doctor").Preload("Hospital").Order("start_time ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *availabilityRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Availability, error) {
	var rows []entity.Availability
	err := db.Preload("Hospital").Where("doctor_id = ?", doctorID).Order("start_time ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *availabilityRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Availability, error) {
	var rows []entity.Availability
	err := db.Preload("Doctor").Where("hospital_id = ?", hospitalID).Order("start_time ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *availabilityRepository) FindByDoctorAndHospital(db *gorm.DB, doctorID, hospitalID uuid.UUID) ([]entity.Availability, error) {
	var rows []entity.Availability
	err := db.Where("doctor_id = ? AND hospital_id = ?", doctorID, hospitalID).Order("start_time ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *availabilityRepository) FindContaining(db *gorm.DB, doctorID, hospitalID uuid.UUID, t time.Time) (*entity.Availability, error) {
	var availability entity.Availability
	err := db.Where("doctor_id = ? AND hospital_id = ? AND start_time <= ? AND end_time > ?", doctorID, hospitalID, t, t).
		Order("start_time ASC").
		First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) Update(db *gorm.DB, availability *entity.Availability) error {
	return db.Omit(clause.Associations).Save(availability).Error
}

func (r *availabilityRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Availability{})
	return result.RowsAffected, result.Error
}

func (r *availabilityRepository) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Availability{}).Where("hospital_id = ?", hospitalID).Count(&count).Error
	return count, err
}

func (r *availabilityRepository) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	result := db.Where("hospital_id = ?", hospitalID).Delete(&entity.Availability{})
	return result.RowsAffected, result.Error
}
