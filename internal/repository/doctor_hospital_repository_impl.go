package repository

import (
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorHospitalRepository struct{}

func NewDoctorHospitalRepository() domainRepo.DoctorHospitalRepository {
	return &doctorHospitalRepository{}
}

func (r *doctorHospitalRepository) Create(db *gorm.DB, dh *entity.DoctorHospital) error {
	return db.Omit(clause.Associations).Create(dh).Error
}

func (r *doctorHospitalRepository) Find(db *gorm.DB, doctorID, hospitalID uuid.UUID) (*entity.DoctorHospital, error) {
	var dh entity.DoctorHospital
	err := db.Where("doctor_id = ? AND hospital_id = ?", doctorID, hospitalID).First(&dh).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dh, nil
}

func (r *doctorHospitalRepository) FindForUpdate(db *gorm.DB, doctorID, hospitalID uuid.UUID) (*entity.DoctorHospital, error) {
	return r.Find(db.Clauses(clause.Locking{Strength: "UPDATE"}), doctorID, hospitalID)
}

func (r *doctorHospitalRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorHospital, error) {
	var rows []entity.DoctorHospital
	err := db.Preload("Hospital").Where("doctor_id = ?", doctorID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *doctorHospitalRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.DoctorHospital, error) {
	var rows []entity.DoctorHospital
	err := db.Preload("Doctor").Preload("Doctor.DoctorProfile").
		Where("hospital_id = ?", hospitalID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *doctorHospitalRepository) Update(db *gorm.DB, dh *entity.DoctorHospital) error {
	return db.Model(&entity.DoctorHospital{}).
		Where("doctor_id = ? AND hospital_id = ?", dh.DoctorID, dh.HospitalID).
		Update("consultation_fee", dh.ConsultationFee).Error
}

func (r *doctorHospitalRepository) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.DoctorHospital{}).Where("hospital_id = ?", hospitalID).Count(&count).Error
	return count, err
}

func (r *doctorHospitalRepository) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	result := db.Where("hospital_id = ?", hospitalID).Delete(&entity.DoctorHospital{})
	return result.RowsAffected, result.Error
}
