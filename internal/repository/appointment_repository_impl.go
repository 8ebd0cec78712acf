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

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Preload("Hospital").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	return r.findWhere(db, "", nil)
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return r.findWhere(db, "patient_id = ?", patientID)
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	return r.findWhere(db, "doctor_id = ?", doctorID)
}

func (r *appointmentRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Appointment, error) {
	return r.findWhere(db, "hospital_id = ?", hospitalID)
}

func (r *appointmentRepository) findWhere(db *gorm.DB, cond string, arg interface{}) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Patient").Preload("Doctor").Preload("Hospital")
	if cond != "" {
		query = query.Where(cond, arg)
	}
	err := query.Order("appointment_time DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBySlot(db *gorm.DB, doctorID, hospitalID uuid.UUID, t time.Time, excludeID uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	query := db.Where("doctor_id = ? AND hospital_id = ? AND appointment_time = ?", doctorID, hospitalID, t)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindRecentByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").Preload("Hospital").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("hospital_id = ?", hospitalID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	result := db.Where("hospital_id = ?", hospitalID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountPatientsByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Distinct("patient_id").
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) SumByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.RevenueTotal, error) {
	var total entity.RevenueTotal
	err := db.Model(&entity.Appointment{}).
		Select("COALESCE(SUM(amount_paid), 0) AS amount, COUNT(*) AS count").
		Where("doctor_id = ?", doctorID).
		Scan(&total).Error
	if err != nil {
		return nil, err
	}
	return &total, nil
}

func (r *appointmentRepository) SumByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (*entity.RevenueTotal, error) {
	var total entity.RevenueTotal
	err := db.Model(&entity.Appointment{}).
		Select("COALESCE(SUM(amount_paid), 0) AS amount, COUNT(*) AS count").
		Where("hospital_id = ?", hospitalID).
		Scan(&total).Error
	if err != nil {
		return nil, err
	}
	return &total, nil
}

func (r *appointmentRepository) SumByDoctorGroupedByHospital(db *gorm.DB, doctorID uuid.UUID) ([]entity.HospitalRevenueRow, error) {
	var rows []entity.HospitalRevenueRow
	err := db.Raw(`
		SELECT h.id AS hospital_id, h.name AS hospital_name,
		       COALESCE(SUM(a.amount_paid), 0) AS amount, COUNT(a.id) AS count
		FROM doctor_hospitals dh
		JOIN hospitals h ON h.id = dh.hospital_id
		LEFT JOIN appointments a ON a.doctor_id = dh.doctor_id AND a.hospital_id = dh.hospital_id
		WHERE dh.doctor_id = ?
		GROUP BY h.id, h.name
		ORDER BY h.name`, doctorID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) SumByDoctorGroupedByMonth(db *gorm.DB, doctorID uuid.UUID, since time.Time) ([]entity.MonthlyRevenueRow, error) {
	var rows []entity.MonthlyRevenueRow
	err := db.Raw(`
		SELECT DATE_TRUNC('month', appointment_time) AS month,
		       COALESCE(SUM(amount_paid), 0) AS amount, COUNT(*) AS count
		FROM appointments
		WHERE doctor_id = ? AND appointment_time >= ?
		GROUP BY 1
		ORDER BY 1`, doctorID, since).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) SumByHospitalGroupedByDoctor(db *gorm.DB, hospitalID uuid.UUID) ([]entity.DoctorRevenueRow, error) {
	var rows []entity.DoctorRevenueRow
	err := db.Raw(`
		SELECT u.id AS doctor_id, u.name AS doctor_name,
		       COALESCE(SUM(a.amount_paid), 0) AS amount, COUNT(a.id) AS count
		FROM doctor_hospitals dh
		JOIN users u ON u.id = dh.doctor_id
		LEFT JOIN appointments a ON a.doctor_id = dh.doctor_id AND a.hospital_id = dh.hospital_id
		WHERE dh.hospital_id = ?
		GROUP BY u.id, u.name
		ORDER BY u.name`, hospitalID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SumByHospitalGroupedByDepartment attributes each appointment to one
// department of the hospital: the one named by the doctor's earliest listed
// matching specialization. Appointments with no matching department are left
// out, so the rows never add up to more than the hospital total.
func (r *appointmentRepository) SumByHospitalGroupedByDepartment(db *gorm.DB, hospitalID uuid.UUID) ([]entity.DepartmentRevenueRow, error) {
	var rows []entity.DepartmentRevenueRow
	err := db.Raw(`
		WITH attributed AS (
			SELECT DISTINCT ON (a.id) a.id, a.amount_paid, d.id AS department_id
			FROM appointments a
			JOIN doctor_profiles dp ON dp.user_id = a.doctor_id
			JOIN departments d ON d.hospital_id = a.hospital_id AND d.name = ANY(dp.specializations)
			WHERE a.hospital_id = ?
			ORDER BY a.id, array_position(dp.specializations, d.name)
		)
		SELECT d.id AS department_id, d.name AS department_name,
		       COALESCE(SUM(x.amount_paid), 0) AS amount, COUNT(x.id) AS count
		FROM departments d
		LEFT JOIN attributed x ON x.department_id = d.id
		WHERE d.hospital_id = ?
		GROUP BY d.id, d.name
		ORDER BY d.name`, hospitalID, hospitalID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
