// Package mocks holds testify mocks of the repository, service and use case
// interfaces.
package mocks

import (
	"time"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

var (
	_ repository.UserRepository           = (*UserRepository)(nil)
	_ repository.DoctorProfileRepository  = (*DoctorProfileRepository)(nil)
	_ repository.HospitalRepository       = (*HospitalRepository)(nil)
	_ repository.DepartmentRepository     = (*DepartmentRepository)(nil)
	_ repository.DoctorHospitalRepository = (*DoctorHospitalRepository)(nil)
	_ repository.AvailabilityRepository   = (*AvailabilityRepository)(nil)
	_ repository.AppointmentRepository    = (*AppointmentRepository)(nil)
	_ repository.AuditLogRepository       = (*AuditLogRepository)(nil)
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *UserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	r0, _ := args.Get(0).(*entity.User)
	return r0, args.Error(1)
}

func (m *UserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	r0, _ := args.Get(0).(*entity.User)
	return r0, args.Error(1)
}

func (m *UserRepository) LockByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	r0, _ := args.Get(0).(*entity.User)
	return r0, args.Error(1)
}

func (m *UserRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	args := m.Called(db)
	r0, _ := args.Get(0).([]entity.User)
	return r0, args.Error(1)
}

func (m *UserRepository) FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error) {
	args := m.Called(db, role)
	r0, _ := args.Get(0).([]entity.User)
	return r0, args.Error(1)
}

func (m *UserRepository) Update(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *UserRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

type DoctorProfileRepository struct {
	mock.Mock
}

func (m *DoctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *DoctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	args := m.Called(db, userID)
	r0, _ := args.Get(0).(*entity.DoctorProfile)
	return r0, args.Error(1)
}

func (m *DoctorProfileRepository) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	args := m.Called(db)
	r0, _ := args.Get(0).([]entity.DoctorProfile)
	return r0, args.Error(1)
}

func (m *DoctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *DoctorProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) error {
	args := m.Called(db, userID)
	return args.Error(0)
}

type HospitalRepository struct {
	mock.Mock
}

func (m *HospitalRepository) Create(db *gorm.DB, hospital *entity.Hospital) error {
	args := m.Called(db, hospital)
	return args.Error(0)
}

func (m *HospitalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	args := m.Called(db, id)
	r0, _ := args.Get(0).(*entity.Hospital)
	return r0, args.Error(1)
}

func (m *HospitalRepository) FindByName(db *gorm.DB, name string) (*entity.Hospital, error) {
	args := m.Called(db, name)
	r0, _ := args.Get(0).(*entity.Hospital)
	return r0, args.Error(1)
}

func (m *HospitalRepository) FindAll(db *gorm.DB) ([]entity.Hospital, error) {
	args := m.Called(db)
	r0, _ := args.Get(0).([]entity.Hospital)
	return r0, args.Error(1)
}

func (m *HospitalRepository) Update(db *gorm.DB, hospital *entity.Hospital) error {
	args := m.Called(db, hospital)
	return args.Error(0)
}

func (m *HospitalRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type DepartmentRepository struct {
	mock.Mock
}

func (m *DepartmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	args := m.Called(db, department)
	return args.Error(0)
}

func (m *DepartmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Department, error) {
	args := m.Called(db, id)
	r0, _ := args.Get(0).(*entity.Department)
	return r0, args.Error(1)
}

func (m *DepartmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	args := m.Called(db)
	r0, _ := args.Get(0).([]entity.Department)
	return r0, args.Error(1)
}

func (m *DepartmentRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Department, error) {
	args := m.Called(db, hospitalID)
	r0, _ := args.Get(0).([]entity.Department)
	return r0, args.Error(1)
}

func (m *DepartmentRepository) FindByName(db *gorm.DB, hospitalID uuid.UUID, name string, excludeID uuid.UUID) (*entity.Department, error) {
	args := m.Called(db, hospitalID, name, excludeID)
	r0, _ := args.Get(0).(*entity.Department)
	return r0, args.Error(1)
}

func (m *DepartmentRepository) Update(db *gorm.DB, department *entity.Department) error {
	args := m.Called(db, department)
	return args.Error(0)
}

func (m *DepartmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DepartmentRepository) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	args := m.Called(db, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DepartmentRepository) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	args := m.Called(db, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

type DoctorHospitalRepository struct {
	mock.Mock
}

func (m *DoctorHospitalRepository) Create(db *gorm.DB, dh *entity.DoctorHospital) error {
	args := m.Called(db, dh)
	return args.Error(0)
}

func (m *DoctorHospitalRepository) Find(db *gorm.DB, doctorID uuid.UUID, hospitalID uuid.UUID) (*entity.DoctorHospital, error) {
	args := m.Called(db, doctorID, hospitalID)
	r0, _ := args.Get(0).(*entity.DoctorHospital)
	return r0, args.Error(1)
}

func (m *DoctorHospitalRepository) FindForUpdate(db *gorm.DB, doctorID uuid.UUID, hospitalID uuid.UUID) (*entity.DoctorHospital, error) {
	args := m.Called(db, doctorID, hospitalID)
	r0, _ := args.Get(0).(*entity.DoctorHospital)
	return r0, args.Error(1)
}

func (m *DoctorHospitalRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorHospital, error) {
	args := m.Called(db, doctorID)
	r0, _ := args.Get(0).([]entity.DoctorHospital)
	return r0, args.Error(1)
}

func (m *DoctorHospitalRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.DoctorHospital, error) {
	args := m.Called(db, hospitalID)
	r0, _ := args.Get(0).([]entity.DoctorHospital)
	return r0, args.Error(1)
}

func (m *DoctorHospitalRepository) Update(db *gorm.DB, dh *entity.DoctorHospital) error {
	args := m.Called(db, dh)
	return args.Error(0)
}

func (m *DoctorHospitalRepository) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	args := m.Called(db, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DoctorHospitalRepository) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	args := m.Called(db, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

type AvailabilityRepository struct {
	mock.Mock
}

func (m *AvailabilityRepository) Create(db *gorm.DB, availability *entity.Availability) error {
	args := m.Called(db, availability)
	return args.Error(0)
}

func (m *AvailabilityRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Availability, error) {
	args := m.Called(db, id)
	r0, _ := args.Get(0).(*entity.Availability)
	return r0, args.Error(1)
}

func (m *AvailabilityRepository) FindAll(db *gorm.DB) ([]entity.Availability, error) {
	args := m.Called(db)
	r0, _ := args.Get(0).([]entity.Availability)
	return r0, args.Error(1)
}

func (m *AvailabilityRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Availability, error) {
	args := m.Called(db, doctorID)
	r0, _ := args.Get(0).([]entity.Availability)
	return r0, args.Error(1)
}

func (m *AvailabilityRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Availability, error) {
	args := m.Called(db, hospitalID)
	r0, _ := args.Get(0).([]entity.Availability)
	return r0, args.Error(1)
}

func (m *AvailabilityRepository) FindByDoctorAndHospital(db *gorm.DB, doctorID uuid.UUID, hospitalID uuid.UUID) ([]entity.Availability, error) {
	args := m.Called(db, doctorID, hospitalID)
	r0, _ := args.Get(0).([]entity.Availability)
	return r0, args.Error(1)
}

func (m *AvailabilityRepository) FindContaining(db *gorm.DB, doctorID uuid.UUID, hospitalID uuid.UUID, t time.Time) (*entity.Availability, error) {
	args := m.Called(db, doctorID, hospitalID, t)
	r0, _ := args.Get(0).(*entity.Availability)
	return r0, args.Error(1)
}

func (m *AvailabilityRepository) Update(db *gorm.DB, availability *entity.Availability) error {
	args := m.Called(db, availability)
	return args.Error(0)
}

func (m *AvailabilityRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AvailabilityRepository) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	args := m.Called(db, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AvailabilityRepository) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	args := m.Called(db, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *AppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	r0, _ := args.Get(0).(*entity.Appointment)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	args := m.Called(db)
	r0, _ := args.Get(0).([]entity.Appointment)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(db, patientID)
	r0, _ := args.Get(0).([]entity.Appointment)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(db, doctorID)
	r0, _ := args.Get(0).([]entity.Appointment)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(db, hospitalID)
	r0, _ := args.Get(0).([]entity.Appointment)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) FindBySlot(db *gorm.DB, doctorID uuid.UUID, hospitalID uuid.UUID, t time.Time, excludeID uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, doctorID, hospitalID, t, excludeID)
	r0, _ := args.Get(0).(*entity.Appointment)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) FindRecentByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit int) ([]entity.Appointment, error) {
	args := m.Called(db, doctorID, limit)
	r0, _ := args.Get(0).([]entity.Appointment)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *AppointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AppointmentRepository) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	args := m.Called(db, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AppointmentRepository) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	args := m.Called(db, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AppointmentRepository) CountPatientsByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	args := m.Called(db, doctorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AppointmentRepository) SumByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.RevenueTotal, error) {
	args := m.Called(db, doctorID)
	r0, _ := args.Get(0).(*entity.RevenueTotal)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) SumByDoctorGroupedByHospital(db *gorm.DB, doctorID uuid.UUID) ([]entity.HospitalRevenueRow, error) {
	args := m.Called(db, doctorID)
	r0, _ := args.Get(0).([]entity.HospitalRevenueRow)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) SumByDoctorGroupedByMonth(db *gorm.DB, doctorID uuid.UUID, since time.Time) ([]entity.MonthlyRevenueRow, error) {
	args := m.Called(db, doctorID, since)
	r0, _ := args.Get(0).([]entity.MonthlyRevenueRow)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) SumByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (*entity.RevenueTotal, error) {
	args := m.Called(db, hospitalID)
	r0, _ := args.Get(0).(*entity.RevenueTotal)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) SumByHospitalGroupedByDoctor(db *gorm.DB, hospitalID uuid.UUID) ([]entity.DoctorRevenueRow, error) {
	args := m.Called(db, hospitalID)
	r0, _ := args.Get(0).([]entity.DoctorRevenueRow)
	return r0, args.Error(1)
}

func (m *AppointmentRepository) SumByHospitalGroupedByDepartment(db *gorm.DB, hospitalID uuid.UUID) ([]entity.DepartmentRevenueRow, error) {
	args := m.Called(db, hospitalID)
	r0, _ := args.Get(0).([]entity.DepartmentRevenueRow)
	return r0, args.Error(1)
}

type AuditLogRepository struct {
	mock.Mock
}

func (m *AuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *AuditLogRepository) FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, error) {
	args := m.Called(db, filter)
	r0, _ := args.Get(0).([]entity.AuditLog)
	return r0, args.Error(1)
}

func (m *AuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	r0, _ := args.Get(0).(*entity.AuditLog)
	return r0, args.Error(1)
}
