package mocks

import (
	"context"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*dto.UserResponse)
	return r0, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*dto.LoginResponse)
	return r0, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

func (m *AuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).(*dto.UserResponse)
	return r0, args.Error(1)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) GetAll(ctx context.Context) (*dto.UserListResponse, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*dto.UserListResponse)
	return r0, args.Error(1)
}

func (m *UserUsecase) GetByRole(ctx context.Context, role entity.Role) (*dto.UserListResponse, error) {
	args := m.Called(ctx, role)
	r0, _ := args.Get(0).(*dto.UserListResponse)
	return r0, args.Error(1)
}

func (m *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*dto.UserResponse)
	return r0, args.Error(1)
}

func (m *UserUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*dto.UserResponse)
	return r0, args.Error(1)
}

func (m *UserUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type HospitalUsecase struct {
	mock.Mock
}

func (m *HospitalUsecase) Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	args := m.Called(ctx, creatorID, req)
	r0, _ := args.Get(0).(*dto.HospitalResponse)
	return r0, args.Error(1)
}

func (m *HospitalUsecase) GetAll(ctx context.Context) (*dto.HospitalListResponse, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*dto.HospitalListResponse)
	return r0, args.Error(1)
}

func (m *HospitalUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*dto.HospitalResponse)
	return r0, args.Error(1)
}

func (m *HospitalUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*dto.HospitalResponse)
	return r0, args.Error(1)
}

func (m *HospitalUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *HospitalUsecase) ForceDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *HospitalUsecase) GetDoctors(ctx context.Context, id uuid.UUID) (*dto.HospitalDoctorListResponse, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*dto.HospitalDoctorListResponse)
	return r0, args.Error(1)
}

type DepartmentUsecase struct {
	mock.Mock
}

func (m *DepartmentUsecase) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*dto.DepartmentResponse)
	return r0, args.Error(1)
}

func (m *DepartmentUsecase) GetAll(ctx context.Context) (*dto.DepartmentListResponse, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*dto.DepartmentListResponse)
	return r0, args.Error(1)
}

func (m *DepartmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*dto.DepartmentResponse)
	return r0, args.Error(1)
}

func (m *DepartmentUsecase) GetByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.DepartmentListResponse, error) {
	args := m.Called(ctx, hospitalID)
	r0, _ := args.Get(0).(*dto.DepartmentListResponse)
	return r0, args.Error(1)
}

func (m *DepartmentUsecase) GetUniqueNames(ctx context.Context) (*dto.DepartmentNameListResponse, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*dto.DepartmentNameListResponse)
	return r0, args.Error(1)
}

func (m *DepartmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*dto.DepartmentResponse)
	return r0, args.Error(1)
}

func (m *DepartmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type DoctorUsecase struct {
	mock.Mock
}

func (m *DoctorUsecase) GetAll(ctx context.Context) (*dto.DoctorListResponse, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*dto.DoctorListResponse)
	return r0, args.Error(1)
}

func (m *DoctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*dto.DoctorResponse)
	return r0, args.Error(1)
}

func (m *DoctorUsecase) GetHospitals(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorHospitalListResponse, error) {
	args := m.Called(ctx, doctorID)
	r0, _ := args.Get(0).(*dto.DoctorHospitalListResponse)
	return r0, args.Error(1)
}

func (m *DoctorUsecase) AssociateHospital(ctx context.Context, doctorID uuid.UUID, req *dto.AssociateHospitalRequest) (*dto.DoctorHospitalResponse, error) {
	args := m.Called(ctx, doctorID, req)
	r0, _ := args.Get(0).(*dto.DoctorHospitalResponse)
	return r0, args.Error(1)
}

func (m *DoctorUsecase) UpdateConsultationFee(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateConsultationFeeRequest) (*dto.DoctorHospitalResponse, error) {
	args := m.Called(ctx, doctorID, req)
	r0, _ := args.Get(0).(*dto.DoctorHospitalResponse)
	return r0, args.Error(1)
}

type AvailabilityUsecase struct {
	mock.Mock
}

func (m *AvailabilityUsecase) Create(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*dto.AvailabilityResponse)
	return r0, args.Error(1)
}

func (m *AvailabilityUsecase) GetAll(ctx context.Context) (*dto.AvailabilityListResponse, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*dto.AvailabilityListResponse)
	return r0, args.Error(1)
}

func (m *AvailabilityUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AvailabilityResponse, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*dto.AvailabilityResponse)
	return r0, args.Error(1)
}

func (m *AvailabilityUsecase) GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	args := m.Called(ctx, doctorID)
	r0, _ := args.Get(0).(*dto.AvailabilityListResponse)
	return r0, args.Error(1)
}

func (m *AvailabilityUsecase) GetByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	args := m.Called(ctx, hospitalID)
	r0, _ := args.Get(0).(*dto.AvailabilityListResponse)
	return r0, args.Error(1)
}

func (m *AvailabilityUsecase) GetByDoctorAndHospital(ctx context.Context, doctorID uuid.UUID, hospitalID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	args := m.Called(ctx, doctorID, hospitalID)
	r0, _ := args.Get(0).(*dto.AvailabilityListResponse)
	return r0, args.Error(1)
}

func (m *AvailabilityUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*dto.AvailabilityResponse)
	return r0, args.Error(1)
}

func (m *AvailabilityUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AppointmentUsecase struct {
	mock.Mock
}

func (m *AppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*dto.AppointmentResponse)
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) GetAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*dto.AppointmentListResponse)
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*dto.AppointmentResponse)
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, patientID)
	r0, _ := args.Get(0).(*dto.AppointmentListResponse)
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, doctorID)
	r0, _ := args.Get(0).(*dto.AppointmentListResponse)
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) GetByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, hospitalID)
	r0, _ := args.Get(0).(*dto.AppointmentListResponse)
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*dto.AppointmentResponse)
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type RevenueUsecase struct {
	mock.Mock
}

func (m *RevenueUsecase) DoctorEarnings(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorEarningsResponse, error) {
	args := m.Called(ctx, doctorID)
	r0, _ := args.Get(0).(*dto.DoctorEarningsResponse)
	return r0, args.Error(1)
}

func (m *RevenueUsecase) DoctorDashboard(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDashboardResponse, error) {
	args := m.Called(ctx, doctorID)
	r0, _ := args.Get(0).(*dto.DoctorDashboardResponse)
	return r0, args.Error(1)
}

func (m *RevenueUsecase) HospitalRevenue(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalRevenueResponse, error) {
	args := m.Called(ctx, hospitalID)
	r0, _ := args.Get(0).(*dto.HospitalRevenueResponse)
	return r0, args.Error(1)
}

func (m *RevenueUsecase) HospitalRevenueByDoctors(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalDoctorRevenueResponse, error) {
	args := m.Called(ctx, hospitalID)
	r0, _ := args.Get(0).(*dto.HospitalDoctorRevenueResponse)
	return r0, args.Error(1)
}

func (m *RevenueUsecase) HospitalRevenueByDepartments(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalDepartmentRevenueResponse, error) {
	args := m.Called(ctx, hospitalID)
	r0, _ := args.Get(0).(*dto.HospitalDepartmentRevenueResponse)
	return r0, args.Error(1)
}

func (m *RevenueUsecase) HospitalDashboard(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalDashboardResponse, error) {
	args := m.Called(ctx, hospitalID)
	r0, _ := args.Get(0).(*dto.HospitalDashboardResponse)
	return r0, args.Error(1)
}

type AuditLogUsecase struct {
	mock.Mock
}

func (m *AuditLogUsecase) GetAll(ctx context.Context, filter *entity.AuditLogFilter) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, filter)
	r0, _ := args.Get(0).(*dto.AuditLogListResponse)
	return r0, args.Error(1)
}

func (m *AuditLogUsecase) GetByID(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*dto.AuditLogResponse)
	return r0, args.Error(1)
}
