package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientRequired     = errors.New("patient_id is required")
	ErrSlotNotAvailable    = errors.New("time slot not available")
	ErrSlotTaken           = errors.New("appointment already exists for this time slot")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	appointmentRepo    repository.AppointmentRepository
	availabilityRepo   repository.AvailabilityRepository
	doctorHospitalRepo repository.DoctorHospitalRepository
	userRepo           repository.UserRepository
	auditService       service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	availabilityRepo repository.AvailabilityRepository,
	doctorHospitalRepo repository.DoctorHospitalRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                 db,
		log:                log,
		appointmentRepo:    appointmentRepo,
		availabilityRepo:   availabilityRepo,
		doctorHospitalRepo: doctorHospitalRepo,
		userRepo:           userRepo,
		auditService:       auditService,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, err := resolvePatient(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.userRepo.FindByID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil || patient.Role != entity.RolePatient {
		return nil, ErrPatientNotFound
	}

	doctor, err := findDoctor(tx, u.userRepo, req.DoctorID)
	if err != nil {
		return nil, err
	}

	if err := u.validateBooking(tx, req.DoctorID, req.HospitalID, req.AppointmentTime, req.AmountPaid, uuid.Nil); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		HospitalID:      req.HospitalID,
		AppointmentTime: req.AppointmentTime,
		AmountPaid:      req.AmountPaid,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "appointments_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	appointment.Patient = patient
	appointment.Doctor = doctor

	result := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(tx, actorID(ctx), entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

// resolvePatient decides who the appointment is booked for. Patients always
// book for themselves; admins and trusted callers must name the patient.
func resolvePatient(ctx context.Context, requested uuid.UUID) (uuid.UUID, error) {
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		if requested == uuid.Nil {
			return uuid.Nil, ErrPatientRequired
		}
		return requested, nil
	}

	switch role {
	case entity.RolePatient:
		callerID, _ := middleware.GetUserIDFromContext(ctx)
		if requested != uuid.Nil && requested != callerID {
			return uuid.Nil, ErrForbidden
		}
		return callerID, nil
	case entity.RoleHospitalAdmin:
		if requested == uuid.Nil {
			return uuid.Nil, ErrPatientRequired
		}
		return requested, nil
	case entity.RoleDoctor:
		return uuid.Nil, ErrForbidden
	default:
		return uuid.Nil, ErrForbidden
	}
}

// validateBooking applies the booking rules in order and stops at the first
// failure: the time must fall inside an availability window, the slot must be
// free, and the amount must equal the consultation fee. The association row
// is locked up front so concurrent bookings of one doctor and hospital queue.
func (u *appointmentUsecase) validateBooking(tx *gorm.DB, doctorID, hospitalID uuid.UUID, at time.Time, amount decimal.Decimal, excludeID uuid.UUID) error {
	dh, err := u.doctorHospitalRepo.FindForUpdate(tx, doctorID, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to lock doctor-hospital association: %+v", err)
		return err
	}

	window, err := u.availabilityRepo.FindContaining(tx, doctorID, hospitalID, at)
	if err != nil {
		u.log.Warnf("Failed to find availability window: %+v", err)
		return err
	}
	if window == nil {
		return ErrSlotNotAvailable
	}

	taken, err := u.appointmentRepo.FindBySlot(tx, doctorID, hospitalID, at, excludeID)
	if err != nil {
		u.log.Warnf("Failed to find appointment by slot: %+v", err)
		return err
	}
	if taken != nil {
		return ErrSlotTaken
	}

	if dh == nil {
		return ErrDoctorNotAssociated
	}
	if !dh.FeeMatches(amount) {
		return &FeeMismatchError{Expected: dh.ConsultationFee, Got: amount}
	}

	return nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}
	return appointmentList(appointments), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments by patient: %+v", err)
		return nil, err
	}
	return appointmentList(appointments), nil
}

func (u *appointmentUsecase) GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments by doctor: %+v", err)
		return nil, err
	}
	return appointmentList(appointments), nil
}

func (u *appointmentUsecase) GetByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find appointments by hospital: %+v", err)
		return nil, err
	}
	return appointmentList(appointments), nil
}

// Update reschedules an appointment. The booking rules run again against the
// new values, ignoring the appointment's own slot.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if err := authorizePatient(ctx, appointment.PatientID); err != nil {
		return nil, err
	}
	oldValue := converter.AppointmentToResponse(appointment)

	changed := false
	if req.DoctorID != nil && *req.DoctorID != appointment.DoctorID {
		doctor, err := findDoctor(tx, u.userRepo, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		appointment.DoctorID = doctor.ID
		appointment.Doctor = doctor
		changed = true
	}
	if req.HospitalID != nil && *req.HospitalID != appointment.HospitalID {
		appointment.HospitalID = *req.HospitalID
		appointment.Hospital = nil
		changed = true
	}
	if req.AppointmentTime != nil && !req.AppointmentTime.Equal(appointment.AppointmentTime) {
		appointment.AppointmentTime = *req.AppointmentTime
		changed = true
	}
	if req.AmountPaid != nil && !req.AmountPaid.Equal(appointment.AmountPaid) {
		appointment.AmountPaid = *req.AmountPaid
		changed = true
	}

	if !changed {
		return oldValue, nil
	}

	if err := u.validateBooking(tx, appointment.DoctorID, appointment.HospitalID, appointment.AppointmentTime, appointment.AmountPaid, appointment.ID); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "appointments_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	result := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(tx, actorID(ctx), entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), oldValue, result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

// Delete cancels an appointment. There is no cancelled state; the row goes.
func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if err := authorizePatient(ctx, appointment.PatientID); err != nil {
		return err
	}

	if _, err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actorID(ctx), entity.AuditActionAppointmentCancel, "appointment", id.String(), converter.AppointmentToResponse(appointment)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func appointmentList(appointments []entity.Appointment) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}
}
