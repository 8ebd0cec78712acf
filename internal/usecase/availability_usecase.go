package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrInvalidTimeRange     = errors.New("end time must be after start time")
)

type AvailabilityUsecase interface {
	Create(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetAll(ctx context.Context) (*dto.AvailabilityListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AvailabilityResponse, error)
	GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error)
	GetByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.AvailabilityListResponse, error)
	GetByDoctorAndHospital(ctx context.Context, doctorID, hospitalID uuid.UUID) (*dto.AvailabilityListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type availabilityUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	availabilityRepo   repository.AvailabilityRepository
	userRepo           repository.UserRepository
	doctorHospitalRepo repository.DoctorHospitalRepository
	auditService       service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	userRepo repository.UserRepository,
	doctorHospitalRepo repository.DoctorHospitalRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:                 db,
		log:                log,
		availabilityRepo:   availabilityRepo,
		userRepo:           userRepo,
		doctorHospitalRepo: doctorHospitalRepo,
		auditService:       auditService,
	}
}

func (u *availabilityUsecase) Create(ctx context.Context, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	if !entity.ValidWindow(req.StartTime, req.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	if err := authorizeDoctor(ctx, req.DoctorID); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkWindow(tx, req.DoctorID, req.HospitalID, req.StartTime, req.EndTime, uuid.Nil); err != nil {
		return nil, err
	}

	availability := &entity.Availability{
		DoctorID:   req.DoctorID,
		HospitalID: req.HospitalID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if err := u.availabilityRepo.Create(tx, availability); err != nil {
		if isExclusionError(err, "availability") {
			return nil, &AvailabilityConflictError{}
		}
		u.log.Warnf("Failed to create availability: %+v", err)
		return nil, err
	}

	result := converter.AvailabilityToResponse(availability)
	if err := u.auditService.LogCreate(tx, actorID(ctx), entity.AuditActionAvailabilityCreate, "availability", availability.ID.String(), result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

// checkWindow serialises writers for one doctor by locking the doctor's
// user row, then verifies the association and looks for overlapping windows
// of that doctor at any hospital.
func (u *availabilityUsecase) checkWindow(tx *gorm.DB, doctorID, hospitalID uuid.UUID, start, end time.Time, excludeID uuid.UUID) error {
	doctor, err := u.userRepo.LockByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to lock doctor: %+v", err)
		return err
	}
	if doctor == nil || doctor.Role != entity.RoleDoctor {
		return ErrDoctorNotFound
	}

	dh, err := u.doctorHospitalRepo.Find(tx, doctorID, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find doctor-hospital association: %+v", err)
		return err
	}
	if dh == nil {
		return ErrDoctorNotAssociated
	}

	windows, err := u.availabilityRepo.FindByDoctorID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find availability of doctor: %+v", err)
		return err
	}

	var conflicts []entity.Availability
	for _, w := range windows {
		if w.ID == excludeID {
			continue
		}
		if w.OverlapsWindow(start, end) {
			conflicts = append(conflicts, w)
		}
	}
	if len(conflicts) > 0 {
		return &AvailabilityConflictError{Conflicts: conflicts}
	}

	return nil
}

func (u *availabilityUsecase) GetAll(ctx context.Context) (*dto.AvailabilityListResponse, error) {
	rows, err := u.availabilityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all availability: %+v", err)
		return nil, err
	}
	return availabilityList(rows), nil
}

func (u *availabilityUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AvailabilityResponse, error) {
	availability, err := u.availabilityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find availability by ID: %+v", err)
		return nil, err
	}
	if availability == nil {
		return nil, ErrAvailabilityNotFound
	}
	return converter.AvailabilityToResponse(availability), nil
}

func (u *availabilityUsecase) GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	rows, err := u.availabilityRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find availability by doctor: %+v", err)
		return nil, err
	}
	return availabilityList(rows), nil
}

func (u *availabilityUsecase) GetByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	rows, err := u.availabilityRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find availability by hospital: %+v", err)
		return nil, err
	}
	return availabilityList(rows), nil
}

func (u *availabilityUsecase) GetByDoctorAndHospital(ctx context.Context, doctorID, hospitalID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	rows, err := u.availabilityRepo.FindByDoctorAndHospital(u.db.WithContext(ctx), doctorID, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find availability by doctor and hospital: %+v", err)
		return nil, err
	}
	return availabilityList(rows), nil
}

func (u *availabilityUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	if req.StartTime != nil && req.EndTime != nil && !entity.ValidWindow(*req.StartTime, *req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	availability, err := u.availabilityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find availability by ID: %+v", err)
		return nil, err
	}
	if availability == nil {
		return nil, ErrAvailabilityNotFound
	}
	if err := authorizeDoctor(ctx, availability.DoctorID); err != nil {
		return nil, err
	}
	oldValue := converter.AvailabilityToResponse(availability)

	if req.HospitalID != nil {
		availability.HospitalID = *req.HospitalID
		availability.Hospital = nil
	}
	if req.StartTime != nil {
		availability.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		availability.EndTime = *req.EndTime
	}
	if !entity.ValidWindow(availability.StartTime, availability.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	if err := u.checkWindow(tx, availability.DoctorID, availability.HospitalID, availability.StartTime, availability.EndTime, availability.ID); err != nil {
		return nil, err
	}

	if err := u.availabilityRepo.Update(tx, availability); err != nil {
		if isExclusionError(err, "availability") {
			return nil, &AvailabilityConflictError{}
		}
		u.log.Warnf("Failed to update availability: %+v", err)
		return nil, err
	}

	result := converter.AvailabilityToResponse(availability)
	if err := u.auditService.LogUpdate(tx, actorID(ctx), entity.AuditActionAvailabilityUpdate, "availability", availability.ID.String(), oldValue, result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

func (u *availabilityUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	availability, err := u.availabilityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find availability by ID: %+v", err)
		return err
	}
	if availability == nil {
		return ErrAvailabilityNotFound
	}
	if err := authorizeDoctor(ctx, availability.DoctorID); err != nil {
		return err
	}

	if _, err := u.availabilityRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete availability: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actorID(ctx), entity.AuditActionAvailabilityDelete, "availability", id.String(), converter.AvailabilityToResponse(availability)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func availabilityList(rows []entity.Availability) *dto.AvailabilityListResponse {
	return &dto.AvailabilityListResponse{
		Availability: converter.AvailabilitiesToResponses(rows),
		Total:        len(rows),
	}
}
