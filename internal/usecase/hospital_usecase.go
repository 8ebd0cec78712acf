package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrHospitalNameExists = errors.New("hospital with this name already exists")

type HospitalUsecase interface {
	Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetAll(ctx context.Context) (*dto.HospitalListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ForceDelete(ctx context.Context, id uuid.UUID) error
	GetDoctors(ctx context.Context, id uuid.UUID) (*dto.HospitalDoctorListResponse, error)
}

type hospitalUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	hospitalRepo       repository.HospitalRepository
	departmentRepo     repository.DepartmentRepository
	doctorHospitalRepo repository.DoctorHospitalRepository
	availabilityRepo   repository.AvailabilityRepository
	appointmentRepo    repository.AppointmentRepository
	auditService       service.AuditService
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	departmentRepo repository.DepartmentRepository,
	doctorHospitalRepo repository.DoctorHospitalRepository,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) HospitalUsecase {
	return &hospitalUsecase{
		db:                 db,
		log:                log,
		hospitalRepo:       hospitalRepo,
		departmentRepo:     departmentRepo,
		doctorHospitalRepo: doctorHospitalRepo,
		availabilityRepo:   availabilityRepo,
		appointmentRepo:    appointmentRepo,
		auditService:       auditService,
	}
}

func (u *hospitalUsecase) Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	name := strings.TrimSpace(req.Name)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.hospitalRepo.FindByName(tx, name)
	if err != nil {
		u.log.Warnf("Failed to find hospital by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrHospitalNameExists
	}

	hospital := &entity.Hospital{
		Name:      name,
		Location:  strings.TrimSpace(req.Location),
		CreatedBy: creatorID,
	}
	if err := u.hospitalRepo.Create(tx, hospital); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrHospitalNameExists
		}
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	result := converter.HospitalToResponse(hospital)
	if err := u.auditService.LogCreate(tx, actorID(ctx), entity.AuditActionHospitalCreate, "hospital", hospital.ID.String(), result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

func (u *hospitalUsecase) GetAll(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all hospitals: %+v", err)
		return nil, err
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

func (u *hospitalUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}
	oldValue := converter.HospitalToResponse(hospital)

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != hospital.Name {
			existing, err := u.hospitalRepo.FindByName(tx, name)
			if err != nil {
				u.log.Warnf("Failed to find hospital by name: %+v", err)
				return nil, err
			}
			if existing != nil && existing.ID != hospital.ID {
				return nil, ErrHospitalNameExists
			}
			hospital.Name = name
		}
	}
	if req.Location != nil {
		hospital.Location = strings.TrimSpace(*req.Location)
	}

	if err := u.hospitalRepo.Update(tx, hospital); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrHospitalNameExists
		}
		u.log.Warnf("Failed to update hospital: %+v", err)
		return nil, err
	}

	result := converter.HospitalToResponse(hospital)
	if err := u.auditService.LogUpdate(tx, actorID(ctx), entity.AuditActionHospitalUpdate, "hospital", hospital.ID.String(), oldValue, result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

// Delete removes a hospital only when nothing references it.
func (u *hospitalUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	deps, err := u.countDependencies(tx, id)
	if err != nil {
		return err
	}
	if deps.Blocking() {
		return &HospitalDependenciesError{Counts: deps}
	}

	if _, err := u.hospitalRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err, "") {
			return &HospitalDependenciesError{Counts: deps}
		}
		u.log.Warnf("Failed to delete hospital: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actorID(ctx), entity.AuditActionHospitalDelete, "hospital", id.String(), converter.HospitalToResponse(hospital)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *hospitalUsecase) countDependencies(tx *gorm.DB, id uuid.UUID) (entity.HospitalDependencies, error) {
	var deps entity.HospitalDependencies
	var err error

	if deps.Departments, err = u.departmentRepo.CountByHospitalID(tx, id); err != nil {
		u.log.Warnf("Failed to count departments: %+v", err)
		return deps, err
	}
	if deps.DoctorHospitals, err = u.doctorHospitalRepo.CountByHospitalID(tx, id); err != nil {
		u.log.Warnf("Failed to count doctor associations: %+v", err)
		return deps, err
	}
	if deps.Appointments, err = u.appointmentRepo.CountByHospitalID(tx, id); err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return deps, err
	}
	if deps.Availability, err = u.availabilityRepo.CountByHospitalID(tx, id); err != nil {
		u.log.Warnf("Failed to count availability: %+v", err)
		return deps, err
	}

	return deps, nil
}

// ForceDelete removes the hospital and every dependent row in one transaction.
func (u *hospitalUsecase) ForceDelete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	var deps entity.HospitalDependencies
	if deps.Appointments, err = u.appointmentRepo.DeleteByHospitalID(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointments: %+v", err)
		return err
	}
	if deps.Availability, err = u.availabilityRepo.DeleteByHospitalID(tx, id); err != nil {
		u.log.Warnf("Failed to delete availability: %+v", err)
		return err
	}
	if deps.DoctorHospitals, err = u.doctorHospitalRepo.DeleteByHospitalID(tx, id); err != nil {
		u.log.Warnf("Failed to delete doctor associations: %+v", err)
		return err
	}
	if deps.Departments, err = u.departmentRepo.DeleteByHospitalID(tx, id); err != nil {
		u.log.Warnf("Failed to delete departments: %+v", err)
		return err
	}
	if _, err := u.hospitalRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete hospital: %+v", err)
		return err
	}

	oldValue := map[string]interface{}{
		"hospital": converter.HospitalToResponse(hospital),
		"removed":  deps,
	}
	if err := u.auditService.LogDelete(tx, actorID(ctx), entity.AuditActionHospitalForceDelete, "hospital", id.String(), oldValue); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.WithFields(logrus.Fields{
		"hospital_id":  id,
		"appointments": deps.Appointments,
		"availability": deps.Availability,
		"associations": deps.DoctorHospitals,
		"departments":  deps.Departments,
	}).Info("Hospital force deleted")

	return nil
}

func (u *hospitalUsecase) GetDoctors(ctx context.Context, id uuid.UUID) (*dto.HospitalDoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	hospital, err := u.hospitalRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	rows, err := u.doctorHospitalRepo.FindByHospitalID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctors of hospital: %+v", err)
		return nil, err
	}

	doctors := converter.HospitalDoctorsToResponses(rows)
	return &dto.HospitalDoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}
