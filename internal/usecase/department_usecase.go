package usecase

import (
	"context"
	"errors"

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
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameEmpty  = errors.New("department name is required")
	ErrDepartmentNameExists = errors.New("department with this name already exists in this hospital")
)

type DepartmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetAll(ctx context.Context) (*dto.DepartmentListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, error)
	GetByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.DepartmentListResponse, error)
	GetUniqueNames(ctx context.Context) (*dto.DepartmentNameListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type departmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
	hospitalRepo   repository.HospitalRepository
	auditService   service.AuditService
}

func NewDepartmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	hospitalRepo repository.HospitalRepository,
	auditService service.AuditService,
) DepartmentUsecase {
	return &departmentUsecase{
		db:             db,
		log:            log,
		departmentRepo: departmentRepo,
		hospitalRepo:   hospitalRepo,
		auditService:   auditService,
	}
}

func (u *departmentUsecase) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	name := entity.NormalizeDepartmentName(req.Name)
	if name == "" {
		return nil, ErrDepartmentNameEmpty
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	if err := u.ensureUniqueName(tx, req.HospitalID, name, uuid.Nil); err != nil {
		return nil, err
	}

	department := &entity.Department{
		Name:       name,
		HospitalID: req.HospitalID,
	}
	if err := u.departmentRepo.Create(tx, department); err != nil {
		if isDuplicateKeyError(err, "departments") {
			return nil, ErrDepartmentNameExists
		}
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}
	department.Hospital = hospital

	result := converter.DepartmentToResponse(department)
	if err := u.auditService.LogCreate(tx, actorID(ctx), entity.AuditActionDepartmentCreate, "department", department.ID.String(), result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

func (u *departmentUsecase) ensureUniqueName(tx *gorm.DB, hospitalID uuid.UUID, name string, excludeID uuid.UUID) error {
	existing, err := u.departmentRepo.FindByName(tx, hospitalID, name, excludeID)
	if err != nil {
		u.log.Warnf("Failed to find department by name: %+v", err)
		return err
	}
	if existing != nil {
		return ErrDepartmentNameExists
	}
	return nil
}

func (u *departmentUsecase) GetAll(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all departments: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Departments: converter.DepartmentsToResponses(departments),
		Total:       len(departments),
	}, nil
}

func (u *departmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find department by ID: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) GetByHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.DepartmentListResponse, error) {
	db := u.db.WithContext(ctx)

	hospital, err := u.hospitalRepo.FindByID(db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	departments, err := u.departmentRepo.FindByHospitalID(db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find departments by hospital: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Departments: converter.DepartmentsToResponses(departments),
		Total:       len(departments),
	}, nil
}

// GetUniqueNames groups every department by name with the hospitals that carry it.
func (u *departmentUsecase) GetUniqueNames(ctx context.Context) (*dto.DepartmentNameListResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all departments: %+v", err)
		return nil, err
	}

	groups := converter.GroupDepartmentsByName(departments)
	return &dto.DepartmentNameListResponse{
		Names: groups,
		Total: len(groups),
	}, nil
}

func (u *departmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	name := entity.NormalizeDepartmentName(req.Name)
	if name == "" {
		return nil, ErrDepartmentNameEmpty
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department by ID: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}
	oldValue := converter.DepartmentToResponse(department)

	if err := u.ensureUniqueName(tx, department.HospitalID, name, department.ID); err != nil {
		return nil, err
	}

	department.Name = name
	if err := u.departmentRepo.Update(tx, department); err != nil {
		if isDuplicateKeyError(err, "departments") {
			return nil, ErrDepartmentNameExists
		}
		u.log.Warnf("Failed to update department: %+v", err)
		return nil, err
	}

	result := converter.DepartmentToResponse(department)
	if err := u.auditService.LogUpdate(tx, actorID(ctx), entity.AuditActionDepartmentUpdate, "department", department.ID.String(), oldValue, result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

func (u *departmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department by ID: %+v", err)
		return err
	}
	if department == nil {
		return ErrDepartmentNotFound
	}

	if _, err := u.departmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete department: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actorID(ctx), entity.AuditActionDepartmentDelete, "department", id.String(), converter.DepartmentToResponse(department)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
