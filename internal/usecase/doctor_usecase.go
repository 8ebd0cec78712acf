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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidFee          = errors.New("consultation fee must be greater than zero with at most two decimal places")
	ErrAlreadyAssociated   = errors.New("doctor is already associated with this hospital")
	ErrAssociationNotFound = errors.New("doctor-hospital association not found")
)

type DoctorUsecase interface {
	GetAll(ctx context.Context) (*dto.DoctorListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	GetHospitals(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorHospitalListResponse, error)
	AssociateHospital(ctx context.Context, doctorID uuid.UUID, req *dto.AssociateHospitalRequest) (*dto.DoctorHospitalResponse, error)
	UpdateConsultationFee(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateConsultationFeeRequest) (*dto.DoctorHospitalResponse, error)
}

type doctorUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	hospitalRepo       repository.HospitalRepository
	doctorHospitalRepo repository.DoctorHospitalRepository
	auditService       service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	doctorHospitalRepo repository.DoctorHospitalRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		hospitalRepo:       hospitalRepo,
		doctorHospitalRepo: doctorHospitalRepo,
		auditService:       auditService,
	}
}

func (u *doctorUsecase) GetAll(ctx context.Context) (*dto.DoctorListResponse, error) {
	users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	doctors := make([]dto.DoctorResponse, len(users))
	for i := range users {
		doctors[i] = *converter.DoctorToResponse(&users[i])
	}

	return &dto.DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := findDoctor(u.db.WithContext(ctx), u.userRepo, id)
	if err != nil {
		if !errors.Is(err, ErrDoctorNotFound) {
			u.log.Warnf("Failed to find doctor by ID: %+v", err)
		}
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetHospitals(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorHospitalListResponse, error) {
	db := u.db.WithContext(ctx)

	if _, err := findDoctor(db, u.userRepo, doctorID); err != nil {
		return nil, err
	}

	rows, err := u.doctorHospitalRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find hospitals of doctor: %+v", err)
		return nil, err
	}

	return &dto.DoctorHospitalListResponse{
		Hospitals: converter.DoctorHospitalsToResponses(rows),
		Total:     len(rows),
	}, nil
}

func (u *doctorUsecase) AssociateHospital(ctx context.Context, doctorID uuid.UUID, req *dto.AssociateHospitalRequest) (*dto.DoctorHospitalResponse, error) {
	if err := authorizeDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	if !validFee(req.ConsultationFee) {
		return nil, ErrInvalidFee
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := findDoctor(tx, u.userRepo, doctorID); err != nil {
		return nil, err
	}

	hospital, err := u.hospitalRepo.FindByID(tx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	existing, err := u.doctorHospitalRepo.Find(tx, doctorID, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find doctor-hospital association: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyAssociated
	}

	dh := &entity.DoctorHospital{
		DoctorID:        doctorID,
		HospitalID:      req.HospitalID,
		ConsultationFee: req.ConsultationFee,
	}
	if err := u.doctorHospitalRepo.Create(tx, dh); err != nil {
		if isDuplicateKeyError(err, "doctor_hospitals") {
			return nil, ErrAlreadyAssociated
		}
		u.log.Warnf("Failed to create doctor-hospital association: %+v", err)
		return nil, err
	}
	dh.Hospital = hospital

	result := converter.DoctorHospitalToResponse(dh)
	if err := u.auditService.LogCreate(tx, actorID(ctx), entity.AuditActionDoctorAssociate, "doctor_hospital", associationKey(dh), result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

func (u *doctorUsecase) UpdateConsultationFee(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateConsultationFeeRequest) (*dto.DoctorHospitalResponse, error) {
	if err := authorizeDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	if !validFee(req.ConsultationFee) {
		return nil, ErrInvalidFee
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dh, err := u.doctorHospitalRepo.FindForUpdate(tx, doctorID, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find doctor-hospital association: %+v", err)
		return nil, err
	}
	if dh == nil {
		return nil, ErrAssociationNotFound
	}
	oldValue := converter.DoctorHospitalToResponse(dh)

	dh.ConsultationFee = req.ConsultationFee
	if err := u.doctorHospitalRepo.Update(tx, dh); err != nil {
		u.log.Warnf("Failed to update consultation fee: %+v", err)
		return nil, err
	}

	result := converter.DoctorHospitalToResponse(dh)
	if err := u.auditService.LogUpdate(tx, actorID(ctx), entity.AuditActionDoctorFeeUpdate, "doctor_hospital", associationKey(dh), oldValue, result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

// findDoctor loads a user and requires the doctor role.
func findDoctor(db *gorm.DB, userRepo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != entity.RoleDoctor {
		return nil, ErrDoctorNotFound
	}
	return user, nil
}

func validFee(fee decimal.Decimal) bool {
	return fee.IsPositive() && entity.IsCentAmount(fee)
}

func associationKey(dh *entity.DoctorHospital) string {
	return dh.DoctorID.String() + ":" + dh.HospitalID.String()
}
