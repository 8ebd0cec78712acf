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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUserHasDependencies = errors.New("user is still referenced by other records")

type UserUsecase interface {
	GetAll(ctx context.Context) (*dto.UserListResponse, error)
	GetByRole(ctx context.Context, role entity.Role) (*dto.UserListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
	sessions          service.SessionStore
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	sessions service.SessionStore,
) UserUsecase {
	return &userUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
		sessions:          sessions,
	}
}

func (u *userUsecase) GetAll(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userUsecase) GetByRole(ctx context.Context, role entity.Role) (*dto.UserListResponse, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), role)
	if err != nil {
		u.log.Warnf("Failed to find users by role %s: %+v", role, err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	oldValue := converter.UserToResponse(user)

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			existing, err := u.userRepo.FindByEmail(tx, email)
			if err != nil {
				u.log.Warnf("Failed to find user by email: %+v", err)
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.DOB != nil {
		dob, err := parseDate(*req.DOB)
		if err != nil {
			return nil, err
		}
		user.DOB = dob
	}
	if req.UniqueID != nil && user.Role.KeepsUniqueID() {
		uniqueID := *req.UniqueID
		user.UniqueID = &uniqueID
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if user.Role.HasProfile() && hasProfileChanges(req) {
		profile, err := u.saveDoctorProfile(tx, user, req)
		if err != nil {
			return nil, err
		}
		user.DoctorProfile = profile
	}

	result := converter.UserToResponse(user)
	if err := u.auditService.LogUpdate(tx, actorID(ctx), entity.AuditActionUserUpdate, "user", user.ID.String(), oldValue, result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}

func hasProfileChanges(req *dto.UpdateUserRequest) bool {
	return req.Qualifications != nil || req.Specializations != nil || req.Experience != nil
}

func (u *userUsecase) saveDoctorProfile(tx *gorm.DB, user *entity.User, req *dto.UpdateUserRequest) (*entity.DoctorProfile, error) {
	profile := user.DoctorProfile
	isNew := profile == nil
	if isNew {
		profile = &entity.DoctorProfile{UserID: user.ID, Specializations: []string{}}
	}

	if req.Qualifications != nil {
		profile.Qualifications = *req.Qualifications
	}
	if req.Specializations != nil {
		profile.Specializations = req.Specializations
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}

	var err error
	if isNew {
		err = u.doctorProfileRepo.Create(tx, profile)
	} else {
		err = u.doctorProfileRepo.Update(tx, profile)
	}
	if err != nil {
		u.log.Warnf("Failed to save doctor profile: %+v", err)
		return nil, err
	}
	return profile, nil
}

func (u *userUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.DoctorProfile != nil {
		if err := u.doctorProfileRepo.Delete(tx, user.ID); err != nil {
			u.log.Warnf("Failed to delete doctor profile: %+v", err)
			return err
		}
	}

	if _, err := u.userRepo.Delete(tx, user.ID); err != nil {
		if isForeignKeyError(err, "") {
			return ErrUserHasDependencies
		}
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actorID(ctx), entity.AuditActionUserDelete, "user", user.ID.String(), converter.UserToResponse(user)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// the account is gone; a failed revocation only leaves tokens that no longer resolve to a user
	if _, err := u.sessions.RevokeAll(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to revoke sessions of deleted user %s: %+v", user.ID, err)
	}

	return nil
}
