package repository

import (
	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	// LockByID loads the user with SELECT ... FOR UPDATE; db must be a transaction.
	LockByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
