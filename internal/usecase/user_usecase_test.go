package usecase

import (
	"errors"
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserDelete_RevokesSessionsAfterCommit(t *testing.T) {
	db, sql := newTestDB(t)
	users := new(mocks.UserRepository)
	profiles := new(mocks.DoctorProfileRepository)
	audit := new(mocks.AuditService)
	sessions := new(mocks.SessionStore)
	uc := NewUserUsecase(db, quietLogger(), users, profiles, audit, sessions)

	doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor, DoctorProfile: &entity.DoctorProfile{}}
	sql.ExpectBegin()
	sql.ExpectCommit()
	users.On("FindByID", mock.Anything, doctor.ID).Return(doctor, nil)
	profiles.On("Delete", mock.Anything, doctor.ID).Return(nil)
	users.On("Delete", mock.Anything, doctor.ID).Return(int64(1), nil)
	audit.On("LogDelete", mock.Anything, mock.Anything, entity.AuditActionUserDelete, "user", doctor.ID.String(), mock.Anything).Return(nil)
	sessions.On("RevokeAll", mock.Anything, doctor.ID).Return(2, nil)

	ctx, _ := asAdmin()
	require.NoError(t, uc.Delete(ctx, doctor.ID))

	sessions.AssertExpectations(t)
	profiles.AssertExpectations(t)
	assert.NoError(t, sql.ExpectationsWereMet())
}

func TestUserDelete_ReferencedUser(t *testing.T) {
	db, sql := newTestDB(t)
	users := new(mocks.UserRepository)
	sessions := new(mocks.SessionStore)
	uc := NewUserUsecase(db, quietLogger(), users, new(mocks.DoctorProfileRepository), new(mocks.AuditService), sessions)

	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	sql.ExpectBegin()
	sql.ExpectRollback()
	users.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
	users.On("Delete", mock.Anything, patient.ID).
		Return(int64(0), &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_patient"})

	ctx, _ := asAdmin()
	err := uc.Delete(ctx, patient.ID)

	assert.ErrorIs(t, err, ErrUserHasDependencies)
	sessions.AssertNotCalled(t, "RevokeAll", mock.Anything, mock.Anything)
}

func TestUserUpdate_EmailTakenByAnotherAccount(t *testing.T) {
	db, sql := newTestDB(t)
	users := new(mocks.UserRepository)
	uc := NewUserUsecase(db, quietLogger(), users, new(mocks.DoctorProfileRepository), new(mocks.AuditService), new(mocks.SessionStore))

	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RolePatient}
	sql.ExpectBegin()
	sql.ExpectRollback()
	users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	users.On("FindByEmail", mock.Anything, "b@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	email := "B@example.com"
	_, err := uc.Update(asPatient(user.ID), user.ID, &dto.UpdateUserRequest{Email: &email})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserUpdate_UniqueIDIgnoredForDoctors(t *testing.T) {
	db, sql := newTestDB(t)
	users := new(mocks.UserRepository)
	audit := new(mocks.AuditService)
	uc := NewUserUsecase(db, quietLogger(), users, new(mocks.DoctorProfileRepository), audit, new(mocks.SessionStore))

	doctor := &entity.User{ID: uuid.New(), Name: "Old", Role: entity.RoleDoctor}
	sql.ExpectBegin()
	sql.ExpectCommit()
	users.On("FindByID", mock.Anything, doctor.ID).Return(doctor, nil)
	users.On("Update", mock.Anything, doctor).Return(nil)
	audit.On("LogUpdate", mock.Anything, mock.Anything, entity.AuditActionUserUpdate, "user", doctor.ID.String(), mock.Anything, mock.Anything).Return(nil)

	name := "New"
	uniqueID := "X-1"
	result, err := uc.Update(asDoctor(doctor.ID), doctor.ID, &dto.UpdateUserRequest{Name: &name, UniqueID: &uniqueID})

	require.NoError(t, err)
	assert.Equal(t, "New", result.Name)
	assert.Empty(t, result.UniqueID)
}

func TestUserGetByRole_RejectsUnknownRole(t *testing.T) {
	db, _ := newTestDB(t)
	uc := NewUserUsecase(db, quietLogger(), new(mocks.UserRepository), new(mocks.DoctorProfileRepository), new(mocks.AuditService), new(mocks.SessionStore))

	_, err := uc.GetByRole(t.Context(), entity.Role("nurse"))

	assert.True(t, errors.Is(err, ErrInvalidRole))
}
