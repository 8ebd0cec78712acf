package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-management/config"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/mocks"
	"hospital-management/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	usecase  AuthUsecase
	sql      sqlmock.Sqlmock
	users    *mocks.UserRepository
	profiles *mocks.DoctorProfileRepository
	audit    *mocks.AuditService
	sessions *mocks.SessionStore
	jwt      *jwt.JWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	db, sql := newTestDB(t)
	f := &authFixture{
		sql:      sql,
		users:    new(mocks.UserRepository),
		profiles: new(mocks.DoctorProfileRepository),
		audit:    new(mocks.AuditService),
		sessions: new(mocks.SessionStore),
		jwt:      jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour}),
	}
	f.usecase = NewAuthUsecase(db, quietLogger(), f.users, f.profiles, f.audit, f.sessions, f.jwt)
	return f
}

func TestRegister_DefaultsToPatient(t *testing.T) {
	f := newAuthFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectCommit()
	f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RolePatient &&
			u.UniqueID != nil && *u.UniqueID == "NIK-1" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")) == nil
	})).Return(nil)
	f.audit.On("LogCreate", mock.Anything, (*uuid.UUID)(nil), entity.AuditActionUserRegister, "user", mock.Anything, mock.Anything).Return(nil)

	result, err := f.usecase.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane",
		Email:    "Jane@Example.com",
		Password: "secret1",
		UniqueID: "NIK-1",
		DOB:      "1990-04-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "patient", result.Role)
	assert.Equal(t, "1990-04-01", result.DOB)
	assert.NoError(t, f.sql.ExpectationsWereMet())
	f.profiles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DoctorWithProfile(t *testing.T) {
	f := newAuthFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectCommit()
	experience := 7
	f.users.On("FindByEmail", mock.Anything, "doc@example.com").Return(nil, nil)
	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleDoctor && u.UniqueID == nil
	})).Return(nil)
	f.profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
		return p.Experience == 7 && p.HasSpecialization("Cardiology")
	})).Return(nil)
	f.audit.On("LogCreate", mock.Anything, mock.Anything, entity.AuditActionUserRegister, "user", mock.Anything, mock.Anything).Return(nil)

	result, err := f.usecase.Register(context.Background(), &dto.RegisterRequest{
		Name:            "Dr. Who",
		Email:           "doc@example.com",
		Password:        "secret1",
		Role:            "doctor",
		UniqueID:        "ignored",
		Qualifications:  "MD",
		Specializations: []string{"Cardiology", "Neurology"},
		Experience:      &experience,
	})

	require.NoError(t, err)
	require.NotNil(t, result.DoctorProfile)
	assert.Equal(t, []string{"Cardiology", "Neurology"}, result.DoctorProfile.Specializations)
	assert.Empty(t, result.UniqueID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectRollback()
	f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := f.usecase.Register(context.Background(), &dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestRegister_BadDate(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.usecase.Register(context.Background(), &dto.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret1", DOB: "01/04/1990",
	})

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(&entity.User{ID: uuid.New(), Password: string(hash), Role: entity.RolePatient}, nil)

	_, err = f.usecase.Login(context.Background(), &dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	f.sessions.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoresSession(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.On("FindByEmail", mock.Anything, "doc@example.com").
		Return(&entity.User{ID: userID, Email: "doc@example.com", Password: string(hash), Role: entity.RoleDoctor}, nil)
	f.sessions.On("Store", mock.Anything, userID, mock.AnythingOfType("string"), time.Hour).Return(nil)

	result, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Email: "doc@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	claims, err := f.jwt.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleDoctor, claims.Role)
	f.sessions.AssertCalled(t, "Store", mock.Anything, userID, claims.TokenID, time.Hour)
}

func TestLogout_RevokesToken(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()
	f.sessions.On("Revoke", mock.Anything, userID, "tok-1").Return(nil)

	require.NoError(t, f.usecase.Logout(context.Background(), userID, "tok-1"))
	f.sessions.AssertExpectations(t)
}
