package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type availabilityFixture struct {
	usecase  AvailabilityUsecase
	sql      sqlmock.Sqlmock
	users    *mocks.UserRepository
	links    *mocks.DoctorHospitalRepository
	windows  *mocks.AvailabilityRepository
	audit    *mocks.AuditService
	doctorID uuid.UUID
	hospital uuid.UUID
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	db, sql := newTestDB(t)
	f := &availabilityFixture{
		sql:      sql,
		users:    new(mocks.UserRepository),
		links:    new(mocks.DoctorHospitalRepository),
		windows:  new(mocks.AvailabilityRepository),
		audit:    new(mocks.AuditService),
		doctorID: uuid.New(),
		hospital: uuid.New(),
	}
	f.usecase = NewAvailabilityUsecase(db, quietLogger(), f.windows, f.users, f.links, f.audit)
	return f
}

func (f *availabilityFixture) doctorIsAssociated() {
	f.users.On("LockByID", mock.Anything, f.doctorID).
		Return(&entity.User{ID: f.doctorID, Role: entity.RoleDoctor}, nil)
	f.links.On("Find", mock.Anything, f.doctorID, f.hospital).
		Return(&entity.DoctorHospital{DoctorID: f.doctorID, HospitalID: f.hospital, ConsultationFee: decimal.NewFromInt(500)}, nil)
}

func slot(hour, min int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.UTC)
}

func TestAvailabilityCreate_InvertedWindowRejectedBeforeQuery(t *testing.T) {
	f := newAvailabilityFixture(t)

	_, err := f.usecase.Create(context.Background(), &dto.CreateAvailabilityRequest{
		DoctorID:   f.doctorID,
		HospitalID: f.hospital,
		StartTime:  slot(10, 0),
		EndTime:    slot(10, 0),
	})

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.NoError(t, f.sql.ExpectationsWereMet())
	f.users.AssertNotCalled(t, "LockByID", mock.Anything, mock.Anything)
}

func TestAvailabilityCreate_DoctorCannotPublishForAnotherDoctor(t *testing.T) {
	f := newAvailabilityFixture(t)

	_, err := f.usecase.Create(asDoctor(uuid.New()), &dto.CreateAvailabilityRequest{
		DoctorID:   f.doctorID,
		HospitalID: f.hospital,
		StartTime:  slot(9, 0),
		EndTime:    slot(10, 0),
	})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestAvailabilityCreate_NotAssociated(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectRollback()
	f.users.On("LockByID", mock.Anything, f.doctorID).
		Return(&entity.User{ID: f.doctorID, Role: entity.RoleDoctor}, nil)
	f.links.On("Find", mock.Anything, f.doctorID, f.hospital).Return(nil, nil)

	_, err := f.usecase.Create(asDoctor(f.doctorID), &dto.CreateAvailabilityRequest{
		DoctorID:   f.doctorID,
		HospitalID: f.hospital,
		StartTime:  slot(9, 0),
		EndTime:    slot(10, 0),
	})

	assert.ErrorIs(t, err, ErrDoctorNotAssociated)
	assert.NoError(t, f.sql.ExpectationsWereMet())
	f.windows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAvailabilityCreate_OverlapAcrossHospitalsIsConflict(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectRollback()
	f.doctorIsAssociated()

	overlapping := entity.Availability{ID: uuid.New(), DoctorID: f.doctorID, HospitalID: uuid.New(), StartTime: slot(9, 30), EndTime: slot(10, 30)}
	adjacent := entity.Availability{ID: uuid.New(), DoctorID: f.doctorID, HospitalID: f.hospital, StartTime: slot(8, 0), EndTime: slot(9, 0)}
	f.windows.On("FindByDoctorID", mock.Anything, f.doctorID).
		Return([]entity.Availability{adjacent, overlapping}, nil)

	_, err := f.usecase.Create(context.Background(), &dto.CreateAvailabilityRequest{
		DoctorID:   f.doctorID,
		HospitalID: f.hospital,
		StartTime:  slot(9, 0),
		EndTime:    slot(10, 0),
	})

	var conflict *AvailabilityConflictError
	require.True(t, errors.As(err, &conflict))
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, overlapping.ID, conflict.Conflicts[0].ID)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestAvailabilityCreate_AdjacentWindowAccepted(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectCommit()
	f.doctorIsAssociated()

	f.windows.On("FindByDoctorID", mock.Anything, f.doctorID).Return([]entity.Availability{
		{ID: uuid.New(), DoctorID: f.doctorID, HospitalID: f.hospital, StartTime: slot(10, 0), EndTime: slot(11, 0)},
	}, nil)
	f.windows.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Availability) bool {
		return a.DoctorID == f.doctorID && a.StartTime.Equal(slot(9, 0)) && a.EndTime.Equal(slot(10, 0))
	})).Return(nil)
	f.audit.On("LogCreate", mock.Anything, mock.Anything, entity.AuditActionAvailabilityCreate, "availability", mock.Anything, mock.Anything).Return(nil)

	result, err := f.usecase.Create(asDoctor(f.doctorID), &dto.CreateAvailabilityRequest{
		DoctorID:   f.doctorID,
		HospitalID: f.hospital,
		StartTime:  slot(9, 0),
		EndTime:    slot(10, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, f.doctorID, result.DoctorID)
	assert.NoError(t, f.sql.ExpectationsWereMet())
	f.audit.AssertExpectations(t)
}

func TestAvailabilityUpdate_IgnoresItsOwnWindow(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectCommit()
	f.doctorIsAssociated()

	current := &entity.Availability{ID: uuid.New(), DoctorID: f.doctorID, HospitalID: f.hospital, StartTime: slot(9, 0), EndTime: slot(10, 0)}
	f.windows.On("FindByID", mock.Anything, current.ID).Return(current, nil)
	f.windows.On("FindByDoctorID", mock.Anything, f.doctorID).Return([]entity.Availability{*current}, nil)
	f.windows.On("Update", mock.Anything, current).Return(nil)
	f.audit.On("LogUpdate", mock.Anything, mock.Anything, entity.AuditActionAvailabilityUpdate, "availability", current.ID.String(), mock.Anything, mock.Anything).Return(nil)

	end := slot(10, 30)
	result, err := f.usecase.Update(context.Background(), current.ID, &dto.UpdateAvailabilityRequest{EndTime: &end})

	require.NoError(t, err)
	assert.True(t, result.EndTime.Equal(end))
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestAvailabilityUpdate_MergedWindowMustStayValid(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectRollback()

	current := &entity.Availability{ID: uuid.New(), DoctorID: f.doctorID, HospitalID: f.hospital, StartTime: slot(9, 0), EndTime: slot(10, 0)}
	f.windows.On("FindByID", mock.Anything, current.ID).Return(current, nil)

	start := slot(11, 0)
	_, err := f.usecase.Update(context.Background(), current.ID, &dto.UpdateAvailabilityRequest{StartTime: &start})

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}
