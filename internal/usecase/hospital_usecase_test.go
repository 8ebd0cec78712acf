package usecase

import (
	"errors"
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type hospitalFixture struct {
	usecase      HospitalUsecase
	sql          sqlmock.Sqlmock
	hospitals    *mocks.HospitalRepository
	departments  *mocks.DepartmentRepository
	links        *mocks.DoctorHospitalRepository
	windows      *mocks.AvailabilityRepository
	appointments *mocks.AppointmentRepository
	audit        *mocks.AuditService
	hospital     *entity.Hospital
}

func newHospitalFixture(t *testing.T) *hospitalFixture {
	db, sql := newTestDB(t)
	f := &hospitalFixture{
		sql:          sql,
		hospitals:    new(mocks.HospitalRepository),
		departments:  new(mocks.DepartmentRepository),
		links:        new(mocks.DoctorHospitalRepository),
		windows:      new(mocks.AvailabilityRepository),
		appointments: new(mocks.AppointmentRepository),
		audit:        new(mocks.AuditService),
		hospital:     &entity.Hospital{ID: uuid.New(), Name: "City General", Location: "Downtown"},
	}
	f.usecase = NewHospitalUsecase(db, quietLogger(), f.hospitals, f.departments, f.links, f.windows, f.appointments, f.audit)
	f.hospitals.On("FindByID", mock.Anything, f.hospital.ID).Return(f.hospital, nil).Maybe()
	return f
}

func (f *hospitalFixture) dependencies(departments, links, appointments, availability int64) {
	id := f.hospital.ID
	f.departments.On("CountByHospitalID", mock.Anything, id).Return(departments, nil)
	f.links.On("CountByHospitalID", mock.Anything, id).Return(links, nil)
	f.appointments.On("CountByHospitalID", mock.Anything, id).Return(appointments, nil)
	f.windows.On("CountByHospitalID", mock.Anything, id).Return(availability, nil)
}

func TestHospitalCreate_DuplicateName(t *testing.T) {
	f := newHospitalFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectRollback()
	f.hospitals.On("FindByName", mock.Anything, "City General").Return(f.hospital, nil)

	ctx, adminID := asAdmin()
	_, err := f.usecase.Create(ctx, adminID, &dto.CreateHospitalRequest{Name: "  City General ", Location: "Uptown"})

	assert.ErrorIs(t, err, ErrHospitalNameExists)
	f.hospitals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHospitalCreate_RecordsCreator(t *testing.T) {
	f := newHospitalFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectCommit()
	ctx, adminID := asAdmin()

	f.hospitals.On("FindByName", mock.Anything, "North Clinic").Return(nil, nil)
	f.hospitals.On("Create", mock.Anything, mock.MatchedBy(func(h *entity.Hospital) bool {
		return h.Name == "North Clinic" && h.CreatedBy == adminID
	})).Return(nil)
	f.audit.On("LogCreate", mock.Anything, &adminID, entity.AuditActionHospitalCreate, "hospital", mock.Anything, mock.Anything).Return(nil)

	result, err := f.usecase.Create(ctx, adminID, &dto.CreateHospitalRequest{Name: "North Clinic", Location: "North"})

	require.NoError(t, err)
	assert.Equal(t, adminID, result.CreatedBy)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestHospitalDelete_BlockedByDependents(t *testing.T) {
	f := newHospitalFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectRollback()
	f.dependencies(2, 1, 0, 3)

	ctx, _ := asAdmin()
	err := f.usecase.Delete(ctx, f.hospital.ID)

	var deps *HospitalDependenciesError
	require.True(t, errors.As(err, &deps))
	assert.Equal(t, entity.HospitalDependencies{Departments: 2, DoctorHospitals: 1, Appointments: 0, Availability: 3}, deps.Counts)
	f.hospitals.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestHospitalDelete_NoDependents(t *testing.T) {
	f := newHospitalFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectCommit()
	f.dependencies(0, 0, 0, 0)
	f.hospitals.On("Delete", mock.Anything, f.hospital.ID).Return(int64(1), nil)
	f.audit.On("LogDelete", mock.Anything, mock.Anything, entity.AuditActionHospitalDelete, "hospital", f.hospital.ID.String(), mock.Anything).Return(nil)

	ctx, _ := asAdmin()
	require.NoError(t, f.usecase.Delete(ctx, f.hospital.ID))
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestHospitalDelete_NotFound(t *testing.T) {
	f := newHospitalFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectRollback()
	missing := uuid.New()
	f.hospitals.On("FindByID", mock.Anything, missing).Return(nil, nil)

	ctx, _ := asAdmin()
	assert.ErrorIs(t, f.usecase.Delete(ctx, missing), ErrHospitalNotFound)
}

func TestHospitalForceDelete_RemovesDependentsInOrder(t *testing.T) {
	f := newHospitalFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectCommit()
	id := f.hospital.ID

	var order []string
	record := func(step string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, step) }
	}
	f.appointments.On("DeleteByHospitalID", mock.Anything, id).Run(record("appointments")).Return(int64(4), nil)
	f.windows.On("DeleteByHospitalID", mock.Anything, id).Run(record("availability")).Return(int64(2), nil)
	f.links.On("DeleteByHospitalID", mock.Anything, id).Run(record("doctor_hospitals")).Return(int64(1), nil)
	f.departments.On("DeleteByHospitalID", mock.Anything, id).Run(record("departments")).Return(int64(3), nil)
	f.hospitals.On("Delete", mock.Anything, id).Run(record("hospital")).Return(int64(1), nil)
	f.audit.On("LogDelete", mock.Anything, mock.Anything, entity.AuditActionHospitalForceDelete, "hospital", id.String(), mock.Anything).Return(nil)

	ctx, _ := asAdmin()
	require.NoError(t, f.usecase.ForceDelete(ctx, id))

	assert.Equal(t, []string{"appointments", "availability", "doctor_hospitals", "departments", "hospital"}, order)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}

func TestHospitalForceDelete_FailureRollsBack(t *testing.T) {
	f := newHospitalFixture(t)
	f.sql.ExpectBegin()
	f.sql.ExpectRollback()
	id := f.hospital.ID

	f.appointments.On("DeleteByHospitalID", mock.Anything, id).Return(int64(4), nil)
	f.windows.On("DeleteByHospitalID", mock.Anything, id).Return(int64(0), errors.New("connection reset"))

	ctx, _ := asAdmin()
	assert.Error(t, f.usecase.ForceDelete(ctx, id))
	f.hospitals.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	assert.NoError(t, f.sql.ExpectationsWereMet())
}
