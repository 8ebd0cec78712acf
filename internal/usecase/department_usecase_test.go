package usecase

import (
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDepartmentCreate_BlankNameRejected(t *testing.T) {
	db, sql := newTestDB(t)
	uc := NewDepartmentUsecase(db, quietLogger(), new(mocks.DepartmentRepository), new(mocks.HospitalRepository), new(mocks.AuditService))

	ctx, _ := asAdmin()
	_, err := uc.Create(ctx, &dto.CreateDepartmentRequest{Name: "   ", HospitalID: uuid.New()})

	assert.ErrorIs(t, err, ErrDepartmentNameEmpty)
	assert.NoError(t, sql.ExpectationsWereMet())
}

func TestDepartmentCreate_DuplicateAfterTrim(t *testing.T) {
	db, sql := newTestDB(t)
	departments := new(mocks.DepartmentRepository)
	hospitals := new(mocks.HospitalRepository)
	uc := NewDepartmentUsecase(db, quietLogger(), departments, hospitals, new(mocks.AuditService))

	hospitalID := uuid.New()
	sql.ExpectBegin()
	sql.ExpectRollback()
	hospitals.On("FindByID", mock.Anything, hospitalID).Return(&entity.Hospital{ID: hospitalID}, nil)
	departments.On("FindByName", mock.Anything, hospitalID, "Cardiology", uuid.Nil).
		Return(&entity.Department{ID: uuid.New(), Name: "Cardiology", HospitalID: hospitalID}, nil)

	ctx, _ := asAdmin()
	_, err := uc.Create(ctx, &dto.CreateDepartmentRequest{Name: " Cardiology ", HospitalID: hospitalID})

	assert.ErrorIs(t, err, ErrDepartmentNameExists)
	assert.NoError(t, sql.ExpectationsWereMet())
}

func TestDepartmentCreate_SameNameInAnotherHospital(t *testing.T) {
	db, sql := newTestDB(t)
	departments := new(mocks.DepartmentRepository)
	hospitals := new(mocks.HospitalRepository)
	audit := new(mocks.AuditService)
	uc := NewDepartmentUsecase(db, quietLogger(), departments, hospitals, audit)

	hospitalA := &entity.Hospital{ID: uuid.New(), Name: "City General"}
	hospitalB := &entity.Hospital{ID: uuid.New(), Name: "Metropolitan"}
	sql.ExpectBegin()
	sql.ExpectCommit()
	hospitals.On("FindByID", mock.Anything, hospitalB.ID).Return(hospitalB, nil)
	departments.On("FindByName", mock.Anything, hospitalA.ID, "Cardiology", uuid.Nil).
		Return(&entity.Department{ID: uuid.New(), Name: "Cardiology", HospitalID: hospitalA.ID}, nil).Maybe()
	departments.On("FindByName", mock.Anything, hospitalB.ID, "Cardiology", uuid.Nil).Return(nil, nil)
	departments.On("Create", mock.Anything, mock.MatchedBy(func(d *entity.Department) bool {
		return d.Name == "Cardiology" && d.HospitalID == hospitalB.ID
	})).Return(nil)
	audit.On("LogCreate", mock.Anything, mock.Anything, entity.AuditActionDepartmentCreate, "department", mock.Anything,
		mock.MatchedBy(func(v *dto.DepartmentResponse) bool {
			return v.Name == "Cardiology" && v.HospitalID == hospitalB.ID
		})).Return(nil)

	ctx, _ := asAdmin()
	result, err := uc.Create(ctx, &dto.CreateDepartmentRequest{Name: " Cardiology ", HospitalID: hospitalB.ID})

	require.NoError(t, err)
	assert.Equal(t, "Cardiology", result.Name)
	assert.Equal(t, hospitalB.ID, result.HospitalID)
	assert.Equal(t, "Metropolitan", result.HospitalName)
	departments.AssertNotCalled(t, "FindByName", mock.Anything, hospitalA.ID, "Cardiology", uuid.Nil)
	departments.AssertExpectations(t)
	audit.AssertExpectations(t)
	assert.NoError(t, sql.ExpectationsWereMet())
}

func TestDepartmentCreate_UnknownHospital(t *testing.T) {
	db, sql := newTestDB(t)
	hospitals := new(mocks.HospitalRepository)
	uc := NewDepartmentUsecase(db, quietLogger(), new(mocks.DepartmentRepository), hospitals, new(mocks.AuditService))

	hospitalID := uuid.New()
	sql.ExpectBegin()
	sql.ExpectRollback()
	hospitals.On("FindByID", mock.Anything, hospitalID).Return(nil, nil)

	ctx, _ := asAdmin()
	_, err := uc.Create(ctx, &dto.CreateDepartmentRequest{Name: "Neurology", HospitalID: hospitalID})

	assert.ErrorIs(t, err, ErrHospitalNotFound)
}

func TestDepartmentUpdate_SameNameKeepsRow(t *testing.T) {
	db, sql := newTestDB(t)
	departments := new(mocks.DepartmentRepository)
	audit := new(mocks.AuditService)
	uc := NewDepartmentUsecase(db, quietLogger(), departments, new(mocks.HospitalRepository), audit)

	dept := &entity.Department{ID: uuid.New(), Name: "Pediatrics", HospitalID: uuid.New()}
	sql.ExpectBegin()
	sql.ExpectCommit()
	departments.On("FindByID", mock.Anything, dept.ID).Return(dept, nil)
	departments.On("FindByName", mock.Anything, dept.HospitalID, "Pediatrics", dept.ID).Return(nil, nil)
	departments.On("Update", mock.Anything, dept).Return(nil)
	audit.On("LogUpdate", mock.Anything, mock.Anything, entity.AuditActionDepartmentUpdate, "department", dept.ID.String(), mock.Anything, mock.Anything).Return(nil)

	ctx, _ := asAdmin()
	result, err := uc.Update(ctx, dept.ID, &dto.UpdateDepartmentRequest{Name: "Pediatrics "})

	require.NoError(t, err)
	assert.Equal(t, "Pediatrics", result.Name)
	assert.NoError(t, sql.ExpectationsWereMet())
}

func TestDepartmentGetUniqueNames(t *testing.T) {
	db, _ := newTestDB(t)
	departments := new(mocks.DepartmentRepository)
	uc := NewDepartmentUsecase(db, quietLogger(), departments, new(mocks.HospitalRepository), new(mocks.AuditService))

	a := &entity.Hospital{ID: uuid.New(), Name: "A"}
	b := &entity.Hospital{ID: uuid.New(), Name: "B"}
	departments.On("FindAll", mock.Anything).Return([]entity.Department{
		{ID: uuid.New(), Name: "Neurology", HospitalID: a.ID, Hospital: a},
		{ID: uuid.New(), Name: "Cardiology", HospitalID: a.ID, Hospital: a},
		{ID: uuid.New(), Name: "Cardiology", HospitalID: b.ID, Hospital: b},
	}, nil)

	result, err := uc.GetUniqueNames(t.Context())

	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	assert.Equal(t, "Cardiology", result.Names[0].Name)
	assert.Len(t, result.Names[0].Hospitals, 2)
	assert.Equal(t, "Neurology", result.Names[1].Name)
}
