package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/mocks"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDepartment_StatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{usecase.ErrDepartmentNameEmpty, http.StatusBadRequest},
		{usecase.ErrDepartmentNameExists, http.StatusConflict},
		{usecase.ErrHospitalNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			departments := new(mocks.DepartmentUsecase)
			h := NewDepartmentHandler(departments, validator.NewValidator())
			departments.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(h.CreateDepartment, newRequest(t, http.MethodPost, "/", map[string]interface{}{
				"name": "  Cardiology ", "hospital_id": uuid.New(),
			}, nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCreateDepartment_SameNameInAnotherHospital(t *testing.T) {
	departments := new(mocks.DepartmentUsecase)
	h := NewDepartmentHandler(departments, validator.NewValidator())

	hospitalB := uuid.New()
	departments.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateDepartmentRequest) bool {
		return req.HospitalID == hospitalB
	})).Return(&dto.DepartmentResponse{ID: uuid.New(), Name: "Cardiology", HospitalID: hospitalB}, nil)

	rec := serve(h.CreateDepartment, newRequest(t, http.MethodPost, "/", map[string]interface{}{
		"name": "Cardiology", "hospital_id": hospitalB,
	}, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var created dto.DepartmentResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))
	assert.Equal(t, "Cardiology", created.Name)
	assert.Equal(t, hospitalB, created.HospitalID)
}

func TestGetDepartmentsByHospital_UsesHospitalVar(t *testing.T) {
	departments := new(mocks.DepartmentUsecase)
	h := NewDepartmentHandler(departments, validator.NewValidator())

	rec := serve(h.GetDepartmentsByHospital, newRequest(t, http.MethodGet, "/", nil, map[string]string{"id": uuid.New().String()}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	departments.AssertNotCalled(t, "GetByHospital", mock.Anything, mock.Anything)
}
