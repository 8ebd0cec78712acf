package handler

import (
	"net/http"
	"testing"
	"time"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/mocks"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func availabilityBody(doctorID, hospitalID uuid.UUID) map[string]interface{} {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return map[string]interface{}{
		"doctor_id":   doctorID,
		"hospital_id": hospitalID,
		"start_time":  start,
		"end_time":    start.Add(2 * time.Hour),
	}
}

func TestCreateAvailability_ConflictListsWindows(t *testing.T) {
	availability := new(mocks.AvailabilityUsecase)
	h := NewAvailabilityHandler(availability, validator.NewValidator())
	doctorID, hospitalID := uuid.New(), uuid.New()
	existing := entity.Availability{
		ID:         uuid.New(),
		DoctorID:   doctorID,
		HospitalID: uuid.New(),
		StartTime:  time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
	availability.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateAvailabilityRequest")).
		Return(nil, &usecase.AvailabilityConflictError{Conflicts: []entity.Availability{existing}})

	rec := serve(h.CreateAvailability, newRequest(t, http.MethodPost, "/api/availability", availabilityBody(doctorID, hospitalID), nil))

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, string(env.Error), existing.ID.String())
}

func TestCreateAvailability_StatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidTimeRange, http.StatusBadRequest},
		{usecase.ErrDoctorNotAssociated, http.StatusBadRequest},
		{usecase.ErrForbidden, http.StatusForbidden},
		{usecase.ErrDoctorNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			availability := new(mocks.AvailabilityUsecase)
			h := NewAvailabilityHandler(availability, validator.NewValidator())
			availability.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(h.CreateAvailability, newRequest(t, http.MethodPost, "/", availabilityBody(uuid.New(), uuid.New()), nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCreateAvailability_MissingTimes(t *testing.T) {
	availability := new(mocks.AvailabilityUsecase)
	h := NewAvailabilityHandler(availability, validator.NewValidator())

	rec := serve(h.CreateAvailability, newRequest(t, http.MethodPost, "/", map[string]interface{}{
		"doctor_id": uuid.New(), "hospital_id": uuid.New(),
	}, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	availability.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByDoctorAndHospital_ReadsBothVars(t *testing.T) {
	availability := new(mocks.AvailabilityUsecase)
	h := NewAvailabilityHandler(availability, validator.NewValidator())
	doctorID, hospitalID := uuid.New(), uuid.New()
	availability.On("GetByDoctorAndHospital", mock.Anything, doctorID, hospitalID).
		Return(&dto.AvailabilityListResponse{}, nil)

	rec := serve(h.GetByDoctorAndHospital, newRequest(t, http.MethodGet, "/", nil, map[string]string{
		"doctorId": doctorID.String(), "hospitalId": hospitalID.String(),
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	availability.AssertExpectations(t)
}
