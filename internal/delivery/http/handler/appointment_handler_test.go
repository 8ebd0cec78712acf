package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/mocks"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookingBody() map[string]interface{} {
	return map[string]interface{}{
		"doctor_id":        uuid.New(),
		"hospital_id":      uuid.New(),
		"appointment_time": time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		"amount_paid":      "450",
	}
}

func TestCreateAppointment_FeeMismatchReportsExpected(t *testing.T) {
	appointments := new(mocks.AppointmentUsecase)
	h := NewAppointmentHandler(appointments, validator.NewValidator())
	appointments.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateAppointmentRequest) bool {
		return req.AmountPaid.Equal(decimal.NewFromInt(450))
	})).Return(nil, &usecase.FeeMismatchError{Expected: decimal.NewFromInt(500), Got: decimal.NewFromInt(450)})

	rec := serve(h.CreateAppointment, newRequest(t, http.MethodPost, "/api/appointments", bookingBody(), nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid amount", env.Message)
	var detail map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &detail))
	assert.Equal(t, "500.00", detail["expected"])
}

func TestCreateAppointment_StatusMapping(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{usecase.ErrSlotNotAvailable, http.StatusBadRequest, "Time slot not available"},
		{usecase.ErrSlotTaken, http.StatusBadRequest, "Appointment already exists for this time slot"},
		{usecase.ErrDoctorNotAssociated, http.StatusBadRequest, "Doctor not associated with this hospital"},
		{usecase.ErrPatientRequired, http.StatusBadRequest, "patient_id is required"},
		{usecase.ErrForbidden, http.StatusForbidden, usecase.ErrForbidden.Error()},
		{usecase.ErrPatientNotFound, http.StatusNotFound, "Patient not found"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			appointments := new(mocks.AppointmentUsecase)
			h := NewAppointmentHandler(appointments, validator.NewValidator())
			appointments.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(h.CreateAppointment, newRequest(t, http.MethodPost, "/", bookingBody(), nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeEnvelope(t, rec).Message)
		})
	}
}

func TestCreateAppointment_Created(t *testing.T) {
	appointments := new(mocks.AppointmentUsecase)
	h := NewAppointmentHandler(appointments, validator.NewValidator())
	patientID := uuid.New()
	stored := &dto.AppointmentResponse{ID: uuid.New(), PatientID: patientID}
	appointments.On("Create", mock.Anything, mock.Anything).Return(stored, nil)

	req := withCaller(newRequest(t, http.MethodPost, "/", bookingBody(), nil), patientID, entity.RolePatient)
	rec := serve(h.CreateAppointment, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, stored.ID, got.ID)
}

func TestDeleteAppointment(t *testing.T) {
	appointments := new(mocks.AppointmentUsecase)
	h := NewAppointmentHandler(appointments, validator.NewValidator())
	id := uuid.New()
	appointments.On("Delete", mock.Anything, id).Return(nil).Once()
	appointments.On("Delete", mock.Anything, id).Return(usecase.ErrAppointmentNotFound).Once()

	rec := serve(h.DeleteAppointment, newRequest(t, http.MethodDelete, "/", nil, map[string]string{"id": id.String()}))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(h.DeleteAppointment, newRequest(t, http.MethodDelete, "/", nil, map[string]string{"id": id.String()}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAppointment_MalformedBody(t *testing.T) {
	appointments := new(mocks.AppointmentUsecase)
	h := NewAppointmentHandler(appointments, validator.NewValidator())

	rec := serve(h.CreateAppointment, newRequest(t, http.MethodPost, "/", "{not json", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeEnvelope(t, rec).Message)
}
