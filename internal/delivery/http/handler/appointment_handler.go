package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment books a slot
// @Summary Book an appointment
// @Description The time must fall inside one of the doctor's availability windows at the hospital and the amount must equal the consultation fee.
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Booking"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathUUID(w, r, "id", "appointment")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), appointmentID)
	if err != nil {
		h.writeError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathUUID(w, r, "patientId", "patient")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetByPatient(r.Context(), patientID)
	if err != nil {
		h.writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUUID(w, r, "doctorId", "doctor")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetByDoctor(r.Context(), doctorID)
	if err != nil {
		h.writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetByHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := pathUUID(w, r, "hospitalId", "hospital")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetByHospital(r.Context(), hospitalID)
	if err != nil {
		h.writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathUUID(w, r, "id", "appointment")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), appointmentID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// DeleteAppointment cancels an appointment.
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathUUID(w, r, "id", "appointment")
	if !ok {
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), appointmentID); err != nil {
		h.writeError(w, err, "Failed to cancel appointment")
		return
	}

	response.NoContent(w)
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var mismatch *usecase.FeeMismatchError
	switch {
	case errors.As(err, &mismatch):
		response.BadRequest(w, "Invalid amount", map[string]interface{}{
			"expected": mismatch.Expected.StringFixed(2),
		})
	case errors.Is(err, usecase.ErrSlotNotAvailable):
		response.BadRequest(w, "Time slot not available", nil)
	case errors.Is(err, usecase.ErrSlotTaken):
		response.BadRequest(w, "Appointment already exists for this time slot", nil)
	case errors.Is(err, usecase.ErrDoctorNotAssociated):
		response.BadRequest(w, "Doctor not associated with this hospital", nil)
	case errors.Is(err, usecase.ErrPatientRequired):
		response.BadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrHospitalNotFound):
		response.NotFound(w, "Hospital not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
