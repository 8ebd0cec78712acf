package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// CreateAvailability publishes a working window for a doctor at a hospital
// @Summary Create availability
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAvailabilityRequest true "Window"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response "overlapping windows"
// @Router /availability [post]
func (h *AvailabilityHandler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAvailabilityRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	availability, err := h.availabilityUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create availability")
		return
	}

	response.Success(w, http.StatusCreated, "Availability created successfully", availability)
}

func (h *AvailabilityHandler) GetAllAvailability(w http.ResponseWriter, r *http.Request) {
	rows, err := h.availabilityUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", rows)
}

func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	availabilityID, ok := pathUUID(w, r, "id", "availability")
	if !ok {
		return
	}

	availability, err := h.availabilityUsecase.GetByID(r.Context(), availabilityID)
	if err != nil {
		h.writeError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *AvailabilityHandler) GetByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUUID(w, r, "doctorId", "doctor")
	if !ok {
		return
	}

	rows, err := h.availabilityUsecase.GetByDoctor(r.Context(), doctorID)
	if err != nil {
		h.writeError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", rows)
}

func (h *AvailabilityHandler) GetByHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := pathUUID(w, r, "hospitalId", "hospital")
	if !ok {
		return
	}

	rows, err := h.availabilityUsecase.GetByHospital(r.Context(), hospitalID)
	if err != nil {
		h.writeError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", rows)
}

func (h *AvailabilityHandler) GetByDoctorAndHospital(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUUID(w, r, "doctorId", "doctor")
	if !ok {
		return
	}
	hospitalID, ok := pathUUID(w, r, "hospitalId", "hospital")
	if !ok {
		return
	}

	rows, err := h.availabilityUsecase.GetByDoctorAndHospital(r.Context(), doctorID, hospitalID)
	if err != nil {
		h.writeError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", rows)
}

func (h *AvailabilityHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	availabilityID, ok := pathUUID(w, r, "id", "availability")
	if !ok {
		return
	}

	var req dto.UpdateAvailabilityRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	availability, err := h.availabilityUsecase.Update(r.Context(), availabilityID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", availability)
}

func (h *AvailabilityHandler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	availabilityID, ok := pathUUID(w, r, "id", "availability")
	if !ok {
		return
	}

	if err := h.availabilityUsecase.Delete(r.Context(), availabilityID); err != nil {
		h.writeError(w, err, "Failed to delete availability")
		return
	}

	response.NoContent(w)
}

func (h *AvailabilityHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var conflict *usecase.AvailabilityConflictError
	switch {
	case errors.As(err, &conflict):
		response.Conflict(w, "Availability conflicts with existing schedule", map[string]interface{}{
			"conflicts": converter.AvailabilitiesToResponses(conflict.Conflicts),
		})
	case errors.Is(err, usecase.ErrInvalidTimeRange):
		response.BadRequest(w, "End time must be after start time", nil)
	case errors.Is(err, usecase.ErrDoctorNotAssociated):
		response.BadRequest(w, "Doctor not associated with this hospital", nil)
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usecase.ErrAvailabilityNotFound):
		response.NotFound(w, "Availability not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrHospitalNotFound):
		response.NotFound(w, "Hospital not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
