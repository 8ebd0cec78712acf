package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUUID(w, r, "id", "doctor")
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetByID(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetDoctorHospitals(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUUID(w, r, "id", "doctor")
	if !ok {
		return
	}

	hospitals, err := h.doctorUsecase.GetHospitals(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// AssociateHospital links a doctor to a hospital with a consultation fee
// @Summary Associate doctor with hospital
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AssociateHospitalRequest true "Association"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctors/{id}/associate-hospital [post]
func (h *DoctorHandler) AssociateHospital(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUUID(w, r, "id", "doctor")
	if !ok {
		return
	}

	var req dto.AssociateHospitalRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	association, err := h.doctorUsecase.AssociateHospital(r.Context(), doctorID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to associate hospital")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor associated with hospital successfully", association)
}

func (h *DoctorHandler) UpdateConsultationFee(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUUID(w, r, "id", "doctor")
	if !ok {
		return
	}

	var req dto.UpdateConsultationFeeRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	association, err := h.doctorUsecase.UpdateConsultationFee(r.Context(), doctorID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update consultation fee")
		return
	}

	response.Success(w, http.StatusOK, "Consultation fee updated successfully", association)
}

func (h *DoctorHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrHospitalNotFound):
		response.NotFound(w, "Hospital not found")
	case errors.Is(err, usecase.ErrAssociationNotFound):
		response.NotFound(w, "Doctor is not associated with this hospital")
	case errors.Is(err, usecase.ErrInvalidFee):
		response.BadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrAlreadyAssociated):
		response.Conflict(w, "Doctor is already associated with this hospital", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
