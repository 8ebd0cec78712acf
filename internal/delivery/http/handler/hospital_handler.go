package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

// CreateHospital handles hospital creation
// @Summary Create a hospital
// @Tags Hospitals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateHospitalRequest true "Hospital"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /hospitals [post]
func (h *HospitalHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateHospitalRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	hospital, err := h.hospitalUsecase.Create(r.Context(), creatorID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrHospitalNameExists) {
			response.Conflict(w, "Hospital with this name already exists", nil)
			return
		}
		response.InternalServerError(w, "Failed to create hospital")
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created successfully", hospital)
}

func (h *HospitalHandler) GetAllHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := pathUUID(w, r, "id", "hospital")
	if !ok {
		return
	}

	hospital, err := h.hospitalUsecase.GetByID(r.Context(), hospitalID)
	if err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to get hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) GetHospitalDoctors(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := pathUUID(w, r, "id", "hospital")
	if !ok {
		return
	}

	doctors, err := h.hospitalUsecase.GetDoctors(r.Context(), hospitalID)
	if err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to get hospital doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *HospitalHandler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := pathUUID(w, r, "id", "hospital")
	if !ok {
		return
	}

	var req dto.UpdateHospitalRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	hospital, err := h.hospitalUsecase.Update(r.Context(), hospitalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrHospitalNotFound):
			response.NotFound(w, "Hospital not found")
		case errors.Is(err, usecase.ErrHospitalNameExists):
			response.Conflict(w, "Hospital with this name already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital updated successfully", hospital)
}

// DeleteHospital removes a hospital that nothing references.
// @Summary Delete a hospital
// @Tags Hospitals
// @Security BearerAuth
// @Success 204
// @Failure 409 {object} response.Response "dependent record counts"
// @Router /hospitals/{id} [delete]
func (h *HospitalHandler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := pathUUID(w, r, "id", "hospital")
	if !ok {
		return
	}

	err := h.hospitalUsecase.Delete(r.Context(), hospitalID)
	if err != nil {
		var depsErr *usecase.HospitalDependenciesError
		switch {
		case errors.Is(err, usecase.ErrHospitalNotFound):
			response.NotFound(w, "Hospital not found")
		case errors.As(err, &depsErr):
			response.Conflict(w, "Cannot delete hospital with existing related records", depsErr.Counts)
		default:
			response.InternalServerError(w, "Failed to delete hospital")
		}
		return
	}

	response.NoContent(w)
}

func (h *HospitalHandler) ForceDeleteHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := pathUUID(w, r, "id", "hospital")
	if !ok {
		return
	}

	if err := h.hospitalUsecase.ForceDelete(r.Context(), hospitalID); err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to delete hospital")
		return
	}

	response.NoContent(w)
}
