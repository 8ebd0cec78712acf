package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

type DepartmentHandler struct {
	departmentUsecase usecase.DepartmentUsecase
	validator         *validator.CustomValidator
}

func NewDepartmentHandler(departmentUsecase usecase.DepartmentUsecase, validator *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUsecase: departmentUsecase,
		validator:         validator,
	}
}

func (h *DepartmentHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	department, err := h.departmentUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create department")
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

func (h *DepartmentHandler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

// GetUniqueNames lists each department name with the hospitals that have it.
func (h *DepartmentHandler) GetUniqueNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.departmentUsecase.GetUniqueNames(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get department names")
		return
	}

	response.Success(w, http.StatusOK, "Department names retrieved successfully", names)
}

func (h *DepartmentHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, ok := pathUUID(w, r, "id", "department")
	if !ok {
		return
	}

	department, err := h.departmentUsecase.GetByID(r.Context(), departmentID)
	if err != nil {
		h.writeError(w, err, "Failed to get department")
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", department)
}

func (h *DepartmentHandler) GetDepartmentsByHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, ok := pathUUID(w, r, "hospitalId", "hospital")
	if !ok {
		return
	}

	departments, err := h.departmentUsecase.GetByHospital(r.Context(), hospitalID)
	if err != nil {
		h.writeError(w, err, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *DepartmentHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, ok := pathUUID(w, r, "id", "department")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	department, err := h.departmentUsecase.Update(r.Context(), departmentID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update department")
		return
	}

	response.Success(w, http.StatusOK, "Department updated successfully", department)
}

func (h *DepartmentHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, ok := pathUUID(w, r, "id", "department")
	if !ok {
		return
	}

	if err := h.departmentUsecase.Delete(r.Context(), departmentID); err != nil {
		h.writeError(w, err, "Failed to delete department")
		return
	}

	response.NoContent(w)
}

func (h *DepartmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDepartmentNotFound):
		response.NotFound(w, "Department not found")
	case errors.Is(err, usecase.ErrHospitalNotFound):
		response.NotFound(w, "Hospital not found")
	case errors.Is(err, usecase.ErrDepartmentNameEmpty):
		response.BadRequest(w, "Department name is required", nil)
	case errors.Is(err, usecase.ErrDepartmentNameExists):
		response.Conflict(w, "Department with this name already exists in this hospital", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
