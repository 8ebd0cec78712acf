package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, entity.RoleDoctor)
}

func (h *UserHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, entity.RolePatient)
}

func (h *UserHandler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, entity.RoleHospitalAdmin)
}

func (h *UserHandler) listByRole(w http.ResponseWriter, r *http.Request, role entity.Role) {
	users, err := h.userUsecase.GetByRole(r.Context(), role)
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id", "user")
	if !ok {
		return
	}

	user, err := h.userUsecase.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get user")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id", "user")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !decodeBody(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.BadRequest(w, "Email already exists", nil)
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id", "user")
	if !ok {
		return
	}

	if err := h.userUsecase.Delete(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		case errors.Is(err, usecase.ErrUserHasDependencies):
			response.Conflict(w, "User still has related records", nil)
		default:
			response.InternalServerError(w, "Failed to delete user")
		}
		return
	}

	response.NoContent(w)
}
