package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"

	"github.com/google/uuid"
)

// RevenueHandler serves earnings and revenue reports. Figures are
// computed from appointments on every request.
type RevenueHandler struct {
	revenueUsecase usecase.RevenueUsecase
}

func NewRevenueHandler(revenueUsecase usecase.RevenueUsecase) *RevenueHandler {
	return &RevenueHandler{
		revenueUsecase: revenueUsecase,
	}
}

func (h *RevenueHandler) GetDoctorEarnings(w http.ResponseWriter, r *http.Request) {
	h.doctorReport(w, r, func(id uuid.UUID) (interface{}, error) {
		return h.revenueUsecase.DoctorEarnings(r.Context(), id)
	}, "Earnings retrieved successfully")
}

func (h *RevenueHandler) GetDoctorDashboard(w http.ResponseWriter, r *http.Request) {
	h.doctorReport(w, r, func(id uuid.UUID) (interface{}, error) {
		return h.revenueUsecase.DoctorDashboard(r.Context(), id)
	}, "Dashboard retrieved successfully")
}

func (h *RevenueHandler) GetHospitalRevenue(w http.ResponseWriter, r *http.Request) {
	h.hospitalReport(w, r, func(id uuid.UUID) (interface{}, error) {
		return h.revenueUsecase.HospitalRevenue(r.Context(), id)
	}, "Revenue retrieved successfully")
}

func (h *RevenueHandler) GetHospitalRevenueByDoctors(w http.ResponseWriter, r *http.Request) {
	h.hospitalReport(w, r, func(id uuid.UUID) (interface{}, error) {
		return h.revenueUsecase.HospitalRevenueByDoctors(r.Context(), id)
	}, "Revenue retrieved successfully")
}

func (h *RevenueHandler) GetHospitalRevenueByDepartments(w http.ResponseWriter, r *http.Request) {
	h.hospitalReport(w, r, func(id uuid.UUID) (interface{}, error) {
		return h.revenueUsecase.HospitalRevenueByDepartments(r.Context(), id)
	}, "Revenue retrieved successfully")
}

func (h *RevenueHandler) GetHospitalDashboard(w http.ResponseWriter, r *http.Request) {
	h.hospitalReport(w, r, func(id uuid.UUID) (interface{}, error) {
		return h.revenueUsecase.HospitalDashboard(r.Context(), id)
	}, "Dashboard retrieved successfully")
}

func (h *RevenueHandler) doctorReport(w http.ResponseWriter, r *http.Request, load func(uuid.UUID) (interface{}, error), message string) {
	doctorID, ok := pathUUID(w, r, "id", "doctor")
	if !ok {
		return
	}

	report, err := load(doctorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			response.Forbidden(w, err.Error())
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get earnings")
		}
		return
	}

	response.Success(w, http.StatusOK, message, report)
}

func (h *RevenueHandler) hospitalReport(w http.ResponseWriter, r *http.Request, load func(uuid.UUID) (interface{}, error), message string) {
	hospitalID, ok := pathUUID(w, r, "id", "hospital")
	if !ok {
		return
	}

	report, err := load(hospitalID)
	if err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to get revenue")
		return
	}

	response.Success(w, http.StatusOK, message, report)
}
