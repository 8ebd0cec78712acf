package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func AvailabilityToResponse(a *entity.Availability) *dto.AvailabilityResponse {
	if a == nil {
		return nil
	}

	response := &dto.AvailabilityResponse{
		ID:         a.ID,
		DoctorID:   a.DoctorID,
		HospitalID: a.HospitalID,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
	}
	if a.Doctor != nil {
		response.DoctorName = a.Doctor.Name
	}
	if a.Hospital != nil {
		response.HospitalName = a.Hospital.Name
	}
	return response
}

func AvailabilitiesToResponses(rows []entity.Availability) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(rows))
	for i := range rows {
		responses[i] = *AvailabilityToResponse(&rows[i])
	}
	return responses
}
