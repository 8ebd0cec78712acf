package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	response := &dto.HospitalResponse{
		ID:        hospital.ID,
		Name:      hospital.Name,
		Location:  hospital.Location,
		CreatedBy: hospital.CreatedBy,
	}
	if len(hospital.Departments) > 0 {
		response.Departments = DepartmentsToResponses(hospital.Departments)
	}
	return response
}

func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return responses
}

// HospitalDoctorsToResponses converts associations loaded with Doctor.DoctorProfile.
func HospitalDoctorsToResponses(rows []entity.DoctorHospital) []dto.HospitalDoctorResponse {
	responses := make([]dto.HospitalDoctorResponse, 0, len(rows))
	for i := range rows {
		if rows[i].Doctor == nil {
			continue
		}
		responses = append(responses, dto.HospitalDoctorResponse{
			DoctorResponse:  *DoctorToResponse(rows[i].Doctor),
			ConsultationFee: rows[i].ConsultationFee,
		})
	}
	return responses
}
