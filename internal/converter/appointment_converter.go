package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		HospitalID:      appointment.HospitalID,
		AppointmentTime: appointment.AppointmentTime,
		AmountPaid:      appointment.AmountPaid,
		CreatedAt:       appointment.CreatedAt,
	}

	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.Name
	}
	if appointment.Doctor != nil {
		response.DoctorName = appointment.Doctor.Name
	}
	if appointment.Hospital != nil {
		response.HospitalName = appointment.Hospital.Name
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
