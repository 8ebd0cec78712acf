package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.DoctorProfileResponse{
		Qualifications:  profile.Qualifications,
		Specializations: specializations(profile),
		Experience:      profile.Experience,
	}
}

// DoctorToResponse flattens a doctor account and its profile.
func DoctorToResponse(user *entity.User) *dto.DoctorResponse {
	if user == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Gender:          user.Gender,
		Specializations: []string{},
	}
	if user.DoctorProfile != nil {
		response.Qualifications = user.DoctorProfile.Qualifications
		response.Specializations = specializations(user.DoctorProfile)
		response.Experience = user.DoctorProfile.Experience
	}
	return response
}

// DoctorProfilesToResponses converts profiles loaded with their User.
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(profiles))
	for i := range profiles {
		p := profiles[i]
		if p.User == nil {
			continue
		}
		user := *p.User
		user.DoctorProfile = &p
		responses = append(responses, *DoctorToResponse(&user))
	}
	return responses
}

func DoctorHospitalToResponse(dh *entity.DoctorHospital) *dto.DoctorHospitalResponse {
	if dh == nil {
		return nil
	}
	response := &dto.DoctorHospitalResponse{
		DoctorID:        dh.DoctorID,
		HospitalID:      dh.HospitalID,
		ConsultationFee: dh.ConsultationFee,
	}
	if dh.Hospital != nil {
		response.HospitalName = dh.Hospital.Name
		response.Location = dh.Hospital.Location
	}
	return response
}

func DoctorHospitalsToResponses(rows []entity.DoctorHospital) []dto.DoctorHospitalResponse {
	responses := make([]dto.DoctorHospitalResponse, len(rows))
	for i := range rows {
		responses[i] = *DoctorHospitalToResponse(&rows[i])
	}
	return responses
}

func specializations(profile *entity.DoctorProfile) []string {
	if profile.Specializations == nil {
		return []string{}
	}
	return []string(profile.Specializations)
}
