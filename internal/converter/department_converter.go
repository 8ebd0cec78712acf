package converter

import (
	"sort"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}
	response := &dto.DepartmentResponse{
		ID:         department.ID,
		Name:       department.Name,
		HospitalID: department.HospitalID,
	}
	if department.Hospital != nil {
		response.HospitalName = department.Hospital.Name
	}
	return response
}

func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *DepartmentToResponse(&departments[i])
	}
	return responses
}

// GroupDepartmentsByName folds departments into one entry per name, listing
// the hospitals that carry it. Output is sorted by name.
func GroupDepartmentsByName(departments []entity.Department) []dto.DepartmentNameGroup {
	index := make(map[string]int)
	groups := make([]dto.DepartmentNameGroup, 0)

	for _, d := range departments {
		ref := dto.HospitalRef{ID: d.HospitalID}
		if d.Hospital != nil {
			ref.Name = d.Hospital.Name
		}

		i, ok := index[d.Name]
		if !ok {
			i = len(groups)
			index[d.Name] = i
			groups = append(groups, dto.DepartmentNameGroup{Name: d.Name, Hospitals: []dto.HospitalRef{}})
		}
		groups[i].Hospitals = append(groups[i].Hospitals, ref)
	}

	sort.Slice(groups, func(a, b int) bool { return groups[a].Name < groups[b].Name })
	return groups
}
