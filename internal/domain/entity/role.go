package entity

import "fmt"

// Role is the closed set of account roles. Every switch over Role must
// handle all three values.
type Role string

const (
	RoleHospitalAdmin Role = "hospital_admin"
	RoleDoctor        Role = "doctor"
	RolePatient       Role = "patient"
)

// Roles lists every valid role in declaration order.
var Roles = []Role{RoleHospitalAdmin, RoleDoctor, RolePatient}

// ParseRole converts raw input into a Role. An empty string yields RolePatient.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RolePatient, nil
	case RoleHospitalAdmin, RoleDoctor, RolePatient:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleHospitalAdmin, RoleDoctor, RolePatient:
		return true
	default:
		return false
	}
}

// HasProfile reports whether accounts of this role carry a DoctorProfile.
func (r Role) HasProfile() bool {
	switch r {
	case RoleDoctor:
		return true
	case RoleHospitalAdmin, RolePatient:
		return false
	default:
		return false
	}
}

// KeepsUniqueID reports whether the national ID field is stored for the role.
func (r Role) KeepsUniqueID() bool {
	switch r {
	case RolePatient:
		return true
	case RoleHospitalAdmin, RoleDoctor:
		return false
	default:
		return false
	}
}
