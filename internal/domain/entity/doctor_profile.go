package entity

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DoctorProfile holds the professional data of a doctor account.
type DoctorProfile struct {
	UserID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Qualifications  string         `gorm:"type:text;not null" json:"qualifications"`
	Specializations pq.StringArray `gorm:"type:text[];not null" json:"specializations"`
	Experience      int            `gorm:"not null;default:0" json:"experience"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// HasSpecialization reports whether name appears in the specialization list.
func (p *DoctorProfile) HasSpecialization(name string) bool {
	for _, s := range p.Specializations {
		if s == name {
			return true
		}
	}
	return false
}
