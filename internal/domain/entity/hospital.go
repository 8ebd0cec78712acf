package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hospital struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Location  string    `gorm:"type:varchar(255);not null" json:"location"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`

	// Relationships
	Creator     *User        `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Departments []Department `gorm:"foreignKey:HospitalID" json:"departments,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// HospitalDependencies counts the rows that block a safe hospital delete.
type HospitalDependencies struct {
	Departments     int64 `json:"departments"`
	DoctorHospitals int64 `json:"doctor_hospitals"`
	Appointments    int64 `json:"appointments"`
	Availability    int64 `json:"availability"`
}

// Blocking reports whether any dependent row exists.
func (d HospitalDependencies) Blocking() bool {
	return d.Departments > 0 || d.DoctorHospitals > 0 || d.Appointments > 0 || d.Availability > 0
}
