package entity

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_departments_name_hospital" json:"name"`
	HospitalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_departments_name_hospital;index" json:"hospital_id"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// NormalizeDepartmentName is the canonical form used for uniqueness checks.
func NormalizeDepartmentName(name string) string {
	return strings.TrimSpace(name)
}
