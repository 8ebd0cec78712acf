package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorHospital associates a doctor with a hospital and stores the fee a
// patient pays for one consultation there.
type DoctorHospital struct {
	DoctorID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"doctor_id"`
	HospitalID      uuid.UUID       `gorm:"type:uuid;primaryKey" json:"hospital_id"`
	ConsultationFee decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"consultation_fee"`

	// Relationships
	Doctor   *User     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (DoctorHospital) TableName() string {
	return "doctor_hospitals"
}

// FeeMatches reports whether amount equals the stored fee exactly.
func (dh *DoctorHospital) FeeMatches(amount decimal.Decimal) bool {
	return IsCentAmount(amount) && dh.ConsultationFee.Equal(amount)
}

// IsCentAmount reports whether d fits a numeric(12,2) column without rounding.
func IsCentAmount(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
