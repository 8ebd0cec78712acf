package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Appointment is a booked consultation. There is no status column: a
// cancelled appointment is deleted.
type Appointment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	HospitalID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"hospital_id"`
	AppointmentTime time.Time       `gorm:"type:timestamptz;not null" json:"appointment_time"`
	AmountPaid      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount_paid"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient  *User     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor   *User     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// SameSlot reports whether the appointment occupies the given slot.
func (a *Appointment) SameSlot(doctorID, hospitalID uuid.UUID, at time.Time) bool {
	return a.DoctorID == doctorID && a.HospitalID == hospitalID && a.AppointmentTime.Equal(at)
}
