package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability is a bookable window [StartTime, EndTime) a doctor publishes
// at one hospital.
type Availability struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	HospitalID uuid.UUID `gorm:"type:uuid;not null;index" json:"hospital_id"`
	StartTime  time.Time `gorm:"type:timestamptz;not null" json:"start_time"`
	EndTime    time.Time `gorm:"type:timestamptz;not null" json:"end_time"`

	// Relationships
	Doctor   *User     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Availability) TableName() string {
	return "availability"
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ValidWindow reports whether end is strictly after start.
func ValidWindow(start, end time.Time) bool {
	return end.After(start)
}

// Overlaps applies the half-open overlap test: [s1,e1) and [s2,e2) overlap
// iff s1 < e2 && e1 > s2. Touching windows do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// OverlapsWindow reports whether the window overlaps [start, end).
func (a *Availability) OverlapsWindow(start, end time.Time) bool {
	return Overlaps(a.StartTime, a.EndTime, start, end)
}

// Contains reports whether t lies in [StartTime, EndTime).
func (a *Availability) Contains(t time.Time) bool {
	return !t.Before(a.StartTime) && t.Before(a.EndTime)
}
