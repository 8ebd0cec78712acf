package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the single account table shared by admins, doctors and patients.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"type:text;not null" json:"-"`
	Role      Role       `gorm:"type:user_role;not null;default:'patient';index" json:"role"`
	Gender    string     `gorm:"type:varchar(20)" json:"gender,omitempty"`
	DOB       *time.Time `gorm:"column:dob;type:date" json:"dob,omitempty"`
	UniqueID  *string    `gorm:"column:unique_id;type:varchar(50)" json:"unique_id,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	DoctorProfile *DoctorProfile `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
