package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// RegisterRequest creates an account. Doctor profile fields are only used
// when role is doctor and all three are supplied.
type RegisterRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=255"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=6"`
	Role            string   `json:"role" validate:"omitempty,oneof=hospital_admin doctor patient"`
	Gender          string   `json:"gender" validate:"omitempty,max=20"`
	DOB             string   `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	UniqueID        string   `json:"unique_id" validate:"omitempty,max=50"`
	Qualifications  string   `json:"qualifications" validate:"omitempty"`
	Specializations []string `json:"specializations" validate:"omitempty,dive,required"`
	Experience      *int     `json:"experience" validate:"omitempty,gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest changes a subset of the account. Role is immutable.
type UpdateUserRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Password        *string  `json:"password" validate:"omitempty,min=6"`
	Gender          *string  `json:"gender" validate:"omitempty,max=20"`
	DOB             *string  `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	UniqueID        *string  `json:"unique_id" validate:"omitempty,max=50"`
	Qualifications  *string  `json:"qualifications" validate:"omitempty"`
	Specializations []string `json:"specializations" validate:"omitempty,dive,required"`
	Experience      *int     `json:"experience" validate:"omitempty,gte=0"`
}

// Response DTOs

type UserResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Role          string                 `json:"role"`
	Gender        string                 `json:"gender,omitempty"`
	DOB           string                 `json:"dob,omitempty"`
	UniqueID      string                 `json:"unique_id,omitempty"`
	DoctorProfile *DoctorProfileResponse `json:"doctor_profile,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
}
