package converter

import (
	"encoding/json"
	"testing"
	"time"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToResponse_NeverExposesPassword(t *testing.T) {
	dob := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)
	uniqueID := "P001"
	user := &entity.User{
		ID:       uuid.New(),
		Name:     "Alice Johnson",
		Email:    "alice.johnson@email.com",
		Password: "$2a$10$hash",
		Role:     entity.RolePatient,
		DOB:      &dob,
		UniqueID: &uniqueID,
	}

	resp := UserToResponse(user)
	require.NotNil(t, resp)
	assert.Equal(t, "1990-05-15", resp.DOB)
	assert.Equal(t, "P001", resp.UniqueID)
	assert.Equal(t, "patient", resp.Role)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$10$hash")
}

func TestDoctorToResponse_WithProfile(t *testing.T) {
	user := &entity.User{
		ID:   uuid.New(),
		Name: "Dr. John Smith",
		Role: entity.RoleDoctor,
		DoctorProfile: &entity.DoctorProfile{
			Qualifications:  "MBBS, MD",
			Specializations: pq.StringArray{"Cardiology", "Internal Medicine"},
			Experience:      10,
		},
	}

	resp := DoctorToResponse(user)
	assert.Equal(t, []string{"Cardiology", "Internal Medicine"}, resp.Specializations)
	assert.Equal(t, 10, resp.Experience)
}

func TestDoctorToResponse_WithoutProfile(t *testing.T) {
	resp := DoctorToResponse(&entity.User{ID: uuid.New(), Name: "Dr. Nobody"})
	assert.NotNil(t, resp.Specializations)
	assert.Empty(t, resp.Specializations)
}

func TestGroupDepartmentsByName(t *testing.T) {
	a := &entity.Hospital{ID: uuid.New(), Name: "City General Hospital"}
	b := &entity.Hospital{ID: uuid.New(), Name: "Metro Medical Center"}
	departments := []entity.Department{
		{ID: uuid.New(), Name: "Pediatrics", HospitalID: a.ID, Hospital: a},
		{ID: uuid.New(), Name: "Cardiology", HospitalID: a.ID, Hospital: a},
		{ID: uuid.New(), Name: "Cardiology", HospitalID: b.ID, Hospital: b},
	}

	groups := GroupDepartmentsByName(departments)
	require.Len(t, groups, 2)
	assert.Equal(t, "Cardiology", groups[0].Name)
	assert.Len(t, groups[0].Hospitals, 2)
	assert.Equal(t, "Metro Medical Center", groups[0].Hospitals[1].Name)
	assert.Equal(t, "Pediatrics", groups[1].Name)
	assert.Len(t, groups[1].Hospitals, 1)
}

func TestRevenueConversions_UseSplit(t *testing.T) {
	rows := []entity.HospitalRevenueRow{{HospitalID: uuid.New(), HospitalName: "A", Amount: decimal.NewFromInt(1000), Count: 2}}
	earnings := HospitalEarningsFromRows(rows)
	assert.True(t, earnings[0].Earnings.Equal(decimal.NewFromInt(600)))

	byDoctor := DoctorRevenueFromRows([]entity.DoctorRevenueRow{{Amount: decimal.NewFromInt(1000), Count: 2}})
	assert.True(t, byDoctor[0].Revenue.Equal(decimal.NewFromInt(400)))

	months := MonthlyEarningsFromRows([]entity.MonthlyRevenueRow{{
		Month:  time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(500),
		Count:  1,
	}})
	assert.Equal(t, "2025-02", months[0].Month)
	assert.True(t, months[0].Earnings.Equal(decimal.NewFromInt(300)))
}
