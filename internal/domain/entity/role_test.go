package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RolePatient, got)

	_, err = ParseRole("nurse")
	assert.Error(t, err)
}

func TestRole_Capabilities(t *testing.T) {
	assert.True(t, RoleDoctor.HasProfile())
	assert.False(t, RolePatient.HasProfile())
	assert.False(t, RoleHospitalAdmin.HasProfile())

	assert.True(t, RolePatient.KeepsUniqueID())
	assert.False(t, RoleDoctor.KeepsUniqueID())

	assert.False(t, Role("nurse").Valid())
}

func TestNormalizeDepartmentName(t *testing.T) {
	assert.Equal(t, "Cardiology", NormalizeDepartmentName("  Cardiology\t"))
	assert.Equal(t, "", NormalizeDepartmentName("   "))
}

func TestHospitalDependencies_Blocking(t *testing.T) {
	assert.False(t, HospitalDependencies{}.Blocking())
	assert.True(t, HospitalDependencies{Appointments: 1}.Blocking())
	assert.True(t, HospitalDependencies{Availability: 2}.Blocking())
}
