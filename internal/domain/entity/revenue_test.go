package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplitRevenue_SumsToAmount(t *testing.T) {
	amounts := []string{"500", "0.01", "0.03", "333.33", "999999999.99", "450.5", "1"}

	for _, raw := range amounts {
		amount := decimal.RequireFromString(raw)
		doctor, hospital := SplitRevenue(amount)

		assert.True(t, doctor.Add(hospital).Equal(amount), "split of %s does not sum back", raw)
	}
}

func TestSplitRevenue_Shares(t *testing.T) {
	doctor, hospital := SplitRevenue(decimal.NewFromInt(500))

	assert.True(t, doctor.Equal(decimal.NewFromInt(300)), "doctor share = %s", doctor)
	assert.True(t, hospital.Equal(decimal.NewFromInt(200)), "hospital share = %s", hospital)
	assert.True(t, DoctorShare(decimal.NewFromInt(800)).Equal(decimal.NewFromInt(480)))
	assert.True(t, HospitalShare(decimal.NewFromInt(800)).Equal(decimal.NewFromInt(320)))
}

func TestDoctorHospital_FeeMatches(t *testing.T) {
	dh := &DoctorHospital{ConsultationFee: decimal.RequireFromString("500.00")}

	assert.True(t, dh.FeeMatches(decimal.NewFromInt(500)))
	assert.False(t, dh.FeeMatches(decimal.RequireFromString("499.99")))
	assert.False(t, dh.FeeMatches(decimal.RequireFromString("500.001")))
}
