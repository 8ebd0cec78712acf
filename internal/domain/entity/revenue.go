package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorShareRate is the fraction of every paid amount credited to the doctor.
// The hospital keeps the remainder.
var DoctorShareRate = decimal.RequireFromString("0.6")

// SplitRevenue divides amount into the doctor's and the hospital's share.
// The hospital share is computed as the remainder so both always sum to amount.
func SplitRevenue(amount decimal.Decimal) (doctorShare, hospitalShare decimal.Decimal) {
	doctorShare = amount.Mul(DoctorShareRate)
	hospitalShare = amount.Sub(doctorShare)
	return doctorShare, hospitalShare
}

// DoctorShare returns the doctor's portion of amount.
func DoctorShare(amount decimal.Decimal) decimal.Decimal {
	d, _ := SplitRevenue(amount)
	return d
}

// HospitalShare returns the hospital's portion of amount.
func HospitalShare(amount decimal.Decimal) decimal.Decimal {
	_, h := SplitRevenue(amount)
	return h
}

// RevenueTotal is an aggregated sum of amount_paid over a set of appointments.
type RevenueTotal struct {
	Amount decimal.Decimal
	Count  int64
}

// HospitalRevenueRow groups paid amounts by hospital.
type HospitalRevenueRow struct {
	HospitalID   uuid.UUID
	HospitalName string
	Amount       decimal.Decimal
	Count        int64
}

// DoctorRevenueRow groups paid amounts by doctor.
type DoctorRevenueRow struct {
	DoctorID   uuid.UUID
	DoctorName string
	Amount     decimal.Decimal
	Count      int64
}

// DepartmentRevenueRow groups paid amounts by department.
type DepartmentRevenueRow struct {
	DepartmentID   uuid.UUID
	DepartmentName string
	Amount         decimal.Decimal
	Count          int64
}

// MonthlyRevenueRow groups paid amounts by calendar month.
type MonthlyRevenueRow struct {
	Month  time.Time
	Amount decimal.Decimal
	Count  int64
}
