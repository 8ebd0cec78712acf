package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

const monthLayout = "2006-01"

// Every figure below is derived from amount_paid through entity.SplitRevenue.

func HospitalEarningsFromRows(rows []entity.HospitalRevenueRow) []dto.HospitalEarnings {
	out := make([]dto.HospitalEarnings, len(rows))
	for i, r := range rows {
		out[i] = dto.HospitalEarnings{
			HospitalID:    r.HospitalID,
			HospitalName:  r.HospitalName,
			Earnings:      entity.DoctorShare(r.Amount),
			Consultations: r.Count,
		}
	}
	return out
}

func MonthlyEarningsFromRows(rows []entity.MonthlyRevenueRow) []dto.MonthlyEarnings {
	out := make([]dto.MonthlyEarnings, len(rows))
	for i, r := range rows {
		out[i] = dto.MonthlyEarnings{
			Month:         r.Month.UTC().Format(monthLayout),
			Earnings:      entity.DoctorShare(r.Amount),
			Consultations: r.Count,
		}
	}
	return out
}

func DoctorRevenueFromRows(rows []entity.DoctorRevenueRow) []dto.DoctorRevenue {
	out := make([]dto.DoctorRevenue, len(rows))
	for i, r := range rows {
		out[i] = dto.DoctorRevenue{
			DoctorID:      r.DoctorID,
			DoctorName:    r.DoctorName,
			Revenue:       entity.HospitalShare(r.Amount),
			Consultations: r.Count,
		}
	}
	return out
}

func DepartmentRevenueFromRows(rows []entity.DepartmentRevenueRow) []dto.DepartmentRevenue {
	out := make([]dto.DepartmentRevenue, len(rows))
	for i, r := range rows {
		out[i] = dto.DepartmentRevenue{
			DepartmentID:   r.DepartmentID,
			DepartmentName: r.DepartmentName,
			Revenue:        entity.HospitalShare(r.Amount),
			Consultations:  r.Count,
		}
	}
	return out
}
