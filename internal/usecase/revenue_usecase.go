package usecase

import (
	"context"
	"time"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	earningsMonths          = 6
	recentAppointmentsLimit = 5
)

type RevenueUsecase interface {
	DoctorEarnings(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorEarningsResponse, error)
	DoctorDashboard(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDashboardResponse, error)
	HospitalRevenue(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalRevenueResponse, error)
	HospitalRevenueByDoctors(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalDoctorRevenueResponse, error)
	HospitalRevenueByDepartments(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalDepartmentRevenueResponse, error)
	HospitalDashboard(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalDashboardResponse, error)
}

// revenueUsecase computes every figure from appointments on each call.
type revenueUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	hospitalRepo       repository.HospitalRepository
	departmentRepo     repository.DepartmentRepository
	doctorHospitalRepo repository.DoctorHospitalRepository
	appointmentRepo    repository.AppointmentRepository
	now                func() time.Time
}

func NewRevenueUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	departmentRepo repository.DepartmentRepository,
	doctorHospitalRepo repository.DoctorHospitalRepository,
	appointmentRepo repository.AppointmentRepository,
) RevenueUsecase {
	return &revenueUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		hospitalRepo:       hospitalRepo,
		departmentRepo:     departmentRepo,
		doctorHospitalRepo: doctorHospitalRepo,
		appointmentRepo:    appointmentRepo,
		now:                time.Now,
	}
}

// earningsSince is the first day of the oldest month in the earnings window.
func (u *revenueUsecase) earningsSince() time.Time {
	now := u.now().UTC()
	return time.Date(now.Year(), now.Month()-(earningsMonths-1), 1, 0, 0, 0, 0, time.UTC)
}

func (u *revenueUsecase) DoctorEarnings(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorEarningsResponse, error) {
	if err := authorizeDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	if _, err := findDoctor(u.db.WithContext(ctx), u.userRepo, doctorID); err != nil {
		return nil, err
	}

	var (
		total      *entity.RevenueTotal
		byHospital []entity.HospitalRevenueRow
		byMonth    []entity.MonthlyRevenueRow
	)

	g, gctx := errgroup.WithContext(ctx)
	db := u.db.WithContext(gctx)
	g.Go(func() (err error) {
		total, err = u.appointmentRepo.SumByDoctorID(db, doctorID)
		return err
	})
	g.Go(func() (err error) {
		byHospital, err = u.appointmentRepo.SumByDoctorGroupedByHospital(db, doctorID)
		return err
	})
	g.Go(func() (err error) {
		byMonth, err = u.appointmentRepo.SumByDoctorGroupedByMonth(db, doctorID, u.earningsSince())
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to aggregate doctor earnings: %+v", err)
		return nil, err
	}

	return &dto.DoctorEarningsResponse{
		DoctorID:           doctorID,
		TotalEarnings:      entity.DoctorShare(total.Amount),
		TotalConsultations: total.Count,
		ByHospital:         converter.HospitalEarningsFromRows(byHospital),
		ByMonth:            converter.MonthlyEarningsFromRows(byMonth),
	}, nil
}

func (u *revenueUsecase) DoctorDashboard(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDashboardResponse, error) {
	if err := authorizeDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	doctor, err := findDoctor(u.db.WithContext(ctx), u.userRepo, doctorID)
	if err != nil {
		return nil, err
	}

	var (
		total        *entity.RevenueTotal
		patients     int64
		associations []entity.DoctorHospital
		recent       []entity.Appointment
		byHospital   []entity.HospitalRevenueRow
		byMonth      []entity.MonthlyRevenueRow
	)

	g, gctx := errgroup.WithContext(ctx)
	db := u.db.WithContext(gctx)
	g.Go(func() (err error) {
		total, err = u.appointmentRepo.SumByDoctorID(db, doctorID)
		return err
	})
	g.Go(func() (err error) {
		patients, err = u.appointmentRepo.CountPatientsByDoctorID(db, doctorID)
		return err
	})
	g.Go(func() (err error) {
		associations, err = u.doctorHospitalRepo.FindByDoctorID(db, doctorID)
		return err
	})
	g.Go(func() (err error) {
		recent, err = u.appointmentRepo.FindRecentByDoctorID(db, doctorID, recentAppointmentsLimit)
		return err
	})
	g.Go(func() (err error) {
		byHospital, err = u.appointmentRepo.SumByDoctorGroupedByHospital(db, doctorID)
		return err
	})
	g.Go(func() (err error) {
		byMonth, err = u.appointmentRepo.SumByDoctorGroupedByMonth(db, doctorID, u.earningsSince())
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to build doctor dashboard: %+v", err)
		return nil, err
	}

	return &dto.DoctorDashboardResponse{
		Doctor: *converter.DoctorToResponse(doctor),
		Stats: dto.DoctorStats{
			TotalEarnings:       entity.DoctorShare(total.Amount),
			TotalConsultations:  total.Count,
			TotalPatients:       patients,
			AssociatedHospitals: len(associations),
		},
		RecentAppointments: converter.AppointmentsToResponses(recent),
		Hospitals:          converter.HospitalEarningsFromRows(byHospital),
		MonthlyEarnings:    converter.MonthlyEarningsFromRows(byMonth),
	}, nil
}

func (u *revenueUsecase) findHospital(ctx context.Context, hospitalID uuid.UUID) (*entity.Hospital, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}
	return hospital, nil
}

func (u *revenueUsecase) HospitalRevenue(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalRevenueResponse, error) {
	hospital, err := u.findHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	total, err := u.appointmentRepo.SumByHospitalID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to aggregate hospital revenue: %+v", err)
		return nil, err
	}

	return &dto.HospitalRevenueResponse{
		HospitalID:         hospital.ID,
		HospitalName:       hospital.Name,
		TotalRevenue:       entity.HospitalShare(total.Amount),
		TotalConsultations: total.Count,
	}, nil
}

func (u *revenueUsecase) HospitalRevenueByDoctors(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalDoctorRevenueResponse, error) {
	if _, err := u.findHospital(ctx, hospitalID); err != nil {
		return nil, err
	}

	rows, err := u.appointmentRepo.SumByHospitalGroupedByDoctor(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to aggregate hospital revenue by doctor: %+v", err)
		return nil, err
	}

	return &dto.HospitalDoctorRevenueResponse{
		HospitalID: hospitalID,
		Doctors:    converter.DoctorRevenueFromRows(rows),
	}, nil
}

func (u *revenueUsecase) HospitalRevenueByDepartments(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalDepartmentRevenueResponse, error) {
	if _, err := u.findHospital(ctx, hospitalID); err != nil {
		return nil, err
	}

	rows, err := u.appointmentRepo.SumByHospitalGroupedByDepartment(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to aggregate hospital revenue by department: %+v", err)
		return nil, err
	}

	return &dto.HospitalDepartmentRevenueResponse{
		HospitalID:  hospitalID,
		Departments: converter.DepartmentRevenueFromRows(rows),
	}, nil
}

func (u *revenueUsecase) HospitalDashboard(ctx context.Context, hospitalID uuid.UUID) (*dto.HospitalDashboardResponse, error) {
	hospital, err := u.findHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	var (
		total       *entity.RevenueTotal
		doctors     int64
		departments int64
	)

	g, gctx := errgroup.WithContext(ctx)
	db := u.db.WithContext(gctx)
	g.Go(func() (err error) {
		total, err = u.appointmentRepo.SumByHospitalID(db, hospitalID)
		return err
	})
	g.Go(func() (err error) {
		doctors, err = u.doctorHospitalRepo.CountByHospitalID(db, hospitalID)
		return err
	})
	g.Go(func() (err error) {
		departments, err = u.departmentRepo.CountByHospitalID(db, hospitalID)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to build hospital dashboard: %+v", err)
		return nil, err
	}

	return &dto.HospitalDashboardResponse{
		Hospital:           *converter.HospitalToResponse(hospital),
		TotalConsultations: total.Count,
		TotalRevenue:       entity.HospitalShare(total.Amount),
		AssociatedDoctors:  doctors,
		DepartmentsCount:   departments,
	}, nil
}
