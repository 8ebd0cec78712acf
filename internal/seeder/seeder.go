// Package seeder loads the demo data set used in development.
package seeder

import (
	"context"
	"fmt"
	"time"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	adminPassword   = "admin123"
	doctorPassword  = "doctor123"
	patientPassword = "patient123"
)

var departmentNames = []string{"Cardiology", "Orthopedics", "Pediatrics", "Neurology"}

type hospitalSeed struct {
	name     string
	location string
}

var hospitals = []hospitalSeed{
	{"City General Hospital", "123 Main Street, Downtown, City"},
	{"Metropolitan Medical Center", "456 Oak Avenue, Uptown, City"},
	{"Community Health Clinic", "789 Pine Road, Suburb, City"},
}

var doctors = []dto.RegisterRequest{
	doctor("Dr. Sarah Johnson", "sarah.johnson@hms.com", "Female", "1980-05-15", "MBBS, MD (Cardiology)", 12, "Cardiology", "Internal Medicine"),
	doctor("Dr. Michael Chen", "michael.chen@hms.com", "Male", "1975-08-22", "MBBS, MS (Orthopedics)", 15, "Orthopedics", "Sports Medicine"),
	doctor("Dr. Emily Rodriguez", "emily.rodriguez@hms.com", "Female", "1985-03-10", "MBBS, MD (Pediatrics)", 8, "Pediatrics", "Child Health"),
	doctor("Dr. David Kim", "david.kim@hms.com", "Male", "1978-11-30", "MBBS, MD (Neurology)", 14, "Neurology", "Neurosurgery"),
}

var patients = []dto.RegisterRequest{
	patient("John Smith", "john.smith@example.com", "Male", "1990-07-12", "A123456789"),
	patient("Maria Garcia", "maria.garcia@example.com", "Female", "1985-12-03", "B987654321"),
	patient("Robert Wilson", "robert.wilson@example.com", "Male", "1978-04-25", "C456789123"),
	patient("Lisa Thompson", "lisa.thompson@example.com", "Female", "1992-09-18", "D789123456"),
}

// associations are indexes into doctors and hospitals with the fee charged there.
var associations = []struct {
	doctor, hospital int
	fee              int64
}{
	{0, 0, 800}, {0, 1, 750},
	{1, 0, 600}, {1, 2, 550},
	{2, 1, 500}, {2, 2, 450},
	{3, 0, 900}, {3, 1, 850},
}

// windows are relative to the seeding day; a doctor's windows never overlap.
var windows = []struct {
	doctor, hospital int
	day, hour, hours int
}{
	{0, 0, -30, 9, 3},
	{0, 1, -30, 13, 3},
	{0, 0, 1, 9, 3},
	{1, 0, -14, 14, 3},
	{1, 2, 2, 9, 3},
	{2, 1, -7, 11, 2},
	{2, 2, 1, 14, 3},
	{3, 0, -45, 9, 3},
	{3, 1, 3, 9, 3},
}

var bookings = []struct {
	patient, doctor, hospital int
	day, hour, minute         int
}{
	{0, 0, 0, -30, 9, 0},
	{1, 1, 0, -14, 14, 0},
	{2, 2, 1, -7, 11, 0},
	{3, 3, 0, -45, 10, 0},
	{0, 0, 1, -30, 13, 30},
	{1, 0, 0, 1, 9, 30},
}

type Seeder struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	userRepo            repository.UserRepository
	authUsecase         usecase.AuthUsecase
	hospitalUsecase     usecase.HospitalUsecase
	departmentUsecase   usecase.DepartmentUsecase
	doctorUsecase       usecase.DoctorUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	appointmentUsecase  usecase.AppointmentUsecase
	now                 func() time.Time
}

func New(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	authUsecase usecase.AuthUsecase,
	hospitalUsecase usecase.HospitalUsecase,
	departmentUsecase usecase.DepartmentUsecase,
	doctorUsecase usecase.DoctorUsecase,
	availabilityUsecase usecase.AvailabilityUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
) *Seeder {
	return &Seeder{
		db:                  db,
		log:                 log,
		userRepo:            userRepo,
		authUsecase:         authUsecase,
		hospitalUsecase:     hospitalUsecase,
		departmentUsecase:   departmentUsecase,
		doctorUsecase:       doctorUsecase,
		availabilityUsecase: availabilityUsecase,
		appointmentUsecase:  appointmentUsecase,
		now:                 time.Now,
	}
}

// Run seeds the demo data set unless the users table already has rows.
// Every record goes through the same use cases the API uses, so the seeded
// data satisfies the booking and scheduling rules.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.userRepo.Count(s.db.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		s.log.WithField("users", count).Info("Database already contains data, skipping seeding")
		return nil
	}

	s.log.Info("Seeding demo data")

	admin, err := s.authUsecase.Register(ctx, &dto.RegisterRequest{
		Name:     "Hospital Admin",
		Email:    "admin@hms.com",
		Password: adminPassword,
		Role:     entity.RoleHospitalAdmin.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	hospitalIDs := make([]uuid.UUID, len(hospitals))
	for i, h := range hospitals {
		created, err := s.hospitalUsecase.Create(ctx, admin.ID, &dto.CreateHospitalRequest{Name: h.name, Location: h.location})
		if err != nil {
			return fmt.Errorf("failed to seed hospital %q: %w", h.name, err)
		}
		hospitalIDs[i] = created.ID

		for _, name := range departmentNames {
			if _, err := s.departmentUsecase.Create(ctx, &dto.CreateDepartmentRequest{Name: name, HospitalID: created.ID}); err != nil {
				return fmt.Errorf("failed to seed department %q: %w", name, err)
			}
		}
	}

	doctorIDs, err := s.registerAll(ctx, doctors)
	if err != nil {
		return err
	}
	patientIDs, err := s.registerAll(ctx, patients)
	if err != nil {
		return err
	}

	fees := make(map[[2]int]decimal.Decimal, len(associations))
	for _, a := range associations {
		fee := decimal.NewFromInt(a.fee)
		_, err := s.doctorUsecase.AssociateHospital(ctx, doctorIDs[a.doctor], &dto.AssociateHospitalRequest{
			HospitalID:      hospitalIDs[a.hospital],
			ConsultationFee: fee,
		})
		if err != nil {
			return fmt.Errorf("failed to seed doctor-hospital association: %w", err)
		}
		fees[[2]int{a.doctor, a.hospital}] = fee
	}

	today := s.today()
	for _, w := range windows {
		start := today.AddDate(0, 0, w.day).Add(time.Duration(w.hour) * time.Hour)
		_, err := s.availabilityUsecase.Create(ctx, &dto.CreateAvailabilityRequest{
			DoctorID:   doctorIDs[w.doctor],
			HospitalID: hospitalIDs[w.hospital],
			StartTime:  start,
			EndTime:    start.Add(time.Duration(w.hours) * time.Hour),
		})
		if err != nil {
			return fmt.Errorf("failed to seed availability: %w", err)
		}
	}

	for _, b := range bookings {
		at := today.AddDate(0, 0, b.day).Add(time.Duration(b.hour)*time.Hour + time.Duration(b.minute)*time.Minute)
		_, err := s.appointmentUsecase.Create(ctx, &dto.CreateAppointmentRequest{
			PatientID:       patientIDs[b.patient],
			DoctorID:        doctorIDs[b.doctor],
			HospitalID:      hospitalIDs[b.hospital],
			AppointmentTime: at,
			AmountPaid:      fees[[2]int{b.doctor, b.hospital}],
		})
		if err != nil {
			return fmt.Errorf("failed to seed appointment: %w", err)
		}
	}

	s.log.WithFields(logrus.Fields{
		"hospitals":    len(hospitals),
		"doctors":      len(doctors),
		"patients":     len(patients),
		"availability": len(windows),
		"appointments": len(bookings),
	}).Info("Demo data seeded; sign in as admin@hms.com / " + adminPassword)
	return nil
}

func (s *Seeder) registerAll(ctx context.Context, requests []dto.RegisterRequest) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(requests))
	for i := range requests {
		req := requests[i]
		user, err := s.authUsecase.Register(ctx, &req)
		if err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", req.Email, err)
		}
		ids[i] = user.ID
	}
	return ids, nil
}

func (s *Seeder) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func doctor(name, email, gender, dob, qualifications string, experience int, specializations ...string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        doctorPassword,
		Role:            entity.RoleDoctor.String(),
		Gender:          gender,
		DOB:             dob,
		Qualifications:  qualifications,
		Specializations: specializations,
		Experience:      &experience,
	}
}

func patient(name, email, gender, dob, uniqueID string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: patientPassword,
		Role:     entity.RolePatient.String(),
		Gender:   gender,
		DOB:      dob,
		UniqueID: uniqueID,
	}
}
