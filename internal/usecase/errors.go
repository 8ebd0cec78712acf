package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

var (
	ErrForbidden           = errors.New("you don't have permission to perform this action")
	ErrUserNotFound        = errors.New("user not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrHospitalNotFound    = errors.New("hospital not found")
	ErrDoctorNotAssociated = errors.New("doctor not associated with this hospital")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

// AvailabilityConflictError lists the existing windows a new window overlaps.
type AvailabilityConflictError struct {
	Conflicts []entity.Availability
}

func (e *AvailabilityConflictError) Error() string {
	return fmt.Sprintf("availability conflicts with %d existing window(s)", len(e.Conflicts))
}

// FeeMismatchError is returned when the paid amount differs from the fee.
type FeeMismatchError struct {
	Expected decimal.Decimal
	Got      decimal.Decimal
}

func (e *FeeMismatchError) Error() string {
	return fmt.Sprintf("invalid amount: expected %s, got %s", e.Expected.StringFixed(2), e.Got.StringFixed(2))
}

// HospitalDependenciesError blocks a safe delete while dependent rows exist.
type HospitalDependenciesError struct {
	Counts entity.HospitalDependencies
}

func (e *HospitalDependenciesError) Error() string {
	return "hospital has dependent records"
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	return isPgError(err, pgUniqueViolation, constraintName)
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	return isPgError(err, pgForeignKeyViolation, constraintName)
}

func isExclusionError(err error, constraintName string) bool {
	return isPgError(err, pgExclusionViolation, constraintName)
}

func isPgError(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}

// actorID returns the authenticated caller for audit entries, or nil for
// unauthenticated flows such as registration and seeding.
func actorID(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}

// authorizeDoctor lets admins act on any doctor and doctors only on themselves.
// Calls without an identity (seeding, CLI) are trusted.
func authorizeDoctor(ctx context.Context, doctorID uuid.UUID) error {
	return authorizeOwner(ctx, entity.RoleDoctor, doctorID)
}

// authorizePatient lets admins act on any patient and patients only on themselves.
func authorizePatient(ctx context.Context, patientID uuid.UUID) error {
	return authorizeOwner(ctx, entity.RolePatient, patientID)
}

func authorizeOwner(ctx context.Context, ownerRole entity.Role, ownerID uuid.UUID) error {
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return nil
	}
	userID, _ := middleware.GetUserIDFromContext(ctx)

	switch role {
	case entity.RoleHospitalAdmin:
		return nil
	case entity.RoleDoctor, entity.RolePatient:
		if role == ownerRole && userID == ownerID {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}
