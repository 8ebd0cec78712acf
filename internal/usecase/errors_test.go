package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorMatching(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_patient"}
	excl := &pgconn.PgError{Code: "23P01", ConstraintName: "excl_availability_doctor_overlap"}

	assert.True(t, isDuplicateKeyError(unique, "email"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create user: %w", unique), "EMAIL"))
	assert.False(t, isDuplicateKeyError(unique, "name"))
	assert.False(t, isDuplicateKeyError(fk, "appointments"))

	assert.True(t, isForeignKeyError(fk, ""))
	assert.True(t, isExclusionError(excl, "availability"))
	assert.False(t, isExclusionError(unique, ""))
	assert.False(t, isDuplicateKeyError(errors.New("boom"), ""))
}

func TestAuthorizeOwner(t *testing.T) {
	doctorID := uuid.New()
	patientID := uuid.New()
	adminCtx, _ := asAdmin()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
	}{
		{"admin acts on any doctor", adminCtx, nil},
		{"doctor acts on self", asDoctor(doctorID), nil},
		{"doctor acts on another doctor", asDoctor(uuid.New()), ErrForbidden},
		{"patient cannot act as doctor", asPatient(doctorID), ErrForbidden},
		{"no identity is trusted", context.Background(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, authorizeDoctor(tt.ctx, doctorID), tt.err)
		})
	}

	assert.NoError(t, authorizePatient(asPatient(patientID), patientID))
	assert.ErrorIs(t, authorizePatient(asPatient(uuid.New()), patientID), ErrForbidden)
	assert.ErrorIs(t, authorizePatient(asDoctor(patientID), patientID), ErrForbidden)
}
