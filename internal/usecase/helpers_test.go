package usecase

import (
	"context"
	"io"
	"testing"

	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func asAdmin() (context.Context, uuid.UUID) {
	id := uuid.New()
	return middleware.WithIdentity(context.Background(), id, entity.RoleHospitalAdmin, "tok"), id
}

func asDoctor(id uuid.UUID) context.Context {
	return middleware.WithIdentity(context.Background(), id, entity.RoleDoctor, "tok")
}

func asPatient(id uuid.UUID) context.Context {
	return middleware.WithIdentity(context.Background(), id, entity.RolePatient, "tok")
}
