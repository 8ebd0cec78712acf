package mocks

import (
	"context"
	"time"

	"hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

var (
	_ service.SessionStore = (*SessionStore)(nil)
	_ service.AuditService = (*AuditService)(nil)
)

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *SessionStore) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Get(0).(bool), args.Error(1)
}

func (m *SessionStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

func (m *SessionStore) RevokeAll(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int), args.Error(1)
}

type AuditService struct {
	mock.Mock
}

func (m *AuditService) LogCreate(tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(tx, actorID, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *AuditService) LogUpdate(tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}, newValue interface{}) error {
	args := m.Called(tx, actorID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *AuditService) LogDelete(tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	args := m.Called(tx, actorID, action, entityName, entityID, oldValue)
	return args.Error(0)
}
