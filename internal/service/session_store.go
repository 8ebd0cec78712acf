package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// access_token:{user_id}:{token_id}
	sessionKeyPrefix = "access_token"

	scanBatchSize = 100
)

// SessionStore keeps the set of live access tokens. A token that is not in
// the store is treated as revoked even if its signature is still valid.
type SessionStore interface {
	Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) (int, error)
}

type redisSessionStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewSessionStore(client *redis.Client, log *logrus.Logger) SessionStore {
	return &redisSessionStore{
		client: client,
		log:    log,
	}
}

func sessionKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", sessionKeyPrefix, userID.String(), tokenID)
}

func (s *redisSessionStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(userID, tokenID), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store access token in Redis: %+v", err)
		return err
	}
	return nil
}

func (s *redisSessionStore) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := s.client.Del(ctx, sessionKey(userID, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}
	return nil
}

// RevokeAll drops every session of the user. SCAN keeps Redis responsive
// where KEYS would block on a large keyspace.
func (s *redisSessionStore) RevokeAll(ctx context.Context, userID uuid.UUID) (int, error) {
	pattern := fmt.Sprintf("%s:%s:*", sessionKeyPrefix, userID.String())
	revoked := 0

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			s.log.Warnf("Failed to scan access token keys: %+v", err)
			return revoked, err
		}
		if len(keys) > 0 {
			n, err := s.client.Del(ctx, keys...).Result()
			if err != nil {
				s.log.Warnf("Failed to delete access tokens: %+v", err)
				return revoked, err
			}
			revoked += int(n)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return revoked, nil
}
