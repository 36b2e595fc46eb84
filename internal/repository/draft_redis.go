package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/report_intake/internal/draft"
	"github.com/shenikar/report_intake/internal/models"
)

type RedisDraftRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisDraftRepository создает хранилище черновиков в Redis.
// ttl == 0 означает хранение без срока жизни.
func NewRedisDraftRepository(redisClient *redis.Client, ttl time.Duration) draft.Repository {
	return &RedisDraftRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Put записывает черновик в слот
func (r *RedisDraftRepository) Put(ctx context.Context, slot string, payload []byte) error {
	if err := r.redisClient.Set(ctx, slot, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set draft in redis: %w", err)
	}
	return nil
}

// Get читает черновик из слота
func (r *RedisDraftRepository) Get(ctx context.Context, slot string) ([]byte, error) {
	val, err := r.redisClient.Get(ctx, slot).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft from redis: %w", err)
	}
	return val, nil
}

// Delete удаляет слот
func (r *RedisDraftRepository) Delete(ctx context.Context, slot string) error {
	if err := r.redisClient.Del(ctx, slot).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from redis: %w", err)
	}
	return nil
}
