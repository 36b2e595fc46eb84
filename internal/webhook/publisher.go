package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/report_intake/internal/models"
)

const (
	submissionQueueKey = "report_submission_events"
)

// SubmissionEvent - событие об успешно отправленном заявлении
type SubmissionEvent struct {
	EventID          uuid.UUID         `json:"event_id"`
	DraftID          uuid.UUID         `json:"draft_id"`
	ReportID         string            `json:"report_id,omitempty"`
	Reporter         string            `json:"reporter"`
	Type             models.ReportType `json:"type"`
	BroadcastConsent bool              `json:"broadcast_consent"`
	Attempts         int               `json:"attempts"`
	SubmittedAt      time.Time         `json:"submitted_at"`
}

// EventPublisher - интерфейс для публикации событий отправки
type EventPublisher interface {
	Publish(ctx context.Context, event SubmissionEvent) error
}

// RedisEventPublisher - реализация EventPublisher поверх списка Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event SubmissionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal submission event: %w", err)
	}

	// LPUSH добавляет в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, submissionQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish submission event to Redis: %w", err)
	}
	return nil
}
