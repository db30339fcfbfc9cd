package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/speed_violation_analytics/internal/models"
)

const (
	webhookQueueKey = "violation_webhook_events"
)

// WebhookEvent - структура для данных вебхука о грубом нарушении
type WebhookEvent struct {
	EventID     uuid.UUID       `json:"event_id"`
	VehicleID   string          `json:"vehicle_id"`
	VehicleName string          `json:"vehicle_name"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	SpeedKmh    float64         `json:"speed_kmh"`
	LimitKmh    float64         `json:"limit_kmh"`
	ExcessKmh   float64         `json:"excess_kmh"`
	Severity    models.Severity `json:"severity"`
	ClusterID   uuid.UUID       `json:"cluster_id"`
	Timestamp   time.Time       `json:"timestamp"`
}

// EventFromViolation собирает событие вебхука из зафиксированного нарушения
func EventFromViolation(e *models.ViolationEvent) WebhookEvent {
	return WebhookEvent{
		EventID:     e.ID,
		VehicleID:   e.VehicleID,
		VehicleName: e.VehicleName,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		SpeedKmh:    e.SpeedKmh,
		LimitKmh:    e.LimitKmh,
		ExcessKmh:   e.ExcessKmh,
		Severity:    e.Severity,
		ClusterID:   e.ClusterID,
		Timestamp:   e.Timestamp,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
