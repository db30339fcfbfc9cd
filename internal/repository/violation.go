package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/speed_violation_analytics/internal/models"
	"github.com/shenikar/speed_violation_analytics/internal/service"
)

const (
	hotspotsCacheKey = "hotspots:ranked"
	hotspotsCacheTTL = 5 * time.Minute
)

type ViolationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewViolationRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ViolationRepository {
	return &ViolationRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ArchiveViolation сохраняет зафиксированное нарушение в бд.
// Архив - внешний потребитель окна анализа: отказ записи не влияет на конвейер.
func (r *ViolationRepository) ArchiveViolation(ctx context.Context, event *models.ViolationEvent) error {
	query := `
		INSERT INTO violation_events (
			id, vehicle_id, vehicle_name, occurred_at, location,
			speed_kmh, limit_kmh, excess_kmh, severity,
			road_type, in_protected_zone, emergency_override, cluster_id
		)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.VehicleID,
		event.VehicleName,
		event.Timestamp,
		event.Longitude,
		event.Latitude,
		event.SpeedKmh,
		event.LimitKmh,
		event.ExcessKmh,
		string(event.Severity),
		string(event.RoadType),
		event.InProtectedZone,
		event.EmergencyOverride,
		event.ClusterID,
	)
	if err != nil {
		return fmt.Errorf("failed to archive violation event: %w", err)
	}
	return nil
}

// SaveBatchAudit сохраняет итог обработки пакета для аудита ингеста
func (r *ViolationRepository) SaveBatchAudit(ctx context.Context, result *models.BatchResult) error {
	rejected, err := json.Marshal(result.Rejected)
	if err != nil {
		return fmt.Errorf("failed to marshal rejected samples: %w", err)
	}

	query := `
		INSERT INTO ingest_batches (accepted, violations, rejected)
		VALUES ($1, $2, $3);
	`
	if _, err := r.db.Exec(ctx, query, result.Accepted, result.Violations, rejected); err != nil {
		return fmt.Errorf("failed to save batch audit: %w", err)
	}
	return nil
}

// GetHotspotsFromCache пытается получить ранжированный список кластеров из Redis.
// Возвращает nil без ошибки при промахе кеша.
func (r *ViolationRepository) GetHotspotsFromCache(ctx context.Context) ([]*models.Cluster, error) {
	val, err := r.redisClient.Get(ctx, hotspotsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hotspots from cache: %w", err)
	}

	var clusters []*models.Cluster
	if err := json.Unmarshal(val, &clusters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hotspots from cache: %w", err)
	}
	return clusters, nil
}

// SetHotspotsCache сохраняет ранжированный список кластеров в Redis
func (r *ViolationRepository) SetHotspotsCache(ctx context.Context, clusters []*models.Cluster) error {
	val, err := json.Marshal(clusters)
	if err != nil {
		return fmt.Errorf("failed to marshal hotspots for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, hotspotsCacheKey, val, hotspotsCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hotspots in cache: %w", err)
	}
	return nil
}

// InvalidateHotspotsCache удаляет ранжированный список кластеров из Redis
func (r *ViolationRepository) InvalidateHotspotsCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, hotspotsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hotspots cache: %w", err)
	}
	return nil
}
