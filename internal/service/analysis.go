package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/speed_violation_analytics/internal/analysis"
	"github.com/shenikar/speed_violation_analytics/internal/catalog"
	"github.com/shenikar/speed_violation_analytics/internal/config"
	"github.com/shenikar/speed_violation_analytics/internal/models"
	"github.com/shenikar/speed_violation_analytics/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ViolationRepository определяет контракт для архивации нарушений и кеша горячих точек
type ViolationRepository interface {
	ArchiveViolation(ctx context.Context, event *models.ViolationEvent) error
	SaveBatchAudit(ctx context.Context, result *models.BatchResult) error
	GetHotspotsFromCache(ctx context.Context) ([]*models.Cluster, error)
	SetHotspotsCache(ctx context.Context, clusters []*models.Cluster) error
	InvalidateHotspotsCache(ctx context.Context) error
}

// AnalysisService определяет контракт конвейера анализа телеметрии
type AnalysisService interface {
	StartArchiver(ctx context.Context)
	IngestBatch(ctx context.Context, samples []*models.TelemetrySample) (*models.BatchResult, error)
	ListHotspots(ctx context.Context, filter models.QueryFilter, limit int) ([]*models.Cluster, error)
	ListViolations(ctx context.Context, filter models.QueryFilter, limit int) ([]*models.ViolationEvent, error)
	GetStats(ctx context.Context) (*models.Stats, error)
	Reset(ctx context.Context) error
}

type analysisService struct {
	repo      ViolationRepository
	logger    *logrus.Logger
	cfg       *config.Config
	catalog   *catalog.Catalog
	clusterer *analysis.Clusterer
	publisher webhook.WebhookPublisher

	// Один логический писатель на окно анализа: пакеты обрабатываются
	// строго в порядке поступления, т.к. кластеризация чувствительна к порядку
	mu     sync.RWMutex
	events []*models.ViolationEvent
	stats  models.Stats
	// totalExcess - накопленная сумма превышений для среднего в статистике
	totalExcess float64

	// archiveCh - буфер фоновой архивации; отправка неблокирующая,
	// чтобы внешний I/O не попадал в горячий путь классификации
	archiveCh chan *models.ViolationEvent
}

// NewAnalysisService создает сервис анализа поверх загруженного каталога
func NewAnalysisService(
	repo ViolationRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	cat *catalog.Catalog,
	clusterer *analysis.Clusterer,
	publisher webhook.WebhookPublisher,
) AnalysisService {
	queueSize := cfg.ArchiveQueueSize
	if queueSize <= 0 {
		queueSize = 1024
	}
	return &analysisService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		catalog:   cat,
		clusterer: clusterer,
		publisher: publisher,
		archiveCh: make(chan *models.ViolationEvent, queueSize),
	}
}

// StartArchiver запускает фонового потребителя очереди архивации.
// Ошибки архивации логируются и никогда не влияют на результат ингеста.
func (s *analysisService) StartArchiver(ctx context.Context) {
	log := s.logger.WithField("service", "analysis")
	log.Info("Starting violation archiver...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info("Stopping violation archiver.")
				return
			case event := <-s.archiveCh:
				if err := s.repo.ArchiveViolation(ctx, event); err != nil {
					log.WithError(err).WithField("event_id", event.ID).Error("Failed to archive violation")
				}
			}
		}
	}()
}

// IngestBatch прогоняет пакет замеров через конвейер:
// валидация -> разрешение лимита -> классификация -> (при нарушении) кластеризация.
// Ошибочные замеры попадают в список отклоненных и не прерывают пакет.
func (s *analysisService) IngestBatch(ctx context.Context, samples []*models.TelemetrySample) (*models.BatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "IngestBatch",
		"samples": len(samples),
	})
	log.Info("Ingesting telemetry batch")

	result := &models.BatchResult{}
	var severeEvents []*models.ViolationEvent

	s.mu.Lock()
	for i, sample := range samples {
		field, reason := s.validateSample(sample)
		if reason != "" {
			result.Rejected = append(result.Rejected, models.RejectedSample{Index: i, Field: field, Reason: reason})
			s.stats.RejectedCount++
			continue
		}

		cat, ok := s.catalog.Get(sample.CategoryID)
		if !ok {
			// Явный дефолт из конфигурации вместо магического ключа
			if s.cfg.DefaultCategoryID != "" {
				cat, ok = s.catalog.Get(s.cfg.DefaultCategoryID)
			}
			if !ok {
				result.Rejected = append(result.Rejected, models.RejectedSample{
					Index:  i,
					Field:  "category",
					Reason: fmt.Sprintf("unknown vehicle category %q", sample.CategoryID),
				})
				s.stats.RejectedCount++
				continue
			}
		}

		limit, err := analysis.ResolveLimit(cat, sample.RoadType, sample.InProtectedZone, sample.EmergencyOverride)
		if err != nil {
			result.Rejected = append(result.Rejected, models.RejectedSample{Index: i, Field: "road_type", Reason: err.Error()})
			s.stats.RejectedCount++
			continue
		}

		excess, severity := analysis.Classify(sample.SpeedKmh, limit)
		result.Accepted++
		s.accountSample(sample, severity)

		if severity == models.SeverityCorrect {
			// Соответствующие лимиту замеры учитываются в статистике,
			// но никогда не материализуются как события
			continue
		}

		event := &models.ViolationEvent{
			ID:                uuid.New(),
			VehicleID:         sample.VehicleID,
			VehicleName:       sample.VehicleName,
			Timestamp:         sample.Timestamp,
			Latitude:          sample.Latitude,
			Longitude:         sample.Longitude,
			SpeedKmh:          sample.SpeedKmh,
			LimitKmh:          limit,
			ExcessKmh:         excess,
			Severity:          severity,
			RoadType:          sample.RoadType,
			InProtectedZone:   sample.InProtectedZone,
			EmergencyOverride: sample.EmergencyOverride,
		}
		event.ClusterID = s.clusterer.Assign(event)
		s.events = append(s.events, event)
		s.totalExcess += excess
		result.Violations++

		if severity == models.SeveritySevere {
			severeEvents = append(severeEvents, event)
		}

		// Архивация вне горячего пути; при переполнении буфера событие
		// не архивируется, но остается в окне анализа
		select {
		case s.archiveCh <- event:
		default:
			log.WithField("event_id", event.ID).Warn("Archive queue is full, dropping archive write")
		}
	}
	s.stats.ClusterCount = s.clusterer.Len()
	s.mu.Unlock()

	// Вебхуки и кеш - вне блокировки писателя
	for _, event := range severeEvents {
		if err := s.publisher.Publish(ctx, webhook.EventFromViolation(event)); err != nil {
			log.WithError(err).WithField("event_id", event.ID).Error("Failed to publish severe violation webhook")
		}
	}

	if result.Violations > 0 {
		if err := s.repo.InvalidateHotspotsCache(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate hotspots cache")
		}
	}

	if err := s.repo.SaveBatchAudit(ctx, result); err != nil {
		log.WithError(err).Warn("Failed to save batch audit record")
	}

	log.WithFields(logrus.Fields{
		"accepted":   result.Accepted,
		"violations": result.Violations,
		"rejected":   len(result.Rejected),
	}).Info("Telemetry batch ingested")
	return result, nil
}

// validateSample проверяет входной контракт замера.
// Возвращает имя поля и причину отклонения; пустая причина означает валидный замер.
func (s *analysisService) validateSample(sample *models.TelemetrySample) (string, string) {
	if sample.VehicleID == "" {
		return "vehicle_id", "vehicle id is required"
	}
	if sample.SpeedKmh < 0 {
		return "speed_kmh", fmt.Sprintf("negative speed %.2f", sample.SpeedKmh)
	}
	if sample.Latitude < -90 || sample.Latitude > 90 {
		return "latitude", fmt.Sprintf("latitude %.6f out of range [-90, 90]", sample.Latitude)
	}
	if sample.Longitude < -180 || sample.Longitude > 180 {
		return "longitude", fmt.Sprintf("longitude %.6f out of range [-180, 180]", sample.Longitude)
	}
	if !sample.RoadType.Valid() {
		return "road_type", fmt.Sprintf("unknown road type %q", sample.RoadType)
	}
	return "", ""
}

// accountSample обновляет агрегированную статистику по классифицированному замеру
func (s *analysisService) accountSample(sample *models.TelemetrySample, severity models.Severity) {
	s.stats.TotalSamples++
	switch severity {
	case models.SeverityCorrect:
		s.stats.CorrectCount++
	case models.SeverityMinor:
		s.stats.MinorCount++
	case models.SeveritySevere:
		s.stats.SevereCount++
	}
	if sample.EmergencyOverride {
		s.stats.OverrideOnCount++
	} else {
		s.stats.OverrideOffCount++
	}
	if sample.InProtectedZone {
		s.stats.InZoneCount++
	} else {
		s.stats.OutZoneCount++
	}
}

// ListHotspots возвращает ранжированный список кластеров.
// Нефильтрованный результат обслуживается из кеша Redis и кешируется после пересчета.
func (s *analysisService) ListHotspots(ctx context.Context, filter models.QueryFilter, limit int) ([]*models.Cluster, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "ListHotspots",
	})

	if filter.Empty() {
		cached, err := s.repo.GetHotspotsFromCache(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to read hotspots cache")
		} else if cached != nil {
			log.WithField("count", len(cached)).Debug("Hotspots served from cache")
			return clip(cached, limit), nil
		}
	}

	snapshot := s.clusterer.Snapshot()
	filtered := make([]*models.Cluster, 0, len(snapshot))
	for _, cluster := range snapshot {
		if filter.MatchCluster(cluster) {
			filtered = append(filtered, cluster)
		}
	}
	ranked := analysis.RankClusters(filtered)

	if filter.Empty() {
		if err := s.repo.SetHotspotsCache(ctx, ranked); err != nil {
			log.WithError(err).Warn("Failed to write hotspots cache")
		}
	}

	log.WithField("count", len(ranked)).Info("Hotspots listed")
	return clip(ranked, limit), nil
}

// ListViolations возвращает ранжированный список отдельных нарушений
func (s *analysisService) ListViolations(ctx context.Context, filter models.QueryFilter, limit int) ([]*models.ViolationEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "ListViolations",
	})

	s.mu.RLock()
	filtered := make([]*models.ViolationEvent, 0, len(s.events))
	for _, event := range s.events {
		if filter.MatchEvent(event) {
			filtered = append(filtered, event)
		}
	}
	s.mu.RUnlock()

	ranked := analysis.RankViolations(filtered)
	log.WithField("count", len(ranked)).Info("Violations listed")
	return clip(ranked, limit), nil
}

// GetStats возвращает копию агрегированной статистики текущего окна
func (s *analysisService) GetStats(ctx context.Context) (*models.Stats, error) {
	s.mu.RLock()
	stats := s.stats
	if violations := stats.MinorCount + stats.SevereCount; violations > 0 {
		stats.MeanExcessKmh = s.totalExcess / float64(violations)
	}
	s.mu.RUnlock()
	return &stats, nil
}

// Reset атомарно очищает окно анализа: кластеры, события и статистику.
// Параллельный читатель видит либо старое, либо пустое состояние.
func (s *analysisService) Reset(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "Reset",
	})
	log.Info("Resetting analysis window")

	s.mu.Lock()
	s.clusterer.Reset()
	s.events = nil
	s.stats = models.Stats{}
	s.totalExcess = 0
	s.mu.Unlock()

	if err := s.repo.InvalidateHotspotsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate hotspots cache on reset")
	}

	log.Info("Analysis window reset")
	return nil
}

// clip возвращает первые limit элементов; limit <= 0 означает без ограничения
func clip[T any](items []T, limit int) []T {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
