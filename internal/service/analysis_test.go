package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/speed_violation_analytics/internal/analysis"
	"github.com/shenikar/speed_violation_analytics/internal/catalog"
	"github.com/shenikar/speed_violation_analytics/internal/config"
	"github.com/shenikar/speed_violation_analytics/internal/models"
	"github.com/shenikar/speed_violation_analytics/internal/service/mocks"
	"github.com/shenikar/speed_violation_analytics/internal/webhook"
	webhook_mocks "github.com/shenikar/speed_violation_analytics/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAnalysisService — вспомогательная функция для создания инстанса сервиса
// с моками и реальными каталогом и кластеризатором.
func newTestAnalysisService(t *testing.T) (*analysisService, *mocks.MockViolationRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockViolationRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ClusterRadiusDeg:    0.0005,
		ClusterSaturation:   10,
		ClusterMemberSample: 100,
		ArchiveQueueSize:    16,
	}

	cat, err := catalog.Load("")
	require.NoError(t, err)

	clusterer := analysis.NewClusterer(analysis.ClusteringParams{
		RadiusDeg:    cfg.ClusterRadiusDeg,
		Saturation:   cfg.ClusterSaturation,
		MemberSample: cfg.ClusterMemberSample,
	})

	service := NewAnalysisService(repoMock, logger, cfg, cat, clusterer, webhookMock)
	return service.(*analysisService), repoMock, webhookMock
}

func newTestSample(category string, road models.RoadType, speed float64) *models.TelemetrySample {
	return &models.TelemetrySample{
		VehicleID:   "V1",
		VehicleName: "Unit 1",
		CategoryID:  category,
		Timestamp:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Latitude:    40.0,
		Longitude:   -3.0,
		SpeedKmh:    speed,
		RoadType:    road,
	}
}

// filterSeverity — фильтр по степени, чтобы выборки в тестах шли мимо кеша Redis
func filterSeverity(s models.Severity) models.QueryFilter {
	return models.QueryFilter{Severity: &s}
}

func TestIngestBatch_EmergencyMinorViolation(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx := context.Background()
	// Экстренная категория, город, спецсигнал выключен: лимит 50, скорость 55
	sample := newTestSample("emergency", models.RoadUrban, 55)

	// Ожидания
	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.IngestBatch(ctx, []*models.TelemetrySample{sample})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 1, result.Violations)
	assert.Empty(t, result.Rejected)

	events, err := service.ListViolations(ctx, filterSeverity(models.SeverityMinor), 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 50.0, events[0].LimitKmh)
	assert.InDelta(t, 5.0, events[0].ExcessKmh, 1e-9)
	assert.Equal(t, models.SeverityMinor, events[0].Severity)
	assert.NotEqual(t, uuid.Nil, events[0].ClusterID)
}

func TestIngestBatch_EmergencyOverrideCompliant(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx := context.Background()
	// Тот же замер, но со включенным спецсигналом: лимит 80, превышения нет
	sample := newTestSample("emergency", models.RoadUrban, 55)
	sample.EmergencyOverride = true

	// Ожидания: нарушений нет, кеш не инвалидируется, вебхук не публикуется
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.IngestBatch(ctx, []*models.TelemetrySample{sample})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 0, result.Violations)

	// Соответствующий лимиту замер не материализуется как событие
	events, err := service.ListViolations(ctx, models.QueryFilter{}, 0)
	require.NoError(t, err)
	assert.Empty(t, events)

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CorrectCount)
}

func TestIngestBatch_ProtectedZoneLimitWins(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx := context.Background()
	// В охраняемой зоне лимит 20 независимо от категории и спецсигнала
	sample := newTestSample("light", models.RoadUrban, 25)
	sample.InProtectedZone = true

	// Ожидания
	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.IngestBatch(ctx, []*models.TelemetrySample{sample})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.Violations)

	events, err := service.ListViolations(ctx, models.QueryFilter{}, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 20.0, events[0].LimitKmh)
	assert.InDelta(t, 5.0, events[0].ExcessKmh, 1e-9)
	assert.Equal(t, models.SeverityMinor, events[0].Severity)
}

func TestIngestBatch_CloseViolationsShareOneCluster(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx := context.Background()
	first := newTestSample("light", models.RoadUrban, 60)
	second := newTestSample("light", models.RoadUrban, 65)
	// ~1 метр севернее - много меньше радиуса кластеризации
	second.Latitude = 40.000009

	// Ожидания
	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.IngestBatch(ctx, []*models.TelemetrySample{first, second})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, result.Violations)

	clusters, err := service.ListHotspots(ctx, filterSeverity(models.SeverityMinor), 0)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, 2, clusters[0].MemberCount)
}

func TestIngestBatch_RejectedSamplesDoNotAbortBatch(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx := context.Background()

	good := newTestSample("light", models.RoadUrban, 60)
	negativeSpeed := newTestSample("light", models.RoadUrban, -5)
	unknownRoad := newTestSample("light", models.RoadType("dirt"), 60)
	badLatitude := newTestSample("light", models.RoadUrban, 60)
	badLatitude.Latitude = 123.0
	unknownCategory := newTestSample("spaceship", models.RoadUrban, 60)

	// Ожидания
	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.IngestBatch(ctx, []*models.TelemetrySample{
		negativeSpeed, unknownRoad, badLatitude, unknownCategory, good,
	})

	// Проверки: плохие замеры отклонены с указанием поля, пакет не прерван
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 1, result.Violations)
	require.Len(t, result.Rejected, 4)
	assert.Equal(t, "speed_kmh", result.Rejected[0].Field)
	assert.Equal(t, "road_type", result.Rejected[1].Field)
	assert.Equal(t, "latitude", result.Rejected[2].Field)
	assert.Equal(t, "category", result.Rejected[3].Field)

	// Отклоненные замеры не попадают в агрегаты
	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSamples)
	assert.Equal(t, 4, stats.RejectedCount)
}

func TestIngestBatch_UnknownCategoryFallsBackToDefault(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	service.cfg.DefaultCategoryID = "light"
	ctx := context.Background()
	sample := newTestSample("spaceship", models.RoadUrban, 60)

	// Ожидания
	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	result, err := service.IngestBatch(ctx, []*models.TelemetrySample{sample})

	// Проверки: лимит разрешен по явно сконфигурированной категории по умолчанию
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Empty(t, result.Rejected)

	events, err := service.ListViolations(ctx, models.QueryFilter{}, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 50.0, events[0].LimitKmh)
}

func TestIngestBatch_SevereViolationPublishesWebhook(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestAnalysisService(t)
	ctx := context.Background()
	sample := newTestSample("light", models.RoadUrban, 100)

	// Ожидания
	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, models.SeveritySevere, event.Severity)
			assert.Equal(t, "V1", event.VehicleID)
			assert.InDelta(t, 50.0, event.ExcessKmh, 1e-9)
		}).Return(nil).Times(1)

	// Действие
	result, err := service.IngestBatch(ctx, []*models.TelemetrySample{sample})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.Violations)
}

func TestIngestBatch_DeterministicForIdenticalOrder(t *testing.T) {
	// Повторная подача идентичной последовательности в свежий конвейер
	// дает идентичные кластеры и центроиды
	ctx := context.Background()

	buildSamples := func() []*models.TelemetrySample {
		coords := []struct{ lat, lng float64 }{
			{40.0, -3.0},
			{40.0001, -3.0001},
			{40.01, -3.0},
			{40.0002, -3.0002},
			{41.0, -4.0},
		}
		samples := make([]*models.TelemetrySample, 0, len(coords))
		for _, p := range coords {
			sample := newTestSample("light", models.RoadUrban, 60)
			sample.Latitude = p.lat
			sample.Longitude = p.lng
			samples = append(samples, sample)
		}
		return samples
	}

	run := func() []*models.Cluster {
		service, repoMock, _ := newTestAnalysisService(t)
		repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
		repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)

		_, err := service.IngestBatch(ctx, buildSamples())
		require.NoError(t, err)

		clusters, err := service.ListHotspots(ctx, filterSeverity(models.SeverityMinor), 0)
		require.NoError(t, err)
		return clusters
	}

	first := run()
	second := run()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].MemberCount, second[i].MemberCount, "cluster %d", i)
		assert.Equal(t, first[i].CentroidLat, second[i].CentroidLat, "cluster %d", i)
		assert.Equal(t, first[i].CentroidLng, second[i].CentroidLng, "cluster %d", i)
	}
}

func TestListHotspots_ServedFromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx := context.Background()
	cached := []*models.Cluster{
		{ID: uuid.New(), MemberCount: 7, MinorCount: 7},
	}

	// Ожидания: попадание в кеш, пересчет и запись не выполняются
	repoMock.EXPECT().GetHotspotsFromCache(ctx).Return(cached, nil).Times(1)

	// Действие
	clusters, err := service.ListHotspots(ctx, models.QueryFilter{}, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, clusters)
}

func TestListHotspots_CacheMissRecomputesAndCaches(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx := context.Background()
	sample := newTestSample("light", models.RoadUrban, 60)

	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)
	_, err := service.IngestBatch(ctx, []*models.TelemetrySample{sample})
	require.NoError(t, err)

	// Ожидания: промах кеша, затем запись пересчитанного ранжирования
	repoMock.EXPECT().GetHotspotsFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().SetHotspotsCache(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	clusters, err := service.ListHotspots(ctx, models.QueryFilter{}, 0)

	// Проверки
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, 1, clusters[0].MemberCount)
}

func TestListHotspots_RankedByMemberCount(t *testing.T) {
	// Подготовка: два кластера разного размера
	service, repoMock, _ := newTestAnalysisService(t)
	ctx := context.Background()

	samples := []*models.TelemetrySample{}
	// Одиночное нарушение в удаленной точке
	lone := newTestSample("light", models.RoadUrban, 60)
	lone.Latitude = 41.0
	samples = append(samples, lone)
	// Три нарушения в одной точке
	for i := 0; i < 3; i++ {
		samples = append(samples, newTestSample("light", models.RoadUrban, 60))
	}

	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := service.IngestBatch(ctx, samples)
	require.NoError(t, err)

	// Действие
	clusters, err := service.ListHotspots(ctx, filterSeverity(models.SeverityMinor), 0)

	// Проверки: больший кластер впереди
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	assert.Equal(t, 3, clusters[0].MemberCount)
	assert.Equal(t, 1, clusters[1].MemberCount)
}

func TestListViolations_FilteredBySeverity(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestAnalysisService(t)
	ctx := context.Background()
	minor := newTestSample("light", models.RoadUrban, 60)
	severe := newTestSample("light", models.RoadUrban, 100)

	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := service.IngestBatch(ctx, []*models.TelemetrySample{minor, severe})
	require.NoError(t, err)

	// Действие
	severeOnly, err := service.ListViolations(ctx, filterSeverity(models.SeveritySevere), 0)

	// Проверки
	require.NoError(t, err)
	require.Len(t, severeOnly, 1)
	assert.Equal(t, models.SeveritySevere, severeOnly[0].Severity)
}

func TestGetStats_Breakdowns(t *testing.T) {
	// Подготовка
	service, repoMock, webhookMock := newTestAnalysisService(t)
	ctx := context.Background()

	compliant := newTestSample("light", models.RoadUrban, 40)
	minor := newTestSample("light", models.RoadUrban, 55) // превышение 5
	severe := newTestSample("light", models.RoadUrban, 80) // превышение 30
	severe.EmergencyOverride = true
	inZone := newTestSample("light", models.RoadUrban, 10)
	inZone.InProtectedZone = true

	// Ожидания
	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := service.IngestBatch(ctx, []*models.TelemetrySample{compliant, minor, severe, inZone})
	require.NoError(t, err)

	// Действие
	stats, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalSamples)
	assert.Equal(t, 2, stats.CorrectCount)
	assert.Equal(t, 1, stats.MinorCount)
	assert.Equal(t, 1, stats.SevereCount)
	assert.Equal(t, 1, stats.OverrideOnCount)
	assert.Equal(t, 3, stats.OverrideOffCount)
	assert.Equal(t, 1, stats.InZoneCount)
	assert.Equal(t, 3, stats.OutZoneCount)
	// Среднее превышение считается по нарушениям: (5 + 30) / 2
	assert.InDelta(t, 17.5, stats.MeanExcessKmh, 1e-9)
}

func TestReset_ClearsWindowAtomically(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx := context.Background()
	sample := newTestSample("light", models.RoadUrban, 60)

	repoMock.EXPECT().InvalidateHotspotsCache(ctx).Return(nil).Times(2) // ингест + сброс
	repoMock.EXPECT().SaveBatchAudit(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := service.IngestBatch(ctx, []*models.TelemetrySample{sample})
	require.NoError(t, err)

	// Действие
	require.NoError(t, service.Reset(ctx))

	// Проверки: читатель видит полностью пустое окно
	events, err := service.ListViolations(ctx, models.QueryFilter{}, 0)
	require.NoError(t, err)
	assert.Empty(t, events)

	clusters, err := service.ListHotspots(ctx, filterSeverity(models.SeverityMinor), 0)
	require.NoError(t, err)
	assert.Empty(t, clusters)

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSamples)
	assert.Equal(t, 0, stats.ClusterCount)
}

func TestStartArchiver_ArchivesViolationsInBackground(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sample := newTestSample("light", models.RoadUrban, 60)

	archived := make(chan uuid.UUID, 1)

	// Ожидания
	repoMock.EXPECT().InvalidateHotspotsCache(gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().
		ArchiveViolation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.ViolationEvent) error {
			archived <- event.ID
			return nil
		}).Times(1)

	service.StartArchiver(ctx)

	// Действие
	_, err := service.IngestBatch(ctx, []*models.TelemetrySample{sample})
	require.NoError(t, err)

	// Проверки: событие доезжает до репозитория в фоне
	select {
	case id := <-archived:
		assert.NotEqual(t, uuid.Nil, id)
	case <-time.After(2 * time.Second):
		t.Fatal("violation was not archived in time")
	}
}

func TestIngestBatch_ArchiveFailureDoesNotFailIngest(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAnalysisService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sample := newTestSample("light", models.RoadUrban, 60)

	failed := make(chan struct{}, 1)

	// Ожидания: отказ архивации логируется и не влияет на результат
	repoMock.EXPECT().InvalidateHotspotsCache(gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().SaveBatchAudit(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().
		ArchiveViolation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.ViolationEvent) error {
			failed <- struct{}{}
			return fmt.Errorf("база недоступна")
		}).Times(1)

	service.StartArchiver(ctx)

	// Действие
	result, err := service.IngestBatch(ctx, []*models.TelemetrySample{sample})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.Violations)

	select {
	case <-failed:
	case <-time.After(2 * time.Second):
		t.Fatal("archive attempt was not made in time")
	}
}
