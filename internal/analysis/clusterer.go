package analysis

import (
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/speed_violation_analytics/internal/models"
)

// ClusteringParams - параметры жадной кластеризации
type ClusteringParams struct {
	// RadiusDeg - радиус присоединения к кластеру в градусах координатной сетки.
	// Расстояние считается евклидовым в пространстве градусов, не геодезическим:
	// метрика должна совпадать с метрикой порога.
	RadiusDeg float64
	// Saturation - число нарушений, при котором интенсивность достигает 1.0
	Saturation int
	// MemberSample - верхняя граница размера выборки идентификаторов на кластер
	MemberSample int
}

// Clusterer - инкрементальный кластеризатор нарушений в одно окно анализа.
// Жадный однопроходный алгоритм: событие присоединяется к ближайшему кластеру,
// если расстояние до его текущего центроида меньше радиуса, иначе создается
// новый кластер. Центроид - бегущее среднее координат, поэтому разбиение
// зависит от порядка событий. Кластеры никогда не сливаются и не разделяются.
//
// Экземпляр хранит состояние одного окна анализа; независимые окна - это
// независимые экземпляры. Запись сериализуется вызывающей стороной, чтение
// через Snapshot безопасно параллельно записи.
type Clusterer struct {
	params ClusteringParams

	mu       sync.RWMutex
	clusters []*models.Cluster
}

// NewClusterer создает пустой кластеризатор с заданными параметрами
func NewClusterer(params ClusteringParams) *Clusterer {
	return &Clusterer{params: params}
}

// Params возвращает текущие параметры кластеризации
func (c *Clusterer) Params() ClusteringParams {
	return c.params
}

// Assign присоединяет нарушение к ближайшему кластеру или создает новый.
// Возвращает идентификатор кластера, получившего событие.
// Кластеры перебираются в порядке создания; при равных расстояниях
// выигрывает более ранний кластер - это делает разбиение детерминированным
// для фиксированного порядка событий.
func (c *Clusterer) Assign(event *models.ViolationEvent) uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	var nearest *models.Cluster
	nearestDist := math.MaxFloat64
	for _, cluster := range c.clusters {
		d := distanceDeg(event.Latitude, event.Longitude, cluster.CentroidLat, cluster.CentroidLng)
		if d < nearestDist {
			nearest = cluster
			nearestDist = d
		}
	}

	if nearest != nil && nearestDist < c.params.RadiusDeg {
		c.attach(nearest, event)
		return nearest.ID
	}

	created := c.seed(event)
	return created.ID
}

// attach добавляет событие в существующий кластер и пересчитывает
// центроид инкрементально: new = old + (point - old) / newCount
func (c *Clusterer) attach(cluster *models.Cluster, event *models.ViolationEvent) {
	cluster.MemberCount++
	n := float64(cluster.MemberCount)
	cluster.CentroidLat += (event.Latitude - cluster.CentroidLat) / n
	cluster.CentroidLng += (event.Longitude - cluster.CentroidLng) / n
	if len(cluster.MemberIDs) < c.params.MemberSample {
		cluster.MemberIDs = append(cluster.MemberIDs, event.ID)
	}
	c.account(cluster, event)
}

// seed создает одиночный кластер с центроидом ровно в координатах события
func (c *Clusterer) seed(event *models.ViolationEvent) *models.Cluster {
	cluster := &models.Cluster{
		ID:          uuid.New(),
		CentroidLat: event.Latitude,
		CentroidLng: event.Longitude,
		MemberCount: 1,
		MemberIDs:   []uuid.UUID{event.ID},
		RoadCounts:  make(map[models.RoadType]int),
	}
	c.account(cluster, event)
	c.clusters = append(c.clusters, cluster)
	return cluster
}

// account обновляет счетчики и интенсивность кластера после добавления события
func (c *Clusterer) account(cluster *models.Cluster, event *models.ViolationEvent) {
	switch event.Severity {
	case models.SeverityMinor:
		cluster.MinorCount++
	case models.SeveritySevere:
		cluster.SevereCount++
	}
	if event.EmergencyOverride {
		cluster.OverrideCount++
	}
	if event.InProtectedZone {
		cluster.InZoneCount++
	}
	cluster.RoadCounts[event.RoadType]++
	cluster.Intensity = math.Min(float64(cluster.MemberCount)/float64(c.params.Saturation), 1.0)
	cluster.LastUpdated = event.Timestamp
}

// Snapshot возвращает глубокие копии кластеров в порядке создания.
// Читатели видят согласованное состояние на момент вызова.
func (c *Clusterer) Snapshot() []*models.Cluster {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*models.Cluster, len(c.clusters))
	for i, cluster := range c.clusters {
		out[i] = cluster.Clone()
	}
	return out
}

// Len возвращает число живых кластеров
func (c *Clusterer) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.clusters)
}

// Reset атомарно очищает окно анализа: параллельный читатель видит либо
// старое состояние целиком, либо пустое, но не промежуточное.
func (c *Clusterer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clusters = nil
}

// distanceDeg - евклидово расстояние в пространстве градусов lat/lng
func distanceDeg(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat1 - lat2
	dLng := lng1 - lng2
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
