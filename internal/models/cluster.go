package models

import (
	"time"

	"github.com/google/uuid"
)

// Cluster - пространственный агрегат нарушений вокруг общего центроида ("горячая точка").
// Центроид - бегущее среднее координат всех присоединенных нарушений,
// поэтому результат кластеризации зависит от порядка обработки событий.
type Cluster struct {
	ID          uuid.UUID `json:"id"`
	CentroidLat float64   `json:"centroid_lat"`
	CentroidLng float64   `json:"centroid_lng"`
	MemberCount int       `json:"member_count"`
	// MemberIDs - ограниченная по размеру выборка идентификаторов нарушений кластера
	MemberIDs []uuid.UUID `json:"member_ids,omitempty"`
	// Intensity - нормализованная оценка "горячести" кластера в диапазоне [0, 1]
	Intensity   float64   `json:"intensity"`
	LastUpdated time.Time `json:"last_updated"`

	// Счетчики для фильтрации и определения доминирующей степени
	MinorCount    int              `json:"minor_count"`
	SevereCount   int              `json:"severe_count"`
	OverrideCount int              `json:"override_count"`
	InZoneCount   int              `json:"in_zone_count"`
	RoadCounts    map[RoadType]int `json:"road_counts,omitempty"`
}

// DominantSeverity возвращает степень с наибольшим числом нарушений в кластере.
// При равенстве приоритет у severe.
func (c *Cluster) DominantSeverity() Severity {
	if c.SevereCount >= c.MinorCount {
		return SeveritySevere
	}
	return SeverityMinor
}

// Clone возвращает глубокую копию кластера для снапшотов на чтение
func (c *Cluster) Clone() *Cluster {
	cp := *c
	cp.MemberIDs = make([]uuid.UUID, len(c.MemberIDs))
	copy(cp.MemberIDs, c.MemberIDs)
	cp.RoadCounts = make(map[RoadType]int, len(c.RoadCounts))
	for road, n := range c.RoadCounts {
		cp.RoadCounts[road] = n
	}
	return &cp
}
