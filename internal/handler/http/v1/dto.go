package v1

import (
	"time"

	"github.com/google/uuid"
)

// TelemetrySampleRequest DTO одного замера телеметрии
// @Description DTO одного замера телеметрии
type TelemetrySampleRequest struct {
	VehicleID         string    `json:"vehicle_id"`
	VehicleName       string    `json:"vehicle_name,omitempty"`
	Category          string    `json:"category,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	SpeedKmh          float64   `json:"speed_kmh"`
	RoadType          string    `json:"road_type"`
	InProtectedZone   bool      `json:"in_protected_zone"`
	EmergencyOverride bool      `json:"emergency_override"`
}

// IngestBatchRequest DTO для пакетной загрузки телеметрии.
// Валидируется только конверт пакета: ошибки отдельных замеров не отклоняют
// пакет целиком, а попадают в список rejected ответа.
// @Description DTO для пакетной загрузки телеметрии
type IngestBatchRequest struct {
	Samples []TelemetrySampleRequest `json:"samples" validate:"required,min=1,max=10000"`
}

// RejectedSampleResponse DTO отклоненного замера
// @Description DTO отклоненного замера
type RejectedSampleResponse struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// IngestBatchResponse DTO итога обработки пакета
// @Description DTO итога обработки пакета
type IngestBatchResponse struct {
	Accepted   int                      `json:"accepted"`
	Violations int                      `json:"violations"`
	Rejected   []RejectedSampleResponse `json:"rejected"`
}

// HotspotResponse DTO горячей точки
// @Description DTO горячей точки
type HotspotResponse struct {
	ID               uuid.UUID `json:"id"`
	CentroidLat      float64   `json:"centroid_lat"`
	CentroidLng      float64   `json:"centroid_lng"`
	MemberCount      int       `json:"member_count"`
	Intensity        float64   `json:"intensity"`
	DominantSeverity string    `json:"dominant_severity"`
	SeverityColor    string    `json:"severity_color"`
	LastUpdated      time.Time `json:"last_updated"`
}

// ViolationResponse DTO отдельного нарушения
// @Description DTO отдельного нарушения
type ViolationResponse struct {
	ID                uuid.UUID `json:"id"`
	VehicleID         string    `json:"vehicle_id"`
	VehicleName       string    `json:"vehicle_name,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	SpeedKmh          float64   `json:"speed_kmh"`
	LimitKmh          float64   `json:"limit_kmh"`
	ExcessKmh         float64   `json:"excess_kmh"`
	Severity          string    `json:"severity"`
	SeverityColor     string    `json:"severity_color"`
	RoadType          string    `json:"road_type"`
	InProtectedZone   bool      `json:"in_protected_zone"`
	EmergencyOverride bool      `json:"emergency_override"`
	ClusterID         uuid.UUID `json:"cluster_id"`
}

// StatsResponse DTO для ответа со статистикой окна анализа
// @Description DTO для ответа со статистикой окна анализа
type StatsResponse struct {
	TotalSamples     int     `json:"total_samples"`
	CorrectCount     int     `json:"correct_count"`
	MinorCount       int     `json:"minor_count"`
	SevereCount      int     `json:"severe_count"`
	OverrideOnCount  int     `json:"override_on_count"`
	OverrideOffCount int     `json:"override_off_count"`
	InZoneCount      int     `json:"in_zone_count"`
	OutZoneCount     int     `json:"out_zone_count"`
	RejectedCount    int     `json:"rejected_count"`
	MeanExcessKmh    float64 `json:"mean_excess_kmh"`
	ClusterCount     int     `json:"cluster_count"`
}
