package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity - степень превышения скорости
type Severity string

const (
	SeverityCorrect Severity = "correct"
	SeverityMinor   Severity = "minor"
	SeveritySevere  Severity = "severe"
)

// Valid проверяет, что значение степени известно системе
func (s Severity) Valid() bool {
	switch s {
	case SeverityCorrect, SeverityMinor, SeveritySevere:
		return true
	}
	return false
}

// ViolationEvent - зафиксированное нарушение скоростного режима.
// Создается только для замеров с превышением (excess > 0) и неизменяемо после создания.
type ViolationEvent struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   string    `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	Timestamp   time.Time `json:"timestamp"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	SpeedKmh    float64   `json:"speed_kmh"`
	LimitKmh    float64   `json:"limit_kmh"`
	// ExcessKmh - превышение над разрешенным лимитом, всегда > 0
	ExcessKmh         float64   `json:"excess_kmh"`
	Severity          Severity  `json:"severity"`
	RoadType          RoadType  `json:"road_type"`
	InProtectedZone   bool      `json:"in_protected_zone"`
	EmergencyOverride bool      `json:"emergency_override"`
	ClusterID         uuid.UUID `json:"cluster_id"`
}
