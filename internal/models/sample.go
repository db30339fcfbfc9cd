package models

import (
	"time"
)

// TelemetrySample представляет один замер телеметрии транспортного средства
type TelemetrySample struct {
	VehicleID   string    `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	CategoryID  string    `json:"category"`
	Timestamp   time.Time `json:"timestamp"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	// SpeedKmh - наблюдаемая скорость, км/ч
	SpeedKmh float64  `json:"speed_kmh"`
	RoadType RoadType `json:"road_type"`
	// InProtectedZone - находится ли точка внутри охраняемой зоны (например, депо)
	InProtectedZone bool `json:"in_protected_zone"`
	// EmergencyOverride - включен ли спецсигнал (маячок) экстренной службы
	EmergencyOverride bool `json:"emergency_override"`
}
