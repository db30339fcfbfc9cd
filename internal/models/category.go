package models

// RoadType - тип дороги, по которой двигалось транспортное средство
type RoadType string

const (
	RoadUrban      RoadType = "urban"
	RoadInterurban RoadType = "interurban"
	RoadHighway    RoadType = "highway"
)

// AllRoadTypes - полный перечень типов дорог, используется при валидации каталога
var AllRoadTypes = []RoadType{RoadUrban, RoadInterurban, RoadHighway}

// Valid проверяет, что тип дороги известен системе
func (r RoadType) Valid() bool {
	switch r {
	case RoadUrban, RoadInterurban, RoadHighway:
		return true
	}
	return false
}

// VehicleClass - класс транспортного средства
type VehicleClass string

const (
	ClassLight     VehicleClass = "light"
	ClassHeavy     VehicleClass = "heavy"
	ClassBus       VehicleClass = "bus"
	ClassEmergency VehicleClass = "emergency"
)

// VehicleCategory - категория транспортного средства с таблицами ограничений скорости.
// Данные неизменяемы после загрузки каталога при старте приложения.
type VehicleCategory struct {
	ID     string               `json:"id"`
	Class  VehicleClass         `json:"class"`
	Limits map[RoadType]float64 `json:"limits"`
	// OverrideLimits - повышенные лимиты для экстренных служб с включенным маячком.
	// Заполняется только для категорий класса emergency.
	OverrideLimits map[RoadType]float64 `json:"override_limits,omitempty"`
}
