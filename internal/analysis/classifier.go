package analysis

import (
	"github.com/shenikar/speed_violation_analytics/internal/models"
)

// Пороги классификации превышения, км/ч сверх лимита.
// Фиксированные константы домена, не настраиваются по категориям.
const (
	minorExcessThresholdKmh  = 0.0
	severeExcessThresholdKmh = 20.0
)

// Classify вычисляет превышение и его степень.
// excess = speed - limit; excess <= 0 -> correct, 0 < excess <= 20 -> minor,
// excess > 20 -> severe. Ровно 20 км/ч сверх лимита - еще minor.
func Classify(speedKmh, limitKmh float64) (float64, models.Severity) {
	excess := speedKmh - limitKmh
	switch {
	case excess <= minorExcessThresholdKmh:
		return excess, models.SeverityCorrect
	case excess <= severeExcessThresholdKmh:
		return excess, models.SeverityMinor
	default:
		return excess, models.SeveritySevere
	}
}
