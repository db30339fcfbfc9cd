package analysis

import (
	"fmt"

	"github.com/shenikar/speed_violation_analytics/internal/models"
)

// ProtectedZoneLimitKmh - фиксированный лимит внутри охраняемой зоны.
// Самый строгий контекст: действует независимо от категории и спецсигнала.
const ProtectedZoneLimitKmh = 20.0

// ResolveLimit возвращает действующий лимит скорости для одного замера.
// Правила применяются в строгом порядке приоритета:
//  1. охраняемая зона - фиксированный лимит;
//  2. экстренная категория с включенным спецсигналом - таблица повышенных лимитов;
//  3. обычная таблица лимитов категории.
//
// Функция чистая и тотальная на валидированном каталоге: для неизвестного
// типа дороги возвращается ошибка входного контракта, а не лимит по умолчанию.
func ResolveLimit(cat *models.VehicleCategory, road models.RoadType, inProtectedZone, emergencyOverride bool) (float64, error) {
	if inProtectedZone {
		return ProtectedZoneLimitKmh, nil
	}

	if cat.Class == models.ClassEmergency && emergencyOverride {
		limit, ok := cat.OverrideLimits[road]
		if !ok {
			return 0, fmt.Errorf("analysis: category %q has no override limit for road type %q", cat.ID, road)
		}
		return limit, nil
	}

	limit, ok := cat.Limits[road]
	if !ok {
		return 0, fmt.Errorf("analysis: category %q has no limit for road type %q", cat.ID, road)
	}
	return limit, nil
}
