package models

// RejectedSample - описание замера, отклоненного при валидации входных данных
type RejectedSample struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// BatchResult - итог обработки пакета замеров
type BatchResult struct {
	Accepted   int              `json:"accepted"`
	Violations int              `json:"violations"`
	Rejected   []RejectedSample `json:"rejected,omitempty"`
}

// QueryFilter - чистый предикат для выборки нарушений и кластеров.
// nil-поля означают отсутствие фильтра по соответствующему признаку.
type QueryFilter struct {
	Severity          *Severity
	RoadType          *RoadType
	InProtectedZone   *bool
	EmergencyOverride *bool
}

// MatchEvent проверяет нарушение на соответствие фильтру
func (f QueryFilter) MatchEvent(e *ViolationEvent) bool {
	if f.Severity != nil && e.Severity != *f.Severity {
		return false
	}
	if f.RoadType != nil && e.RoadType != *f.RoadType {
		return false
	}
	if f.InProtectedZone != nil && e.InProtectedZone != *f.InProtectedZone {
		return false
	}
	if f.EmergencyOverride != nil && e.EmergencyOverride != *f.EmergencyOverride {
		return false
	}
	return true
}

// MatchCluster проверяет кластер на соответствие фильтру.
// Кластер подходит, если содержит хотя бы одно нарушение с требуемым признаком.
func (f QueryFilter) MatchCluster(c *Cluster) bool {
	if f.Severity != nil {
		switch *f.Severity {
		case SeverityMinor:
			if c.MinorCount == 0 {
				return false
			}
		case SeveritySevere:
			if c.SevereCount == 0 {
				return false
			}
		default:
			// В кластерах нет нарушений со степенью correct
			return false
		}
	}
	if f.RoadType != nil && c.RoadCounts[*f.RoadType] == 0 {
		return false
	}
	if f.InProtectedZone != nil {
		if *f.InProtectedZone && c.InZoneCount == 0 {
			return false
		}
		if !*f.InProtectedZone && c.InZoneCount == c.MemberCount {
			return false
		}
	}
	if f.EmergencyOverride != nil {
		if *f.EmergencyOverride && c.OverrideCount == 0 {
			return false
		}
		if !*f.EmergencyOverride && c.OverrideCount == c.MemberCount {
			return false
		}
	}
	return true
}

// Empty сообщает, что фильтр не задает ни одного ограничения
func (f QueryFilter) Empty() bool {
	return f.Severity == nil && f.RoadType == nil && f.InProtectedZone == nil && f.EmergencyOverride == nil
}

// Stats - агрегированная статистика по текущему окну анализа.
// Учитываются только успешно классифицированные замеры.
type Stats struct {
	TotalSamples int `json:"total_samples"`
	CorrectCount int `json:"correct_count"`
	MinorCount   int `json:"minor_count"`
	SevereCount  int `json:"severe_count"`
	// Разбивка классифицированных замеров по состоянию спецсигнала и зоне
	OverrideOnCount  int `json:"override_on_count"`
	OverrideOffCount int `json:"override_off_count"`
	InZoneCount      int `json:"in_zone_count"`
	OutZoneCount     int `json:"out_zone_count"`
	RejectedCount    int `json:"rejected_count"`
	// MeanExcessKmh - средний размер превышения по нарушениям (excess > 0)
	MeanExcessKmh float64 `json:"mean_excess_kmh"`
	ClusterCount  int     `json:"cluster_count"`
}
