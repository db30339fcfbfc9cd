package v1

import "github.com/shenikar/speed_violation_analytics/internal/models"

// severityColors - презентационная таблица цветов для дашборда.
// Держится на уровне handler: ядро анализа о цветах не знает.
var severityColors = map[models.Severity]string{
	models.SeverityCorrect: "#2ecc71",
	models.SeverityMinor:   "#f39c12",
	models.SeveritySevere:  "#e74c3c",
}

// DTOToTelemetrySample преобразует DTO замера в доменную модель
func DTOToTelemetrySample(dto TelemetrySampleRequest) *models.TelemetrySample {
	return &models.TelemetrySample{
		VehicleID:         dto.VehicleID,
		VehicleName:       dto.VehicleName,
		CategoryID:        dto.Category,
		Timestamp:         dto.Timestamp,
		Latitude:          dto.Latitude,
		Longitude:         dto.Longitude,
		SpeedKmh:          dto.SpeedKmh,
		RoadType:          models.RoadType(dto.RoadType),
		InProtectedZone:   dto.InProtectedZone,
		EmergencyOverride: dto.EmergencyOverride,
	}
}

// DTOsToTelemetrySamples преобразует пакет DTO в срез доменных моделей
func DTOsToTelemetrySamples(dtos []TelemetrySampleRequest) []*models.TelemetrySample {
	samples := make([]*models.TelemetrySample, len(dtos))
	for i, dto := range dtos {
		samples[i] = DTOToTelemetrySample(dto)
	}
	return samples
}

// ModelToIngestBatchResponse преобразует итог обработки пакета в DTO для ответа
func ModelToIngestBatchResponse(result *models.BatchResult) *IngestBatchResponse {
	rejected := make([]RejectedSampleResponse, len(result.Rejected))
	for i, r := range result.Rejected {
		rejected[i] = RejectedSampleResponse{Index: r.Index, Field: r.Field, Reason: r.Reason}
	}
	return &IngestBatchResponse{
		Accepted:   result.Accepted,
		Violations: result.Violations,
		Rejected:   rejected,
	}
}

// ModelToHotspotResponse преобразует кластер в DTO для ответа
func ModelToHotspotResponse(model *models.Cluster) *HotspotResponse {
	dominant := model.DominantSeverity()
	return &HotspotResponse{
		ID:               model.ID,
		CentroidLat:      model.CentroidLat,
		CentroidLng:      model.CentroidLng,
		MemberCount:      model.MemberCount,
		Intensity:        model.Intensity,
		DominantSeverity: string(dominant),
		SeverityColor:    severityColors[dominant],
		LastUpdated:      model.LastUpdated,
	}
}

// ModelsToHotspotResponses преобразует срез кластеров в срез DTO
func ModelsToHotspotResponses(clusters []*models.Cluster) []*HotspotResponse {
	responses := make([]*HotspotResponse, len(clusters))
	for i, cluster := range clusters {
		responses[i] = ModelToHotspotResponse(cluster)
	}
	return responses
}

// ModelToViolationResponse преобразует нарушение в DTO для ответа
func ModelToViolationResponse(model *models.ViolationEvent) *ViolationResponse {
	return &ViolationResponse{
		ID:                model.ID,
		VehicleID:         model.VehicleID,
		VehicleName:       model.VehicleName,
		Timestamp:         model.Timestamp,
		Latitude:          model.Latitude,
		Longitude:         model.Longitude,
		SpeedKmh:          model.SpeedKmh,
		LimitKmh:          model.LimitKmh,
		ExcessKmh:         model.ExcessKmh,
		Severity:          string(model.Severity),
		SeverityColor:     severityColors[model.Severity],
		RoadType:          string(model.RoadType),
		InProtectedZone:   model.InProtectedZone,
		EmergencyOverride: model.EmergencyOverride,
		ClusterID:         model.ClusterID,
	}
}

// ModelsToViolationResponses преобразует срез нарушений в срез DTO
func ModelsToViolationResponses(events []*models.ViolationEvent) []*ViolationResponse {
	responses := make([]*ViolationResponse, len(events))
	for i, event := range events {
		responses[i] = ModelToViolationResponse(event)
	}
	return responses
}

// ModelToStatsResponse преобразует статистику окна в DTO для ответа
func ModelToStatsResponse(model *models.Stats) *StatsResponse {
	return &StatsResponse{
		TotalSamples:     model.TotalSamples,
		CorrectCount:     model.CorrectCount,
		MinorCount:       model.MinorCount,
		SevereCount:      model.SevereCount,
		OverrideOnCount:  model.OverrideOnCount,
		OverrideOffCount: model.OverrideOffCount,
		InZoneCount:      model.InZoneCount,
		OutZoneCount:     model.OutZoneCount,
		RejectedCount:    model.RejectedCount,
		MeanExcessKmh:    model.MeanExcessKmh,
		ClusterCount:     model.ClusterCount,
	}
}
