package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/speed_violation_analytics/internal/config"
	"github.com/shenikar/speed_violation_analytics/internal/models"
	"github.com/shenikar/speed_violation_analytics/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	analysisService service.AnalysisService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(analysisService service.AnalysisService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		analysisService: analysisService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Ingest a telemetry batch
// @Description Classify a batch of telemetry samples and cluster violations. Per-sample errors are returned in the rejected list and do not abort the batch. Requires API key.
// @Tags Telemetry
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param batch body IngestBatchRequest true "Telemetry batch"
// @Success 200 {object} IngestBatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /telemetry/batch [post]
func (h *Handler) ingestBatch(c *gin.Context) {
	var input IngestBatchRequest
	log := h.logger.WithField("method", "ingestBatch")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	samples := DTOsToTelemetrySamples(input.Samples)
	result, err := h.analysisService.IngestBatch(c.Request.Context(), samples)
	if err != nil {
		log.WithError(err).Error("Failed to ingest batch in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToIngestBatchResponse(result))
}

// @Summary List ranked hotspots
// @Description Get violation clusters ranked by member count with severity-weight tie-break. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param severity query string false "Filter by severity (minor|severe)"
// @Param road_type query string false "Filter by road type (urban|interurban|highway)"
// @Param in_zone query bool false "Filter by protected-zone membership"
// @Param override query bool false "Filter by emergency-override state"
// @Param limit query int false "Top-N limit"
// @Success 200 {array} HotspotResponse
// @Failure 400 {object} map[string]string "Invalid filter value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots [get]
func (h *Handler) listHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspots")

	filter, limit, err := parseQueryFilter(c)
	if err != nil {
		log.WithError(err).Warn("Invalid filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clusters, err := h.analysisService.ListHotspots(c.Request.Context(), filter, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list hotspots from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHotspotResponses(clusters))
}

// @Summary List ranked violation points
// @Description Get individual violation events ranked by location frequency and severity weight. Requires API key.
// @Tags Violations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param severity query string false "Filter by severity (minor|severe)"
// @Param road_type query string false "Filter by road type (urban|interurban|highway)"
// @Param in_zone query bool false "Filter by protected-zone membership"
// @Param override query bool false "Filter by emergency-override state"
// @Param limit query int false "Top-N limit"
// @Success 200 {array} ViolationResponse
// @Failure 400 {object} map[string]string "Invalid filter value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /violations [get]
func (h *Handler) listViolations(c *gin.Context) {
	log := h.logger.WithField("method", "listViolations")

	filter, limit, err := parseQueryFilter(c)
	if err != nil {
		log.WithError(err).Warn("Invalid filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.analysisService.ListViolations(c.Request.Context(), filter, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list violations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToViolationResponses(events))
}

// @Summary Get analysis window statistics
// @Description Get aggregate statistics for the current analysis window. Requires API key.
// @Tags Stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.analysisService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Reset the analysis window
// @Description Atomically clear all clusters, violation events and statistics. Requires API key.
// @Tags Stats
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /window/reset [post]
func (h *Handler) resetWindow(c *gin.Context) {
	log := h.logger.WithField("method", "resetWindow")

	if err := h.analysisService.Reset(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to reset analysis window")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset analysis window"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// errInvalidQueryValue - ошибка разбора query-параметра фильтра
func errInvalidQueryValue(param, value string) error {
	return fmt.Errorf("invalid value %q for query parameter %q", value, param)
}

// parseQueryFilter разбирает общие query-параметры фильтрации выборок
func parseQueryFilter(c *gin.Context) (models.QueryFilter, int, error) {
	var filter models.QueryFilter

	if raw := c.Query("severity"); raw != "" {
		severity := models.Severity(raw)
		if !severity.Valid() {
			return filter, 0, errInvalidQueryValue("severity", raw)
		}
		filter.Severity = &severity
	}

	if raw := c.Query("road_type"); raw != "" {
		road := models.RoadType(raw)
		if !road.Valid() {
			return filter, 0, errInvalidQueryValue("road_type", raw)
		}
		filter.RoadType = &road
	}

	if raw := c.Query("in_zone"); raw != "" {
		inZone, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, 0, errInvalidQueryValue("in_zone", raw)
		}
		filter.InProtectedZone = &inZone
	}

	if raw := c.Query("override"); raw != "" {
		override, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, 0, errInvalidQueryValue("override", raw)
		}
		filter.EmergencyOverride = &override
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return filter, 0, errInvalidQueryValue("limit", raw)
		}
		limit = parsed
	}

	return filter, limit, nil
}
