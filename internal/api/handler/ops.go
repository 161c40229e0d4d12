package handler

import (
	"net/http"
	"time"

	"github.com/gridroute/gridroute/internal/api/models"
	"github.com/gridroute/gridroute/internal/api/response"
	"github.com/gridroute/gridroute/internal/graph"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	snapshot  *graph.Snapshot
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, snapshot *graph.Snapshot) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		snapshot:  snapshot,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	})
}

// ReadinessCheck handles GET /v1/ops/ready. The service is ready once a
// graph extent is loaded; without one no request can be validated.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.snapshot == nil {
		response.JSON(w, r, http.StatusServiceUnavailable, models.Health{
			Status: models.HealthStatusFail,
			Time:   models.Timestamp(time.Now()),
			Details: map[string]interface{}{
				"reason": "no graph loaded",
			},
		})
		return
	}

	response.JSON(w, r, http.StatusOK, models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	})
}

// GraphStatus handles GET /v1/ops/graph - the loaded graph's version and
// extent.
func (h *OpsHandler) GraphStatus(w http.ResponseWriter, r *http.Request) {
	if h.snapshot == nil {
		response.ServiceUnavailable(w, r, "no graph loaded")
		return
	}

	ext := h.snapshot.Extent()
	response.JSON(w, r, http.StatusOK, models.GraphStatus{
		Version:  h.snapshot.Version(),
		LoadedAt: models.Timestamp(h.snapshot.LoadedAt()),
		MinLat:   ext.MinLat,
		MaxLat:   ext.MaxLat,
		MinLon:   ext.MinLon,
		MaxLon:   ext.MaxLon,
	})
}
