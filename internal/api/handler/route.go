// Package handler provides HTTP handlers for the GridRoute API.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gridroute/gridroute/internal/api/models"
	"github.com/gridroute/gridroute/internal/api/response"
	"github.com/gridroute/gridroute/internal/engine"
	"github.com/gridroute/gridroute/internal/route"
)

// RouteHandler handles route computation endpoints.
type RouteHandler struct {
	engine *engine.Service
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(engineService *engine.Service) *RouteHandler {
	return &RouteHandler{engine: engineService}
}

// ComputeRoute handles POST /v1/routes:compute.
func (h *RouteHandler) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	var input models.RouteComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	resp, err := h.engine.Route(r.Context(), toRouteRequest(&input))
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrNoRouteFound):
			response.NotFound(w, r, err.Error())
		case errors.Is(err, engine.ErrProviderUnavailable):
			response.ServiceUnavailable(w, r, "routing engine unavailable")
		default:
			response.InternalError(w, r, "route computation failed")
		}
		return
	}

	if resp.HasErrors() {
		response.BadRequest(w, r, "route request failed validation", toFieldErrors(resp.Errors()))
		return
	}

	out := models.RouteComputeResponse{
		GeneratedAt: models.Timestamp(time.Now()),
		Provider:    resp.Provider,
		Paths:       make([]models.PathDTO, len(resp.Paths)),
	}
	for i, p := range resp.Paths {
		out.Paths[i] = models.PathDTO{
			DistanceMeters:  p.DistanceMeters,
			DurationSeconds: p.DurationSeconds,
			Geometry:        p.Polyline,
		}
	}

	w.Header().Set("Cache-Control", "private, max-age=60")
	response.JSON(w, r, http.StatusOK, out)
}

// toRouteRequest converts the wire request into the engine's request type.
// Null waypoint slots are preserved so the validator can report their index;
// null headings become the NaN "no preference" sentinel.
func toRouteRequest(input *models.RouteComputeRequest) *route.Request {
	req := &route.Request{
		Profile:    input.Profile,
		PointHints: input.PointHints,
	}

	if input.Points != nil {
		req.Points = make([]*route.Waypoint, len(input.Points))
		for i, p := range input.Points {
			if p != nil {
				req.Points[i] = &route.Waypoint{Lat: p.Lat, Lon: p.Lon}
			}
		}
	}

	if input.Headings != nil {
		req.Headings = make([]float64, len(input.Headings))
		for i, hd := range input.Headings {
			if hd == nil {
				req.Headings[i] = math.NaN()
			} else {
				req.Headings[i] = *hd
			}
		}
	}

	if input.Curbsides != nil {
		req.Curbsides = make([]route.Curbside, len(input.Curbsides))
		for i, c := range input.Curbsides {
			req.Curbsides[i] = route.Curbside(c)
		}
	}

	return req
}

// toFieldErrors maps validation errors onto the Problem field error shape.
func toFieldErrors(errs []route.ValidationError) []models.FieldError {
	out := make([]models.FieldError, len(errs))
	for i, e := range errs {
		field := "request"
		if e.Index != route.NoIndex {
			field = fmt.Sprintf("points[%d]", e.Index)
		}
		out[i] = models.FieldError{
			Field:   field,
			Message: e.Message,
			Code:    "VALIDATION",
		}
	}
	return out
}
