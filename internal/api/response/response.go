// Package response provides utilities for HTTP response handling.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/gridroute/gridroute/internal/api/middleware"
	"github.com/gridroute/gridroute/internal/api/models"
)

// JSON writes a JSON response with the given status code. The X-Request-Id
// header is set for correlation.
func JSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if requestID := middleware.GetRequestID(r.Context()); requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error writes a Problem+JSON error response.
func Error(w http.ResponseWriter, r *http.Request, problem *models.Problem) {
	problem.Instance = r.URL.Path
	problem.Write(w)
}

// BadRequest writes a 400 Bad Request error response.
func BadRequest(w http.ResponseWriter, r *http.Request, detail string, errors []models.FieldError) {
	Error(w, r, models.NewBadRequest(middleware.GetRequestID(r.Context()), detail, errors))
}

// Unauthorized writes a 401 Unauthorized error response.
func Unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewUnauthorized(middleware.GetRequestID(r.Context()), detail))
}

// NotFound writes a 404 Not Found error response.
func NotFound(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewNotFound(middleware.GetRequestID(r.Context()), detail))
}

// InternalError writes a 500 Internal Server Error response.
func InternalError(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewInternalError(middleware.GetRequestID(r.Context()), detail))
}

// ServiceUnavailable writes a 503 Service Unavailable error response.
func ServiceUnavailable(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewServiceUnavailable(middleware.GetRequestID(r.Context()), detail))
}
