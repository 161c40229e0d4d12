package middleware

import (
	"net/http"
	"strings"

	"github.com/gridroute/gridroute/internal/api/models"
)

// ContentTypeJSON rejects request bodies that are not JSON. GET, HEAD and
// bodyless requests pass through.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "application/json") {
			problem := models.NewProblem(
				models.ProblemTypeValidation,
				"Unsupported media type",
				http.StatusUnsupportedMediaType,
				GetRequestID(r.Context()),
			)
			problem.Detail = "Content-Type must be application/json"
			problem.Instance = r.URL.Path
			problem.Write(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
