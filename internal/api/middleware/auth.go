package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gridroute/gridroute/internal/api/models"
)

// BearerAuth returns a middleware that validates an HS256-signed bearer
// token. With an empty signing key authentication is disabled and every
// request passes, which is the expected setup for private deployments.
func BearerAuth(signingKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if signingKey == "" {
			return next
		}

		key := []byte(signingKey)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, r, "missing bearer token")
				return
			}

			_, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return key, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil {
				unauthorized(w, r, "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	problem := models.NewUnauthorized(GetRequestID(r.Context()), detail)
	problem.Instance = r.URL.Path
	problem.Write(w)
}
