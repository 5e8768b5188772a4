package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/internal/transport/http/response"
	"github.com/MadeByDW91/gokartpartpicker/platform/logger"
)

const AdminTokenHeader = "X-Admin-Token"

// RequireAdmin guards mutating catalog routes. With no configured token the
// routes are disabled rather than left open.
func RequireAdmin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				logger.Warn(r.Context(), "ADMIN_TOKEN is not set, admin endpoints are disabled")
				response.Error(w, r, model.ErrServiceUnavailable)
				return
			}

			got := r.Header.Get(AdminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				response.Error(w, r, model.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
