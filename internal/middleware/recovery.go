package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/petpsych/behavior-analysis-api/internal/models"
	"github.com/petpsych/behavior-analysis-api/internal/utils"
)

// Recovery converts panics into the standard 500 envelope. No stack traces or
// internal details reach the caller.
func Recovery(logger *utils.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered", "panic", rec, "path", r.URL.Path)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(models.ErrorResponse{
						Success:   false,
						Error:     "Internal server error. Please try again.",
						ErrorCode: utils.CodeInternalError,
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
