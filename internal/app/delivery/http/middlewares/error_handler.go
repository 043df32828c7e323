package middlewares

import (
	"errors"
	"net/http"

	"otpbridge-service/internal/pkg/exceptions"
	"otpbridge-service/internal/pkg/utils"
)

// ErrorHandler is the outermost catch-all: whatever panics below it still
// produces the JSON error envelope the hook caller requires.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = nil
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnexpected(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
