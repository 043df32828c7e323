package utils

import (
	"errors"
	"net/http"

	"otpbridge-service/internal/pkg/constvars"
	"otpbridge-service/internal/pkg/dto/responses"
	"otpbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse resolves any error to the {code, message} envelope the
// hook caller expects. Errors that are not a CustomError become the generic
// unexpected_failure case.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		customErr = exceptions.ErrUnexpected(err)
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingErrorCodeKey, customErr.Code),
		zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
	}
	if customErr.Err != nil {
		fields = append(fields, zap.Error(customErr.Err))
	}
	log.Error(customErr.DevMessage, fields...)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(customErr.StatusCode)
	json.NewEncoder(w).Encode(customErr)
}
