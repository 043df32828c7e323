package exceptions

import (
	"otpbridge-service/internal/pkg/constvars"
)

var (
	ErrMethodNotAllowed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusMethodNotAllowed, constvars.ErrCodeMethodNotAllowed, constvars.ErrClientOnlyPostAllowed, constvars.ErrDevMethodNotAllowed)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidPayload, constvars.ErrClientInvalidJSONPayload, constvars.ErrDevReadRequestBody)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidPayload, constvars.ErrClientInvalidJSONPayload, constvars.ErrDevCannotParseJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeInvalidPayload, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrSignatureVerification = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrCodeInvalidSignature, constvars.ErrClientSignatureVerification, constvars.ErrDevSignatureVerification)
	}
	ErrRouteNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevRouteNotFound)
	}

	// ErrOTPDelivery surfaces the normalized delivery failure reason to the
	// caller; provider detail stays in the logs.
	ErrOTPDelivery = func(err error, deliveryError string) *CustomError {
		if deliveryError == "" {
			deliveryError = constvars.ErrDeliverySendFailed
		}
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeSMSSendFailure, deliveryError, constvars.ErrDevOTPDeliveryFailed)
	}

	// ErrUnexpected is the outermost catch-all. Whatever message the recovered
	// error carries is passed through best-effort; an empty one falls back to
	// the generic message.
	ErrUnexpected = func(err error) *CustomError {
		clientMessage := constvars.ErrClientInternalServerError
		if err != nil && err.Error() != "" {
			clientMessage = err.Error()
		}
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeUnexpectedFailure, clientMessage, constvars.ErrDevUnexpectedPanic)
	}
)
