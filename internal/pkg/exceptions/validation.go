package exceptions

import (
	"strings"

	"otpbridge-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientInvalidJSONPayload
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		tag := firstErr.Tag()

		if tag == "required" {
			if message, ok := constvars.RequiredFieldErrorMessages[firstErr.Field()]; ok {
				return message
			}
		}

		customMessage, ok := constvars.CustomValidationErrorMessages[tag]
		if !ok {
			customMessage = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			if tag == "oneof" {
				customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
			} else {
				customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
			}
		}
		return strings.ToLower(firstErr.Field()) + " " + customMessage
	}
	return constvars.ErrDevValidationFailed
}
