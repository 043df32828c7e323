package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Per-field overrides for "required" failures. The hook caller expects these
// exact messages, so they take precedence over the generic tag messages.
var RequiredFieldErrorMessages = map[string]string{
	"Phone": "Missing phone number",
	"OTP":   "Missing OTP",
}

// Error codes sent to clients
const (
	ErrCodeMethodNotAllowed  = "method_not_allowed"
	ErrCodeInvalidPayload    = "invalid_payload"
	ErrCodeInvalidSignature  = "invalid_signature"
	ErrCodeNotFound          = "not_found"
	ErrCodeSMSSendFailure    = "sms_send_failure"
	ErrCodeUnexpectedFailure = "unexpected_failure"
)

// Error messages for clients
const (
	ErrClientOnlyPostAllowed       = "Only POST method is allowed"
	ErrClientInvalidJSONPayload    = "Invalid JSON payload"
	ErrClientMissingPhoneNumber    = "Missing phone number"
	ErrClientMissingOTP            = "Missing OTP"
	ErrClientSignatureVerification = "Webhook signature verification failed"
	ErrClientResourceNotFound      = "Resource not found"
	ErrClientInternalServerError   = "Internal server error"
)

// Delivery failure messages; these surface both in the delivery result and in
// the sms_send_failure response message.
const (
	ErrDeliverySMSServiceNotConfigured = "SMS service not configured"
	ErrDeliverySendFailed              = "Failed to send SMS"
	ErrDeliveryInvalidSMSTemplate      = "Invalid sms template id"
	ErrDeliveryInvalidWhatsAppTemplate = "Invalid whatsapp template id"
	ErrDeliveryAPIErrorFormat          = "Authentica API error: %d"
)

// Error messages for developers
const (
	ErrDevMethodNotAllowed      = "request method is not allowed on this endpoint"
	ErrDevReadRequestBody       = "failed to read request body"
	ErrDevCannotParseJSON       = "cannot parse JSON into struct or other data types"
	ErrDevValidationFailed      = "validation failed"
	ErrDevSignatureVerification = "webhook signature verification failed"
	ErrDevOTPDeliveryFailed     = "otp delivery to provider failed"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevRouteNotFound         = "no route registered for the requested path"
	ErrDevUnexpectedPanic       = "recovered from unexpected panic"
)
