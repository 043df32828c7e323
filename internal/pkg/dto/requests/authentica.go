package requests

// AuthenticaSendOTPRequest is the wire format for POST /api/v2/send-otp.
// TemplateID must be numeric on the wire even though it is configured as a
// string.
type AuthenticaSendOTPRequest struct {
	Method        string `json:"method"`
	Phone         string `json:"phone"`
	TemplateID    int    `json:"template_id"`
	FallbackEmail string `json:"fallback_email"`
	OTP           string `json:"otp"`
}
