package constvars

const (
	AuthenticaSendOTPPath = "/api/v2/send-otp"

	// Authentica authenticates with a non-standard header instead of a
	// Bearer token.
	HeaderXAuthorization = "X-Authorization"
)
