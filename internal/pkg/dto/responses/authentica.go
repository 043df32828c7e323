package responses

// DeliveryResult is the normalized outcome of a single provider send attempt.
// Error is a caller-safe reason; raw provider detail only ever goes to the
// logs. Data holds the provider response body, parsed when it was valid JSON
// and the raw text otherwise.
type DeliveryResult struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
