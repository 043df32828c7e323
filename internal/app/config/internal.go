package config

type InternalConfig struct {
	App        App
	Hook       Hook
	Authentica Authentica
}

type App struct {
	Env             string
	Port            string
	Timezone        string
	EndpointPrefix  string
	ShutdownTimeout int
}

// Hook configures the inbound webhook surface.
type Hook struct {
	// SendSMSSecret is the Standard Webhooks secret of the send-sms hook as
	// issued by the auth platform, with or without its display prefix. Empty
	// disables signature verification.
	SendSMSSecret string
	// AllowUnverified keeps the parse-anyway fallback when a configured
	// secret fails to verify. Operators can disable it so tampered
	// deliveries are rejected with 401 instead.
	AllowUnverified bool
	// SMSCountryCodes is a comma-separated allow-list of country-code
	// prefixes that stay on SMS. Empty keeps every number on SMS.
	SMSCountryCodes string
}

type Authentica struct {
	BaseUrl              string
	APIKey               string
	SMSTemplateID        string
	WhatsAppTemplateID   string
	FallbackEmail        string
	HTTPTimeoutInSeconds int
}
