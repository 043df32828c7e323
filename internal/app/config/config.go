package config

import (
	"otpbridge-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "hooks"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Hook: Hook{
			SendSMSSecret:   utils.GetEnvString("SEND_SMS_HOOK_SECRET", ""),
			AllowUnverified: utils.GetEnvBool("HOOK_ALLOW_UNVERIFIED", true),
			SMSCountryCodes: utils.GetEnvString("SMS_COUNTRY_CODES", ""),
		},
		Authentica: Authentica{
			BaseUrl:              utils.GetEnvString("AUTHENTICA_BASE_URL", "https://api.authentica.sa"),
			APIKey:               utils.GetEnvString("AUTHENTICA_API_KEY", ""),
			SMSTemplateID:        utils.GetEnvString("AUTHENTICA_SMS_TEMPLATE_ID", "31"),
			WhatsAppTemplateID:   utils.GetEnvString("AUTHENTICA_WHATSAPP_TEMPLATE_ID", ""),
			FallbackEmail:        utils.GetEnvString("AUTHENTICA_FALLBACK_EMAIL", "noreply@yourdomain.com"),
			HTTPTimeoutInSeconds: utils.GetEnvInt("AUTHENTICA_HTTP_TIMEOUT_IN_SECONDS", 15),
		},
	}
}
