package authentica

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"otpbridge-service/internal/app/config"
	"otpbridge-service/internal/app/contracts"
	"otpbridge-service/internal/pkg/constvars"
	"otpbridge-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConfig(baseURL string) *config.InternalConfig {
	return &config.InternalConfig{
		Authentica: config.Authentica{
			BaseUrl:              baseURL,
			APIKey:               "test-api-key-0001",
			SMSTemplateID:        "31",
			WhatsAppTemplateID:   "44",
			FallbackEmail:        "noreply@yourdomain.com",
			HTTPTimeoutInSeconds: 5,
		},
	}
}

func TestAuthenticaService_SendOTP(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Sends SMS payload and succeeds on 200", func(t *testing.T) {
		var captured requests.AuthenticaSendOTPRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method, "provider call should be a POST")
			assert.Equal(t, constvars.AuthenticaSendOTPPath, r.URL.Path, "provider path should be the send-otp endpoint")
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderAccept), "Accept header should be JSON")
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType), "Content-Type header should be JSON")
			assert.Equal(t, "test-api-key-0001", r.Header.Get(constvars.HeaderXAuthorization), "API key should travel in X-Authorization")

			err := json.NewDecoder(r.Body).Decode(&captured)
			require.NoError(t, err, "provider body should decode")

			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer server.Close()

		service := NewAuthenticaService(newTestConfig(server.URL), logger)
		result, err := service.SendOTP(context.Background(), &contracts.SendOTPInput{
			Phone:   "+966512345678",
			OTP:     "123456",
			Channel: contracts.ChannelSMS,
		})

		require.NoError(t, err, "successful delivery should not error")
		require.NotNil(t, result, "result should always be returned")
		assert.True(t, result.Success, "2xx provider response means success")
		assert.Empty(t, result.Error, "no error message on success")

		assert.Equal(t, "sms", captured.Method, "channel should map to the provider method")
		assert.Equal(t, "+966512345678", captured.Phone, "phone should be forwarded untouched")
		assert.Equal(t, 31, captured.TemplateID, "template id should be sent as an integer")
		assert.Equal(t, "noreply@yourdomain.com", captured.FallbackEmail, "fallback email comes from config")
		assert.Equal(t, "123456", captured.OTP, "otp should be forwarded untouched")
	})

	t.Run("WhatsApp channel uses the whatsapp template", func(t *testing.T) {
		var captured requests.AuthenticaSendOTPRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := json.NewDecoder(r.Body).Decode(&captured)
			require.NoError(t, err, "provider body should decode")
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer server.Close()

		service := NewAuthenticaService(newTestConfig(server.URL), logger)
		result, err := service.SendOTP(context.Background(), &contracts.SendOTPInput{
			Phone:   "+14155550123",
			OTP:     "654321",
			Channel: contracts.ChannelWhatsApp,
		})

		require.NoError(t, err)
		assert.True(t, result.Success, "2xx provider response means success")
		assert.Equal(t, "whatsapp", captured.Method, "channel should map to the provider method")
		assert.Equal(t, 44, captured.TemplateID, "whatsapp template id should be used")
	})

	t.Run("Provider 422 maps to a status-coded failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"invalid template"}`))
		}))
		defer server.Close()

		service := NewAuthenticaService(newTestConfig(server.URL), logger)
		result, err := service.SendOTP(context.Background(), &contracts.SendOTPInput{
			Phone:   "+966512345678",
			OTP:     "123456",
			Channel: contracts.ChannelSMS,
		})

		require.NoError(t, err, "provider rejections are normalized, not returned as errors")
		require.NotNil(t, result)
		assert.False(t, result.Success, "non-2xx means failure")
		assert.Equal(t, "Authentica API error: 422", result.Error, "error message should carry the status code only")

		data, ok := result.Data.(map[string]interface{})
		require.True(t, ok, "JSON provider body should be parsed")
		assert.Equal(t, "invalid template", data["message"], "parsed provider body should be preserved")
	})

	t.Run("Missing API key short-circuits without a network call", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		cfg := newTestConfig(server.URL)
		cfg.Authentica.APIKey = ""

		service := NewAuthenticaService(cfg, logger)
		result, err := service.SendOTP(context.Background(), &contracts.SendOTPInput{
			Phone:   "+966512345678",
			OTP:     "123456",
			Channel: contracts.ChannelSMS,
		})

		require.NoError(t, err, "unconfigured delivery is a normalized result, not an error")
		require.NotNil(t, result)
		assert.False(t, result.Success)
		assert.Equal(t, "SMS service not configured", result.Error, "unconfigured message should be exact")
		assert.Equal(t, int32(0), hits.Load(), "no request should reach the provider")
	})

	t.Run("Non-JSON provider body is kept as raw text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlain)
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("Bad Gateway"))
		}))
		defer server.Close()

		service := NewAuthenticaService(newTestConfig(server.URL), logger)
		result, err := service.SendOTP(context.Background(), &contracts.SendOTPInput{
			Phone:   "+966512345678",
			OTP:     "123456",
			Channel: contracts.ChannelSMS,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.Success)
		assert.Equal(t, "Authentica API error: 502", result.Error)
		assert.Equal(t, "Bad Gateway", result.Data, "unparseable body should be kept as text")
	})

	t.Run("Transport failure is caught and normalized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		service := NewAuthenticaService(newTestConfig(server.URL), logger)
		result, err := service.SendOTP(context.Background(), &contracts.SendOTPInput{
			Phone:   "+966512345678",
			OTP:     "123456",
			Channel: contracts.ChannelSMS,
		})

		require.NotNil(t, result, "transport failures still produce a result")
		assert.False(t, result.Success)
		assert.Equal(t, "Failed to send SMS", result.Error, "transport detail must not leak to the caller")
		assert.Error(t, err, "the underlying cause is handed back for logging")
	})

	t.Run("Non-numeric whatsapp template fails before any network call", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		cfg := newTestConfig(server.URL)
		cfg.Authentica.WhatsAppTemplateID = "not-a-number"

		service := NewAuthenticaService(cfg, logger)
		result, err := service.SendOTP(context.Background(), &contracts.SendOTPInput{
			Phone:   "+14155550123",
			OTP:     "123456",
			Channel: contracts.ChannelWhatsApp,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.Success)
		assert.Equal(t, "Invalid whatsapp template id", result.Error)
		assert.Equal(t, int32(0), hits.Load(), "no request should reach the provider")
	})
}
