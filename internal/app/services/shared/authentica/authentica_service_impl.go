package authentica

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"otpbridge-service/internal/app/config"
	"otpbridge-service/internal/app/contracts"
	"otpbridge-service/internal/pkg/constvars"
	"otpbridge-service/internal/pkg/dto/requests"
	"otpbridge-service/internal/pkg/dto/responses"
	"otpbridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Provider error bodies are logged but never streamed back whole.
const maxProviderResponseBody = 4096

type authenticaService struct {
	log        *zap.Logger
	cfg        *config.InternalConfig
	httpClient *http.Client
}

// NewAuthenticaService constructs the Authentica send-otp client. A missing
// API key does not fail construction; every send attempt is then reported as
// unconfigured so the hook stays up in environments without credentials.
func NewAuthenticaService(cfg *config.InternalConfig, logger *zap.Logger) contracts.OTPDeliveryService {
	timeoutSeconds := 15
	if cfg != nil && cfg.Authentica.HTTPTimeoutInSeconds > 0 {
		timeoutSeconds = cfg.Authentica.HTTPTimeoutInSeconds
	}

	return &authenticaService{
		cfg:        cfg,
		log:        logger,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	}
}

func (s *authenticaService) SendOTP(ctx context.Context, input *contracts.SendOTPInput) (*responses.DeliveryResult, error) {
	requestID := utils.GetRequestID(ctx)

	apiKey := strings.TrimSpace(s.cfg.Authentica.APIKey)
	if apiKey == "" {
		s.log.Warn("authenticaService.SendOTP skipped, no API key configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &responses.DeliveryResult{Success: false, Error: constvars.ErrDeliverySMSServiceNotConfigured}, nil
	}

	templateID, templateFailure := s.resolveTemplateID(input.Channel)
	if templateFailure != "" {
		s.log.Error("authenticaService.SendOTP template id is not numeric",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingChannelKey, string(input.Channel)),
		)
		return &responses.DeliveryResult{Success: false, Error: templateFailure}, nil
	}

	payload := requests.AuthenticaSendOTPRequest{
		Method:        string(input.Channel),
		Phone:         input.Phone,
		TemplateID:    templateID,
		FallbackEmail: s.cfg.Authentica.FallbackEmail,
		OTP:           input.OTP,
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("authenticaService.SendOTP error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.DeliveryResult{Success: false, Error: constvars.ErrDeliverySendFailed}, err
	}

	targetURL := strings.TrimRight(s.cfg.Authentica.BaseUrl, "/") + constvars.AuthenticaSendOTPPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewBuffer(bodyBytes))
	if err != nil {
		s.log.Error("authenticaService.SendOTP error building request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.DeliveryResult{Success: false, Error: constvars.ErrDeliverySendFailed}, fmt.Errorf("%s: %w", constvars.ErrDevCreateHTTPRequest, err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXAuthorization, apiKey)

	s.log.Info("authenticaService.SendOTP calling provider",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChannelKey, string(input.Channel)),
		zap.String(constvars.LoggingPhoneKey, input.Phone),
	)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Error("authenticaService.SendOTP transport failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.DeliveryResult{Success: false, Error: constvars.ErrDeliverySendFailed}, fmt.Errorf("%s: %w", constvars.ErrDevSendHTTPRequest, err)
	}
	defer resp.Body.Close()

	// The provider body is captured as text first; error responses are not
	// always JSON.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderResponseBody))
	if err != nil {
		s.log.Error("authenticaService.SendOTP error reading provider response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.DeliveryResult{Success: false, Error: constvars.ErrDeliverySendFailed}, err
	}

	data := parseProviderBody(raw)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logFields := []zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingResponseKey, string(raw)),
		}
		if providerMessage := gjson.GetBytes(raw, "message"); providerMessage.Exists() {
			logFields = append(logFields, zap.String("provider_message", providerMessage.String()))
		}
		s.log.Error("authenticaService.SendOTP provider rejected request", logFields...)

		return &responses.DeliveryResult{
			Success: false,
			Error:   fmt.Sprintf(constvars.ErrDeliveryAPIErrorFormat, resp.StatusCode),
			Data:    data,
		}, nil
	}

	s.log.Info("authenticaService.SendOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)

	return &responses.DeliveryResult{Success: true, Data: data}, nil
}

// resolveTemplateID maps the channel to its configured template id. The
// provider wire format wants an integer, so a non-numeric value means the
// attempt fails before any network call.
func (s *authenticaService) resolveTemplateID(channel contracts.DeliveryChannel) (int, string) {
	rawTemplateID := s.cfg.Authentica.SMSTemplateID
	failureMessage := constvars.ErrDeliveryInvalidSMSTemplate
	if channel == contracts.ChannelWhatsApp {
		rawTemplateID = s.cfg.Authentica.WhatsAppTemplateID
		failureMessage = constvars.ErrDeliveryInvalidWhatsAppTemplate
	}

	templateID, err := strconv.Atoi(strings.TrimSpace(rawTemplateID))
	if err != nil {
		return 0, failureMessage
	}
	return templateID, ""
}

// parseProviderBody keeps the parsed JSON when the body is valid JSON and
// falls back to the raw text otherwise. Empty bodies yield nil.
func parseProviderBody(raw []byte) interface{} {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil
	}
	if gjson.ValidBytes(raw) {
		var parsed interface{}
		if err := json.Unmarshal(raw, &parsed); err == nil {
			return parsed
		}
	}
	return trimmed
}
