package otp

import (
	"context"
	"strings"

	"otpbridge-service/internal/app/config"
	"otpbridge-service/internal/app/contracts"
	"otpbridge-service/internal/app/services/shared/webhooksig"
	"otpbridge-service/internal/pkg/constvars"
	"otpbridge-service/internal/pkg/dto/requests"
	"otpbridge-service/internal/pkg/dto/responses"
	"otpbridge-service/internal/pkg/exceptions"
	"otpbridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type usecase struct {
	log             *zap.Logger
	cfg             *config.InternalConfig
	verifier        *webhooksig.Verifier
	sender          contracts.OTPDeliveryService
	whatsAppEnabled bool
	smsCountryCodes []string
}

// NewUsecase wires the hook pipeline. Channel posture and the allow-list are
// resolved once here; requests never re-read configuration.
func NewUsecase(log *zap.Logger, cfg *config.InternalConfig, verifier *webhooksig.Verifier, sender contracts.OTPDeliveryService) Usecase {
	return &usecase{
		log:             log,
		cfg:             cfg,
		verifier:        verifier,
		sender:          sender,
		whatsAppEnabled: strings.TrimSpace(cfg.Authentica.WhatsAppTemplateID) != "",
		smsCountryCodes: ParseCountryCodePrefixes(cfg.Hook.SMSCountryCodes),
	}
}

func (u *usecase) ProcessSendSMSHook(ctx context.Context, in *ProcessSendSMSHookInput) (*ProcessSendSMSHookOutput, error) {
	requestID := utils.GetRequestID(ctx)

	if err := u.verifySignature(requestID, in); err != nil {
		return nil, err
	}

	event := new(requests.SendSMSHookEvent)
	if err := json.Unmarshal(in.RawBody, event); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	input, err := u.buildDeliveryInput(event)
	if err != nil {
		return nil, err
	}

	u.log.Info("otpUsecase.ProcessSendSMSHook routing decided",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChannelKey, string(input.Channel)),
		zap.String(constvars.LoggingPhoneKey, input.Phone),
		zap.String(constvars.LoggingActionTypeKey, event.ActionType),
	)

	var result *responses.DeliveryResult
	err = utils.LogOperation(u.log, "authentica.SendOTP", requestID, func() error {
		var sendErr error
		result, sendErr = u.sender.SendOTP(ctx, input)
		if result == nil {
			return sendErr
		}
		if !result.Success {
			return exceptions.ErrOTPDelivery(sendErr, result.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ProcessSendSMSHookOutput{
		Channel:  input.Channel,
		Phone:    input.Phone,
		Delivery: result,
	}, nil
}

// verifySignature applies the configured verification posture. No secret
// means the hook runs unverified; a failing signature is either downgraded
// to a logged warning or rejected, depending on Hook.AllowUnverified.
func (u *usecase) verifySignature(requestID string, in *ProcessSendSMSHookInput) error {
	if strings.TrimSpace(u.cfg.Hook.SendSMSSecret) == "" {
		u.log.Debug("otpUsecase.verifySignature skipped, no hook secret configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	err := u.verifier.Verify(in.RawBody, in.Headers)
	if err == nil {
		return nil
	}

	utils.LogSecurityEvent(u.log, "hook_signature_verification_failed", requestID, "warning",
		zap.Error(err),
	)

	if u.cfg.Hook.AllowUnverified {
		return nil
	}
	return exceptions.ErrSignatureVerification(err)
}

// buildDeliveryInput extracts the destination and passcode from the event
// and decides the channel. user.phone wins over user.new_phone; new_phone
// only carries the number while a phone change is pending confirmation.
func (u *usecase) buildDeliveryInput(event *requests.SendSMSHookEvent) (*contracts.SendOTPInput, error) {
	phone := event.User.Phone
	if phone == "" {
		phone = event.User.NewPhone
	}

	input := &contracts.SendOTPInput{
		Phone: utils.EnsureLeadingPlus(phone),
		OTP:   event.SMS.OTP,
	}
	if err := utils.ValidateStruct(input); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	input.Channel = ChooseChannel(input.Phone, u.whatsAppEnabled, u.smsCountryCodes)
	return input, nil
}
