package contracts

import (
	"context"

	"otpbridge-service/internal/pkg/dto/responses"
)

// DeliveryChannel selects the transport for a passcode delivery. The values
// double as the provider's wire method names.
type DeliveryChannel string

const (
	ChannelSMS      DeliveryChannel = "sms"
	ChannelWhatsApp DeliveryChannel = "whatsapp"
)

// SendOTPInput is the payload for a single passcode delivery.
type SendOTPInput struct {
	// Phone is the destination number with a leading '+'.
	Phone string `validate:"required"`

	// OTP is the passcode issued by the auth platform. It is never logged.
	OTP string `validate:"required"`

	// Channel is decided by country-code routing before the provider call.
	Channel DeliveryChannel
}

// OTPDeliveryService forwards one-time passcodes to the messaging provider.
// SendOTP always returns a usable DeliveryResult: provider rejections and
// transport failures are normalized into it rather than surfaced as bare
// errors, and err is only set when there is an underlying cause worth
// logging alongside.
//
// SECURITY NOTE:
// This service is meant to be called from the hook pipeline only. Do NOT
// expose it as a public HTTP endpoint; anyone who can reach it can spam
// passcode messages at arbitrary phone numbers on our provider account.
type OTPDeliveryService interface {
	SendOTP(ctx context.Context, input *SendOTPInput) (*responses.DeliveryResult, error)
}
