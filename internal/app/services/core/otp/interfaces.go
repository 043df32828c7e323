package otp

import (
	"context"
	"net/http"

	"otpbridge-service/internal/app/contracts"
	"otpbridge-service/internal/pkg/dto/responses"
)

// Usecase runs the send-sms hook pipeline: verify the delivery, extract the
// destination and passcode, route the channel, call the provider.
type Usecase interface {
	ProcessSendSMSHook(ctx context.Context, in *ProcessSendSMSHookInput) (*ProcessSendSMSHookOutput, error)
}

// ProcessSendSMSHookInput carries one hook delivery as received. RawBody is
// the unmodified bytes the sender's signature was computed over; parsing
// happens after (or instead of) verification, never before.
type ProcessSendSMSHookInput struct {
	RawBody []byte
	Headers http.Header
}

type ProcessSendSMSHookOutput struct {
	Channel  contracts.DeliveryChannel
	Phone    string
	Delivery *responses.DeliveryResult
}
