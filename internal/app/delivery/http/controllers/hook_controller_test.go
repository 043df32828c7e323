package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"otpbridge-service/internal/app/config"
	"otpbridge-service/internal/app/contracts"
	"otpbridge-service/internal/app/services/core/otp"
	"otpbridge-service/internal/pkg/constvars"
	"otpbridge-service/internal/pkg/dto/responses"
	"otpbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubUsecase struct {
	calls     int
	lastInput *otp.ProcessSendSMSHookInput
	output    *otp.ProcessSendSMSHookOutput
	err       error
}

func (s *stubUsecase) ProcessSendSMSHook(ctx context.Context, in *otp.ProcessSendSMSHookInput) (*otp.ProcessSendSMSHookOutput, error) {
	s.calls++
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return s.output, nil
}

func newTestController(uc otp.Usecase) *HookController {
	return &HookController{
		Log:       zap.NewNop(),
		Usecase:   uc,
		AppConfig: &config.InternalConfig{},
	}
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &body)
	assert.NoError(t, err, "error response should decode as JSON")
	return body
}

func TestHandleSendSMSHook(t *testing.T) {
	t.Run("Rejects non-POST methods before touching the body", func(t *testing.T) {
		stub := &stubUsecase{}
		ctrl := newTestController(stub)

		req := httptest.NewRequest(http.MethodGet, "/hooks/send-sms", nil)
		rr := httptest.NewRecorder()
		ctrl.HandleSendSMSHook(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, "only POST is accepted")
		assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType), "rejections should still be JSON")

		body := decodeErrorBody(t, rr)
		assert.Equal(t, constvars.ErrCodeMethodNotAllowed, body["code"])
		assert.Equal(t, "Only POST method is allowed", body["message"])
		assert.Equal(t, 0, stub.calls, "usecase should not run for rejected methods")
	})

	t.Run("Returns the bare success envelope", func(t *testing.T) {
		stub := &stubUsecase{
			output: &otp.ProcessSendSMSHookOutput{
				Channel:  contracts.ChannelSMS,
				Phone:    "+966512345678",
				Delivery: &responses.DeliveryResult{Success: true},
			},
		}
		ctrl := newTestController(stub)

		payload := `{"user":{"phone":"+966512345678"},"sms":{"otp":"123456"}}`
		req := httptest.NewRequest(http.MethodPost, "/hooks/send-sms", bytes.NewBufferString(payload))
		req.Header.Set(constvars.HeaderWebhookID, "msg_123")
		rr := httptest.NewRecorder()
		ctrl.HandleSendSMSHook(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "delivered hooks should return 200")
		assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))
		assert.Equal(t, `{"success":true}`, strings.TrimSpace(rr.Body.String()), "success body carries no other fields")

		assert.Equal(t, 1, stub.calls, "usecase should run exactly once")
		assert.Equal(t, payload, string(stub.lastInput.RawBody), "raw body should reach the usecase unmodified")
		assert.Equal(t, "msg_123", stub.lastInput.Headers.Get(constvars.HeaderWebhookID), "hook headers should reach the usecase")
	})

	t.Run("Propagates delivery failures from the usecase", func(t *testing.T) {
		stub := &stubUsecase{
			err: exceptions.ErrOTPDelivery(nil, "Authentica API error: 422"),
		}
		ctrl := newTestController(stub)

		req := httptest.NewRequest(http.MethodPost, "/hooks/send-sms", bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()
		ctrl.HandleSendSMSHook(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		body := decodeErrorBody(t, rr)
		assert.Equal(t, constvars.ErrCodeSMSSendFailure, body["code"])
		assert.Equal(t, "Authentica API error: 422", body["message"])
	})

	t.Run("Wraps unknown errors as unexpected failures", func(t *testing.T) {
		stub := &stubUsecase{err: errors.New("kaboom")}
		ctrl := newTestController(stub)

		req := httptest.NewRequest(http.MethodPost, "/hooks/send-sms", bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()
		ctrl.HandleSendSMSHook(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		body := decodeErrorBody(t, rr)
		assert.Equal(t, constvars.ErrCodeUnexpectedFailure, body["code"])
		assert.Equal(t, "kaboom", body["message"])
	})
}
