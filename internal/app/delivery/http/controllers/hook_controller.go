package controllers

import (
	"io"
	"net/http"
	"sync"

	"otpbridge-service/internal/app/config"
	"otpbridge-service/internal/app/services/core/otp"
	"otpbridge-service/internal/pkg/constvars"
	"otpbridge-service/internal/pkg/exceptions"
	"otpbridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HookController struct {
	Log       *zap.Logger
	Usecase   otp.Usecase
	AppConfig *config.InternalConfig
}

var (
	hookControllerInstance *HookController
	onceHookController     sync.Once
)

func NewHookController(logger *zap.Logger, uc otp.Usecase, cfg *config.InternalConfig) *HookController {
	onceHookController.Do(func() {
		hookControllerInstance = &HookController{
			Log:       logger,
			Usecase:   uc,
			AppConfig: cfg,
		}
	})
	return hookControllerInstance
}

// HandleSendSMSHook processes POST /hooks/send-sms. The body is handed to the
// usecase as raw bytes; signature verification needs them unmodified.
func (ctrl *HookController) HandleSendSMSHook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMethodNotAllowed(nil))
		return
	}

	requestID := utils.GetRequestID(r.Context())

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}
	defer r.Body.Close()

	result, err := ctrl.Usecase.ProcessSendSMSHook(r.Context(), &otp.ProcessSendSMSHookInput{
		RawBody: raw,
		Headers: r.Header,
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HookController.HandleSendSMSHook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChannelKey, string(result.Channel)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, "", nil)
}
