package routers

import (
	"otpbridge-service/internal/app/delivery/http/controllers"
	"otpbridge-service/internal/app/delivery/http/middlewares"
	"otpbridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachHookRoutes(router chi.Router, middlewares *middlewares.Middlewares, hookController *controllers.HookController) {
	// POST /hooks/send-sms
	router.Post(constvars.HookSendSMSEndpoint, hookController.HandleSendSMSHook)
}
