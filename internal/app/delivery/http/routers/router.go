package routers

import (
	"fmt"
	"net/http"

	"otpbridge-service/internal/app/config"
	"otpbridge-service/internal/app/delivery/http/controllers"
	"otpbridge-service/internal/app/delivery/http/middlewares"
	"otpbridge-service/internal/pkg/exceptions"
	"otpbridge-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	hookController *controllers.HookController,
) {

	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Webhook-Id", "Webhook-Timestamp", "Webhook-Signature", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	// Registered before Route so the hook subrouter inherits both handlers.
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrMethodNotAllowed(nil))
	})
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrRouteNotFound(nil))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		attachHookRoutes(r, middlewares, hookController)
	})
}
