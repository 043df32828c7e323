package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"otpbridge-service/internal/app/config"
	"otpbridge-service/internal/app/delivery/http/controllers"
	"otpbridge-service/internal/app/delivery/http/middlewares"
	"otpbridge-service/internal/app/delivery/http/routers"
	"otpbridge-service/internal/app/drivers/logger"
	"otpbridge-service/internal/app/services/core/otp"
	"otpbridge-service/internal/app/services/shared/authentica"
	"otpbridge-service/internal/app/services/shared/webhooksig"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Cleanup finished with error: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Hook signature verification
	verifier := webhooksig.NewVerifier(bootstrap.InternalConfig.Hook.SendSMSSecret)

	// Authentica OTP delivery
	otpSender := authentica.NewAuthenticaService(bootstrap.InternalConfig, bootstrap.Logger)

	// Send-SMS hook pipeline
	otpUsecase := otp.NewUsecase(bootstrap.Logger, bootstrap.InternalConfig, verifier, otpSender)
	hookController := controllers.NewHookController(bootstrap.Logger, otpUsecase, bootstrap.InternalConfig)

	logStartupPosture(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, hookController)
}

// logStartupPosture records the effective security and routing posture once at
// boot. Secret material itself never reaches the logs.
func logStartupPosture(log *zap.Logger, cfg *config.InternalConfig) {
	smsPrefixes := otp.ParseCountryCodePrefixes(cfg.Hook.SMSCountryCodes)
	log.Info("Send-SMS hook bridge configured",
		zap.Bool("signature_verification", strings.TrimSpace(cfg.Hook.SendSMSSecret) != ""),
		zap.Bool("allow_unverified", cfg.Hook.AllowUnverified),
		zap.Bool("authentica_api_key_present", strings.TrimSpace(cfg.Authentica.APIKey) != ""),
		zap.Bool("whatsapp_routing", strings.TrimSpace(cfg.Authentica.WhatsAppTemplateID) != ""),
		zap.Int("sms_country_codes", len(smsPrefixes)),
	)
}
