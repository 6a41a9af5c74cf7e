package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/wakacab/wakacab/internal/pkg/config"
	"github.com/wakacab/wakacab/internal/pkg/database"
	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/middleware"
	"github.com/wakacab/wakacab/internal/pkg/nsq"
	"github.com/wakacab/wakacab/internal/pkg/server"
	"github.com/wakacab/wakacab/internal/utils"

	dispatchGateway "github.com/wakacab/wakacab/services/dispatch/gateway"
	dispatchHandler "github.com/wakacab/wakacab/services/dispatch/handler"
	dispatchHTTP "github.com/wakacab/wakacab/services/dispatch/handler/http"
	dispatchRepo "github.com/wakacab/wakacab/services/dispatch/repository"
	dispatchUsecase "github.com/wakacab/wakacab/services/dispatch/usecase"
	matchHandler "github.com/wakacab/wakacab/services/match/handler"
	matchHTTP "github.com/wakacab/wakacab/services/match/handler/http"
	matchRepo "github.com/wakacab/wakacab/services/match/repository"
	matchUsecase "github.com/wakacab/wakacab/services/match/usecase"
	paymentGateway "github.com/wakacab/wakacab/services/payment/gateway"
	paymentHandler "github.com/wakacab/wakacab/services/payment/handler"
	paymentHTTP "github.com/wakacab/wakacab/services/payment/handler/http"
	paymentUsecase "github.com/wakacab/wakacab/services/payment/usecase"
	walletHandler "github.com/wakacab/wakacab/services/wallet/handler"
	walletHTTP "github.com/wakacab/wakacab/services/wallet/handler/http"
	walletRepo "github.com/wakacab/wakacab/services/wallet/repository"
	walletUsecase "github.com/wakacab/wakacab/services/wallet/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/wakacab.env"
	}
	configs := config.InitConfig(configPath)

	// New Relic agent
	var nrApp *newrelic.Application
	if configs.NewRelic.Enabled {
		var err error
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(configs.NewRelic.AppName),
			newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Fatalf("Failed to initialize New Relic: %v", err)
		}
	}

	appLogger, err := logger.NewAppLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	// Redis (driver geo pool)
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// NSQ producer and notification relay (optional)
	var producer *nsq.Producer
	if configs.NSQ.PublishEnabled {
		producer, err = nsq.NewProducer(configs.NSQ.NSQDAddress)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to NSQ")
		}
		defer producer.Stop()

		consumers, err := dispatchHandler.InitEventConsumers(configs, appLogger)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize event consumers")
		}
		defer func() {
			for _, c := range consumers {
				c.Stop()
			}
		}()
	}

	// Repositories
	walletRepository := walletRepo.NewWalletRepository(configs, db)
	driverRepository := matchRepo.NewDriverRepo(db, redisClient)
	rideRepository := dispatchRepo.NewRideRepo(db, walletRepository)

	// Gateways
	dispatchGW := dispatchGateway.NewDispatchGW(configs, producer, appLogger)
	paymentGW := paymentGateway.NewPaymentGW(configs, producer, appLogger)

	// Usecases
	walletUC := walletUsecase.NewWalletUC(configs, walletRepository, appLogger)
	matchUC := matchUsecase.NewMatchUC(configs, driverRepository, appLogger)
	dispatchUC := dispatchUsecase.NewDispatchUC(configs, rideRepository, walletUC, matchUC, dispatchGW, appLogger)
	paymentUC := paymentUsecase.NewPaymentUC(configs, walletRepository, paymentGW, appLogger)

	// Request expiry sweeper
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go dispatchUC.StartExpirySweeper(sweepCtx)

	// HTTP surface
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))

	e.GET("/health", func(c echo.Context) error {
		return utils.SuccessResponse(c, http.StatusOK, "OK", nil)
	})

	walletH := walletHTTP.NewWalletHandler(walletUC)
	driverH := matchHTTP.NewDriverHandler(matchUC)
	rideH := dispatchHTTP.NewRideHandler(dispatchUC)
	paymentH := paymentHTTP.NewPaymentHandler(paymentUC)

	api := e.Group("", middleware.JWTAuthMiddleware(configs.JWT))
	walletHandler.RegisterRoutes(api, walletH)
	matchHandler.RegisterRoutes(api, driverH)
	dispatchHandler.RegisterRoutes(api, rideH)
	paymentHandler.RegisterRoutes(api, paymentH)
	paymentHandler.RegisterWebhookRoutes(e, paymentH, configs.Provider.WebhookSecret)

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server stopped with error")
	}
}
