package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/nairaxchange/internal/pkg/config"
	"github.com/piresc/nairaxchange/internal/pkg/database"
	"github.com/piresc/nairaxchange/internal/pkg/health"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/metrics"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	natspkg "github.com/piresc/nairaxchange/internal/pkg/nats"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/pkg/server"
	"github.com/piresc/nairaxchange/internal/pkg/wallet"

	kycGateway "github.com/piresc/nairaxchange/services/kyc/gateway"
	kycHandler "github.com/piresc/nairaxchange/services/kyc/handler"
	kycRepository "github.com/piresc/nairaxchange/services/kyc/repository"
	kycUsecase "github.com/piresc/nairaxchange/services/kyc/usecase"
	messageGateway "github.com/piresc/nairaxchange/services/messages/gateway"
	messageHandler "github.com/piresc/nairaxchange/services/messages/handler"
	messageRepository "github.com/piresc/nairaxchange/services/messages/repository"
	messageUsecase "github.com/piresc/nairaxchange/services/messages/usecase"
	offerHandler "github.com/piresc/nairaxchange/services/offers/handler"
	offerRepository "github.com/piresc/nairaxchange/services/offers/repository"
	offerUsecase "github.com/piresc/nairaxchange/services/offers/usecase"
	rateHandler "github.com/piresc/nairaxchange/services/rates/handler"
	rateRepository "github.com/piresc/nairaxchange/services/rates/repository"
	rateUsecase "github.com/piresc/nairaxchange/services/rates/usecase"
	ratingHandler "github.com/piresc/nairaxchange/services/ratings/handler"
	ratingRepository "github.com/piresc/nairaxchange/services/ratings/repository"
	ratingUsecase "github.com/piresc/nairaxchange/services/ratings/usecase"
	tradeGateway "github.com/piresc/nairaxchange/services/trades/gateway"
	tradeHandler "github.com/piresc/nairaxchange/services/trades/handler"
	tradeRepository "github.com/piresc/nairaxchange/services/trades/repository"
	tradeUsecase "github.com/piresc/nairaxchange/services/trades/usecase"
	userGateway "github.com/piresc/nairaxchange/services/users/gateway"
	userHandler "github.com/piresc/nairaxchange/services/users/handler"
	userRepository "github.com/piresc/nairaxchange/services/users/repository"
	userUsecase "github.com/piresc/nairaxchange/services/users/usecase"
	walletGateway "github.com/piresc/nairaxchange/services/wallet/gateway"
	walletHandler "github.com/piresc/nairaxchange/services/wallet/handler"
	walletRepository "github.com/piresc/nairaxchange/services/wallet/repository"
	walletUsecase "github.com/piresc/nairaxchange/services/wallet/usecase"
)

// routeRegistrar is implemented by every service's combined handler
type routeRegistrar interface {
	RegisterRoutes(e *echo.Echo, mw *middleware.Middleware)
}

func main() {
	appName := "nairaxchange"
	configPath := "config/exchange.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	if configs.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := database.Migrate(ctx, postgresClient.GetDB())
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to apply migrations", logger.Err(err))
		}
	}

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	// NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})

	// TRON wallet
	tronWallet, err := wallet.NewTronWallet(configs.Wallet)
	if err != nil {
		zapLogger.Fatal("Failed to initialize TRON wallet", logger.Err(err))
	}
	shutdown.Register("tron", func(context.Context) error {
		tronWallet.Close()
		return nil
	})

	appMetrics := metrics.New()
	db := postgresClient.GetDB()

	// Repositories
	userRepo := userRepository.NewUserRepository(configs, db, redisClient)
	offerRepo := offerRepository.NewOfferRepository(configs, db)
	tradeRepo := tradeRepository.NewTradeRepository(configs, db)
	messageRepo := messageRepository.NewMessageRepository(configs, db)
	ratingRepo := ratingRepository.NewRatingRepository(configs, db)
	walletRepo := walletRepository.NewWalletRepository(configs, db, redisClient)
	kycRepo := kycRepository.NewKYCRepository(configs, db)
	rateRepo := rateRepository.NewRateRepository(configs, db, redisClient)

	// Gateways
	userGW := userGateway.NewUserGW(natsClient)
	tradeGW := tradeGateway.NewTradeGW(natsClient)
	messageGW := messageGateway.NewMessageGW(natsClient)
	walletGW := walletGateway.NewWalletGW(natsClient)
	kycGW := kycGateway.NewKYCGW(natsClient)

	// Usecases
	userUC, err := userUsecase.NewUserUC(configs, userRepo, userGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize user use case", logger.Err(err))
	}
	offerUC, err := offerUsecase.NewOfferUC(configs, offerRepo, appMetrics)
	if err != nil {
		zapLogger.Fatal("Failed to initialize offer use case", logger.Err(err))
	}
	tradeUC, err := tradeUsecase.NewTradeUC(configs, tradeRepo, tradeGW, appMetrics)
	if err != nil {
		zapLogger.Fatal("Failed to initialize trade use case", logger.Err(err))
	}
	messageUC, err := messageUsecase.NewMessageUC(configs, messageRepo, messageGW, appMetrics)
	if err != nil {
		zapLogger.Fatal("Failed to initialize message use case", logger.Err(err))
	}
	ratingUC, err := ratingUsecase.NewRatingUC(configs, ratingRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize rating use case", logger.Err(err))
	}
	walletUC, err := walletUsecase.NewWalletUC(configs, walletRepo, walletGW, tronWallet, appMetrics)
	if err != nil {
		zapLogger.Fatal("Failed to initialize wallet use case", logger.Err(err))
	}
	kycUC, err := kycUsecase.NewKYCUC(configs, kycRepo, kycGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize KYC use case", logger.Err(err))
	}
	rateUC, err := rateUsecase.NewRateUC(configs, rateRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize rate use case", logger.Err(err))
	}

	// Echo server; panic recovery first
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(echomw.RequestID())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(appMetrics.Middleware())
	e.Use(echomw.CORS())

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	if configs.Metrics.Enabled {
		e.GET(configs.Metrics.Path, appMetrics.Handler())
	}

	mw := middleware.NewMiddleware(configs, userRepo, redisClient)
	for _, h := range []routeRegistrar{
		userHandler.NewHandler(userUC),
		offerHandler.NewHandler(offerUC),
		tradeHandler.NewHandler(tradeUC),
		messageHandler.NewHandler(messageUC),
		ratingHandler.NewHandler(ratingUC),
		walletHandler.NewHandler(walletUC),
		kycHandler.NewHandler(kycUC),
		rateHandler.NewHandler(rateUC),
	} {
		h.RegisterRoutes(e, mw)
	}

	// Expiry sweeper
	sweeper := tradeUsecase.NewExpirySweeper(tradeUC, configs.Trade.ExpirySweepSpec)
	if err := sweeper.Start(); err != nil {
		zapLogger.Fatal("Failed to start expiry sweeper", logger.Err(err))
	}
	shutdown.Register("expiry-sweeper", sweeper.Stop)

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
