package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"driveincinema/api/handler"
	apiMiddleware "driveincinema/api/middleware"
	"driveincinema/api/routes"
	"driveincinema/config"
	"driveincinema/internal/metrics"
	"driveincinema/internal/repository"
	"driveincinema/internal/service"
	"driveincinema/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

func run(ctx context.Context, logger *logrus.Logger) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	decimal.MarshalJSONWithoutQuotes = true

	db, err := config.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := config.Close(db); err != nil {
			logger.WithError(err).Warn("close database")
		}
	}()
	if err := config.Migrate(ctx, db); err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	redisClient, err := config.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		return err
	}
	var cooldown service.Cooldown
	if redisClient != nil {
		defer redisClient.Close()
		cooldown = service.NewRedisCooldown(redisClient)
	} else {
		logger.Warn("REDIS_ADDR not set, OTP cooldown disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, "postgres"),
	)
	appMetrics := metrics.New(registry)

	validate := validator.New()
	accessManager := utils.JWTManager{
		Secret:         []byte(cfg.JWTSecret),
		Issuer:         cfg.JWTIssuer,
		AccessTokenTTL: cfg.SessionTTL,
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	verificationRepo := repository.NewVerificationTokenRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	quizRepo := repository.NewQuizRepository(db)

	clock := service.RealClock{}
	emailSender := service.NewEmailSender(cfg.ResendAPIKey, cfg.EmailFrom, cfg.OTPTTL, logger)
	otpService := service.NewOTPService(verificationRepo, emailSender, cooldown, clock, appMetrics, service.OTPConfig{
		TTL:      cfg.OTPTTL,
		Cooldown: cfg.OTPCooldown,
	})
	authService := service.NewAuthService(
		userRepo,
		sessionRepo,
		securityRepo,
		otpService,
		service.BcryptPasswordHasher{},
		service.JWTAccessIssuer{Manager: &accessManager},
		clock,
		service.AuthConfig{SessionTTL: cfg.SessionTTL},
	)

	authHandler := handler.NewAuthHandler(authService, validate)
	authHandler.CookieDomain = cfg.CookieDomain
	authHandler.SecureCookies = cfg.CookieSecure

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.HTTPErrorHandler = handler.ErrorHandler
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status":  v.Status,
				"method":  v.Method,
				"uri":     v.URI,
				"ip":      v.RemoteIP,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &accessManager, Sessions: sessionRepo}
	router := routes.NewRouter(app, authMiddleware)
	router.Auth = authHandler
	router.Products = handler.NewProductHandler(service.NewProductService(productRepo, securityRepo), validate)
	router.Orders = handler.NewOrderHandler(service.NewOrderService(orderRepo, productRepo, securityRepo, appMetrics), validate)
	router.Points = handler.NewPointsHandler(service.NewPointsService(userRepo, securityRepo, appMetrics), validate)
	router.Quiz = handler.NewQuizHandler(service.NewQuizService(quizRepo, securityRepo), validate)
	router.TMDB = handler.NewTMDBHandler(service.NewTMDBService(service.TMDBConfig{
		BaseURL:  cfg.TMDBBaseURL,
		Token:    cfg.TMDBToken,
		Language: cfg.TMDBLanguage,
	}))
	router.Admin = handler.NewAdminHandler(service.NewAdminService(userRepo, productRepo, orderRepo, quizRepo))
	router.Health = handler.Health(sqlDB)
	router.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("server started")
		if err := app.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}
