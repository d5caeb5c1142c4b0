package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rakibhasan/coursehub/internal/db/migrate"
	"github.com/rakibhasan/coursehub/internal/pkg/config"
	"github.com/rakibhasan/coursehub/internal/pkg/database"
	"github.com/rakibhasan/coursehub/internal/pkg/health"
	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/mail"
	"github.com/rakibhasan/coursehub/internal/pkg/middleware"
	natspkg "github.com/rakibhasan/coursehub/internal/pkg/nats"
	"github.com/rakibhasan/coursehub/internal/pkg/retry"
	wspkg "github.com/rakibhasan/coursehub/internal/pkg/websocket"

	accountHandler "github.com/rakibhasan/coursehub/services/account/handler"
	accountHTTP "github.com/rakibhasan/coursehub/services/account/handler/http"
	accountRepo "github.com/rakibhasan/coursehub/services/account/repository"
	accountUC "github.com/rakibhasan/coursehub/services/account/usecase"
	courseHandler "github.com/rakibhasan/coursehub/services/course/handler"
	courseHTTP "github.com/rakibhasan/coursehub/services/course/handler/http"
	courseRepo "github.com/rakibhasan/coursehub/services/course/repository"
	paymentGateway "github.com/rakibhasan/coursehub/services/payment/gateway"
	paymentHandler "github.com/rakibhasan/coursehub/services/payment/handler"
	paymentHTTP "github.com/rakibhasan/coursehub/services/payment/handler/http"
	paymentRepo "github.com/rakibhasan/coursehub/services/payment/repository"
	paymentUC "github.com/rakibhasan/coursehub/services/payment/usecase"
	realtimeHandler "github.com/rakibhasan/coursehub/services/realtime/handler"
	realtimeNATS "github.com/rakibhasan/coursehub/services/realtime/handler/nats"
	realtimeWS "github.com/rakibhasan/coursehub/services/realtime/handler/websocket"
	reviewHandler "github.com/rakibhasan/coursehub/services/review/handler"
	reviewHTTP "github.com/rakibhasan/coursehub/services/review/handler/http"
	reviewRepo "github.com/rakibhasan/coursehub/services/review/repository"
	reviewUC "github.com/rakibhasan/coursehub/services/review/usecase"
)

func main() {
	appName := "coursehub-api"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Apply schema migrations before opening the pool
	if err := migrate.Up(database.DSN(configs.Database)); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// The broker is often the last dependency up in containerized deploys,
	// so the initial connect gets a few backoff attempts.
	var natsClient *natspkg.Client
	connectRetrier := retry.NewWithDefaults()
	err = connectRetrier.Execute(context.Background(), func(ctx context.Context) error {
		var connErr error
		natsClient, connErr = natspkg.NewClient(configs.NATS.URL)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	mailer := mail.NewMailer(configs.SMTP)

	// Account service
	userRepo := accountRepo.NewUserRepo(postgresClient)
	otpRepo := accountRepo.NewOTPRepo(redisClient)
	accountUsecase := accountUC.NewAccountUC(userRepo, otpRepo, mailer, configs)
	accountH := accountHandler.NewHandler(
		accountHTTP.NewAuthHandler(accountUsecase),
		accountHTTP.NewOTPHandler(accountUsecase),
		accountHTTP.NewUserHandler(accountUsecase),
		configs,
	)

	// Payment service
	payRepo := paymentRepo.NewPaymentRepo(postgresClient)
	grantRepo := paymentRepo.NewGrantRepo(postgresClient)
	paymentGW := paymentGateway.NewNATSGateway(natsClient)
	paymentUsecase := paymentUC.NewPaymentUC(payRepo, grantRepo, paymentGW, mailer, configs)
	paymentH := paymentHandler.NewHandler(paymentHTTP.NewPaymentHandler(paymentUsecase), configs)

	// Review service
	revRepo := reviewRepo.NewReviewRepo(postgresClient)
	reviewUsecase := reviewUC.NewReviewUC(revRepo)
	reviewH := reviewHandler.NewHandler(reviewHTTP.NewReviewHandler(reviewUsecase), configs)

	// Course catalog
	catalogRepo := courseRepo.NewCourseRepo(postgresClient)
	courseH := courseHandler.NewHandler(courseHTTP.NewCourseHandler(catalogRepo))

	// Realtime channel
	wsManager := wspkg.NewManager(configs.JWT)
	realtimeH := realtimeHandler.NewHandler(
		realtimeWS.NewWebSocketHandler(wsManager),
		realtimeNATS.NewNatsHandler(natsClient, wsManager),
	)
	defer realtimeH.Close()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger, configs.App.Environment))

	health.RegisterHealthEndpoints(e, appName)

	accountH.RegisterRoutes(e)
	paymentH.RegisterRoutes(e)
	reviewH.RegisterRoutes(e)
	courseH.RegisterRoutes(e)
	if err := realtimeH.RegisterRoutes(e); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}

// httpErrorHandler turns unmatched routes and stray echo errors into the
// structured envelope the rest of the API speaks.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	body := map[string]interface{}{
		"success": false,
		"message": message,
	}
	if code == http.StatusNotFound {
		body["message"] = "Route not found"
		body["path"] = c.Request().URL.Path
	}

	if err := c.JSON(code, body); err != nil {
		logger.Error("Failed to write error response", logger.Err(err))
	}
}
