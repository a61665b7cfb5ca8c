package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jiyajewellery/internal/adapter/http/handlers"
	"jiyajewellery/internal/adapter/http/routes"
	"jiyajewellery/internal/adapter/persistence/repository"
	"jiyajewellery/internal/config"
	"jiyajewellery/internal/domain/geofence"
	"jiyajewellery/internal/infrastructure/database"
	"jiyajewellery/internal/infrastructure/documents"
	"jiyajewellery/internal/infrastructure/notify"
	"jiyajewellery/internal/infrastructure/payments"
	"jiyajewellery/internal/usecase"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Jiya Jewellery API
// @version         1.0
// @description     Showroom estimates, rate sheets, salesperson attendance and customer visits.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("[api] exiting")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	})
	if err != nil {
		return fmt.Errorf("dynamodb: %w", err)
	}

	db, err := database.ConnectPostgres(cfg.DatabaseURL, cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := database.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	loc := cfg.Location()

	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable)
	rateRepo := repository.NewRateSheetDynamoRepository(ddb, cfg.RateSheetsTable)
	attendanceRepo := repository.NewAttendanceDynamoRepository(ddb, cfg.AttendanceTable)
	visitRepo := repository.NewVisitLogDynamoRepository(ddb, cfg.VisitLogsTable)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable)
	sequenceRepo := repository.NewSequenceDynamoRepository(ddb, cfg.CountersTable)
	productRepo := repository.NewProductPostgresRepository(db)
	openTagRepo := repository.NewOpenTagPostgresRepository(db)
	draftRepo := repository.NewEstimateDraftRedisRepository(rdb, cfg.DraftTTL())
	otpRepo := repository.NewOTPRedisRepository(rdb)

	var gateway interfaces.IPaymentGateway
	if cfg.MercadoPagoAccessToken != "" {
		mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			return fmt.Errorf("mercadopago: %w", err)
		}
		gateway = mp
	}

	fence := geofence.Fence{
		Center:       geofence.Point{Lat: cfg.CompanyLatitude, Lon: cfg.CompanyLongitude},
		RadiusMeters: cfg.GeofenceRadiusMeters,
	}
	company := interfaces.CompanyInfo{
		Name:    cfg.CompanyName,
		Address: cfg.CompanyAddress,
		Phone:   cfg.CompanyPhone,
		GSTIN:   cfg.CompanyGSTIN,
	}

	rateUC := usecase.NewRateUseCase(rateRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo, openTagRepo)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, fence, loc)
	draftUC := usecase.NewEstimateDraftUseCase(usecase.EstimateDraftDeps{
		Drafts:    draftRepo,
		Estimates: estimateRepo,
		Rates:     rateRepo,
		Products:  productRepo,
		OpenTags:  openTagRepo,
		Sequence:  sequenceRepo,
	}, usecase.PricingPolicy{
		HandlingCharge:     cfg.HandlingCharge(),
		TaxPercent:         cfg.TaxPercent(),
		MaxDiscountPercent: cfg.DiscountLimit(),
	}, loc)
	estimateUC := usecase.NewEstimateUseCase(estimateRepo)
	paymentUC := usecase.NewBillingPaymentUseCase(paymentRepo, estimateRepo, gateway, usecase.PaymentSettings{
		Mock:            cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})
	documentUC := usecase.NewDocumentUseCase(estimateRepo, documents.NewRenderer(), company)
	visitUC := usecase.NewVisitLogUseCase(visitRepo, otpRepo, notify.NewLogOTPSender(!cfg.IsProduction()), usecase.OTPPolicy{
		TTL:         cfg.OTPTTL(),
		MaxAttempts: cfg.OTPMaxAttempts,
	}, loc)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.New(routes.Options{
		JWTSecret:     cfg.JWTSecret,
		EnableSwagger: !cfg.IsProduction(),
		HealthChecks: map[string]routes.HealthCheck{
			"postgres": sqlDB.PingContext,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	}, routes.Handlers{
		Rate:              handlers.NewRateHandler(rateUC, loc),
		Catalog:           handlers.NewCatalogHandler(catalogUC),
		Attendance:        handlers.NewAttendanceHandler(attendanceUC),
		Draft:             handlers.NewEstimateDraftHandler(draftUC, loc),
		Estimate:          handlers.NewEstimateHandler(estimateUC, loc),
		Payment:           handlers.NewBillingPaymentHandler(paymentUC, cfg.PaymentGatewayMock),
		Document:          handlers.NewDocumentHandler(documentUC, loc),
		Visit:             handlers.NewVisitLogHandler(visitUC, loc),
		AttendanceUseCase: attendanceUC,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("[api] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("[api] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.IsProduction() {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	zerolog.DefaultContextLogger = &log.Logger
}
