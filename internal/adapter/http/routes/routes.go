package routes

import (
	"context"

	_ "jiyajewellery/docs"
	"jiyajewellery/internal/adapter/http/handlers"
	"jiyajewellery/internal/adapter/http/middleware"
	"jiyajewellery/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathRates      = "/rates"
	PathProducts   = "/products"
	PathOpenTags   = "/open-tags"
	PathAttendance = "/attendance"
	PathDrafts     = "/drafts"
	PathEstimates  = "/estimates"
	PathCustomers  = "/customers"
	PathPayments   = "/payments"
	PathReports    = "/reports"
	PathVisits     = "/visits"
)

// HealthCheck reports whether a backing store is reachable.
type HealthCheck func(ctx context.Context) error

type Options struct {
	JWTSecret     string
	EnableSwagger bool
	HealthChecks  map[string]HealthCheck
}

// Handlers groups every HTTP handler plus the attendance use case the
// check-in gate consults.
type Handlers struct {
	Rate       *handlers.RateHandler
	Catalog    *handlers.CatalogHandler
	Attendance *handlers.AttendanceHandler
	Draft      *handlers.EstimateDraftHandler
	Estimate   *handlers.EstimateHandler
	Payment    *handlers.BillingPaymentHandler
	Document   *handlers.DocumentHandler
	Visit      *handlers.VisitLogHandler

	AttendanceUseCase usecase.IAttendanceUseCase
}

// New builds the gin engine with middlewares and all /v1 routes.
func New(opts Options, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	if opts.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1, opts.HealthChecks)

	authed := v1.Group("", middleware.JWTAuth(opts.JWTSecret))
	checkedIn := middleware.RequireCheckedIn(h.AttendanceUseCase)

	addCatalogRoutes(authed, h.Rate, h.Catalog)
	addSalesRoutes(authed, checkedIn, h.Attendance, h.Draft, h.Visit)
	addBillingRoutes(authed, h.Estimate, h.Payment, h.Document)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
}
