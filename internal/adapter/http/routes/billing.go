package routes

import (
	"jiyajewellery/internal/adapter/http/handlers"
	"jiyajewellery/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func addBillingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, paymentHandler *handlers.BillingPaymentHandler, documentHandler *handlers.DocumentHandler) {
	admin := middleware.RequireRole(middleware.RoleAdmin)
	staff := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleSalesperson)
	payers := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleCustomer)

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", staff, estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.GET("/number/:number", estimateHandler.GetEstimateByNumber)
		estimates.GET("/:id/print", staff, documentHandler.PrintEstimate)
		estimates.PATCH("/:id/accept", admin, estimateHandler.Accept)
		estimates.PATCH("/:id/reject", admin, estimateHandler.Reject)
		estimates.PATCH("/:id/order", admin, estimateHandler.MarkOrdered)
	}

	// Shares the :id wildcard with the estimate routes above.
	payments := estimates.Group("/:id/payments", payers)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.GetLatestPayment)
	}
	rg.GET(PathPayments+"/:id", payers, paymentHandler.GetPayment)

	rg.GET(PathCustomers+"/:id/estimates", estimateHandler.ListCustomerEstimates)
	rg.GET(PathReports+"/estimates.xlsx", staff, documentHandler.ExportEstimates)
}
