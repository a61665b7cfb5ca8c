package routes

import (
	"jiyajewellery/internal/adapter/http/handlers"
	"jiyajewellery/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// addSalesRoutes mounts the salesperson's day: attendance, the estimate
// builder and customer visits. Drafts and visits need an open check-in.
func addSalesRoutes(rg *gin.RouterGroup, checkedIn gin.HandlerFunc, attendanceHandler *handlers.AttendanceHandler, draftHandler *handlers.EstimateDraftHandler, visitHandler *handlers.VisitLogHandler) {
	salesperson := middleware.RequireRole(middleware.RoleSalesperson)

	attendance := rg.Group(PathAttendance, salesperson)
	{
		attendance.GET("/status", attendanceHandler.Status)
		attendance.POST("/check-in", attendanceHandler.CheckIn)
		attendance.POST("/check-out", attendanceHandler.CheckOut)
	}

	drafts := rg.Group(PathDrafts, salesperson, checkedIn)
	{
		drafts.POST("", draftHandler.CreateDraft)
		drafts.GET("/:id", draftHandler.GetDraft)
		drafts.POST("/:id/items", draftHandler.AddLineItem)
		drafts.PATCH("/:id/items/:item_id", draftHandler.UpdateLineItem)
		drafts.DELETE("/:id/items/:item_id", draftHandler.RemoveLineItem)
		drafts.PUT("/:id/discount", draftHandler.SetDiscount)
		drafts.PUT("/:id/customer", draftHandler.SetCustomer)
		drafts.POST("/:id/submit", draftHandler.Submit)
	}

	visits := rg.Group(PathVisits, salesperson, checkedIn)
	{
		visits.POST("", visitHandler.StartVisit)
		visits.GET("", visitHandler.ListVisits)
		visits.POST("/:id/verify", visitHandler.VerifyVisit)
		visits.POST("/:id/resend-otp", visitHandler.ResendOTP)
	}
}
