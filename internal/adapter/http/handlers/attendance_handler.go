package handlers

import (
	"errors"
	"math"
	"net/http"

	"jiyajewellery/internal/adapter/http/dto/request"
	"jiyajewellery/internal/adapter/http/dto/response"
	"jiyajewellery/internal/usecase"
	"jiyajewellery/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AttendanceHandler struct {
	usecase usecase.IAttendanceUseCase
}

func NewAttendanceHandler(uc usecase.IAttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{usecase: uc}
}

// CheckIn godoc
// @Summary      Check in at the showroom
// @Description  Rejected with 422 when the device is outside the showroom radius.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body  request.LocationRequest  true  "Device location"
// @Success      200  {object}  response.AttendanceResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /attendance/check-in [post]
// @Security     BearerAuth
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.LocationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	a, err := h.usecase.CheckIn(c.Request.Context(), claims.UserID, req.ToEntity())
	if err != nil {
		h.fail(c, claims.UserID, "check-in", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAttendance(a))
}

// CheckOut godoc
// @Summary      Check out
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body  request.LocationRequest  true  "Device location"
// @Success      200  {object}  response.AttendanceResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /attendance/check-out [post]
// @Security     BearerAuth
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.LocationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	a, err := h.usecase.CheckOut(c.Request.Context(), claims.UserID, req.ToEntity())
	if err != nil {
		h.fail(c, claims.UserID, "check-out", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAttendance(a))
}

// Status godoc
// @Summary      Today's attendance state
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  response.AttendanceResponse
// @Router       /attendance/status [get]
// @Security     BearerAuth
func (h *AttendanceHandler) Status(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	a, err := h.usecase.Status(c.Request.Context(), claims.UserID)
	if err != nil {
		h.fail(c, claims.UserID, "status", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAttendance(a))
}

func (h *AttendanceHandler) fail(c *gin.Context, userID, action string, err error) {
	log.Ctx(c.Request.Context()).Warn().Err(err).Str("user_id", userID).Str("action", action).Msg("[attendance][handler] rejected")

	var geo *usecase.GeofenceViolationError
	if errors.As(err, &geo) {
		appErr := pkg.NewDomainErrorSimple("OUTSIDE_GEOFENCE", "You are outside the check-in range", http.StatusUnprocessableEntity)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(gin.H{
			"distance_meters": math.Round(geo.DistanceMeters*100) / 100,
			"radius_meters":   geo.RadiusMeters,
		}))
		return
	}
	respondError(c, mapAttendanceError(err))
}

func mapAttendanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLocation):
		return pkg.NewDomainErrorSimple("INVALID_LOCATION", "Location unavailable or invalid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyCheckedIn):
		return pkg.NewDomainErrorSimple("ALREADY_CHECKED_IN", "Already checked in today", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyCheckedOut):
		return pkg.NewDomainErrorSimple("ALREADY_CHECKED_OUT", "Already checked out today", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotCheckedIn):
		return pkg.NewDomainErrorSimple("NOT_CHECKED_IN", "Check in before checking out", http.StatusConflict)
	default:
		return internalError(err)
	}
}
