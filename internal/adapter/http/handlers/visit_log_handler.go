package handlers

import (
	"errors"
	"net/http"
	"time"

	"jiyajewellery/internal/adapter/http/dto/request"
	"jiyajewellery/internal/adapter/http/dto/response"
	"jiyajewellery/internal/usecase"
	"jiyajewellery/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// VisitLogHandler records customer visits. The OTP only ever travels to the
// customer's phone, never back through these responses.
type VisitLogHandler struct {
	usecase usecase.IVisitLogUseCase
	loc     *time.Location
}

func NewVisitLogHandler(uc usecase.IVisitLogUseCase, loc *time.Location) *VisitLogHandler {
	return &VisitLogHandler{usecase: uc, loc: loc}
}

// StartVisit godoc
// @Summary      Log a visit and send the customer an OTP
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        body  body  request.StartVisitRequest  true  "Visit"
// @Success      201  {object}  response.VisitResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /visits [post]
// @Security     BearerAuth
func (h *VisitLogHandler) StartVisit(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.StartVisitRequest
	if !bindAndValidate(c, &req) {
		return
	}

	v, err := h.usecase.StartVisit(c.Request.Context(), claims.UserID, req.ToCommand())
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("visit_id", v.ID).Str("salesperson_id", claims.UserID).Msg("[visit][handler] started")
	c.JSON(http.StatusCreated, response.FromVisit(v))
}

// VerifyVisit godoc
// @Summary      Confirm a visit with the customer's OTP
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Visit ID"
// @Param        body  body  request.VerifyVisitRequest  true  "Code"
// @Success      200  {object}  response.VisitResponse
// @Failure      410  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Router       /visits/{id}/verify [post]
// @Security     BearerAuth
func (h *VisitLogHandler) VerifyVisit(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.VerifyVisitRequest
	if !bindAndValidate(c, &req) {
		return
	}

	v, err := h.usecase.VerifyVisit(c.Request.Context(), claims.UserID, c.Param("id"), req.Code)
	if err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Str("visit_id", c.Param("id")).Msg("[visit][handler] verification failed")
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(v))
}

// ResendOTP godoc
// @Summary      Issue a fresh OTP for an unverified visit
// @Tags         visits
// @Produce      json
// @Param        id  path  string  true  "Visit ID"
// @Success      200  {object}  response.VisitResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /visits/{id}/resend-otp [post]
// @Security     BearerAuth
func (h *VisitLogHandler) ResendOTP(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	v, err := h.usecase.ResendOTP(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(v))
}

// ListVisits godoc
// @Summary      The salesperson's visits on a day
// @Tags         visits
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD, defaults to today"
// @Success      200  {array}  response.VisitResponse
// @Router       /visits [get]
// @Security     BearerAuth
func (h *VisitLogHandler) ListVisits(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	date, err := request.ParseDate(c.Query("date"), h.loc)
	if err != nil {
		respondError(c, errInvalidDate)
		return
	}

	list, err := h.usecase.ListVisits(c.Request.Context(), claims.UserID, date)
	if err != nil {
		respondError(c, mapVisitError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVisits(list))
}

func mapVisitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrVisitNotFound):
		return pkg.NewDomainErrorSimple("VISIT_NOT_FOUND", "Visit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVisitAlreadyVerified):
		return pkg.NewDomainErrorSimple("VISIT_ALREADY_VERIFIED", "Visit already verified", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOTPFormat):
		return pkg.NewDomainErrorSimple("INVALID_OTP_FORMAT", "OTP must be exactly 6 digits", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOTPMismatch):
		return pkg.NewDomainErrorSimple("OTP_MISMATCH", "Incorrect OTP", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOTPExpired):
		return pkg.NewDomainErrorSimple("OTP_EXPIRED", "OTP expired; request a new one", http.StatusGone)
	case errors.Is(err, usecase.ErrOTPAttemptsExceeded):
		return pkg.NewDomainErrorSimple("OTP_ATTEMPTS_EXCEEDED", "Too many attempts; request a new OTP", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrOTPDeliveryFailed):
		return pkg.NewDomainErrorSimple("OTP_DELIVERY_FAILED", "Could not send the OTP", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Invalid customer phone", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidVisit), errors.Is(err, usecase.ErrInvalidVisitID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
