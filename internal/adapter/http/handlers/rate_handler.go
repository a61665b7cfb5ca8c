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

type RateHandler struct {
	usecase usecase.IRateUseCase
	loc     *time.Location
	now     func() time.Time
}

func NewRateHandler(uc usecase.IRateUseCase, loc *time.Location) *RateHandler {
	return &RateHandler{usecase: uc, loc: loc, now: time.Now}
}

// Publish godoc
// @Summary      Publish the daily metal rates
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body  request.PublishRatesRequest  true  "Rates"
// @Success      201  {object}  response.RateSheetResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /rates [post]
// @Security     BearerAuth
func (h *RateHandler) Publish(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.PublishRatesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cmd, err := req.ToCommand(claims.UserID, h.loc)
	if err != nil {
		respondError(c, errInvalidDate)
		return
	}
	if cmd.EffectiveDate.IsZero() {
		cmd.EffectiveDate = h.today()
	}

	sheet, err := h.usecase.Publish(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, mapRateError(err))
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("rate_sheet_id", sheet.ID).Str("published_by", claims.UserID).Msg("[rates][handler] published")
	c.JSON(http.StatusCreated, response.FromRateSheet(sheet))
}

// Current godoc
// @Summary      Rate sheet in force on a date
// @Tags         rates
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD, defaults to today"
// @Success      200  {object}  response.RateSheetResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /rates/current [get]
// @Security     BearerAuth
func (h *RateHandler) Current(c *gin.Context) {
	date, err := request.ParseDate(c.Query("date"), h.loc)
	if err != nil {
		respondError(c, errInvalidDate)
		return
	}
	if date.IsZero() {
		date = h.today()
	}

	sheet, err := h.usecase.Current(c.Request.Context(), date)
	if err != nil {
		respondError(c, mapRateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRateSheet(sheet))
}

func (h *RateHandler) today() time.Time {
	now := h.now().In(h.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
}

func mapRateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRates):
		return pkg.NewDomainErrorSimple("INVALID_RATES", "Gold 22K and silver rates must be positive", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRateSheetAlreadyPublished):
		return pkg.NewDomainErrorSimple("RATES_ALREADY_PUBLISHED", "Rates already published for this date", http.StatusConflict)
	case errors.Is(err, usecase.ErrRateSheetNotFound):
		return pkg.NewDomainErrorSimple("RATES_NOT_FOUND", "No rates published for this date", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
