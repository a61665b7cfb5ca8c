package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"jiyajewellery/internal/adapter/http/dto/request"
	"jiyajewellery/internal/adapter/http/dto/response"
	"jiyajewellery/internal/adapter/http/middleware"
	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase"
	"jiyajewellery/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errEstimateNotFound = pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)

// EstimateHandler serves submitted estimates. Customers only ever see their
// own estimates; everyone else sees all of them.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	loc     *time.Location
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, loc *time.Location) *EstimateHandler {
	return &EstimateHandler{usecase: uc, loc: loc}
}

// GetEstimate godoc
// @Summary      Get an estimate
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
// @Security     BearerAuth
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	if !canSee(claims, e) {
		respondError(c, errEstimateNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// GetEstimateByNumber godoc
// @Summary      Get an estimate by its printed number
// @Tags         estimates
// @Produce      json
// @Param        number  path  int  true  "Estimate number"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/number/{number} [get]
// @Security     BearerAuth
func (h *EstimateHandler) GetEstimateByNumber(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		respondError(c, mapEstimateError(usecase.ErrInvalidEstimateNumber))
		return
	}
	e, err := h.usecase.GetByNumber(c.Request.Context(), number)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	if !canSee(claims, e) {
		respondError(c, errEstimateNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// ListEstimates godoc
// @Summary      Estimate register for a date range
// @Tags         estimates
// @Produce      json
// @Param        from  query  string  true   "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD, defaults to from"
// @Success      200  {array}  response.EstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /estimates [get]
// @Security     BearerAuth
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	var q request.EstimateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidJSON)
		return
	}
	from, to, err := q.Resolve(h.loc)
	if err != nil {
		respondError(c, mapEstimateError(usecase.ErrInvalidDateRange))
		return
	}

	list, err := h.usecase.ListByDateRange(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// ListCustomerEstimates godoc
// @Summary      Estimates of a customer
// @Description  Customers may only list their own estimates.
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "Customer ID"
// @Success      200  {array}  response.EstimateResponse
// @Router       /customers/{id}/estimates [get]
// @Security     BearerAuth
func (h *EstimateHandler) ListCustomerEstimates(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	customerID := c.Param("id")
	if claims.Role == middleware.RoleCustomer && claims.UserID != customerID {
		respondError(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden))
		return
	}

	list, err := h.usecase.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// Accept godoc
// @Summary      Accept a pending estimate
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/accept [patch]
// @Security     BearerAuth
func (h *EstimateHandler) Accept(c *gin.Context) {
	h.transition(c, "accept", h.usecase.Accept)
}

// Reject godoc
// @Summary      Reject a pending estimate
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/reject [patch]
// @Security     BearerAuth
func (h *EstimateHandler) Reject(c *gin.Context) {
	h.transition(c, "reject", h.usecase.Reject)
}

// MarkOrdered godoc
// @Summary      Mark an accepted estimate as ordered
// @Description  For orders settled outside the payment gateway.
// @Tags         estimates
// @Produce      json
// @Param        id  path  string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/order [patch]
// @Security     BearerAuth
func (h *EstimateHandler) MarkOrdered(c *gin.Context) {
	h.transition(c, "order", h.usecase.MarkOrdered)
}

func (h *EstimateHandler) transition(c *gin.Context, action string, fn func(ctx context.Context, id string) (entities.Estimate, error)) {
	id := c.Param("id")
	e, err := fn(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("estimate_id", id).Str("action", action).Str("status", string(e.Status)).Msg("[estimate][handler] status changed")
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

func canSee(claims *middleware.Claims, e entities.Estimate) bool {
	return claims.Role != middleware.RoleCustomer || e.CustomerID == claims.UserID
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return errEstimateNotFound
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Estimate cannot move to that status", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidEstimateNumber), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
