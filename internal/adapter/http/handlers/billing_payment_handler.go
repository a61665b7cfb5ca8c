package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"jiyajewellery/internal/adapter/http/dto/request"
	"jiyajewellery/internal/adapter/http/dto/response"
	"jiyajewellery/internal/usecase"
	"jiyajewellery/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BillingPaymentHandler takes payments against accepted estimates.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary      Take payment for an accepted estimate
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Estimate ID"
// @Success      200  {object}  response.BillingPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/payments [post]
// @Security     BearerAuth
func (h *BillingPaymentHandler) CreatePayment(c *gin.Context) {
	ctx := c.Request.Context()
	estimateID := c.Param("id")
	logger := log.Ctx(ctx).With().Str("estimate_id", estimateID).Logger()
	logger.Info().Msg("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			logger.Warn().Err(err).Msg("[payment][handler] invalid payload")
			respondError(c, errInvalidJSON)
			return
		}
		logger.Warn().Err(err).Msg("[payment][handler] invalid payload in mock mode, falling back to empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(ctx, estimateID, mpPayload)
	if err != nil {
		logger.Error().Err(err).Msg("[payment][handler] create failed")
		respondError(c, mapBillingPaymentError(err))
		return
	}
	logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("[payment][handler] create success")

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetLatestPayment godoc
// @Summary      Latest payment of an estimate
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "Estimate ID"
// @Success      200  {object}  response.BillingPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id}/payments [get]
// @Security     BearerAuth
func (h *BillingPaymentHandler) GetLatestPayment(c *gin.Context) {
	estimateID := c.Param("id")

	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		respondError(c, mapBillingPaymentError(err))
		return
	}
	if len(payments) == 0 {
		respondError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// GetPayment godoc
// @Summary      Get payment by id
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "Payment ID"
// @Success      200  {object}  response.BillingPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
// @Security     BearerAuth
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBillingPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

// readMPPayload accepts either a bare Mercado Pago payment body or one wrapped
// as {"mp_payload": {...}}. An empty body is an empty object.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var req request.BillingPaymentCreateRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			wrapped := bytes.TrimSpace(req.MPPayload)
			if len(wrapped) == 0 || string(wrapped) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentEstimateID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotAccepted):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_ACCEPTED", "Estimate not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
