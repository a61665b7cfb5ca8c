package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"jiyajewellery/internal/adapter/http/dto/request"
	"jiyajewellery/internal/adapter/http/dto/response"
	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase"
	"jiyajewellery/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errInvalidRevision = pkg.NewDomainErrorSimple("INVALID_REVISION", "A positive revision query parameter is required", http.StatusBadRequest)

// EstimateDraftHandler exposes the estimate builder. Every mutation echoes
// back the draft with its new revision.
type EstimateDraftHandler struct {
	usecase usecase.IEstimateDraftUseCase
	loc     *time.Location
}

func NewEstimateDraftHandler(uc usecase.IEstimateDraftUseCase, loc *time.Location) *EstimateDraftHandler {
	return &EstimateDraftHandler{usecase: uc, loc: loc}
}

// CreateDraft godoc
// @Summary      Open a new estimate draft
// @Description  Snapshots the rate sheet in force on the given date (today by default).
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateDraftRequest  false  "Customer and date"
// @Success      201  {object}  response.DraftResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /drafts [post]
// @Security     BearerAuth
func (h *EstimateDraftHandler) CreateDraft(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.CreateDraftRequest
	if c.Request.ContentLength != 0 && !bindAndValidate(c, &req) {
		return
	}
	date, err := request.ParseDate(req.Date, h.loc)
	if err != nil {
		respondError(c, errInvalidDate)
		return
	}

	d, err := h.usecase.CreateDraft(c.Request.Context(), claims.UserID, req.CustomerID, date)
	if err != nil {
		respondError(c, mapDraftError(err))
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("draft_id", d.ID).Str("salesperson_id", claims.UserID).Msg("[draft][handler] opened")
	c.JSON(http.StatusCreated, response.FromDraft(d))
}

// GetDraft godoc
// @Summary      Get a draft
// @Tags         drafts
// @Produce      json
// @Param        id  path  string  true  "Draft ID"
// @Success      200  {object}  response.DraftResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /drafts/{id} [get]
// @Security     BearerAuth
func (h *EstimateDraftHandler) GetDraft(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	d, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"), claims.UserID)
	if err != nil {
		respondError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

// AddLineItem godoc
// @Summary      Add a line item
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Draft ID"
// @Param        body  body  request.AddLineItemRequest  true  "Line item"
// @Success      200  {object}  response.DraftResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /drafts/{id}/items [post]
// @Security     BearerAuth
func (h *EstimateDraftHandler) AddLineItem(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.AddLineItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.usecase.AddLineItem(c.Request.Context(), h.ref(c, claims.UserID, req.Revision), req.ToCommand())
	h.reply(c, d, err)
}

// UpdateLineItem godoc
// @Summary      Edit a line item
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id       path  string                         true  "Draft ID"
// @Param        item_id  path  string                         true  "Line item ID"
// @Param        body     body  request.UpdateLineItemRequest  true  "Changed fields"
// @Success      200  {object}  response.DraftResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /drafts/{id}/items/{item_id} [patch]
// @Security     BearerAuth
func (h *EstimateDraftHandler) UpdateLineItem(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.UpdateLineItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.usecase.UpdateLineItem(c.Request.Context(), h.ref(c, claims.UserID, req.Revision), c.Param("item_id"), req.ToPatch())
	h.reply(c, d, err)
}

// RemoveLineItem godoc
// @Summary      Remove a line item
// @Tags         drafts
// @Produce      json
// @Param        id        path   string  true  "Draft ID"
// @Param        item_id   path   string  true  "Line item ID"
// @Param        revision  query  int     true  "Current draft revision"
// @Success      200  {object}  response.DraftResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /drafts/{id}/items/{item_id} [delete]
// @Security     BearerAuth
func (h *EstimateDraftHandler) RemoveLineItem(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	revision, err := strconv.ParseInt(c.Query("revision"), 10, 64)
	if err != nil || revision <= 0 {
		respondError(c, errInvalidRevision)
		return
	}
	d, err := h.usecase.RemoveLineItem(c.Request.Context(), h.ref(c, claims.UserID, revision), c.Param("item_id"))
	h.reply(c, d, err)
}

// SetDiscount godoc
// @Summary      Set the estimate discount percent
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Draft ID"
// @Param        body  body  request.SetDiscountRequest  true  "Discount"
// @Success      200  {object}  response.DraftResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /drafts/{id}/discount [put]
// @Security     BearerAuth
func (h *EstimateDraftHandler) SetDiscount(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.SetDiscountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.usecase.SetDiscount(c.Request.Context(), h.ref(c, claims.UserID, req.Revision), req.DiscountPercent)
	h.reply(c, d, err)
}

// SetCustomer godoc
// @Summary      Attach the customer
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Draft ID"
// @Param        body  body  request.SetCustomerRequest  true  "Customer"
// @Success      200  {object}  response.DraftResponse
// @Router       /drafts/{id}/customer [put]
// @Security     BearerAuth
func (h *EstimateDraftHandler) SetCustomer(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.SetCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.usecase.SetCustomer(c.Request.Context(), h.ref(c, claims.UserID, req.Revision), req.CustomerID)
	h.reply(c, d, err)
}

// Submit godoc
// @Summary      Submit the draft as an estimate
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Draft ID"
// @Param        body  body  request.RevisionRequest  true  "Current revision"
// @Success      201  {object}  response.EstimateResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /drafts/{id}/submit [post]
// @Security     BearerAuth
func (h *EstimateDraftHandler) Submit(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.RevisionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	e, err := h.usecase.Submit(c.Request.Context(), h.ref(c, claims.UserID, req.Revision))
	if err != nil {
		respondError(c, mapDraftError(err))
		return
	}
	log.Ctx(c.Request.Context()).Info().
		Str("draft_id", c.Param("id")).
		Str("estimate_id", e.ID).
		Int64("number", e.Number).
		Msg("[draft][handler] submitted")
	c.JSON(http.StatusCreated, response.FromEstimate(e))
}

func (h *EstimateDraftHandler) ref(c *gin.Context, salespersonID string, revision int64) usecase.DraftRef {
	return usecase.DraftRef{DraftID: c.Param("id"), SalespersonID: salespersonID, Revision: revision}
}

func (h *EstimateDraftHandler) reply(c *gin.Context, d entities.EstimateDraft, err error) {
	if err != nil {
		respondError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(d))
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOpenTagNotFound):
		return pkg.NewDomainErrorSimple("OPEN_TAG_NOT_FOUND", "Open tag not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRateSheetNotFound):
		return pkg.NewDomainErrorSimple("RATES_NOT_FOUND", "No rates published for this date", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftRevisionConflict):
		return pkg.NewDomainErrorSimple("REVISION_CONFLICT", "Draft changed since it was loaded; reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftSubmitted):
		return pkg.NewDomainErrorSimple("DRAFT_SUBMITTED", "Draft already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrProductRequired):
		return pkg.NewDomainErrorSimple("PRODUCT_REQUIRED", "Select a product", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCustomerRequired):
		return pkg.NewDomainErrorSimple("CUSTOMER_REQUIRED", "Select a customer", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEmptyEstimate):
		return pkg.NewDomainErrorSimple("EMPTY_ESTIMATE", "Add at least one item", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnresolvedRate):
		return pkg.NewDomainErrorSimple("RATE_UNRESOLVED", "A line item has no rate; enter one manually", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNegativeTaxable):
		return pkg.NewDomainErrorSimple("DISCOUNT_TOO_LARGE", "Discount exceeds the chargeable amount of a line", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount percent out of range", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuantityNotEditable):
		return pkg.NewDomainErrorSimple("QUANTITY_NOT_EDITABLE", "Quantity is only editable on catalog products", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Invalid line item", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, usecase.ErrInvalidSalesperson):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
