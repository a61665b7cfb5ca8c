package handlers

import (
	"errors"
	"net/http"

	"jiyajewellery/internal/adapter/http/dto/request"
	"jiyajewellery/internal/adapter/http/dto/response"
	"jiyajewellery/internal/usecase"
	"jiyajewellery/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves products and open inventory tags.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateProduct godoc
// @Summary      Add a catalog product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateProductRequest  true  "Product"
// @Success      201  {object}  response.ProductResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /products [post]
// @Security     BearerAuth
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.usecase.CreateProduct(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(p))
}

// ListProducts godoc
// @Summary      Search the catalog
// @Tags         catalog
// @Produce      json
// @Param        search      query  string  false  "Name or SKU"
// @Param        category    query  string  false  "Category"
// @Param        metal_type  query  string  false  "gold, silver or other"
// @Param        page        query  int     false  "Page, from 1"
// @Param        limit       query  int     false  "Page size"
// @Success      200  {object}  response.ProductListResponse
// @Router       /products [get]
// @Security     BearerAuth
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var q request.ProductListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidJSON)
		return
	}
	filter, err := usecase.NormalizeProductFilter(q.ToFilter())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}

	list, total, err := h.usecase.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProductPage(list, total, filter.Page, filter.Limit))
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [get]
// @Security     BearerAuth
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// CreateOpenTag godoc
// @Summary      Register an open inventory tag
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateOpenTagRequest  true  "Open tag"
// @Success      201  {object}  response.OpenTagResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /open-tags [post]
// @Security     BearerAuth
func (h *CatalogHandler) CreateOpenTag(c *gin.Context) {
	var req request.CreateOpenTagRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.usecase.CreateOpenTag(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOpenTag(t))
}

// GetOpenTag godoc
// @Summary      Look up an open tag
// @Tags         catalog
// @Produce      json
// @Param        tag_number  path  string  true  "Tag number"
// @Success      200  {object}  response.OpenTagResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /open-tags/{tag_number} [get]
// @Security     BearerAuth
func (h *CatalogHandler) GetOpenTag(c *gin.Context) {
	t, err := h.usecase.GetOpenTag(c.Request.Context(), c.Param("tag_number"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOpenTag(t))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOpenTagNotFound):
		return pkg.NewDomainErrorSimple("OPEN_TAG_NOT_FOUND", "Open tag not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOpenTagExists):
		return pkg.NewDomainErrorSimple("OPEN_TAG_EXISTS", "Open tag already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidProduct), errors.Is(err, usecase.ErrInvalidOpenTag):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_INPUTS", "Invalid pricing inputs", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidTagNumber), errors.Is(err, usecase.ErrInvalidPagination):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
