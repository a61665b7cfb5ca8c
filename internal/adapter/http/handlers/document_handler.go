package handlers

import (
	"fmt"
	"net/http"
	"time"

	"jiyajewellery/internal/adapter/http/dto/request"
	"jiyajewellery/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
	loc     *time.Location
}

func NewDocumentHandler(uc usecase.IDocumentUseCase, loc *time.Location) *DocumentHandler {
	return &DocumentHandler{usecase: uc, loc: loc}
}

// PrintEstimate godoc
// @Summary      Printable estimate
// @Tags         documents
// @Produce      application/pdf
// @Param        id  path  string  true  "Estimate ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id}/print [get]
// @Security     BearerAuth
func (h *DocumentHandler) PrintEstimate(c *gin.Context) {
	e, pdf, err := h.usecase.RenderEstimatePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="estimate-%d.pdf"`, e.Number))
	c.Data(http.StatusOK, contentTypePDF, pdf)
}

// ExportEstimates godoc
// @Summary      Estimate register as a spreadsheet
// @Tags         documents
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from  query  string  true   "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD, defaults to from"
// @Success      200  {file}  binary
// @Failure      400  {object}  pkg.HTTPError
// @Router       /reports/estimates.xlsx [get]
// @Security     BearerAuth
func (h *DocumentHandler) ExportEstimates(c *gin.Context) {
	q := request.EstimateRangeQuery{From: c.Query("from"), To: c.Query("to")}
	from, to, err := q.Resolve(h.loc)
	if err != nil {
		respondError(c, mapEstimateError(usecase.ErrInvalidDateRange))
		return
	}

	data, err := h.usecase.ExportEstimatesXLSX(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	name := fmt.Sprintf("estimates-%s-%s.xlsx", from.Format(request.DateLayout), to.Format(request.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, contentTypeXLSX, data)
}
