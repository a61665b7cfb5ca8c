package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"jiyajewellery/internal/adapter/http/handlers/mocks"
	"jiyajewellery/internal/adapter/http/middleware"
	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimateRouter(h *EstimateHandler, role, userID string) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", asUser(role, userID))
	g.GET("/estimates", h.ListEstimates)
	g.GET("/estimates/:id", h.GetEstimate)
	g.GET("/estimates/number/:number", h.GetEstimateByNumber)
	g.GET("/customers/:id/estimates", h.ListCustomerEstimates)
	g.PATCH("/estimates/:id/accept", h.Accept)
	g.PATCH("/estimates/:id/reject", h.Reject)
	g.PATCH("/estimates/:id/order", h.MarkOrdered)
	return r
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, time.UTC), middleware.RoleAdmin, "admin-1")

		uc.EXPECT().GetByID(gomock.Any(), "est-404").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		w := doJSON(r, http.MethodGet, "/v1/estimates/est-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("customer cannot see someone else's estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, time.UTC), middleware.RoleCustomer, "cust-1")

		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", CustomerID: "cust-2"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/estimates/est-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("customer sees own estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, time.UTC), middleware.RoleCustomer, "cust-1")

		uc.EXPECT().GetByNumber(gomock.Any(), int64(1001)).Return(entities.Estimate{ID: "est-1", Number: 1001, CustomerID: "cust-1"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/estimates/number/1001", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non numeric number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, time.UTC), middleware.RoleAdmin, "admin-1")

		w := doJSON(r, http.MethodGet, "/v1/estimates/number/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ListEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, time.UTC), middleware.RoleAdmin, "admin-1")

		w := doJSON(r, http.MethodGet, "/v1/estimates?from=2026-03-31&to=2026-03-01", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, time.UTC), middleware.RoleAdmin, "admin-1")

		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
		uc.EXPECT().ListByDateRange(gomock.Any(), from, to).
			Return([]entities.Estimate{{ID: "est-1"}, {ID: "est-2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/estimates?from=2026-03-01", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 estimates, got %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_ListCustomerEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("customer listing another customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, time.UTC), middleware.RoleCustomer, "cust-1")

		w := doJSON(r, http.MethodGet, "/v1/customers/cust-2/estimates", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("salesperson lists any customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, time.UTC), middleware.RoleSalesperson, "sp-1")

		uc.EXPECT().ListByCustomer(gomock.Any(), "cust-2").Return([]entities.Estimate{}, nil)

		w := doJSON(r, http.MethodGet, "/v1/customers/cust-2/estimates", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(NewEstimateHandler(uc, time.UTC), middleware.RoleAdmin, "admin-1")

	uc.EXPECT().Accept(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusAccepted}, nil)
	uc.EXPECT().Reject(gomock.Any(), "est-1").Return(entities.Estimate{}, usecase.ErrInvalidStatusTransition)
	uc.EXPECT().MarkOrdered(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusOrdered}, nil)

	w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/accept", "")
	if w.Code != http.StatusOK {
		t.Fatalf("accept: expected 200, got %d", w.Code)
	}
	w = doJSON(r, http.MethodPatch, "/v1/estimates/est-1/reject", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("reject: expected 409, got %d", w.Code)
	}
	w = doJSON(r, http.MethodPatch, "/v1/estimates/est-1/order", "")
	if w.Code != http.StatusOK {
		t.Fatalf("order: expected 200, got %d", w.Code)
	}
}
