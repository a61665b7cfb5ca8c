package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"jiyajewellery/internal/domain/entities"
	mock_interfaces "jiyajewellery/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo    *mock_interfaces.MockIBillingPaymentRepository
	estRepo *mock_interfaces.MockIEstimateRepository
	gateway *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(ctrl *gomock.Controller, settings PaymentSettings) (*BillingPaymentUseCase, paymentMocks) {
	m := paymentMocks{
		repo:    mock_interfaces.NewMockIBillingPaymentRepository(ctrl),
		estRepo: mock_interfaces.NewMockIEstimateRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewBillingPaymentUseCase(m.repo, m.estRepo, m.gateway, settings), m
}

func acceptedEstimate() entities.Estimate {
	return entities.Estimate{
		ID:     "est-1",
		Number: 42,
		Status: entities.EstimateStatusAccepted,
		Totals: entities.EstimateTotals{NetPayableAmount: dec("100744")},
	}
}

const pixPayload = `{"payment_method_id":"pix","payer":{"email":"buyer@example.com"}}`

func TestBillingPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty estimate id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentEstimateID) {
			t.Fatalf("expected ErrInvalidPaymentEstimateID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "est-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, estRepo, nil, PaymentSettings{})

		_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(pixPayload))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_EstimateChecks(t *testing.T) {
	t.Run("estimate repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(pixPayload))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(pixPayload))
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("estimate still pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		est := acceptedEstimate()
		est.Status = entities.EstimateStatusPending
		m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)

		_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(pixPayload))
		if !errors.Is(err, ErrEstimateNotAccepted) {
			t.Fatalf("expected ErrEstimateNotAccepted, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(acceptedEstimate(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(`{"payer":{"email":"a@b.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer without sandbox defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{AccessToken: "APP_USR-1"})
		m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(acceptedEstimate(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_GatewayErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"customer not found", errors.New(`{"message":"Customer not found","status":404}`), ErrPaymentGatewayCustomerNotFound},
		{"invalid users", errors.New(`{"cause":[{"code":2034}]}`), ErrPaymentGatewayInvalidUsers},
		{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
		{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
			m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(acceptedEstimate(), nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(pixPayload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(acceptedEstimate(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(pixPayload))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	cases := []struct {
		name          string
		provider      string
		want          entities.PaymentStatus
		expectOrdered bool
	}{
		{"approved orders the estimate", "approved", entities.PaymentStatusApproved, true},
		{"pending leaves estimate accepted", "in_process", entities.PaymentStatusPending, false},
		{"rejected leaves estimate accepted", "rejected", entities.PaymentStatusDenied, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
			m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(acceptedEstimate(), nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var req map[string]any
					if err := json.Unmarshal(payload, &req); err != nil {
						t.Fatalf("payload is not json: %v", err)
					}
					if req["transaction_amount"] != float64(100744) {
						t.Fatalf("amount must come from the estimate, got %v", req["transaction_amount"])
					}
					if req["external_reference"] != "est-1" || req["description"] != "Estimate #42" {
						t.Fatalf("unexpected reference fields: %v", req)
					}
					return "pay-1", tc.provider, json.RawMessage(`{"id":"pay-1","status":"` + tc.provider + `"}`), nil
				},
			)
			m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingPayment{})).DoAndReturn(
				func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
					if p.ID != "pay-1" || p.EstimateID != "est-1" || p.Status != tc.want || !p.Amount.Equal(dec("100744")) {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.ProviderPayload["status"] != tc.provider {
						t.Fatalf("provider payload not parsed: %v", p.ProviderPayload)
					}
					return p, nil
				},
			)
			if tc.expectOrdered {
				m.estRepo.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusAccepted, entities.EstimateStatusOrdered).
					Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusOrdered}, nil)
			}

			res, err := uc.CreateAndApprove(context.Background(), " est-1 ", json.RawMessage(pixPayload))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(acceptedEstimate(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingPayment{}, errors.New("db-create"))

		_, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(pixPayload))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})

	t.Run("non-object payload is sent as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		m.estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(acceptedEstimate(), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), json.RawMessage(`[]`)).Return("pay-1", "approved", json.RawMessage(`{"id":1}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingPayment{ID: "pay-1", EstimateID: "est-1", Status: entities.PaymentStatusApproved}, nil)
		m.estRepo.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusAccepted, entities.EstimateStatusOrdered).
			Return(entities.Estimate{}, nil)

		res, err := uc.CreateAndApprove(context.Background(), "est-1", json.RawMessage(`[]`))
		if err != nil || res.ID != "pay-1" {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, estRepo, nil, PaymentSettings{Mock: true})

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(acceptedEstimate(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
				if p.ID == "" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected mock payment: %+v", p)
				}
				return p, nil
			},
		)
		estRepo.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusAccepted, entities.EstimateStatusOrdered).
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusOrdered}, nil)

		if _, err := uc.CreateAndApprove(context.Background(), "est-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Reads(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), "id-1")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})

	t.Run("ListByEstimateID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.ListByEstimateID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentEstimateID) {
			t.Fatalf("expected ErrInvalidPaymentEstimateID, got %v", err)
		}
	})

	t.Run("ListByEstimateID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, PaymentSettings{})
		m.repo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.BillingPayment{{ID: "a"}}, nil)

		res, err := uc.ListByEstimateID(context.Background(), "est-1")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v, %v", res, err)
		}
	})
}

func TestBillingPaymentUseCase_PayerHelpers(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		m := map[string]any{"a": " x ", "b": "  ", "c": 1}
		if !hasNonEmptyString(m, "a") || hasNonEmptyString(m, "b") || hasNonEmptyString(m, "c") || hasNonEmptyString(m, "d") {
			t.Fatalf("unexpected hasNonEmptyString results")
		}
	})

	t.Run("hasPayer", func(t *testing.T) {
		if hasPayer(map[string]any{}) || hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("expected no payer")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 123.0}}) {
			t.Fatalf("expected payer by id")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected payer by email")
		}
	})

	t.Run("ensurePayerDefaults in sandbox", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{AccessToken: "TEST-123"})
		m := map[string]any{}
		uc.ensurePayerDefaults(m)
		payer := m["payer"].(map[string]any)
		if payer["type"] != "customer" || payer["email"] != "test_user@testuser.com" {
			t.Fatalf("unexpected payer defaults: %v", payer)
		}
	})

	t.Run("ensurePayerDefaults prefers configured email", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{TestPayerEmail: "qa@example.com"})
		m := map[string]any{"payer": map[string]any{}}
		uc.ensurePayerDefaults(m)
		if m["payer"].(map[string]any)["email"] != "qa@example.com" {
			t.Fatalf("expected configured email, got %v", m["payer"])
		}
	})

	t.Run("normalizeSandboxPayerFromUserID", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{
			AccessToken:     "TEST-123",
			TestPayerUserID: "999",
			TestPayerEmail:  "qa@example.com",
		})
		m := map[string]any{"payer": map[string]any{"id": "999"}}
		uc.normalizeSandboxPayerFromUserID(m)
		payer := m["payer"].(map[string]any)
		if payer["email"] != "qa@example.com" {
			t.Fatalf("expected email to be mapped, got %v", payer)
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected id to be removed")
		}

		other := map[string]any{"payer": map[string]any{"id": "111"}}
		uc.normalizeSandboxPayerFromUserID(other)
		if _, ok := other["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("unrelated payer must be left alone")
		}
	})

	t.Run("mapProviderStatus", func(t *testing.T) {
		cases := map[string]entities.PaymentStatus{
			"approved":     entities.PaymentStatusApproved,
			" AUTHORIZED ": entities.PaymentStatusApproved,
			"rejected":     entities.PaymentStatusDenied,
			"charged_back": entities.PaymentStatusDenied,
			"in_process":   entities.PaymentStatusPending,
			"":             entities.PaymentStatusPending,
		}
		for in, want := range cases {
			if got := mapProviderStatus(in); got != want {
				t.Fatalf("mapProviderStatus(%q) = %s, want %s", in, got, want)
			}
		}
	})
}
