package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jiyajewellery/internal/domain/entities"
	mock_interfaces "jiyajewellery/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type visitMocks struct {
	visits *mock_interfaces.MockIVisitLogRepository
	otps   *mock_interfaces.MockIOTPChallengeRepository
	sender *mock_interfaces.MockIOTPSender
}

func newVisitUseCase(ctrl *gomock.Controller) (*VisitLogUseCase, visitMocks) {
	m := visitMocks{
		visits: mock_interfaces.NewMockIVisitLogRepository(ctrl),
		otps:   mock_interfaces.NewMockIOTPChallengeRepository(ctrl),
		sender: mock_interfaces.NewMockIOTPSender(ctrl),
	}
	uc := NewVisitLogUseCase(m.visits, m.otps, m.sender, OTPPolicy{TTL: 5 * time.Minute, MaxAttempts: 3}, time.UTC)
	uc.now = func() time.Time { return fixedNow }
	uc.hashCost = bcrypt.MinCost
	return uc, m
}

func pendingVisit() entities.VisitLog {
	return entities.VisitLog{
		ID:            "visit-1",
		SalespersonID: "sp-1",
		CustomerName:  "Asha",
		CustomerPhone: "+919876543210",
		Purpose:       "bridal",
		VisitDate:     "2026-03-01",
		Status:        entities.VisitPendingVerification,
	}
}

func challengeFor(t *testing.T, code string, attempts int, expires time.Time) entities.OTPChallenge {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return entities.OTPChallenge{VisitID: "visit-1", CodeHash: string(hash), Attempts: attempts, ExpiresAt: expires}
}

func TestVisitLogUseCase_StartVisit(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newVisitUseCase(ctrl)

		_, err := uc.StartVisit(context.Background(), "", StartVisitCommand{})
		assert.ErrorIs(t, err, ErrInvalidSalesperson)

		_, err = uc.StartVisit(context.Background(), "sp-1", StartVisitCommand{CustomerName: "Asha", CustomerPhone: "9876543210"})
		assert.ErrorIs(t, err, ErrInvalidVisit)

		_, err = uc.StartVisit(context.Background(), "sp-1", StartVisitCommand{CustomerName: "Asha", CustomerPhone: "12ab", Purpose: "x"})
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("stores a hashed code and sends the plain one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)

		var saved entities.OTPChallenge
		var sent string
		m.visits.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.VisitLog{})).DoAndReturn(
			func(_ context.Context, v entities.VisitLog) (entities.VisitLog, error) {
				if v.CustomerPhone != "+919876543210" || v.Status != entities.VisitPendingVerification || v.VisitDate != "2026-03-01" {
					t.Fatalf("unexpected visit: %+v", v)
				}
				return v, nil
			},
		)
		m.otps.EXPECT().Save(gomock.Any(), gomock.Any(), 5*time.Minute).DoAndReturn(
			func(_ context.Context, c entities.OTPChallenge, _ time.Duration) error {
				saved = c
				return nil
			},
		)
		m.sender.EXPECT().Send(gomock.Any(), "+919876543210", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, code string) error {
				sent = code
				return nil
			},
		)

		v, err := uc.StartVisit(context.Background(), "sp-1", StartVisitCommand{
			CustomerName:  " Asha ",
			CustomerPhone: "+91 98765-43210",
			Purpose:       "bridal",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, v.ID)
		assert.True(t, validOTPFormat(sent), "code %q", sent)
		assert.NotEqual(t, sent, saved.CodeHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.CodeHash), []byte(sent)))
		assert.Equal(t, 0, saved.Attempts)
		assert.Equal(t, fixedNow.Add(5*time.Minute), saved.ExpiresAt)
	})

	t.Run("delivery failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.VisitLog) (entities.VisitLog, error) { return v, nil },
		)
		m.otps.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("sms down"))

		_, err := uc.StartVisit(context.Background(), "sp-1", StartVisitCommand{CustomerName: "Asha", CustomerPhone: "9876543210", Purpose: "x"})
		assert.ErrorIs(t, err, ErrOTPDeliveryFailed)
	})
}

func TestVisitLogUseCase_VerifyVisit(t *testing.T) {
	ctx := context.Background()
	live := fixedNow.Add(time.Minute)

	t.Run("malformed code is rejected without lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newVisitUseCase(ctrl)
		for _, code := range []string{"", "12345", "1234567", "12a456"} {
			_, err := uc.VerifyVisit(ctx, "sp-1", "visit-1", code)
			assert.ErrorIs(t, err, ErrInvalidOTPFormat, code)
		}
	})

	t.Run("correct code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().GetByID(ctx, "visit-1").Return(pendingVisit(), nil)
		m.otps.EXPECT().Get(ctx, "visit-1").Return(challengeFor(t, "042917", 0, live), nil)
		m.otps.EXPECT().IncrementAttempts(ctx, "visit-1").Return(1, nil)
		m.visits.EXPECT().MarkVerified(ctx, "visit-1", fixedNow).DoAndReturn(
			func(_ context.Context, _ string, at time.Time) (entities.VisitLog, error) {
				v := pendingVisit()
				v.Status = entities.VisitVerified
				v.VerifiedAt = &at
				return v, nil
			},
		)
		m.otps.EXPECT().Delete(ctx, "visit-1").Return(nil)

		v, err := uc.VerifyVisit(ctx, "sp-1", "visit-1", "042917")
		require.NoError(t, err)
		assert.Equal(t, entities.VisitVerified, v.Status)
	})

	t.Run("wrong code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().GetByID(ctx, "visit-1").Return(pendingVisit(), nil)
		m.otps.EXPECT().Get(ctx, "visit-1").Return(challengeFor(t, "042917", 0, live), nil)
		m.otps.EXPECT().IncrementAttempts(ctx, "visit-1").Return(1, nil)

		_, err := uc.VerifyVisit(ctx, "sp-1", "visit-1", "111111")
		assert.ErrorIs(t, err, ErrOTPMismatch)
	})

	t.Run("expired challenge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().GetByID(ctx, "visit-1").Return(pendingVisit(), nil)
		m.otps.EXPECT().Get(ctx, "visit-1").Return(challengeFor(t, "042917", 0, fixedNow), nil)

		_, err := uc.VerifyVisit(ctx, "sp-1", "visit-1", "042917")
		assert.ErrorIs(t, err, ErrOTPExpired)
	})

	t.Run("no challenge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().GetByID(ctx, "visit-1").Return(pendingVisit(), nil)
		m.otps.EXPECT().Get(ctx, "visit-1").Return(entities.OTPChallenge{}, nil)

		_, err := uc.VerifyVisit(ctx, "sp-1", "visit-1", "042917")
		assert.ErrorIs(t, err, ErrOTPExpired)
	})

	t.Run("attempts exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().GetByID(ctx, "visit-1").Return(pendingVisit(), nil)
		m.otps.EXPECT().Get(ctx, "visit-1").Return(challengeFor(t, "042917", 3, live), nil)

		_, err := uc.VerifyVisit(ctx, "sp-1", "visit-1", "042917")
		assert.ErrorIs(t, err, ErrOTPAttemptsExceeded)
	})

	t.Run("concurrent guesses past the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().GetByID(ctx, "visit-1").Return(pendingVisit(), nil)
		m.otps.EXPECT().Get(ctx, "visit-1").Return(challengeFor(t, "042917", 2, live), nil)
		m.otps.EXPECT().IncrementAttempts(ctx, "visit-1").Return(4, nil)

		_, err := uc.VerifyVisit(ctx, "sp-1", "visit-1", "042917")
		assert.ErrorIs(t, err, ErrOTPAttemptsExceeded)
	})

	t.Run("already verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		v := pendingVisit()
		v.Status = entities.VisitVerified
		m.visits.EXPECT().GetByID(ctx, "visit-1").Return(v, nil)

		_, err := uc.VerifyVisit(ctx, "sp-1", "visit-1", "042917")
		assert.ErrorIs(t, err, ErrVisitAlreadyVerified)
	})

	t.Run("someone else's visit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().GetByID(ctx, "visit-1").Return(pendingVisit(), nil)

		_, err := uc.VerifyVisit(ctx, "sp-2", "visit-1", "042917")
		assert.ErrorIs(t, err, ErrVisitNotFound)
	})
}

func TestVisitLogUseCase_ResendAndList(t *testing.T) {
	ctx := context.Background()

	t.Run("resend replaces the challenge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().GetByID(ctx, "visit-1").Return(pendingVisit(), nil)
		m.otps.EXPECT().Save(ctx, gomock.Any(), 5*time.Minute).Return(nil)
		m.sender.EXPECT().Send(ctx, "+919876543210", gomock.Any()).Return(nil)

		v, err := uc.ResendOTP(ctx, "sp-1", "visit-1")
		require.NoError(t, err)
		assert.Equal(t, "visit-1", v.ID)
	})

	t.Run("list uses the local day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, m := newVisitUseCase(ctrl)
		m.visits.EXPECT().ListBySalesperson(ctx, "sp-1", "2026-03-01").Return([]entities.VisitLog{pendingVisit()}, nil)

		res, err := uc.ListVisits(ctx, " sp-1 ", time.Time{})
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})
}

func TestVisitLogHelpers(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateOTP()
		require.NoError(t, err)
		assert.True(t, validOTPFormat(code), code)
	}

	phone, ok := normalizePhone("(987) 654-3210")
	assert.True(t, ok)
	assert.Equal(t, "9876543210", phone)

	_, ok = normalizePhone("98765")
	assert.False(t, ok)
	_, ok = normalizePhone("98+7654321099")
	assert.False(t, ok)

	assert.Equal(t, "*********3210", maskPhone("+919876543210"))
	assert.Equal(t, "****", maskPhone("12"))
}
