package interfaces

import (
	"context"
	"time"

	"jiyajewellery/internal/domain/entities"
)

// IOTPChallengeRepository keeps the pending OTP challenge of a visit. Expired
// challenges disappear on their own; Get returns a zero value for them.
type IOTPChallengeRepository interface {
	Save(ctx context.Context, c entities.OTPChallenge, ttl time.Duration) error
	Get(ctx context.Context, visitID string) (entities.OTPChallenge, error)
	IncrementAttempts(ctx context.Context, visitID string) (int, error)
	Delete(ctx context.Context, visitID string) error
}

// IOTPSender delivers a one-time code to the customer's phone.
type IOTPSender interface {
	Send(ctx context.Context, phone, code string) error
}
