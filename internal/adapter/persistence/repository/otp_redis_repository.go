package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// OTPRedisRepository stores visit OTP challenges as hashes under
// otp:{visit_id}. Redis expiry is the source of truth for challenge lifetime.
type OTPRedisRepository struct {
	rdb *redis.Client
}

var _ interfaces.IOTPChallengeRepository = (*OTPRedisRepository)(nil)

func NewOTPRedisRepository(rdb *redis.Client) *OTPRedisRepository {
	return &OTPRedisRepository{rdb: rdb}
}

func otpKey(visitID string) string {
	return otpKeyPrefix + visitID
}

// Save replaces any previous challenge of the visit and resets its attempts.
func (r *OTPRedisRepository) Save(ctx context.Context, c entities.OTPChallenge, ttl time.Duration) error {
	key := otpKey(c.VisitID)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, otpFields(c))
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (r *OTPRedisRepository) Get(ctx context.Context, visitID string) (entities.OTPChallenge, error) {
	fields, err := r.rdb.HGetAll(ctx, otpKey(visitID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.OTPChallenge{}, nil
		}
		return entities.OTPChallenge{}, err
	}
	return otpFromFields(visitID, fields), nil
}

// incrementAttemptsScript bumps the attempt counter only while the challenge
// hash exists, so an expired challenge is never recreated without a TTL.
var incrementAttemptsScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
return redis.call("HINCRBY", KEYS[1], "attempts", 1)
`)

// IncrementAttempts counts a verification attempt atomically and returns the
// new count. A challenge that no longer exists reports zero attempts.
func (r *OTPRedisRepository) IncrementAttempts(ctx context.Context, visitID string) (int, error) {
	attempts, err := incrementAttemptsScript.Run(ctx, r.rdb, []string{otpKey(visitID)}).Int()
	if err != nil {
		return 0, err
	}
	return attempts, nil
}

func (r *OTPRedisRepository) Delete(ctx context.Context, visitID string) error {
	return r.rdb.Del(ctx, otpKey(visitID)).Err()
}

func otpFields(c entities.OTPChallenge) map[string]any {
	return map[string]any{
		"code_hash":  c.CodeHash,
		"attempts":   c.Attempts,
		"expires_at": formatTime(c.ExpiresAt),
	}
}

// otpFromFields returns a zero challenge for an empty hash, which is what
// HGETALL yields for a missing or expired key.
func otpFromFields(visitID string, fields map[string]string) entities.OTPChallenge {
	if len(fields) == 0 || fields["code_hash"] == "" {
		return entities.OTPChallenge{}
	}
	attempts, _ := strconv.Atoi(fields["attempts"])
	return entities.OTPChallenge{
		VisitID:   visitID,
		CodeHash:  fields["code_hash"],
		Attempts:  attempts,
		ExpiresAt: parseTime(fields["expires_at"]),
	}
}
