package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrVisitNotFound        = errors.New("visit not found")
	ErrInvalidVisitID       = errors.New("invalid visit id")
	ErrInvalidVisit         = errors.New("invalid visit")
	ErrInvalidPhone         = errors.New("invalid customer phone")
	ErrVisitAlreadyVerified = errors.New("visit already verified")
	ErrInvalidOTPFormat     = errors.New("otp must be exactly 6 digits")
	ErrOTPMismatch          = errors.New("otp does not match")
	ErrOTPExpired           = errors.New("otp expired or not issued")
	ErrOTPAttemptsExceeded  = errors.New("too many otp attempts")
	ErrOTPDeliveryFailed    = errors.New("otp delivery failed")
)

const otpLength = 6

var otpSpace = big.NewInt(1_000_000)

type StartVisitCommand struct {
	CustomerName  string
	CustomerPhone string
	Purpose       string
	Notes         string
}

// OTPPolicy bounds how long a code lives and how often it may be guessed.
type OTPPolicy struct {
	TTL         time.Duration
	MaxAttempts int
}

// IVisitLogUseCase records salesperson visits. A visit is confirmed by the
// customer reading back a one-time code sent to their phone; the code is
// generated, stored (hashed) and compared on the server only.
type IVisitLogUseCase interface {
	StartVisit(ctx context.Context, salespersonID string, cmd StartVisitCommand) (entities.VisitLog, error)
	VerifyVisit(ctx context.Context, salespersonID, visitID, code string) (entities.VisitLog, error)
	ResendOTP(ctx context.Context, salespersonID, visitID string) (entities.VisitLog, error)
	ListVisits(ctx context.Context, salespersonID string, date time.Time) ([]entities.VisitLog, error)
}

type VisitLogUseCase struct {
	visits   interfaces.IVisitLogRepository
	otps     interfaces.IOTPChallengeRepository
	sender   interfaces.IOTPSender
	policy   OTPPolicy
	location *time.Location
	now      func() time.Time
	hashCost int
}

var _ IVisitLogUseCase = (*VisitLogUseCase)(nil)

func NewVisitLogUseCase(visits interfaces.IVisitLogRepository, otps interfaces.IOTPChallengeRepository, sender interfaces.IOTPSender, policy OTPPolicy, location *time.Location) *VisitLogUseCase {
	if policy.TTL <= 0 {
		policy.TTL = 5 * time.Minute
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 5
	}
	if location == nil {
		location = time.UTC
	}
	return &VisitLogUseCase{
		visits:   visits,
		otps:     otps,
		sender:   sender,
		policy:   policy,
		location: location,
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
}

func (u *VisitLogUseCase) StartVisit(ctx context.Context, salespersonID string, cmd StartVisitCommand) (entities.VisitLog, error) {
	salespersonID = strings.TrimSpace(salespersonID)
	if salespersonID == "" {
		return entities.VisitLog{}, ErrInvalidSalesperson
	}
	name := strings.TrimSpace(cmd.CustomerName)
	purpose := strings.TrimSpace(cmd.Purpose)
	if name == "" || purpose == "" {
		return entities.VisitLog{}, ErrInvalidVisit
	}
	phone, ok := normalizePhone(cmd.CustomerPhone)
	if !ok {
		return entities.VisitLog{}, ErrInvalidPhone
	}

	now := u.now()
	v := entities.VisitLog{
		ID:            uuid.NewString(),
		SalespersonID: salespersonID,
		CustomerName:  name,
		CustomerPhone: phone,
		Purpose:       purpose,
		Notes:         strings.TrimSpace(cmd.Notes),
		VisitDate:     now.In(u.location).Format(entities.AttendanceDateLayout),
		Status:        entities.VisitPendingVerification,
		CreatedAt:     now.UTC(),
	}
	created, err := u.visits.Create(ctx, v)
	if err != nil {
		log.Error().Err(err).Str("salesperson_id", salespersonID).Msg("[visit][usecase] create failed")
		return entities.VisitLog{}, err
	}

	if err := u.issueOTP(ctx, created); err != nil {
		return entities.VisitLog{}, err
	}
	log.Info().
		Str("visit_id", created.ID).
		Str("salesperson_id", salespersonID).
		Str("phone", maskPhone(phone)).
		Msg("[visit][usecase] visit started")
	return created, nil
}

func (u *VisitLogUseCase) ResendOTP(ctx context.Context, salespersonID, visitID string) (entities.VisitLog, error) {
	v, err := u.pendingVisit(ctx, salespersonID, visitID)
	if err != nil {
		return entities.VisitLog{}, err
	}
	if err := u.issueOTP(ctx, v); err != nil {
		return entities.VisitLog{}, err
	}
	log.Info().Str("visit_id", v.ID).Msg("[visit][usecase] otp re-sent")
	return v, nil
}

// VerifyVisit checks code against the stored challenge. Every call that
// reaches the comparison counts as an attempt, right or wrong.
func (u *VisitLogUseCase) VerifyVisit(ctx context.Context, salespersonID, visitID, code string) (entities.VisitLog, error) {
	code = strings.TrimSpace(code)
	if !validOTPFormat(code) {
		return entities.VisitLog{}, ErrInvalidOTPFormat
	}
	v, err := u.pendingVisit(ctx, salespersonID, visitID)
	if err != nil {
		return entities.VisitLog{}, err
	}

	ch, err := u.otps.Get(ctx, v.ID)
	if err != nil {
		return entities.VisitLog{}, err
	}
	now := u.now()
	if ch.VisitID == "" || !now.Before(ch.ExpiresAt) {
		return entities.VisitLog{}, ErrOTPExpired
	}
	if ch.Attempts >= u.policy.MaxAttempts {
		return entities.VisitLog{}, ErrOTPAttemptsExceeded
	}
	attempts, err := u.otps.IncrementAttempts(ctx, v.ID)
	if err != nil {
		return entities.VisitLog{}, err
	}
	if attempts > u.policy.MaxAttempts {
		return entities.VisitLog{}, ErrOTPAttemptsExceeded
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ch.CodeHash), []byte(code)); err != nil {
		log.Warn().Str("visit_id", v.ID).Int("attempts", attempts).Msg("[visit][usecase] otp mismatch")
		return entities.VisitLog{}, ErrOTPMismatch
	}

	verified, err := u.visits.MarkVerified(ctx, v.ID, now.UTC())
	if err != nil {
		return entities.VisitLog{}, err
	}
	if verified.ID == "" {
		return entities.VisitLog{}, ErrVisitAlreadyVerified
	}
	if err := u.otps.Delete(ctx, v.ID); err != nil {
		log.Warn().Err(err).Str("visit_id", v.ID).Msg("[visit][usecase] otp cleanup failed")
	}
	log.Info().Str("visit_id", v.ID).Msg("[visit][usecase] visit verified")
	return verified, nil
}

func (u *VisitLogUseCase) ListVisits(ctx context.Context, salespersonID string, date time.Time) ([]entities.VisitLog, error) {
	salespersonID = strings.TrimSpace(salespersonID)
	if salespersonID == "" {
		return nil, ErrInvalidSalesperson
	}
	if date.IsZero() {
		date = u.now()
	}
	return u.visits.ListBySalesperson(ctx, salespersonID, date.In(u.location).Format(entities.AttendanceDateLayout))
}

func (u *VisitLogUseCase) pendingVisit(ctx context.Context, salespersonID, visitID string) (entities.VisitLog, error) {
	visitID = strings.TrimSpace(visitID)
	if visitID == "" {
		return entities.VisitLog{}, ErrInvalidVisitID
	}
	v, err := u.visits.GetByID(ctx, visitID)
	if err != nil {
		return entities.VisitLog{}, err
	}
	if v.ID == "" || v.SalespersonID != strings.TrimSpace(salespersonID) {
		return entities.VisitLog{}, ErrVisitNotFound
	}
	if v.Status == entities.VisitVerified {
		return entities.VisitLog{}, ErrVisitAlreadyVerified
	}
	return v, nil
}

// issueOTP replaces any previous challenge for v, resetting the attempt count.
func (u *VisitLogUseCase) issueOTP(ctx context.Context, v entities.VisitLog) error {
	code, err := generateOTP()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), u.hashCost)
	if err != nil {
		return err
	}
	ch := entities.OTPChallenge{
		VisitID:   v.ID,
		CodeHash:  string(hash),
		Attempts:  0,
		ExpiresAt: u.now().Add(u.policy.TTL).UTC(),
	}
	if err := u.otps.Save(ctx, ch, u.policy.TTL); err != nil {
		log.Error().Err(err).Str("visit_id", v.ID).Msg("[visit][usecase] otp store failed")
		return err
	}
	if err := u.sender.Send(ctx, v.CustomerPhone, code); err != nil {
		log.Error().Err(err).Str("visit_id", v.ID).Msg("[visit][usecase] otp delivery failed")
		return fmt.Errorf("%w: %v", ErrOTPDeliveryFailed, err)
	}
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n.Int64()), nil
}

func validOTPFormat(code string) bool {
	if len(code) != otpLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizePhone strips separators and accepts 10 to 15 digits with an
// optional leading '+'.
func normalizePhone(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return "", false
		}
	}
	phone := b.String()
	digits := len(strings.TrimPrefix(phone, "+"))
	return phone, digits >= 10 && digits <= 15
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
