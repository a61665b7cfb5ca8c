package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/domain/pricing"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrRateSheetNotFound         = errors.New("rate sheet not found")
	ErrRateSheetAlreadyPublished = errors.New("rate sheet already published for this date")
	ErrInvalidRates              = errors.New("invalid rates")
)

// PublishRatesCommand carries the admin's daily rate entry. Only 22k and
// silver are mandatory; the other gold purities are derived unless given.
type PublishRatesCommand struct {
	EffectiveDate time.Time
	Gold22K       decimal.Decimal
	Silver        decimal.Decimal
	Gold24K       *decimal.Decimal
	Gold18K       *decimal.Decimal
	Gold16K       *decimal.Decimal
	PublishedBy   string
}

// IRateUseCase is the rate master.
type IRateUseCase interface {
	Publish(ctx context.Context, cmd PublishRatesCommand) (entities.RateSheet, error)
	Current(ctx context.Context, date time.Time) (entities.RateSheet, error)
}

type RateUseCase struct {
	repo interfaces.IRateSheetRepository
	now  func() time.Time
}

var _ IRateUseCase = (*RateUseCase)(nil)

func NewRateUseCase(repo interfaces.IRateSheetRepository) *RateUseCase {
	return &RateUseCase{repo: repo, now: time.Now}
}

func (u *RateUseCase) Publish(ctx context.Context, cmd PublishRatesCommand) (entities.RateSheet, error) {
	date := cmd.EffectiveDate
	if date.IsZero() {
		date = u.now()
	}

	sheet, err := pricing.DeriveRateSheet(date, cmd.Gold22K, cmd.Silver, pricing.RateOverrides{
		Gold24K: cmd.Gold24K,
		Gold18K: cmd.Gold18K,
		Gold16K: cmd.Gold16K,
	})
	if err != nil {
		return entities.RateSheet{}, ErrInvalidRates
	}
	sheet.CreatedBy = strings.TrimSpace(cmd.PublishedBy)
	sheet.CreatedAt = u.now().UTC()

	created, err := u.repo.Create(ctx, sheet)
	if err != nil {
		log.Error().Err(err).Str("rate_sheet_id", sheet.ID).Msg("[rates][usecase] create failed")
		return entities.RateSheet{}, err
	}
	if created.ID == "" {
		return entities.RateSheet{}, ErrRateSheetAlreadyPublished
	}
	log.Info().
		Str("rate_sheet_id", created.ID).
		Str("gold_22k", created.Gold22K.String()).
		Str("silver", created.Silver.String()).
		Msg("[rates][usecase] published")
	return created, nil
}

// Current returns the latest sheet effective on or before date.
func (u *RateUseCase) Current(ctx context.Context, date time.Time) (entities.RateSheet, error) {
	if date.IsZero() {
		date = u.now()
	}
	sheet, err := u.repo.GetEffective(ctx, date)
	if err != nil {
		return entities.RateSheet{}, err
	}
	if sheet.ID == "" {
		return entities.RateSheet{}, ErrRateSheetNotFound
	}
	return sheet, nil
}
