package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrInvalidEstimateNumber   = errors.New("invalid estimate number")
	ErrInvalidCustomerID       = errors.New("invalid customer id")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrInvalidStatusTransition = errors.New("invalid estimate status transition")
)

// maxReportRange bounds admin listings so a report cannot scan the whole table.
const maxReportRange = 366 * 24 * time.Hour

// IEstimateUseCase exposes submitted estimate operations.
//
// Once a draft is submitted the estimate store owns the document; from there
// only its status moves:
//   - pending  => accepted | rejected  (Accept / Reject)
//   - accepted => ordered              (MarkOrdered, also done by a successful payment)
type IEstimateUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByNumber(ctx context.Context, number int64) (entities.Estimate, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Estimate, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Estimate, error)
	Accept(ctx context.Context, id string) (entities.Estimate, error)
	Reject(ctx context.Context, id string) (entities.Estimate, error)
	MarkOrdered(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

func (u *EstimateUseCase) Accept(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusAccepted)
}

func (u *EstimateUseCase) Reject(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) MarkOrdered(ctx context.Context, id string) (entities.Estimate, error) {
	return u.transition(ctx, id, entities.EstimateStatusOrdered)
}

func (u *EstimateUseCase) transition(ctx context.Context, id string, to entities.EstimateStatus) (entities.Estimate, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !current.Status.CanTransitionTo(to) {
		return entities.Estimate{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, to)
	if err != nil {
		return entities.Estimate{}, err
	}
	// The status moved underneath us.
	if updated.ID == "" {
		return entities.Estimate{}, ErrInvalidStatusTransition
	}
	log.Info().
		Str("estimate_id", updated.ID).
		Str("from", string(current.Status)).
		Str("to", string(updated.Status)).
		Msg("[estimate][usecase] status changed")
	return updated, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) GetByNumber(ctx context.Context, number int64) (entities.Estimate, error) {
	if number <= 0 {
		return entities.Estimate{}, ErrInvalidEstimateNumber
	}

	e, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Estimate, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *EstimateUseCase) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Estimate, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) || to.Sub(from) > maxReportRange {
		return nil, ErrInvalidDateRange
	}
	return u.repo.ListByDateRange(ctx, from, to)
}
