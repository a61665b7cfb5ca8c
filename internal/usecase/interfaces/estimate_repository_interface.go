package interfaces

import (
	"context"
	"time"

	"jiyajewellery/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The service must be able to:
//   - store an estimate when a draft is submitted
//   - look it up by id or by its printed number
//   - list estimates for customer purchase tracking and admin reports
//   - move its status only from the status the caller observed
//
// Lookups return a zero Estimate (empty ID) when nothing matches.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByNumber(ctx context.Context, number int64) (entities.Estimate, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Estimate, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Estimate, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.EstimateStatus) (entities.Estimate, error)
}
