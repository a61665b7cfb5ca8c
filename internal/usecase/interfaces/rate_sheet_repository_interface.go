package interfaces

import (
	"context"
	"time"

	"jiyajewellery/internal/domain/entities"
)

// IRateSheetRepository persists published rate sheets. Sheets are immutable:
// Create returns a zero sheet if one already exists for the same date.
type IRateSheetRepository interface {
	Create(ctx context.Context, s entities.RateSheet) (entities.RateSheet, error)
	GetEffective(ctx context.Context, date time.Time) (entities.RateSheet, error)
}
