package interfaces

import (
	"context"
	"time"

	"jiyajewellery/internal/domain/entities"
)

type IVisitLogRepository interface {
	Create(ctx context.Context, v entities.VisitLog) (entities.VisitLog, error)
	GetByID(ctx context.Context, id string) (entities.VisitLog, error)
	// MarkVerified returns a zero value if the visit is not pending verification.
	MarkVerified(ctx context.Context, id string, at time.Time) (entities.VisitLog, error)
	ListBySalesperson(ctx context.Context, salespersonID, visitDate string) ([]entities.VisitLog, error)
}
