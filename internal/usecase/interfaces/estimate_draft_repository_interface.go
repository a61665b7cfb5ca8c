package interfaces

import (
	"context"

	"jiyajewellery/internal/domain/entities"
)

// IEstimateDraftRepository stores in-progress drafts.
//
// Save is a compare-and-swap: it writes d only if the stored draft is still at
// expectedRevision, and returns a zero draft otherwise. GetByID returns a zero
// draft for unknown or expired ids.
type IEstimateDraftRepository interface {
	Create(ctx context.Context, d entities.EstimateDraft) (entities.EstimateDraft, error)
	GetByID(ctx context.Context, id string) (entities.EstimateDraft, error)
	Save(ctx context.Context, d entities.EstimateDraft, expectedRevision int64) (entities.EstimateDraft, error)
}
