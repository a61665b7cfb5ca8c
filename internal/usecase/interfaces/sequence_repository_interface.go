package interfaces

import "context"

// ISequenceRepository hands out monotonically increasing numbers per name.
type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
