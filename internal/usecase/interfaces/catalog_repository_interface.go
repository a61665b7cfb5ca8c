package interfaces

import (
	"context"

	"jiyajewellery/internal/domain/entities"
)

// IProductRepository abstracts Postgres persistence for the product catalog.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, int64, error)
}

// IOpenTagRepository abstracts Postgres persistence for open inventory tags.
type IOpenTagRepository interface {
	Create(ctx context.Context, t entities.OpenTag) (entities.OpenTag, error)
	GetByTagNumber(ctx context.Context, tagNumber string) (entities.OpenTag, error)
}
