package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOpenTagNotFound   = errors.New("open tag not found")
	ErrOpenTagExists     = errors.New("open tag already exists")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidOpenTag    = errors.New("invalid open tag")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrInvalidTagNumber  = errors.New("invalid tag number")
	ErrInvalidPagination = errors.New("invalid pagination")
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ICatalogUseCase serves the product master and open inventory tags.
type ICatalogUseCase interface {
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, int64, error)
	CreateOpenTag(ctx context.Context, t entities.OpenTag) (entities.OpenTag, error)
	GetOpenTag(ctx context.Context, tagNumber string) (entities.OpenTag, error)
}

type CatalogUseCase struct {
	products interfaces.IProductRepository
	tags     interfaces.IOpenTagRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository, tags interfaces.IOpenTagRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, tags: tags}
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	if p.Name == "" || p.SKU == "" || !validPricingShape(p.MetalType, p.PricingMode, p.WastageBasis, p.MakingChargeBasis) {
		return entities.Product{}, ErrInvalidProduct
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Active = true
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	log.Info().Str("product_id", created.ID).Str("sku", created.SKU).Msg("[catalog][usecase] product created")
	return created, nil
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, int64, error) {
	filter, err := NormalizeProductFilter(filter)
	if err != nil {
		return nil, 0, err
	}
	return u.products.List(ctx, filter)
}

// NormalizeProductFilter applies the default page and page size and caps the
// page size.
func NormalizeProductFilter(filter entities.ProductFilter) (entities.ProductFilter, error) {
	if filter.Page < 0 || filter.Limit < 0 {
		return filter, ErrInvalidPagination
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)
	return filter, nil
}

func (u *CatalogUseCase) CreateOpenTag(ctx context.Context, t entities.OpenTag) (entities.OpenTag, error) {
	t.TagNumber = strings.TrimSpace(t.TagNumber)
	if t.TagNumber == "" || !validPricingShape(t.MetalType, t.PricingMode, t.WastageBasis, t.MakingChargeBasis) {
		return entities.OpenTag{}, ErrInvalidOpenTag
	}

	existing, err := u.tags.GetByTagNumber(ctx, t.TagNumber)
	if err != nil {
		return entities.OpenTag{}, err
	}
	if existing.ID != "" {
		return entities.OpenTag{}, ErrOpenTagExists
	}

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	created, err := u.tags.Create(ctx, t)
	if err != nil {
		return entities.OpenTag{}, err
	}
	log.Info().Str("tag_number", created.TagNumber).Msg("[catalog][usecase] open tag created")
	return created, nil
}

func (u *CatalogUseCase) GetOpenTag(ctx context.Context, tagNumber string) (entities.OpenTag, error) {
	tagNumber = strings.TrimSpace(tagNumber)
	if tagNumber == "" {
		return entities.OpenTag{}, ErrInvalidTagNumber
	}
	t, err := u.tags.GetByTagNumber(ctx, tagNumber)
	if err != nil {
		return entities.OpenTag{}, err
	}
	if t.ID == "" {
		return entities.OpenTag{}, ErrOpenTagNotFound
	}
	return t, nil
}

func validPricingShape(metal entities.MetalType, mode entities.PricingMode, wastage entities.WastageBasis, mc entities.MakingChargeBasis) bool {
	switch metal {
	case entities.MetalGold, entities.MetalSilver, entities.MetalOther:
	default:
		return false
	}
	switch mode {
	case entities.PricingByWeight, entities.PricingFixed:
	default:
		return false
	}
	switch wastage {
	case entities.WastageOnGrossWeight, entities.WastageOnWeightBeforeWastage:
	default:
		return false
	}
	switch mc {
	case entities.MakingChargePerGram, entities.MakingChargePerPiece, entities.MakingChargePercentOfRate:
	default:
		return false
	}
	return true
}
