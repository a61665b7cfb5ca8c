package repository

import (
	"context"
	"errors"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type productModel struct {
	ID                  string              `gorm:"type:uuid;primaryKey"`
	SKU                 string              `gorm:"column:sku;uniqueIndex;not null"`
	Name                string              `gorm:"index;not null"`
	Category            string              `gorm:"index;not null"`
	MetalType           string              `gorm:"not null"`
	Purity              string              `gorm:"not null"`
	PricingMode         string              `gorm:"not null"`
	GrossWeight         decimal.Decimal     `gorm:"type:numeric(12,3);not null"`
	StoneWeight         decimal.Decimal     `gorm:"type:numeric(12,3);not null"`
	StonePrice          decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	WastageBasis        string              `gorm:"not null"`
	WastagePercent      decimal.Decimal     `gorm:"type:numeric(6,2);not null"`
	MakingChargeBasis   string              `gorm:"not null"`
	MakingChargeInput   decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	StoredMakingCharges decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	Rate                decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	FixedAmount         decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	HandlingCharge      decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	TaxPercent          decimal.NullDecimal `gorm:"type:numeric(6,2)"`
	Images              []string            `gorm:"type:jsonb;serializer:json"`
	Active              bool                `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (productModel) TableName() string { return "products" }

type openTagModel struct {
	ID                  string              `gorm:"type:uuid;primaryKey"`
	TagNumber           string              `gorm:"uniqueIndex;not null"`
	Description         string              `gorm:"not null"`
	MetalType           string              `gorm:"not null"`
	Purity              string              `gorm:"not null"`
	PricingMode         string              `gorm:"not null"`
	GrossWeight         decimal.Decimal     `gorm:"type:numeric(12,3);not null"`
	StoneWeight         decimal.Decimal     `gorm:"type:numeric(12,3);not null"`
	StonePrice          decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	WastageBasis        string              `gorm:"not null"`
	WastagePercent      decimal.Decimal     `gorm:"type:numeric(6,2);not null"`
	MakingChargeBasis   string              `gorm:"not null"`
	MakingChargeInput   decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	StoredMakingCharges decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	Rate                decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	FixedAmount         decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	HandlingCharge      decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	TaxPercent          decimal.NullDecimal `gorm:"type:numeric(6,2)"`
	CreatedAt           time.Time
}

func (openTagModel) TableName() string { return "open_tags" }

// ProductPostgresRepository reads and writes the catalog. Schema is owned by
// the SQL migrations, not AutoMigrate.
type ProductPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IProductRepository = (*ProductPostgresRepository)(nil)

func NewProductPostgresRepository(db *gorm.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{db: db}
}

func (r *ProductPostgresRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	m := toProductModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Product{}, err
	}
	return fromProductModel(m), nil
}

func (r *ProductPostgresRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var m productModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return fromProductModel(m), nil
}

// List returns one page of active products ordered by name, plus the total
// number of matches.
func (r *ProductPostgresRepository) List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, int64, error) {
	var (
		rows  []productModel
		total int64
	)

	q := r.db.WithContext(ctx).Model(&productModel{}).Where("active = true")
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(name ILIKE ? OR sku ILIKE ?)", like, like)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MetalType != "" {
		q = q.Where("metal_type = ?", string(filter.MetalType))
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	list := make([]entities.Product, 0, len(rows))
	for _, m := range rows {
		list = append(list, fromProductModel(m))
	}
	return list, total, nil
}

// OpenTagPostgresRepository stores inventory tags awaiting cataloging.
type OpenTagPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IOpenTagRepository = (*OpenTagPostgresRepository)(nil)

func NewOpenTagPostgresRepository(db *gorm.DB) *OpenTagPostgresRepository {
	return &OpenTagPostgresRepository{db: db}
}

func (r *OpenTagPostgresRepository) Create(ctx context.Context, t entities.OpenTag) (entities.OpenTag, error) {
	m := toOpenTagModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.OpenTag{}, err
	}
	return fromOpenTagModel(m), nil
}

func (r *OpenTagPostgresRepository) GetByTagNumber(ctx context.Context, tagNumber string) (entities.OpenTag, error) {
	var m openTagModel
	err := r.db.WithContext(ctx).Where("tag_number = ?", tagNumber).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.OpenTag{}, nil
		}
		return entities.OpenTag{}, err
	}
	return fromOpenTagModel(m), nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toProductModel(p entities.Product) productModel {
	return productModel{
		ID:                  p.ID,
		SKU:                 p.SKU,
		Name:                p.Name,
		Category:            p.Category,
		MetalType:           string(p.MetalType),
		Purity:              p.Purity,
		PricingMode:         string(p.PricingMode),
		GrossWeight:         p.GrossWeight,
		StoneWeight:         p.StoneWeight,
		StonePrice:          p.StonePrice,
		WastageBasis:        string(p.WastageBasis),
		WastagePercent:      p.WastagePercent,
		MakingChargeBasis:   string(p.MakingChargeBasis),
		MakingChargeInput:   p.MakingChargeInput,
		StoredMakingCharges: p.StoredMakingCharges,
		Rate:                toNullDecimal(p.Rate),
		FixedAmount:         p.FixedAmount,
		HandlingCharge:      toNullDecimal(p.HandlingCharge),
		TaxPercent:          toNullDecimal(p.TaxPercent),
		Images:              p.Images,
		Active:              p.Active,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func fromProductModel(m productModel) entities.Product {
	return entities.Product{
		ID:                  m.ID,
		SKU:                 m.SKU,
		Name:                m.Name,
		Category:            m.Category,
		MetalType:           entities.MetalType(m.MetalType),
		Purity:              m.Purity,
		PricingMode:         entities.PricingMode(m.PricingMode),
		GrossWeight:         m.GrossWeight,
		StoneWeight:         m.StoneWeight,
		StonePrice:          m.StonePrice,
		WastageBasis:        entities.WastageBasis(m.WastageBasis),
		WastagePercent:      m.WastagePercent,
		MakingChargeBasis:   entities.MakingChargeBasis(m.MakingChargeBasis),
		MakingChargeInput:   m.MakingChargeInput,
		StoredMakingCharges: m.StoredMakingCharges,
		Rate:                fromNullDecimal(m.Rate),
		FixedAmount:         m.FixedAmount,
		HandlingCharge:      fromNullDecimal(m.HandlingCharge),
		TaxPercent:          fromNullDecimal(m.TaxPercent),
		Images:              m.Images,
		Active:              m.Active,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toOpenTagModel(t entities.OpenTag) openTagModel {
	return openTagModel{
		ID:                  t.ID,
		TagNumber:           t.TagNumber,
		Description:         t.Description,
		MetalType:           string(t.MetalType),
		Purity:              t.Purity,
		PricingMode:         string(t.PricingMode),
		GrossWeight:         t.GrossWeight,
		StoneWeight:         t.StoneWeight,
		StonePrice:          t.StonePrice,
		WastageBasis:        string(t.WastageBasis),
		WastagePercent:      t.WastagePercent,
		MakingChargeBasis:   string(t.MakingChargeBasis),
		MakingChargeInput:   t.MakingChargeInput,
		StoredMakingCharges: t.StoredMakingCharges,
		Rate:                toNullDecimal(t.Rate),
		FixedAmount:         t.FixedAmount,
		HandlingCharge:      toNullDecimal(t.HandlingCharge),
		TaxPercent:          toNullDecimal(t.TaxPercent),
		CreatedAt:           t.CreatedAt,
	}
}

func fromOpenTagModel(m openTagModel) entities.OpenTag {
	return entities.OpenTag{
		ID:                  m.ID,
		TagNumber:           m.TagNumber,
		Description:         m.Description,
		MetalType:           entities.MetalType(m.MetalType),
		Purity:              m.Purity,
		PricingMode:         entities.PricingMode(m.PricingMode),
		GrossWeight:         m.GrossWeight,
		StoneWeight:         m.StoneWeight,
		StonePrice:          m.StonePrice,
		WastageBasis:        entities.WastageBasis(m.WastageBasis),
		WastagePercent:      m.WastagePercent,
		MakingChargeBasis:   entities.MakingChargeBasis(m.MakingChargeBasis),
		MakingChargeInput:   m.MakingChargeInput,
		StoredMakingCharges: m.StoredMakingCharges,
		Rate:                fromNullDecimal(m.Rate),
		FixedAmount:         m.FixedAmount,
		HandlingCharge:      fromNullDecimal(m.HandlingCharge),
		TaxPercent:          fromNullDecimal(m.TaxPercent),
		CreatedAt:           m.CreatedAt,
	}
}
