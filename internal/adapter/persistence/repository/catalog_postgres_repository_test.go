package repository

import (
	"testing"

	"jiyajewellery/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductModel_UnsetChargesStayNull(t *testing.T) {
	p := entities.Product{ID: "prod-1", SKU: "RNG-1", Name: "Ring", PricingMode: entities.PricingByWeight}

	m := toProductModel(p)
	assert.False(t, m.HandlingCharge.Valid)
	assert.False(t, m.TaxPercent.Valid)

	got := fromProductModel(m)
	assert.Nil(t, got.HandlingCharge)
	assert.Nil(t, got.TaxPercent)
}

func TestOpenTagModel_ExplicitZeroTaxIsKept(t *testing.T) {
	zero := decimal.Zero
	handling := decimal.NewFromInt(75)
	tag := entities.OpenTag{ID: "tag-1", TagNumber: "T-1", TaxPercent: &zero, HandlingCharge: &handling}

	m := toOpenTagModel(tag)
	require.True(t, m.TaxPercent.Valid)

	got := fromOpenTagModel(m)
	require.NotNil(t, got.TaxPercent)
	assert.True(t, got.TaxPercent.IsZero())
	require.NotNil(t, got.HandlingCharge)
	assert.True(t, got.HandlingCharge.Equal(handling))
}
