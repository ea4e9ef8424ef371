//go:build unit

package product_test

import (
	"testing"

	"petstore-backend/internal/domain/product"
	"petstore-backend/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriceRange(t *testing.T) {
	t.Run("inclusive bounds", func(t *testing.T) {
		r, err := product.NewPriceRange(decimal.NewFromInt(10), decimal.NewFromInt(20))
		require.NoError(t, err)
		assert.True(t, r.Contains(decimal.NewFromInt(10)))
		assert.True(t, r.Contains(decimal.RequireFromString("15.50")))
		assert.True(t, r.Contains(decimal.NewFromInt(20)))
		assert.False(t, r.Contains(decimal.RequireFromString("20.01")))
	})

	t.Run("min above max", func(t *testing.T) {
		_, err := product.NewPriceRange(decimal.NewFromInt(30), decimal.NewFromInt(20))
		assert.ErrorIs(t, err, product.ErrInvalidRange)
	})

	t.Run("negative min", func(t *testing.T) {
		_, err := product.NewPriceRange(decimal.NewFromInt(-1), decimal.NewFromInt(20))
		assert.ErrorIs(t, err, product.ErrNegativePrice)
	})
}

func TestProduct_Validate(t *testing.T) {
	assert.NoError(t, builder.NewProductBuilder().BuildDomain().Validate())

	blank := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Name = "" }).BuildDomain()
	assert.ErrorIs(t, blank.Validate(), product.ErrEmptyName)

	negative := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
		b.BasePrice = decimal.NewFromInt(-5)
	}).BuildDomain()
	assert.ErrorIs(t, negative.Validate(), product.ErrNegativePrice)
}

func TestProduct_CategoryID(t *testing.T) {
	p := builder.NewProductBuilder().BuildDomain()
	require.NotNil(t, p.CategoryID())
	assert.Equal(t, int64(5), *p.CategoryID())

	p.Category = nil
	assert.Nil(t, p.CategoryID())
}
