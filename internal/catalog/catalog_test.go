package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Len(t, c.List(), 12)

	p, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Pro Gas Refill", p.Name)
	assert.Equal(t, 1250.0, p.SalePrice)
	assert.NotEmpty(t, p.Images)

	_, ok = c.Get(999)
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	all := c.Search("")
	assert.Len(t, all, len(c.List()))

	refills := c.Search("refill")
	require.NotEmpty(t, refills)
	for _, p := range refills {
		assert.Contains(t, p.Name, "Refill")
	}

	// Case-insensitive
	assert.Equal(t, refills, c.Search("REFILL"))

	assert.Empty(t, c.Search("no such product"))
}

func TestByCategory(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	electronics := c.ByCategory("electronics")
	require.NotEmpty(t, electronics)
	for _, p := range electronics {
		assert.Equal(t, "electronics", p.Category)
	}

	assert.Empty(t, c.ByCategory("furniture"))
}

func TestStockSummary(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	inStock, lowStock, outOfStock := c.StockSummary()
	assert.Equal(t, len(c.List()), inStock+lowStock+outOfStock)
	assert.Greater(t, inStock, 0)
	assert.Greater(t, lowStock, 0)
	assert.Greater(t, outOfStock, 0)
}
