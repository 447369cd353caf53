package basket

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webshop-go/storefront-api/httperr"
	"github.com/webshop-go/storefront-api/models"
)

type fakeCatalog map[uint]models.Product

func (f fakeCatalog) GetProduct(_ context.Context, id uint) (*models.Product, error) {
	p, ok := f[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	return &p, nil
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestAddRemoveAggregate(t *testing.T) {
	var b Basket

	b = b.Add(7).Add(7).Add(3).Add(7)
	b = b.Remove(7)

	assert.Equal(t, map[uint]int{7: 2, 3: 1}, b.Aggregate())
	assert.Equal(t, 3, b.Count())
}

func TestRemoveDropsFirstMatchOnly(t *testing.T) {
	b := Basket{7, 3, 7, 7}
	b = b.Remove(7)
	assert.Equal(t, Basket{3, 7, 7}, b)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	b := Basket{1, 2}
	assert.Equal(t, Basket{1, 2}, b.Remove(99))

	var empty Basket
	assert.Empty(t, empty.Remove(1))
}

func TestQuantityNeverNegative(t *testing.T) {
	var b Basket
	b = b.Add(5)
	b = b.Remove(5)
	b = b.Remove(5)
	b = b.Remove(5)

	assert.True(t, b.IsEmpty())
	assert.Zero(t, b.Aggregate()[5])
}

func TestRemoveDoesNotMutateReceiver(t *testing.T) {
	b := Basket{1, 2, 3}
	_ = b.Remove(2)
	assert.Equal(t, Basket{1, 2, 3}, b)
}

func TestTotals(t *testing.T) {
	catalog := fakeCatalog{
		7: {ID: 7, Name: "Pepperoni", Price: price("10.00")},
		3: {ID: 3, Name: "Margherita", Price: price("5.00")},
	}

	b := Basket{7, 7, 3}
	lines, grandTotal, err := b.Totals(context.Background(), catalog)
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, uint(7), lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].Total.Equal(price("20.00")), "line total %s", lines[0].Total)
	assert.Equal(t, uint(3), lines[1].Product.ID)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.True(t, grandTotal.Equal(price("25.00")), "grand total %s", grandTotal)
}

func TestTotalsAbortsOnMissingProduct(t *testing.T) {
	catalog := fakeCatalog{7: {ID: 7, Price: price("10.00")}}

	b := Basket{7, 42}
	lines, _, err := b.Totals(context.Background(), catalog)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
	assert.Nil(t, lines, "no partial basket on a failed lookup")
}

func TestTotalsEmptyBasket(t *testing.T) {
	var b Basket
	lines, grandTotal, err := b.Totals(context.Background(), fakeCatalog{})
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.True(t, grandTotal.IsZero())
}
