package shop

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msvosa_back_end/internal/models"
)

func hoodie() models.MerchandiseItem {
	return models.MerchandiseItem{
		ID:       1,
		Name:     "Classic MSVOSA Hoodie",
		Price:    decimal.NewFromFloat(45.00),
		Category: "Apparel",
		Image:    "https://example.com/hoodie.jpg",
	}
}

func cap_() models.MerchandiseItem {
	return models.MerchandiseItem{
		ID:       2,
		Name:     "Embroidered Cap",
		Price:    decimal.NewFromFloat(25.00),
		Category: "Accessories",
		Image:    "https://example.com/cap.jpg",
	}
}

func TestAddAccumulatesQuantity(t *testing.T) {
	cart := &Cart{}

	cart.Add(hoodie())
	cart.Add(hoodie())
	cart.Add(cap_())

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
	assert.Equal(t, 3, cart.Count())
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	cart := &Cart{}
	cart.Add(hoodie())

	cart.Remove(999)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].ID)
}

func TestUpdateQuantityFloorsAtPriorValue(t *testing.T) {
	cart := &Cart{}
	cart.Add(hoodie())

	// Dropping to zero or below is ignored, never auto-removed.
	cart.UpdateQuantity(1, -5)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.UpdateQuantity(1, 3)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	cart.UpdateQuantity(1, -4)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	cart.UpdateQuantity(1, -3)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	cart := &Cart{}
	cart.Add(hoodie())

	cart.UpdateQuantity(42, 10)

	assert.Equal(t, 1, cart.Count())
}

func TestTotalAndCountTrackEveryMutation(t *testing.T) {
	cart := &Cart{}

	assert.True(t, cart.Total().IsZero())
	assert.Zero(t, cart.Count())

	cart.Add(hoodie())
	cart.Add(hoodie())
	cart.Add(cap_())
	// 2×45 + 1×25
	assert.True(t, cart.Total().Equal(decimal.NewFromFloat(115.00)), "got %s", cart.Total())
	assert.Equal(t, 3, cart.Count())

	cart.UpdateQuantity(2, 2)
	// 2×45 + 3×25
	assert.True(t, cart.Total().Equal(decimal.NewFromFloat(165.00)), "got %s", cart.Total())
	assert.Equal(t, 5, cart.Count())

	cart.Remove(1)
	assert.True(t, cart.Total().Equal(decimal.NewFromFloat(75.00)), "got %s", cart.Total())
	assert.Equal(t, 3, cart.Count())

	cart.Clear()
	assert.True(t, cart.Total().IsZero())
	assert.Zero(t, cart.Count())
	assert.True(t, cart.IsEmpty())
}

func TestSnapshotIsDeepOfLineItems(t *testing.T) {
	cart := &Cart{}
	cart.Add(hoodie())

	snapshot := cart.Snapshot()
	cart.UpdateQuantity(1, 4)
	cart.Clear()

	require.Len(t, snapshot, 1)
	assert.Equal(t, 1, snapshot[0].Quantity)
	assert.Equal(t, "Classic MSVOSA Hoodie", snapshot[0].Name)
}
