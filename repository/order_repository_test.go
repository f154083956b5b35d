package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-tech1/food-finds-clone/entity"
)

func seedThreeOrders(r *OrderRepository) {
	r.Seed([]entity.Order{
		{ID: "ORD001", Status: entity.OrderDelivered, Total: 440, OrderDate: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)},
		{ID: "ORD002", Status: entity.OrderPreparing, Total: 570, OrderDate: time.Date(2024, 1, 16, 19, 15, 0, 0, time.UTC)},
		{ID: "ORD003", Status: entity.OrderDelivered, Total: 620, OrderDate: time.Date(2024, 1, 16, 20, 0, 0, 0, time.UTC)},
	})
}

func TestOrderList_NewestFirst(t *testing.T) {
	r := NewOrderRepository()
	seedThreeOrders(r)

	got := r.List("")
	require.Len(t, got, 3)
	assert.Equal(t, "ORD003", got[0].ID)
	assert.Equal(t, "ORD002", got[1].ID)
	assert.Equal(t, "ORD001", got[2].ID)
}

func TestOrderList_StatusFilter(t *testing.T) {
	r := NewOrderRepository()
	seedThreeOrders(r)

	delivered := r.List(entity.OrderDelivered)
	require.Len(t, delivered, 2)
	for _, o := range delivered {
		assert.Equal(t, entity.OrderDelivered, o.Status)
	}

	assert.Len(t, r.List("all"), 3)
	assert.Empty(t, r.List(entity.OrderCancelled))
}

func TestOrderCreate_SequentialIDs(t *testing.T) {
	r := NewOrderRepository()
	seedThreeOrders(r)

	first := r.Create(entity.Order{Status: entity.OrderPending, Total: 100, OrderDate: time.Now().UTC()})
	second := r.Create(entity.Order{Status: entity.OrderPending, Total: 200, OrderDate: time.Now().UTC()})

	assert.Equal(t, "ORD004", first.ID)
	assert.Equal(t, "ORD005", second.ID)
	assert.Equal(t, 5, r.Count())
	assert.Equal(t, 1930.0, r.TotalRevenue())
}

func TestOrderUpdateStatus(t *testing.T) {
	r := NewOrderRepository()
	seedThreeOrders(r)

	updated, err := r.UpdateStatus("ORD002", entity.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, updated.Status)

	_, err = r.UpdateStatus("ORD099", entity.OrderDelivered)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
