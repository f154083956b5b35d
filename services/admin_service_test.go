package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-tech1/food-finds-clone/configs"
	"github.com/cloud-tech1/food-finds-clone/entity"
	"github.com/cloud-tech1/food-finds-clone/repository"
)

func newAdminFixture(t *testing.T) *AdminService {
	t.Helper()
	rr := repository.NewRestaurantRepository()
	or := repository.NewOrderRepository()
	configs.SeedCatalog(rr, or)
	return NewAdminService(rr, or)
}

func TestDashboard(t *testing.T) {
	svc := newAdminFixture(t)

	stats := svc.Dashboard()

	assert.Equal(t, 6, stats.TotalRestaurants)
	assert.Equal(t, 6, stats.ActiveRestaurants)
	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 1950.0, stats.TotalRevenue) // 440+570+620+320
}

func TestDashboard_CountsOnlyActive(t *testing.T) {
	svc := newAdminFixture(t)
	require.NoError(t, svc.Restaurants.SetStatus(5, entity.RestaurantInactive))

	stats := svc.Dashboard()
	assert.Equal(t, 6, stats.TotalRestaurants)
	assert.Equal(t, 5, stats.ActiveRestaurants)
}

func TestAddAndDeleteRestaurant(t *testing.T) {
	svc := newAdminFixture(t)

	created := svc.AddRestaurant(&AddRestaurantIn{
		Name: "Noodle House", Cuisine: "Chinese", DeliveryTime: "15-20 min", Price: "₹220 for two",
	})

	assert.Equal(t, 7, created.ID) // past the six seeded ones
	assert.Equal(t, entity.RestaurantActive, created.Status)
	assert.Equal(t, 7, svc.Dashboard().TotalRestaurants)

	require.NoError(t, svc.DeleteRestaurant(created.ID))
	assert.Equal(t, 6, svc.Dashboard().TotalRestaurants)
	assert.ErrorIs(t, svc.DeleteRestaurant(created.ID), repository.ErrRestaurantNotFound)
}

func TestAddAndDeleteMenuItem(t *testing.T) {
	svc := newAdminFixture(t)

	item, err := svc.AddMenuItem(&AddMenuItemIn{
		RestaurantID: 1, Name: "Samosa", Price: 40, Category: "Appetizers", IsVeg: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, item.ID) // next after the seeded menu ids

	rest, err := svc.Restaurants.ByID(1)
	require.NoError(t, err)
	assert.Len(t, rest.Menu, 7)

	require.NoError(t, svc.DeleteMenuItem(item.ID))
	assert.ErrorIs(t, svc.DeleteMenuItem(item.ID), repository.ErrMenuItemNotFound)
}

func TestAddMenuItem_UnknownRestaurant(t *testing.T) {
	svc := newAdminFixture(t)

	_, err := svc.AddMenuItem(&AddMenuItemIn{RestaurantID: 99, Name: "Ghost Dish", Price: 1})
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc := newAdminFixture(t)

	order, err := svc.UpdateOrderStatus("ORD001", entity.OrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, order.Status)

	_, err = svc.UpdateOrderStatus("ORD001", "shipped")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)

	_, err = svc.UpdateOrderStatus("ORD999", entity.OrderConfirmed)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
