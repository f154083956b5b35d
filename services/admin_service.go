package services

import (
	"errors"

	"github.com/cloud-tech1/food-finds-clone/entity"
	"github.com/cloud-tech1/food-finds-clone/repository"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// AdminService backs the dashboard: headline stats plus restaurant,
// menu-item and order management.
type AdminService struct {
	Restaurants *repository.RestaurantRepository
	Orders      *repository.OrderRepository
}

func NewAdminService(rr *repository.RestaurantRepository, or *repository.OrderRepository) *AdminService {
	return &AdminService{Restaurants: rr, Orders: or}
}

type DashboardOut struct {
	TotalRestaurants  int     `json:"totalRestaurants"`
	ActiveRestaurants int     `json:"activeRestaurants"`
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

type AddRestaurantIn struct {
	Name         string `json:"name" binding:"required"`
	Cuisine      string `json:"cuisine" binding:"required"`
	Image        string `json:"image"`
	DeliveryTime string `json:"deliveryTime"`
	Price        string `json:"price"`
}

type AddMenuItemIn struct {
	RestaurantID int     `json:"restaurantId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	IsVeg        bool    `json:"isVeg"`
}

func (s *AdminService) Dashboard() DashboardOut {
	restaurants := s.Restaurants.List()
	active := 0
	for _, r := range restaurants {
		if r.Status == entity.RestaurantActive {
			active++
		}
	}
	return DashboardOut{
		TotalRestaurants:  len(restaurants),
		ActiveRestaurants: active,
		TotalOrders:       s.Orders.Count(),
		TotalRevenue:      s.Orders.TotalRevenue(),
	}
}

func (s *AdminService) AddRestaurant(in *AddRestaurantIn) entity.Restaurant {
	return s.Restaurants.Create(entity.Restaurant{
		Name:         in.Name,
		Cuisine:      in.Cuisine,
		Image:        in.Image,
		DeliveryTime: in.DeliveryTime,
		Price:        in.Price,
		Status:       entity.RestaurantActive,
	})
}

func (s *AdminService) DeleteRestaurant(id int) error {
	return s.Restaurants.Delete(id)
}

func (s *AdminService) AddMenuItem(in *AddMenuItemIn) (entity.MenuItem, error) {
	return s.Restaurants.AddMenuItem(entity.MenuItem{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Image:        in.Image,
		Category:     in.Category,
		IsVeg:        in.IsVeg,
	})
}

func (s *AdminService) DeleteMenuItem(id int) error {
	return s.Restaurants.DeleteMenuItem(id)
}

func (s *AdminService) UpdateOrderStatus(id, status string) (entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return entity.Order{}, ErrInvalidOrderStatus
	}
	return s.Orders.UpdateStatus(id, status)
}
