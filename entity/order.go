package entity

import "time"

const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// OrderStatuses lists every status an order can move through.
var OrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderPreparing, OrderDelivered, OrderCancelled,
}

type Order struct {
	ID              string      `json:"id"`
	RestaurantName  string      `json:"restaurantName"`
	RestaurantImage string      `json:"restaurantImage"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	OrderDate       time.Time   `json:"orderDate"`
	DeliveryTime    string      `json:"deliveryTime"`
	PaymentMethod   string      `json:"paymentMethod"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
}

func ValidOrderStatus(s string) bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}
