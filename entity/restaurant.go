package entity

const (
	RestaurantActive   = "active"
	RestaurantInactive = "inactive"
)

type Restaurant struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Image        string     `json:"image"`
	Cuisine      string     `json:"cuisine"`
	Rating       float64    `json:"rating"`
	DeliveryTime string     `json:"deliveryTime"`
	Price        string     `json:"price"` // display string, e.g. "₹200 for two"
	Offer        string     `json:"offer,omitempty"`
	Featured     bool       `json:"featured"`
	Address      string     `json:"address,omitempty"`
	Status       string     `json:"status"`
	Menu         []MenuItem `json:"menu,omitempty"`
}
