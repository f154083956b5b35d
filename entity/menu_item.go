package entity

type MenuItem struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	IsVeg        bool    `json:"isVeg"`
	RestaurantID int     `json:"restaurantId"`
}
