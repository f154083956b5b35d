package entity

// CartItem is one line in the cart. ID identifies the menu item, not the
// line itself; the cart keeps at most one line per ID and merges repeat
// adds into Quantity.
type CartItem struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Image        string  `json:"image"`
	RestaurantID int     `json:"restaurantId"`
}
