package configs

import (
	"time"

	"github.com/cloud-tech1/food-finds-clone/entity"
	"github.com/cloud-tech1/food-finds-clone/repository"
)

// SeedCatalog loads the demo catalog and order history into the in-memory
// repositories. This is the storefront's entire data set; nothing is
// fetched from anywhere.
func SeedCatalog(rr *repository.RestaurantRepository, or *repository.OrderRepository) {
	rr.Seed(seedRestaurants())
	or.Seed(seedOrders())
}

func seedRestaurants() []entity.Restaurant {
	return []entity.Restaurant{
		{
			ID: 1, Name: "Spice Garden", Cuisine: "Indian", Rating: 4.5,
			Image:        "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400&h=300&fit=crop",
			DeliveryTime: "25-30 min", Price: "₹200 for two", Offer: "20% OFF",
			Featured: true, Address: "123 Main Street, Delhi", Status: entity.RestaurantActive,
			Menu: []entity.MenuItem{
				{ID: 1, Name: "Butter Chicken", Description: "Creamy tomato-based curry with tender chicken pieces", Price: 320, Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=300&h=200&fit=crop", Category: "Main Course", IsVeg: false, RestaurantID: 1},
				{ID: 2, Name: "Paneer Tikka", Description: "Grilled cottage cheese with aromatic spices", Price: 280, Image: "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=300&h=200&fit=crop", Category: "Appetizers", IsVeg: true, RestaurantID: 1},
				{ID: 3, Name: "Biryani", Description: "Fragrant basmati rice with spiced chicken and herbs", Price: 350, Image: "https://images.unsplash.com/photo-1563379091339-03246c5d5455?w=300&h=200&fit=crop", Category: "Main Course", IsVeg: false, RestaurantID: 1},
				{ID: 4, Name: "Naan Bread", Description: "Soft and fluffy Indian bread baked in tandoor", Price: 60, Image: "https://images.unsplash.com/photo-1586190848861-99aa4a171e90?w=300&h=200&fit=crop", Category: "Breads", IsVeg: true, RestaurantID: 1},
				{ID: 5, Name: "Dal Makhani", Description: "Rich and creamy black lentils slow-cooked with butter", Price: 240, Image: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=300&h=200&fit=crop", Category: "Main Course", IsVeg: true, RestaurantID: 1},
				{ID: 6, Name: "Gulab Jamun", Description: "Sweet milk dumplings in cardamom syrup", Price: 120, Image: "https://images.unsplash.com/photo-1571167106827-95c8fc4e7e28?w=300&h=200&fit=crop", Category: "Desserts", IsVeg: true, RestaurantID: 1},
			},
		},
		{
			ID: 2, Name: "Pizza Palace", Cuisine: "Italian", Rating: 4.3,
			Image:        "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400&h=300&fit=crop",
			DeliveryTime: "30-35 min", Price: "₹300 for two", Offer: "Free Delivery",
			Featured: true, Status: entity.RestaurantActive,
			Menu: []entity.MenuItem{
				{ID: 7, Name: "Margherita Pizza", Description: "Classic pizza with fresh mozzarella and basil", Price: 450, Image: "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=300&h=200&fit=crop", Category: "Pizza", IsVeg: true, RestaurantID: 2},
				{ID: 8, Name: "Garlic Bread", Description: "Toasted bread with garlic butter and herbs", Price: 120, Image: "https://images.unsplash.com/photo-1573140247632-f8fd74997d5c?w=300&h=200&fit=crop", Category: "Sides", IsVeg: true, RestaurantID: 2},
			},
		},
		{
			ID: 3, Name: "Burger Hub", Cuisine: "American", Rating: 4.2,
			Image:        "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop",
			DeliveryTime: "20-25 min", Price: "₹250 for two", Offer: "15% OFF",
			Featured: false, Status: entity.RestaurantActive,
			Menu: []entity.MenuItem{
				{ID: 9, Name: "Classic Burger", Description: "Juicy beef patty with lettuce, tomato and cheese", Price: 250, Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=300&h=200&fit=crop", Category: "Burgers", IsVeg: false, RestaurantID: 3},
				{ID: 10, Name: "French Fries", Description: "Crispy golden fries with a pinch of salt", Price: 120, Image: "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=300&h=200&fit=crop", Category: "Sides", IsVeg: true, RestaurantID: 3},
			},
		},
		{
			ID: 4, Name: "Sushi Express", Cuisine: "Japanese", Rating: 4.6,
			Image:        "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400&h=300&fit=crop",
			DeliveryTime: "35-40 min", Price: "₹400 for two", Offer: "Buy 1 Get 1",
			Featured: true, Status: entity.RestaurantActive,
		},
		{
			ID: 5, Name: "Taco Bell", Cuisine: "Mexican", Rating: 4.1,
			Image:        "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop",
			DeliveryTime: "25-30 min", Price: "₹180 for two", Offer: "30% OFF",
			Featured: false, Status: entity.RestaurantActive,
		},
		{
			ID: 6, Name: "Thai Delight", Cuisine: "Thai", Rating: 4.4,
			Image:        "https://images.unsplash.com/photo-1559847844-5315695dadae?w=400&h=300&fit=crop",
			DeliveryTime: "30-35 min", Price: "₹350 for two", Offer: "Free Delivery",
			Featured: true, Status: entity.RestaurantActive,
			Menu: []entity.MenuItem{
				{ID: 11, Name: "Pad Thai", Description: "Stir-fried rice noodles with peanuts and lime", Price: 320, Image: "https://images.unsplash.com/photo-1559314809-0f31657def5e?w=300&h=200&fit=crop", Category: "Noodles", IsVeg: false, RestaurantID: 6},
			},
		},
	}
}

func seedOrders() []entity.Order {
	return []entity.Order{
		{
			ID: "ORD001", RestaurantName: "Spice Garden",
			RestaurantImage: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400&h=300&fit=crop",
			Items: []entity.OrderItem{
				{ID: 1, Name: "Butter Chicken", Quantity: 1, Price: 320},
				{ID: 2, Name: "Naan Bread", Quantity: 2, Price: 60},
			},
			Total: 440, Status: entity.OrderDelivered,
			OrderDate:    time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			DeliveryTime: "25 mins", PaymentMethod: "Cash on Delivery",
		},
		{
			ID: "ORD002", RestaurantName: "Pizza Palace",
			RestaurantImage: "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400&h=300&fit=crop",
			Items: []entity.OrderItem{
				{ID: 3, Name: "Margherita Pizza", Quantity: 1, Price: 450},
				{ID: 4, Name: "Garlic Bread", Quantity: 1, Price: 120},
			},
			Total: 570, Status: entity.OrderPreparing,
			OrderDate:    time.Date(2024, 1, 16, 19, 15, 0, 0, time.UTC),
			DeliveryTime: "30 mins", PaymentMethod: "Credit Card",
		},
		{
			ID: "ORD003", RestaurantName: "Burger Hub",
			RestaurantImage: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop",
			Items: []entity.OrderItem{
				{ID: 5, Name: "Classic Burger", Quantity: 2, Price: 250},
				{ID: 6, Name: "French Fries", Quantity: 1, Price: 120},
			},
			Total: 620, Status: entity.OrderConfirmed,
			OrderDate:    time.Date(2024, 1, 16, 20, 0, 0, 0, time.UTC),
			DeliveryTime: "20 mins", PaymentMethod: "UPI",
		},
		{
			ID: "ORD004", RestaurantName: "Thai Delight",
			RestaurantImage: "https://images.unsplash.com/photo-1559847844-5315695dadae?w=400&h=300&fit=crop",
			Items: []entity.OrderItem{
				{ID: 7, Name: "Pad Thai", Quantity: 1, Price: 320},
			},
			Total: 320, Status: entity.OrderCancelled,
			OrderDate:    time.Date(2024, 1, 14, 18, 45, 0, 0, time.UTC),
			DeliveryTime: "35 mins", PaymentMethod: "Cash on Delivery",
		},
	}
}
