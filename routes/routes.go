package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cloud-tech1/food-finds-clone/controllers"
	"github.com/cloud-tech1/food-finds-clone/middlewares"
	"github.com/cloud-tech1/food-finds-clone/repository"
	"github.com/cloud-tech1/food-finds-clone/services"
	"github.com/cloud-tech1/food-finds-clone/session"
)

// Deps is everything the route tree needs, built once in main.
type Deps struct {
	Session     *session.Store
	Restaurants *repository.RestaurantRepository
	Orders      *repository.OrderRepository
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	catalog := services.NewCatalogService(d.Restaurants)
	checkout := services.NewCheckoutService(d.Session, d.Orders, d.Restaurants)
	admin := services.NewAdminService(d.Restaurants, d.Orders)

	// Controllers
	authCtrl := controllers.NewAuthController(d.Session)
	restCtrl := controllers.NewRestaurantController(catalog)
	cartCtrl := controllers.NewCartController(d.Session, catalog)
	orderCtrl := controllers.NewOrderController(checkout, d.Orders)
	adminCtrl := controllers.NewAdminController(admin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/signup", authCtrl.Signup)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/me", authCtrl.Me)
	}

	// Catalog (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/cuisines", restCtrl.Cuisines)

	// Cart (reading is public, like the cart badge in the header)
	r.GET("/cart", cartCtrl.Get)
	cart := r.Group("/cart", middlewares.RequireLogin(d.Session))
	{
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Checkout + order history
	u := r.Group("/", middlewares.RequireLogin(d.Session))
	{
		u.POST("/checkout/quote", orderCtrl.Quote)
		u.POST("/checkout", orderCtrl.PlaceOrder)
		u.GET("/orders", orderCtrl.List)
		u.GET("/orders/:id", orderCtrl.Detail)
	}

	// Admin dashboard (no authorization model in this demo)
	ad := r.Group("/admin")
	{
		ad.GET("/dashboard", adminCtrl.Dashboard)
		ad.POST("/restaurants", adminCtrl.AddRestaurant)
		ad.DELETE("/restaurants/:id", adminCtrl.DeleteRestaurant)
		ad.POST("/menu-items", adminCtrl.AddMenuItem)
		ad.DELETE("/menu-items/:id", adminCtrl.DeleteMenuItem)
		ad.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
	}
}
