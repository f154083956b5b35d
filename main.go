package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cloud-tech1/food-finds-clone/configs"
	"github.com/cloud-tech1/food-finds-clone/repository"
	"github.com/cloud-tech1/food-finds-clone/routes"
	"github.com/cloud-tech1/food-finds-clone/session"
)

func main() {
	cfg := configs.LoadConfig()

	// Durable key-value storage for the session (the localStorage stand-in).
	// The store itself works without it, so a broken medium only costs
	// persistence across restarts.
	durable, err := configs.OpenStorage(cfg)
	if err != nil {
		log.Printf("storage unavailable, running in-memory only: %v", err)
		durable = nil
	}

	// One session store per process: one browser tab's worth of state.
	store := session.NewStore(durable)

	// Catalog and order history, seeded with the demo data.
	restaurants := repository.NewRestaurantRepository()
	orders := repository.NewOrderRepository()
	configs.SeedCatalog(restaurants, orders)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Session:     store,
		Restaurants: restaurants,
		Orders:      orders,
	})

	fmt.Println("listening on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
