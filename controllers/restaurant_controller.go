package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloud-tech1/food-finds-clone/pkg/resp"
	"github.com/cloud-tech1/food-finds-clone/repository"
	"github.com/cloud-tech1/food-finds-clone/services"
)

type RestaurantController struct{ Svc *services.CatalogService }

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants?q=&cuisine=
func (h *RestaurantController) List(c *gin.Context) {
	restaurants := h.Svc.Search(c.Query("q"), c.Query("cuisine"))
	resp.OK(c, restaurants)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	out, err := h.Svc.Detail(id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /cuisines
func (h *RestaurantController) Cuisines(c *gin.Context) {
	resp.OK(c, h.Svc.Cuisines())
}
