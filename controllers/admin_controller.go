package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloud-tech1/food-finds-clone/pkg/resp"
	"github.com/cloud-tech1/food-finds-clone/repository"
	"github.com/cloud-tech1/food-finds-clone/services"
)

type AdminController struct{ Svc *services.AdminService }

func NewAdminController(s *services.AdminService) *AdminController {
	return &AdminController{Svc: s}
}

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	resp.OK(c, h.Svc.Dashboard())
}

// POST /admin/restaurants
func (h *AdminController) AddRestaurant(c *gin.Context) {
	var req services.AddRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, h.Svc.AddRestaurant(&req))
}

// DELETE /admin/restaurants/:id
func (h *AdminController) DeleteRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if err := h.Svc.DeleteRestaurant(id); err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /admin/menu-items
func (h *AdminController) AddMenuItem(c *gin.Context) {
	var req services.AddMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.AddMenuItem(&req)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// DELETE /admin/menu-items/:id
func (h *AdminController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	if err := h.Svc.DeleteMenuItem(id); err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PATCH /admin/orders/:id/status
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.UpdateOrderStatus(c.Param("id"), body.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrderStatus) {
			resp.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, repository.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
