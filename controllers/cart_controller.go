package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloud-tech1/food-finds-clone/entity"
	"github.com/cloud-tech1/food-finds-clone/pkg/resp"
	"github.com/cloud-tech1/food-finds-clone/repository"
	"github.com/cloud-tech1/food-finds-clone/services"
	"github.com/cloud-tech1/food-finds-clone/session"
)

type CartController struct {
	Store   *session.Store
	Catalog *services.CatalogService
}

func NewCartController(st *session.Store, cat *services.CatalogService) *CartController {
	return &CartController{Store: st, Catalog: cat}
}

type cartView struct {
	Items []entity.CartItem `json:"items"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

func (h *CartController) view() cartView {
	return cartView{
		Items: h.Store.CartItems(),
		Count: h.Store.CartCount(),
		Total: h.Store.CartTotal(),
	}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, h.view())
}

// POST /cart/items
// The body names a menu item; the line is built from the catalog so a
// client cannot invent prices.
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		MenuItemID int `json:"menuItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Catalog.MenuItem(body.MenuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	h.Store.AddToCart(entity.CartItem{
		ID:           item.ID,
		Name:         item.Name,
		Price:        item.Price,
		Image:        item.Image,
		RestaurantID: item.RestaurantID,
	})
	resp.OK(c, h.view())
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// quantity <= 0 removes the line; that is the store's contract, not
	// an input error.
	h.Store.UpdateCartQuantity(id, body.Quantity)
	resp.OK(c, h.view())
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	h.Store.RemoveFromCart(id)
	resp.OK(c, h.view())
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Store.ClearCart()
	resp.OK(c, h.view())
}
