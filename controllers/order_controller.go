package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cloud-tech1/food-finds-clone/pkg/resp"
	"github.com/cloud-tech1/food-finds-clone/repository"
	"github.com/cloud-tech1/food-finds-clone/services"
)

type OrderController struct {
	Checkout *services.CheckoutService
	Orders   *repository.OrderRepository
}

func NewOrderController(cs *services.CheckoutService, or *repository.OrderRepository) *OrderController {
	return &OrderController{Checkout: cs, Orders: or}
}

// POST /checkout/quote
func (h *OrderController) Quote(c *gin.Context) {
	var body struct {
		PromoCode string `json:"promoCode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	quote, err := h.Checkout.QuoteCart(body.PromoCode)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, quote)
}

// POST /checkout
func (h *OrderController) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Checkout.PlaceOrder(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrEmptyAddress),
			errors.Is(err, services.ErrInvalidPromo):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /orders?status=
func (h *OrderController) List(c *gin.Context) {
	resp.OK(c, h.Orders.List(c.Query("status")))
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	order, err := h.Orders.ByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
