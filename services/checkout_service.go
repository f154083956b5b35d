package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/cloud-tech1/food-finds-clone/entity"
	"github.com/cloud-tech1/food-finds-clone/repository"
	"github.com/cloud-tech1/food-finds-clone/session"
)

var (
	ErrInvalidPromo = errors.New("invalid promo code")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrEmptyAddress = errors.New("delivery address is required")
)

// CheckoutService prices the current cart and turns it into an order.
type CheckoutService struct {
	Session     *session.Store
	Orders      *repository.OrderRepository
	Restaurants *repository.RestaurantRepository
}

func NewCheckoutService(st *session.Store, or *repository.OrderRepository, rr *repository.RestaurantRepository) *CheckoutService {
	return &CheckoutService{Session: st, Orders: or, Restaurants: rr}
}

type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Taxes       float64 `json:"taxes"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

type PlaceOrderIn struct {
	Address   string `json:"address" binding:"required"`
	PromoCode string `json:"promoCode"`
}

// promoPercent resolves a promo code to its discount figure. SAVE20 is a
// 20% discount; FIRST50 reads as a flat 50 in the UI copy but prices as
// 50% here, faithful to the storefront it replaces.
func promoPercent(code string) (float64, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "":
		return 0, nil
	case "SAVE20":
		return 20, nil
	case "FIRST50":
		return 50, nil
	default:
		return 0, ErrInvalidPromo
	}
}

// QuoteCart prices the current cart: free delivery above 300, a flat 40
// fee otherwise, 5% taxes rounded to the rupee, and the promo discount.
func (s *CheckoutService) QuoteCart(promoCode string) (*Quote, error) {
	return s.quoteItems(s.Session.CartItems(), promoCode)
}

func (s *CheckoutService) quoteItems(items []entity.CartItem, promoCode string) (*Quote, error) {
	discount, err := promoPercent(promoCode)
	if err != nil {
		return nil, err
	}

	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}

	deliveryFee := 40.0
	if subtotal > 300 {
		deliveryFee = 0
	}
	taxes := math.Round(subtotal * 0.05)

	discountAmount := math.Round(subtotal * (discount / 100))
	if discount > 50 {
		discountAmount = discount
	}

	return &Quote{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Taxes:       taxes,
		Discount:    discountAmount,
		Total:       subtotal + deliveryFee + taxes - discountAmount,
	}, nil
}

// PlaceOrder prices the cart, records a pending order and empties the
// cart. The restaurant on the order comes from the first cart line.
func (s *CheckoutService) PlaceOrder(in *PlaceOrderIn) (*entity.Order, error) {
	if strings.TrimSpace(in.Address) == "" {
		return nil, ErrEmptyAddress
	}
	items := s.Session.CartItems()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	quote, err := s.quoteItems(items, in.PromoCode)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		Items:           make([]entity.OrderItem, 0, len(items)),
		Total:           quote.Total,
		Status:          entity.OrderPending,
		OrderDate:       time.Now().UTC(),
		PaymentMethod:   "Cash on Delivery",
		DeliveryAddress: strings.TrimSpace(in.Address),
	}
	for _, it := range items {
		order.Items = append(order.Items, entity.OrderItem{
			ID: it.ID, Name: it.Name, Quantity: it.Quantity, Price: it.Price,
		})
	}
	if rest, err := s.Restaurants.ByID(items[0].RestaurantID); err == nil {
		order.RestaurantName = rest.Name
		order.RestaurantImage = rest.Image
		order.DeliveryTime = rest.DeliveryTime
	}

	created := s.Orders.Create(order)
	s.Session.ClearCart()
	return &created, nil
}
