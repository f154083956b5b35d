package repository

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cloud-tech1/food-finds-clone/entity"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository keeps orders in memory for the process lifetime.
// IDs follow the ORD001 scheme of the seed data.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []entity.Order
	nextID int
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{nextID: 1}
}

func (r *OrderRepository) Seed(orders []entity.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = orders
	r.nextID = len(orders) + 1
}

// Create assigns the next sequential ID and stores the order.
func (r *OrderRepository) Create(order entity.Order) entity.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = fmt.Sprintf("ORD%03d", r.nextID)
	r.nextID++
	r.orders = append(r.orders, order)
	return order
}

// List returns orders newest first, optionally filtered by status
// (empty string or "all" means no filter).
func (r *OrderRepository) List(status string) []entity.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out
}

func (r *OrderRepository) ByID(id string) (entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return entity.Order{}, ErrOrderNotFound
}

func (r *OrderRepository) UpdateStatus(id, status string) (entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return cloneOrder(r.orders[i]), nil
		}
	}
	return entity.Order{}, ErrOrderNotFound
}

// TotalRevenue sums order totals across every status, matching the admin
// dashboard's headline number.
func (r *OrderRepository) TotalRevenue() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0.0
	for _, o := range r.orders {
		total += o.Total
	}
	return total
}

func (r *OrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

func cloneOrder(o entity.Order) entity.Order {
	items := make([]entity.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
