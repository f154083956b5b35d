package repository

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/cloud-tech1/food-finds-clone/entity"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
)

// RestaurantRepository holds the catalog in memory. The data is seeded at
// startup and lives for the process only; there is deliberately no
// server-side catalog persistence.
type RestaurantRepository struct {
	mu          sync.RWMutex
	restaurants []entity.Restaurant
	nextID      int
	nextMenuID  int
}

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{nextID: 1, nextMenuID: 1}
}

// Seed replaces the catalog wholesale and advances the ID counters past
// the seeded data.
func (r *RestaurantRepository) Seed(restaurants []entity.Restaurant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants = restaurants
	for _, rest := range restaurants {
		if rest.ID >= r.nextID {
			r.nextID = rest.ID + 1
		}
		for _, m := range rest.Menu {
			if m.ID >= r.nextMenuID {
				r.nextMenuID = m.ID + 1
			}
		}
	}
}

// List returns every restaurant, menus included, in seed order.
func (r *RestaurantRepository) List() []entity.Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.copyAll()
}

// Search filters by a case-insensitive substring over name and cuisine,
// then by exact cuisine. An empty query skips the substring filter; an
// empty cuisine or "All" skips the cuisine filter.
func (r *RestaurantRepository) Search(query, cuisine string) []entity.Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Restaurant, 0)
	for _, rest := range r.restaurants {
		if q != "" &&
			!strings.Contains(strings.ToLower(rest.Name), q) &&
			!strings.Contains(strings.ToLower(rest.Cuisine), q) {
			continue
		}
		if cuisine != "" && cuisine != "All" && rest.Cuisine != cuisine {
			continue
		}
		out = append(out, cloneRestaurant(rest))
	}
	return out
}

func (r *RestaurantRepository) ByID(id int) (entity.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rest := range r.restaurants {
		if rest.ID == id {
			return cloneRestaurant(rest), nil
		}
	}
	return entity.Restaurant{}, ErrRestaurantNotFound
}

// Cuisines lists the distinct cuisines in the catalog, sorted, with the
// "All" pseudo-cuisine first.
func (r *RestaurantRepository) Cuisines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	for _, rest := range r.restaurants {
		seen[rest.Cuisine] = true
	}
	cuisines := make([]string, 0, len(seen))
	for c := range seen {
		cuisines = append(cuisines, c)
	}
	sort.Strings(cuisines)
	return append([]string{"All"}, cuisines...)
}

// Create assigns the next ID and appends. Status defaults to active when
// unset.
func (r *RestaurantRepository) Create(rest entity.Restaurant) entity.Restaurant {
	r.mu.Lock()
	defer r.mu.Unlock()
	rest.ID = r.nextID
	r.nextID++
	if rest.Status == "" {
		rest.Status = entity.RestaurantActive
	}
	r.restaurants = append(r.restaurants, rest)
	return cloneRestaurant(rest)
}

func (r *RestaurantRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rest := range r.restaurants {
		if rest.ID == id {
			r.restaurants = append(r.restaurants[:i], r.restaurants[i+1:]...)
			return nil
		}
	}
	return ErrRestaurantNotFound
}

func (r *RestaurantRepository) SetStatus(id int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.restaurants {
		if r.restaurants[i].ID == id {
			r.restaurants[i].Status = status
			return nil
		}
	}
	return ErrRestaurantNotFound
}

// AddMenuItem assigns the next menu-item ID and appends the item to its
// restaurant's menu.
func (r *RestaurantRepository) AddMenuItem(item entity.MenuItem) (entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.restaurants {
		if r.restaurants[i].ID == item.RestaurantID {
			item.ID = r.nextMenuID
			r.nextMenuID++
			r.restaurants[i].Menu = append(r.restaurants[i].Menu, item)
			return item, nil
		}
	}
	return entity.MenuItem{}, ErrRestaurantNotFound
}

func (r *RestaurantRepository) DeleteMenuItem(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.restaurants {
		for j, m := range r.restaurants[i].Menu {
			if m.ID == id {
				r.restaurants[i].Menu = append(r.restaurants[i].Menu[:j], r.restaurants[i].Menu[j+1:]...)
				return nil
			}
		}
	}
	return ErrMenuItemNotFound
}

// MenuItemByID searches every restaurant's menu.
func (r *RestaurantRepository) MenuItemByID(id int) (entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rest := range r.restaurants {
		for _, m := range rest.Menu {
			if m.ID == id {
				return m, nil
			}
		}
	}
	return entity.MenuItem{}, ErrMenuItemNotFound
}

func (r *RestaurantRepository) copyAll() []entity.Restaurant {
	out := make([]entity.Restaurant, 0, len(r.restaurants))
	for _, rest := range r.restaurants {
		out = append(out, cloneRestaurant(rest))
	}
	return out
}

// cloneRestaurant copies the menu slice too, so callers can't mutate the
// repository through a returned value.
func cloneRestaurant(rest entity.Restaurant) entity.Restaurant {
	menu := make([]entity.MenuItem, len(rest.Menu))
	copy(menu, rest.Menu)
	rest.Menu = menu
	return rest
}
