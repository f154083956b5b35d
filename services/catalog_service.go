package services

import (
	"github.com/cloud-tech1/food-finds-clone/entity"
	"github.com/cloud-tech1/food-finds-clone/repository"
)

// CatalogService answers the listing and detail views: search over the
// restaurant catalog and per-restaurant menu browsing.
type CatalogService struct {
	Restaurants *repository.RestaurantRepository
}

func NewCatalogService(rr *repository.RestaurantRepository) *CatalogService {
	return &CatalogService{Restaurants: rr}
}

type RestaurantDetailOut struct {
	Restaurant entity.Restaurant `json:"restaurant"`
	Categories []string          `json:"categories"`
}

// Search filters by free-text query and cuisine the same way the listing
// page does: substring over name+cuisine, then exact cuisine match.
func (s *CatalogService) Search(query, cuisine string) []entity.Restaurant {
	return s.Restaurants.Search(query, cuisine)
}

func (s *CatalogService) Cuisines() []string {
	return s.Restaurants.Cuisines()
}

// Detail returns the restaurant with its menu plus the category filter
// list: "All" first, then each category in menu order, de-duplicated.
func (s *CatalogService) Detail(id int) (*RestaurantDetailOut, error) {
	rest, err := s.Restaurants.ByID(id)
	if err != nil {
		return nil, err
	}

	categories := []string{"All"}
	seen := make(map[string]bool)
	for _, m := range rest.Menu {
		if !seen[m.Category] {
			seen[m.Category] = true
			categories = append(categories, m.Category)
		}
	}
	return &RestaurantDetailOut{Restaurant: rest, Categories: categories}, nil
}

// MenuItem resolves one catalog item, for add-to-cart validation.
func (s *CatalogService) MenuItem(id int) (entity.MenuItem, error) {
	return s.Restaurants.MenuItemByID(id)
}
