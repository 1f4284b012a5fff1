package repositories

import (
	"time"

	"vyapar/internal/models"
)

// ProductFilter captures the public catalogue query: keyword search over
// name/description/tags, category and price bounds, tag membership and
// paging. Sort accepts createdAt/price with a leading '-' for descending.
type ProductFilter struct {
	Keyword  string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Tags     []string
	Sort     string
	Page     int
	Limit    int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	Update(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	GetActiveByID(id string) (*models.Product, error)
	// GetScoped loads a product only when it belongs to the given company.
	// A miss is indistinguishable from nonexistence.
	GetScoped(id, companyID string) (*models.Product, error)
	SlugExists(slug string) (bool, error)
	NameExistsForCompany(name, companyID string) (bool, error)
	ListByCompany(companyID string) ([]models.Product, error)
	ListCreatedSince(companyID string, since time.Time) ([]models.Product, error)
	ListRecentlyUpdated(companyID string, updatedSince, createdBefore time.Time, limit int) ([]models.Product, error)
	// FindAlternatives returns active products with the exact same name and
	// category listed by other companies, sorted ascending by price.
	FindAlternatives(name, category, excludeCompanyID string) ([]models.Product, error)
	Filter(filter ProductFilter) ([]models.Product, int64, error)
	ListActiveByCategory(category string) ([]models.Product, error)
	ListActiveBySubDomain(subDomain string) ([]models.Product, error)
	Random(limit int) ([]models.Product, error)
}
