package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vyapar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// Create inserts a new product. The slug unique index is the final backstop
// against concurrent creations probing the same slug.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product slug %s taken: %w", product.Slug, ErrConflict)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product slug %s taken: %w", product.Slug, ErrConflict)
		}
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s not found for update: %w", product.ID, ErrRecordNotFound)
	}
	return nil
}

// GetByID retrieves a product by id regardless of its active flag.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetActiveByID retrieves a product by id, active listings only.
func (r *GORMProductRepository) GetActiveByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetScoped retrieves a product constrained to the owning company.
func (r *GORMProductRepository) GetScoped(id, companyID string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ? AND seller_company_id = ?", id, companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// SlugExists reports whether any product already carries the slug.
func (r *GORMProductRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to probe slug %s: %w", slug, err)
	}
	return count > 0, nil
}

// NameExistsForCompany reports whether the company already lists a product
// with the exact name.
func (r *GORMProductRepository) NameExistsForCompany(name, companyID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("name = ? AND seller_company_id = ?", name, companyID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check product name %s: %w", name, err)
	}
	return count > 0, nil
}

// ListByCompany returns every product of a company, active and inactive,
// newest first.
func (r *GORMProductRepository) ListByCompany(companyID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("seller_company_id = ?", companyID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products for company %s: %w", companyID, err)
	}
	return products, nil
}

// ListCreatedSince returns a company's products created on or after the
// given time, newest first.
func (r *GORMProductRepository) ListCreatedSince(companyID string, since time.Time) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("seller_company_id = ? AND created_at >= ?", companyID, since).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products for company %s: %w", companyID, err)
	}
	return products, nil
}

// ListRecentlyUpdated returns products updated on or after updatedSince but
// created before createdBefore, most recently updated first. The creation
// cutoff keeps freshly created products out of the "updated" feed.
func (r *GORMProductRepository) ListRecentlyUpdated(companyID string, updatedSince, createdBefore time.Time, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("seller_company_id = ? AND updated_at >= ? AND created_at < ?",
		companyID, updatedSince, createdBefore).
		Order("updated_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list updated products for company %s: %w", companyID, err)
	}
	return products, nil
}

// FindAlternatives returns competing listings: same exact name and category,
// different company, active only, cheapest first.
func (r *GORMProductRepository) FindAlternatives(name, category, excludeCompanyID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("name = ? AND category = ? AND seller_company_id <> ? AND is_active = ?",
		name, category, excludeCompanyID, true).
		Order("price ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find alternatives for %s: %w", name, err)
	}
	return products, nil
}

// Filter runs the public catalogue query and returns the page plus the total
// match count.
func (r *GORMProductRepository) Filter(filter ProductFilter) ([]models.Product, int64, error) {
	q := r.db.Model(&models.Product{}).Where("is_active = ?", true)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if len(filter.Tags) > 0 {
		// Tags live in a JSON text column; match any of the requested tags.
		tagQuery := r.db
		for i, tag := range filter.Tags {
			pattern := "%" + strings.ToLower(strings.TrimSpace(tag)) + "%"
			if i == 0 {
				tagQuery = r.db.Where("LOWER(tags) LIKE ?", pattern)
			} else {
				tagQuery = tagQuery.Or("LOWER(tags) LIKE ?", pattern)
			}
		}
		q = q.Where(tagQuery)
	}
	if filter.Keyword != "" {
		kw := "%" + strings.ToLower(filter.Keyword) + "%"
		q = q.Where(
			r.db.Where("LOWER(name) LIKE ?", kw).
				Or("LOWER(description) LIKE ?", kw).
				Or("LOWER(tags) LIKE ?", kw),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	var products []models.Product
	err := q.Order(orderClause(filter.Sort)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to filter products: %w", err)
	}
	return products, total, nil
}

// ListActiveByCategory returns active products in a category, newest first.
func (r *GORMProductRepository) ListActiveByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category = ? AND is_active = ?", category, true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products in category %s: %w", category, err)
	}
	return products, nil
}

// ListActiveBySubDomain returns a storefront's active products, newest first.
func (r *GORMProductRepository) ListActiveBySubDomain(subDomain string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("sub_domain = ? AND is_active = ?", subDomain, true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products for store %s: %w", subDomain, err)
	}
	return products, nil
}

// Random samples active products for the landing page.
func (r *GORMProductRepository) Random(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 12
	}
	var products []models.Product
	err := r.db.Where("is_active = ?", true).
		Order("RANDOM()").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sample products: %w", err)
	}
	return products, nil
}

func orderClause(sort string) string {
	switch sort {
	case "createdAt":
		return "created_at ASC"
	case "price":
		return "price ASC"
	case "-price":
		return "price DESC"
	default:
		return "created_at DESC"
	}
}
