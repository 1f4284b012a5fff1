package services

import (
	"errors"
	"fmt"
	"strings"

	"vyapar/internal/models"
	"vyapar/internal/repositories"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// ProductService handles listing lifecycle for sellers and the public
// catalogue queries for buyers.
type ProductService struct {
	productRepo repositories.ProductRepository
	companyRepo repositories.CompanyRepository
	events      EventPublisher
	log         *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, companyRepo repositories.CompanyRepository, events EventPublisher, log *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		companyRepo: companyRepo,
		events:      events,
		log:         log,
	}
}

// CreateProductInput is the seller-supplied part of a new listing. Owner,
// company and subdomain are always derived from the scope, never from the
// client.
type CreateProductInput struct {
	Name        string                `json:"name" validate:"required,min=3,max=120"`
	Price       float64               `json:"price" validate:"gte=0"`
	Category    string                `json:"category" validate:"required"`
	Description string                `json:"description" validate:"omitempty,max=2000"`
	Stock       int                   `json:"stock" validate:"gte=0"`
	MinOrderQty int                   `json:"minOrderQty" validate:"omitempty,gte=1"`
	Tags        []string              `json:"tags"`
	Images      []models.ProductImage `json:"images"`
	Location    models.Location       `json:"location"`
}

// Create adds a listing under the scoped company. Duplicate names within one
// company are rejected; the slug is probed to global uniqueness.
func (s *ProductService) Create(scope *SellerScope, input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)

	exists, err := s.productRepo.NameExistsForCompany(name, scope.CompanyID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Errorf(ErrDuplicate, "A product with this name already exists for your company")
	}

	productSlug, err := s.uniqueSlug(name)
	if err != nil {
		return nil, err
	}

	minQty := input.MinOrderQty
	if minQty <= 0 {
		minQty = 1
	}
	location := input.Location
	if location.Country == "" {
		location.Country = "India"
	}

	product := &models.Product{
		OwnerID:         scope.UserID,
		SellerCompanyID: scope.CompanyID(),
		SubDomain:       scope.Company.SubDomain,
		Name:            name,
		Slug:            productSlug,
		Price:           input.Price,
		Category:        input.Category,
		Description:     input.Description,
		Images:          input.Images,
		Stock:           input.Stock,
		IsActive:        true,
		MinOrderQty:     minQty,
		Tags:            input.Tags,
		Location:        location,
	}

	if err := s.productRepo.Create(product); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			// Lost the slug race to a concurrent create; the unique index
			// is the backstop, the caller can retry.
			return nil, Errorf(ErrDuplicate, "Duplicate key error")
		}
		return nil, err
	}

	s.publish(EventProductCreated, map[string]interface{}{
		"productId": product.ID,
		"companyId": product.SellerCompanyID,
		"name":      product.Name,
		"category":  product.Category,
		"price":     product.Price,
	})
	s.log.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("slug", product.Slug),
		zap.String("company_id", product.SellerCompanyID))
	return product, nil
}

// UpdateProductInput carries the mutable listing fields; nil means "leave
// unchanged". Owner, company, subdomain and slug cannot be set by clients.
type UpdateProductInput struct {
	Name        *string                `json:"name" validate:"omitempty,min=3,max=120"`
	Price       *float64               `json:"price" validate:"omitempty,gte=0"`
	Category    *string                `json:"category"`
	Description *string                `json:"description" validate:"omitempty,max=2000"`
	Stock       *int                   `json:"stock" validate:"omitempty,gte=0"`
	MinOrderQty *int                   `json:"minOrderQty" validate:"omitempty,gte=1"`
	Tags        *[]string              `json:"tags"`
	Images      *[]models.ProductImage `json:"images"`
	IsActive    *bool                  `json:"isActive"`
	Location    *models.Location       `json:"location"`
}

// Update applies a partial update to a scoped listing. Renaming re-derives
// the slug through the uniqueness probe.
func (s *ProductService) Update(scope *SellerScope, id string, input UpdateProductInput) (*models.Product, error) {
	product, err := s.getScoped(scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != product.Name {
		name := strings.TrimSpace(*input.Name)
		exists, err := s.productRepo.NameExistsForCompany(name, scope.CompanyID())
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, Errorf(ErrDuplicate, "A product with this name already exists for your company")
		}
		newSlug, err := s.uniqueSlug(name)
		if err != nil {
			return nil, err
		}
		product.Name = name
		product.Slug = newSlug
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.MinOrderQty != nil {
		product.MinOrderQty = *input.MinOrderQty
	}
	if input.Tags != nil {
		product.Tags = *input.Tags
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.Location != nil {
		product.Location = *input.Location
	}

	if err := s.productRepo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, Errorf(ErrDuplicate, "Duplicate key error")
		}
		return nil, err
	}
	return product, nil
}

// Delete soft-deletes a scoped listing by flipping its active flag; rows are
// never physically removed.
func (s *ProductService) Delete(scope *SellerScope, id string) error {
	product, err := s.getScoped(scope, id)
	if err != nil {
		return err
	}
	product.IsActive = false
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.log.Info("product soft-deleted", zap.String("product_id", id))
	return nil
}

// ListMine returns all of the scoped company's listings, newest first.
func (s *ProductService) ListMine(scope *SellerScope) ([]models.Product, error) {
	return s.productRepo.ListByCompany(scope.CompanyID())
}

// GetActive returns an active listing by id for buyers.
func (s *ProductService) GetActive(id string) (*models.Product, error) {
	product, err := s.productRepo.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrNotFound, "Product not found")
		}
		return nil, err
	}
	return product, nil
}

// CatalogueItem is a public listing with its seller's display fields.
type CatalogueItem struct {
	models.Product
	Seller *SellerInfo `json:"seller,omitempty"`
}

// Filter runs the public catalogue query. Returns the page, the total match
// count and the page count.
func (s *ProductService) Filter(filter repositories.ProductFilter) ([]CatalogueItem, int64, int, error) {
	products, total, err := s.productRepo.Filter(filter)
	if err != nil {
		return nil, 0, 0, err
	}
	items, err := s.withSellers(products)
	if err != nil {
		return nil, 0, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return items, total, pages, nil
}

// ByCategory returns active listings in a category with seller display
// fields attached.
func (s *ProductService) ByCategory(category string) ([]CatalogueItem, error) {
	products, err := s.productRepo.ListActiveByCategory(category)
	if err != nil {
		return nil, err
	}
	return s.withSellers(products)
}

// Random samples active listings for the landing page.
func (s *ProductService) Random(limit int) ([]models.Product, error) {
	return s.productRepo.Random(limit)
}

// StoreFront returns a company's active listings by storefront subdomain.
func (s *ProductService) StoreFront(subDomain string) ([]models.Product, error) {
	return s.productRepo.ListActiveBySubDomain(subDomain)
}

// RedirectURL resolves the tenant storefront URL for a product.
func (s *ProductService) RedirectURL(productID, baseDomain string) (string, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return "", Errorf(ErrNotFound, "Product or seller not found")
		}
		return "", err
	}
	company, err := s.companyRepo.GetByID(product.SellerCompanyID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return "", Errorf(ErrNotFound, "Product or seller not found")
		}
		return "", err
	}
	return fmt.Sprintf("https://%s.%s/product/%s", company.SubDomain, baseDomain, product.ID), nil
}

// uniqueSlug derives a URL slug from the name and probes the slug index
// until a free candidate is found: base, base-1, base-2, ...
func (s *ProductService) uniqueSlug(name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := s.productRepo.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *ProductService) withSellers(products []models.Product) ([]CatalogueItem, error) {
	idSet := make(map[string]struct{})
	for _, p := range products {
		idSet[p.SellerCompanyID] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	companies, err := s.companyRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*SellerInfo, len(companies))
	for i := range companies {
		byID[companies[i].ID] = newSellerInfo(&companies[i])
	}

	items := make([]CatalogueItem, 0, len(products))
	for _, p := range products {
		items = append(items, CatalogueItem{Product: p, Seller: byID[p.SellerCompanyID]})
	}
	return items, nil
}

func (s *ProductService) publish(event string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(event, payload); err != nil {
		s.log.Warn("failed to publish event", zap.String("event", event), zap.Error(err))
	}
}

func (s *ProductService) getScoped(scope *SellerScope, id string) (*models.Product, error) {
	product, err := s.productRepo.GetScoped(id, scope.CompanyID())
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrNotFound, "Product not found or unauthorized")
		}
		return nil, err
	}
	return product, nil
}
