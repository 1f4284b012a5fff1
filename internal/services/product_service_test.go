package services

import (
	"testing"

	"vyapar/internal/models"
	"vyapar/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCreateProductDerivesOwnershipFromScope(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	events := new(mockEventPublisher)
	service := NewProductService(productRepo, companyRepo, events, zap.NewNop())

	productRepo.On("NameExistsForCompany", "Red Widget", "company-1").Return(false, nil)
	productRepo.On("SlugExists", "red-widget").Return(false, nil)
	productRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)
	events.On("Publish", EventProductCreated, mock.Anything).Return(nil)

	product, err := service.Create(testScope(), CreateProductInput{
		Name:     "Red Widget",
		Price:    99.5,
		Category: "Tools",
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-1", product.OwnerID)
	assert.Equal(t, "company-1", product.SellerCompanyID)
	assert.Equal(t, "acme-traders", product.SubDomain)
	assert.Equal(t, "red-widget", product.Slug)
	assert.True(t, product.IsActive)
	assert.Equal(t, 1, product.MinOrderQty)
	assert.Equal(t, "India", product.Location.Country)
	events.AssertExpectations(t)
}

func TestCreateProductProbesSlugUntilFree(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewProductService(productRepo, companyRepo, nil, zap.NewNop())

	productRepo.On("NameExistsForCompany", "Red Widget", "company-1").Return(false, nil)
	productRepo.On("SlugExists", "red-widget").Return(true, nil)
	productRepo.On("SlugExists", "red-widget-1").Return(true, nil)
	productRepo.On("SlugExists", "red-widget-2").Return(false, nil)
	productRepo.On("Create", mock.Anything).Return(nil)

	product, err := service.Create(testScope(), CreateProductInput{Name: "Red Widget", Category: "Tools"})

	assert.NoError(t, err)
	assert.Equal(t, "red-widget-2", product.Slug)
}

func TestCreateProductRejectsDuplicateNameWithinCompany(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewProductService(productRepo, companyRepo, nil, zap.NewNop())

	productRepo.On("NameExistsForCompany", "Red Widget", "company-1").Return(true, nil)

	_, err := service.Create(testScope(), CreateProductInput{Name: "Red Widget", Category: "Tools"})

	assert.ErrorIs(t, err, ErrDuplicate)
	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateProductSlugRaceSurfacesConflict(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewProductService(productRepo, companyRepo, nil, zap.NewNop())

	productRepo.On("NameExistsForCompany", "Red Widget", "company-1").Return(false, nil)
	productRepo.On("SlugExists", "red-widget").Return(false, nil)
	productRepo.On("Create", mock.Anything).Return(repositories.ErrConflict)

	_, err := service.Create(testScope(), CreateProductInput{Name: "Red Widget", Category: "Tools"})

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateProductRenameRederivesSlug(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewProductService(productRepo, companyRepo, nil, zap.NewNop())

	existing := &models.Product{ID: "p1", Name: "Red Widget", Slug: "red-widget", SellerCompanyID: "company-1"}
	productRepo.On("GetScoped", "p1", "company-1").Return(existing, nil)
	productRepo.On("NameExistsForCompany", "Blue Widget", "company-1").Return(false, nil)
	productRepo.On("SlugExists", "blue-widget").Return(false, nil)
	productRepo.On("Update", mock.Anything).Return(nil)

	name := "Blue Widget"
	product, err := service.Update(testScope(), "p1", UpdateProductInput{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "Blue Widget", product.Name)
	assert.Equal(t, "blue-widget", product.Slug)
}

func TestUpdateForeignProductLooksNonexistent(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewProductService(productRepo, companyRepo, nil, zap.NewNop())

	productRepo.On("GetScoped", "p9", "company-1").Return(nil, repositories.ErrRecordNotFound)

	price := 10.0
	_, err := service.Update(testScope(), "p9", UpdateProductInput{Price: &price})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSoftDeletes(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewProductService(productRepo, companyRepo, nil, zap.NewNop())

	existing := &models.Product{ID: "p1", IsActive: true, SellerCompanyID: "company-1"}
	productRepo.On("GetScoped", "p1", "company-1").Return(existing, nil)
	productRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return !p.IsActive
	})).Return(nil)

	err := service.Delete(testScope(), "p1")

	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}

func TestFilterAttachesSellersAndComputesPages(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewProductService(productRepo, companyRepo, nil, zap.NewNop())

	products := []models.Product{
		{ID: "p1", SellerCompanyID: "company-2"},
		{ID: "p2", SellerCompanyID: "company-2"},
	}
	filter := repositories.ProductFilter{Page: 1, Limit: 10}
	productRepo.On("Filter", filter).Return(products, int64(25), nil)
	companyRepo.On("ListByIDs", []string{"company-2"}).Return([]models.Company{
		{ID: "company-2", CompanyName: "Bharat Steel"},
	}, nil)

	items, total, pages, err := service.Filter(filter)

	assert.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Equal(t, 3, pages)
	assert.Len(t, items, 2)
	assert.Equal(t, "Bharat Steel", items[0].Seller.CompanyName)
}

func TestRedirectURLBuildsTenantLink(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewProductService(productRepo, companyRepo, nil, zap.NewNop())

	productRepo.On("GetByID", "p1").Return(&models.Product{ID: "p1", SellerCompanyID: "company-2"}, nil)
	companyRepo.On("GetByID", "company-2").Return(&models.Company{ID: "company-2", SubDomain: "bharat-steel"}, nil)

	url, err := service.RedirectURL("p1", "vyapar.in")

	assert.NoError(t, err)
	assert.Equal(t, "https://bharat-steel.vyapar.in/product/p1", url)
}
