package services

import (
	"time"

	"vyapar/internal/models"
	"vyapar/internal/repositories"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByPhone(phone string) (*models.User, error) {
	args := m.Called(phone)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

type mockCompanyRepository struct {
	mock.Mock
}

func (m *mockCompanyRepository) Create(company *models.Company) error {
	return m.Called(company).Error(0)
}

func (m *mockCompanyRepository) Update(company *models.Company) error {
	return m.Called(company).Error(0)
}

func (m *mockCompanyRepository) GetByID(id string) (*models.Company, error) {
	args := m.Called(id)
	if c := args.Get(0); c != nil {
		return c.(*models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyRepository) GetByOwner(ownerID string) (*models.Company, error) {
	args := m.Called(ownerID)
	if c := args.Get(0); c != nil {
		return c.(*models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyRepository) GetBySubDomain(subDomain string) (*models.Company, error) {
	args := m.Called(subDomain)
	if c := args.Get(0); c != nil {
		return c.(*models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCompanyRepository) ListByIDs(ids []string) ([]models.Company, error) {
	args := m.Called(ids)
	if c := args.Get(0); c != nil {
		return c.([]models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepository) Update(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) GetActiveByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) GetScoped(id, companyID string) (*models.Product, error) {
	args := m.Called(id, companyID)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) SlugExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) NameExistsForCompany(name, companyID string) (bool, error) {
	args := m.Called(name, companyID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) ListByCompany(companyID string) ([]models.Product, error) {
	args := m.Called(companyID)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) ListCreatedSince(companyID string, since time.Time) ([]models.Product, error) {
	args := m.Called(companyID, since)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) ListRecentlyUpdated(companyID string, updatedSince, createdBefore time.Time, limit int) ([]models.Product, error) {
	args := m.Called(companyID, updatedSince, createdBefore, limit)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) FindAlternatives(name, category, excludeCompanyID string) ([]models.Product, error) {
	args := m.Called(name, category, excludeCompanyID)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Filter(filter repositories.ProductFilter) ([]models.Product, int64, error) {
	args := m.Called(filter)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepository) ListActiveByCategory(category string) ([]models.Product, error) {
	args := m.Called(category)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) ListActiveBySubDomain(subDomain string) ([]models.Product, error) {
	args := m.Called(subDomain)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Random(limit int) ([]models.Product, error) {
	args := m.Called(limit)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockEnquiryRepository struct {
	mock.Mock
}

func (m *mockEnquiryRepository) Create(enquiry *models.Enquiry) error {
	return m.Called(enquiry).Error(0)
}

func (m *mockEnquiryRepository) ExistsForBuyerAndProduct(buyerID, productID string) (bool, error) {
	args := m.Called(buyerID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEnquiryRepository) ListBySellerCompany(companyID string) ([]models.Enquiry, error) {
	args := m.Called(companyID)
	if e := args.Get(0); e != nil {
		return e.([]models.Enquiry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEnquiryRepository) UpdateStatusScoped(id, companyID, status string) (*models.Enquiry, error) {
	args := m.Called(id, companyID, status)
	if e := args.Get(0); e != nil {
		return e.(*models.Enquiry), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProductAIRepository struct {
	mock.Mock
}

func (m *mockProductAIRepository) Create(record *models.ProductAI) error {
	return m.Called(record).Error(0)
}

func (m *mockProductAIRepository) GetByProductID(productID string) (*models.ProductAI, error) {
	args := m.Called(productID)
	if r := args.Get(0); r != nil {
		return r.(*models.ProductAI), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(event string, payload map[string]interface{}) error {
	return m.Called(event, payload).Error(0)
}

func testScope() *SellerScope {
	return &SellerScope{
		UserID: "user-1",
		Company: &models.Company{
			ID:          "company-1",
			OwnerID:     "user-1",
			CompanyName: "Acme Traders",
			SubDomain:   "acme-traders",
		},
	}
}
