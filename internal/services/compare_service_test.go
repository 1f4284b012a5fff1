package services

import (
	"testing"

	"vyapar/internal/models"
	"vyapar/internal/repositories"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCompareReturnsAlternativesSortedWithSignedDifferences(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewCompareService(productRepo, companyRepo, zap.NewNop())

	original := &models.Product{
		ID:              "p1",
		Name:            "Steel Pipe",
		Category:        "Industrial",
		Price:           500,
		SellerCompanyID: "company-1",
	}
	matches := []models.Product{
		{ID: "p2", Name: "Steel Pipe", Category: "Industrial", Price: 450, SellerCompanyID: "company-2"},
		{ID: "p3", Name: "Steel Pipe", Category: "Industrial", Price: 600, SellerCompanyID: "company-3"},
	}
	companies := []models.Company{
		{ID: "company-1", CompanyName: "Acme Traders"},
		{ID: "company-2", CompanyName: "Bharat Steel", IsVerified: true},
		{ID: "company-3", CompanyName: "Chennai Metals"},
	}

	productRepo.On("GetByID", "p1").Return(original, nil)
	productRepo.On("FindAlternatives", "Steel Pipe", "Industrial", "company-1").Return(matches, nil)
	companyRepo.On("ListByIDs", []string{"company-1", "company-2", "company-3"}).Return(companies, nil)

	result, err := service.Compare("p1")

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalAlternatives)
	assert.Equal(t, "p2", result.Alternatives[0].ID)
	assert.Equal(t, float64(-50), result.Alternatives[0].PriceDifference)
	assert.Equal(t, "p3", result.Alternatives[1].ID)
	assert.Equal(t, float64(100), result.Alternatives[1].PriceDifference)
	assert.Equal(t, "Bharat Steel", result.Alternatives[0].Seller.CompanyName)
	assert.True(t, result.Alternatives[0].Seller.IsVerified)
	assert.NotNil(t, result.PriceRange)
	assert.Equal(t, float64(450), result.PriceRange.Lowest)
	assert.Equal(t, float64(600), result.PriceRange.Highest)
	productRepo.AssertExpectations(t)
}

func TestCompareWithNoAlternativesHasNilPriceRange(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewCompareService(productRepo, companyRepo, zap.NewNop())

	original := &models.Product{
		ID:              "p1",
		Name:            "Unique Widget",
		Category:        "Tools",
		Price:           120,
		SellerCompanyID: "company-1",
	}
	productRepo.On("GetByID", "p1").Return(original, nil)
	productRepo.On("FindAlternatives", "Unique Widget", "Tools", "company-1").Return([]models.Product{}, nil)
	companyRepo.On("ListByIDs", []string{"company-1"}).Return([]models.Company{{ID: "company-1"}}, nil)

	result, err := service.Compare("p1")

	assert.NoError(t, err)
	assert.Empty(t, result.Alternatives)
	assert.Equal(t, 0, result.TotalAlternatives)
	assert.Nil(t, result.PriceRange)
}

func TestCompareUnknownProductReturnsNotFound(t *testing.T) {
	productRepo := new(mockProductRepository)
	companyRepo := new(mockCompanyRepository)
	service := NewCompareService(productRepo, companyRepo, zap.NewNop())

	productRepo.On("GetByID", "missing").Return(nil, repositories.ErrRecordNotFound)

	result, err := service.Compare("missing")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotFound)
}
