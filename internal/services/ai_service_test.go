package services

import (
	"testing"

	"vyapar/internal/models"
	"vyapar/internal/repositories"
	"vyapar/pkg/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockContentGenerator struct {
	mock.Mock
}

func (m *mockContentGenerator) GenerateProductDetails(name, category, description string) (*gemini.ProductDetails, error) {
	args := m.Called(name, category, description)
	if d := args.Get(0); d != nil {
		return d.(*gemini.ProductDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContentGenerator) Model() string {
	return m.Called().String(0)
}

func aiFixtureProduct() *models.Product {
	return &models.Product{
		ID:          "p1",
		Name:        "Steel Pipe",
		Category:    "Industrial",
		Description: "Heavy duty pipe",
	}
}

func TestGetProductDetailsGeneratesOnFirstCall(t *testing.T) {
	productRepo := new(mockProductRepository)
	aiRepo := new(mockProductAIRepository)
	generator := new(mockContentGenerator)
	service := NewAIService(productRepo, aiRepo, generator, zap.NewNop())

	productRepo.On("GetByID", "p1").Return(aiFixtureProduct(), nil)
	aiRepo.On("GetByProductID", "p1").Return(nil, repositories.ErrRecordNotFound)
	generator.On("GenerateProductDetails", "Steel Pipe", "Industrial", "Heavy duty pipe").Return(&gemini.ProductDetails{
		Highlights:      []string{"Durable", "Corrosion resistant"},
		Specifications:  map[string]string{"Material": "Steel"},
		LongDescription: "A heavy duty steel pipe.",
	}, nil)
	generator.On("Model").Return("gemini-2.5-flash")
	aiRepo.On("Create", mock.AnythingOfType("*models.ProductAI")).Return(nil)

	enrichment, err := service.GetProductDetails("p1")

	assert.NoError(t, err)
	assert.Equal(t, EnrichmentSourceAI, enrichment.Source)
	assert.Equal(t, []string{"Durable", "Corrosion resistant"}, enrichment.Highlights)
	aiRepo.AssertExpectations(t)
}

func TestGetProductDetailsServesCacheWithoutGenerating(t *testing.T) {
	productRepo := new(mockProductRepository)
	aiRepo := new(mockProductAIRepository)
	generator := new(mockContentGenerator)
	service := NewAIService(productRepo, aiRepo, generator, zap.NewNop())

	productRepo.On("GetByID", "p1").Return(aiFixtureProduct(), nil)
	aiRepo.On("GetByProductID", "p1").Return(&models.ProductAI{
		ProductID:       "p1",
		Highlights:      []string{"Cached"},
		LongDescription: "Cached description",
	}, nil)

	enrichment, err := service.GetProductDetails("p1")

	assert.NoError(t, err)
	assert.Equal(t, EnrichmentSourceCache, enrichment.Source)
	assert.Equal(t, []string{"Cached"}, enrichment.Highlights)
	generator.AssertNotCalled(t, "GenerateProductDetails", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProductDetailsRaceLoserServesWinnersRow(t *testing.T) {
	productRepo := new(mockProductRepository)
	aiRepo := new(mockProductAIRepository)
	generator := new(mockContentGenerator)
	service := NewAIService(productRepo, aiRepo, generator, zap.NewNop())

	productRepo.On("GetByID", "p1").Return(aiFixtureProduct(), nil)
	aiRepo.On("GetByProductID", "p1").Return(nil, repositories.ErrRecordNotFound).Once()
	generator.On("GenerateProductDetails", mock.Anything, mock.Anything, mock.Anything).Return(&gemini.ProductDetails{
		Highlights: []string{"Loser content"},
	}, nil)
	generator.On("Model").Return("gemini-2.5-flash")
	aiRepo.On("Create", mock.Anything).Return(repositories.ErrConflict)
	aiRepo.On("GetByProductID", "p1").Return(&models.ProductAI{
		ProductID:  "p1",
		Highlights: []string{"Winner content"},
	}, nil).Once()

	enrichment, err := service.GetProductDetails("p1")

	assert.NoError(t, err)
	assert.Equal(t, EnrichmentSourceCache, enrichment.Source)
	assert.Equal(t, []string{"Winner content"}, enrichment.Highlights)
}

func TestGetProductDetailsUnknownProduct(t *testing.T) {
	productRepo := new(mockProductRepository)
	aiRepo := new(mockProductAIRepository)
	generator := new(mockContentGenerator)
	service := NewAIService(productRepo, aiRepo, generator, zap.NewNop())

	productRepo.On("GetByID", "missing").Return(nil, repositories.ErrRecordNotFound)

	_, err := service.GetProductDetails("missing")

	assert.ErrorIs(t, err, ErrNotFound)
	generator.AssertNotCalled(t, "GenerateProductDetails", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProductDetailsGenerationFailureIsNotCached(t *testing.T) {
	productRepo := new(mockProductRepository)
	aiRepo := new(mockProductAIRepository)
	generator := new(mockContentGenerator)
	service := NewAIService(productRepo, aiRepo, generator, zap.NewNop())

	productRepo.On("GetByID", "p1").Return(aiFixtureProduct(), nil)
	aiRepo.On("GetByProductID", "p1").Return(nil, repositories.ErrRecordNotFound)
	generator.On("GenerateProductDetails", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := service.GetProductDetails("p1")

	assert.Error(t, err)
	aiRepo.AssertNotCalled(t, "Create", mock.Anything)
}
