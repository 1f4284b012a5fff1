package services

import (
	"testing"
	"time"

	"vyapar/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSummaryWithNoProductsReturnsZeroes(t *testing.T) {
	productRepo := new(mockProductRepository)
	service := NewDashboardService(productRepo, zap.NewNop())

	productRepo.On("ListByCompany", "company-1").Return([]models.Product{}, nil)

	summary, err := service.Summary(testScope())

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.TotalProducts)
	assert.Equal(t, 0, summary.ActiveProducts)
	assert.Equal(t, float64(0), summary.TotalInventoryValue)
	assert.Equal(t, 0, summary.AverageProductPrice)
	assert.Empty(t, summary.RecentProducts)
	assert.Empty(t, summary.TopProducts)
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestSummaryAggregatesCatalogue(t *testing.T) {
	productRepo := new(mockProductRepository)
	service := NewDashboardService(productRepo, zap.NewNop())

	now := time.Now()
	products := []models.Product{
		{ID: "p1", Name: "Pipe", Category: "Industrial", Price: 100, Stock: 10, IsActive: true, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "p2", Name: "Valve", Category: "Industrial", Price: 250, Stock: 0, IsActive: true, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "p3", Name: "Drill", Category: "Tools", Price: 49, Stock: 4, IsActive: false, CreatedAt: now.Add(-1 * time.Hour)},
	}
	productRepo.On("ListByCompany", "company-1").Return(products, nil)

	summary, err := service.Summary(testScope())

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 2, summary.ActiveProducts)
	assert.Equal(t, 1, summary.InactiveProducts)
	assert.Equal(t, 2, summary.InStockProducts)
	assert.Equal(t, 1, summary.OutOfStockProducts)
	// 100*10 + 250*0 + 49*4
	assert.Equal(t, float64(1196), summary.TotalInventoryValue)
	// round((100+250+49)/3) = round(133.0)
	assert.Equal(t, 133, summary.AverageProductPrice)
	assert.Equal(t, 2, summary.CategoriesCount)
	assert.Equal(t, 2, summary.CategoryBreakdown["Industrial"])
	assert.Equal(t, 1, summary.CategoryBreakdown["Tools"])

	// Newest first.
	assert.Equal(t, "p3", summary.RecentProducts[0].ID)
	assert.Equal(t, "p2", summary.RecentProducts[1].ID)

	// Ranked by price*stock.
	assert.Equal(t, "p1", summary.TopProducts[0].ID)
	assert.Equal(t, float64(1000), summary.TopProducts[0].Value)
}

func TestActivityMergesUpdatesAndTruncates(t *testing.T) {
	productRepo := new(mockProductRepository)
	service := NewDashboardService(productRepo, zap.NewNop())

	now := time.Now()
	created := []models.Product{
		{ID: "p1", Name: "Pipe", CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "p2", Name: "Valve", CreatedAt: now.Add(-2 * time.Hour)},
	}
	updated := []models.Product{
		{ID: "p3", Name: "Drill", CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now.Add(-10 * time.Minute)},
	}
	productRepo.On("ListByCompany", "company-1").Return(created, nil)
	productRepo.On("ListRecentlyUpdated", "company-1", mock.Anything, mock.Anything, 5).Return(updated, nil)

	activities, err := service.Activity(testScope(), 2)

	assert.NoError(t, err)
	assert.Len(t, activities, 2)
	assert.Equal(t, "update_p3", activities[0].ID)
	assert.Equal(t, "product_updated", activities[0].Type)
	assert.Equal(t, "p1", activities[1].ID)
	assert.Equal(t, "product_created", activities[1].Type)
}

func TestAnalyticsRollsUpCategoriesForPeriod(t *testing.T) {
	productRepo := new(mockProductRepository)
	service := NewDashboardService(productRepo, zap.NewNop())

	products := []models.Product{
		{ID: "p1", Category: "Industrial", Price: 100, Stock: 2},
		{ID: "p2", Category: "Industrial", Price: 50, Stock: 1},
		{ID: "p3", Category: "Tools", Price: 20, Stock: 10},
	}
	productRepo.On("ListCreatedSince", "company-1", mock.Anything).Return(products, nil)

	analytics, err := service.Analytics(testScope(), "7d")

	assert.NoError(t, err)
	assert.Equal(t, "7d", analytics.Period)
	assert.Equal(t, 3, analytics.ProductsCreated)
	assert.Equal(t, 2, analytics.CategoryPerformance["Industrial"].Count)
	assert.Equal(t, float64(250), analytics.CategoryPerformance["Industrial"].TotalValue)
	assert.Equal(t, float64(200), analytics.CategoryPerformance["Tools"].TotalValue)
	assert.Equal(t, "Industrial", analytics.TopCategories[0].Category)
	assert.Equal(t, 2, analytics.TopCategories[0].Count)
}

func TestAnalyticsUnknownPeriodFallsBackToThirtyDays(t *testing.T) {
	productRepo := new(mockProductRepository)
	service := NewDashboardService(productRepo, zap.NewNop())

	productRepo.On("ListCreatedSince", "company-1", mock.Anything).Return([]models.Product{}, nil)

	analytics, err := service.Analytics(testScope(), "1y")

	assert.NoError(t, err)
	assert.Equal(t, "30d", analytics.Period)
	days := analytics.EndDate.Sub(analytics.StartDate).Hours() / 24
	assert.InDelta(t, 30, days, 1.5)
}
