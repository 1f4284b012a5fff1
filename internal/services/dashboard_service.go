package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"vyapar/internal/models"
	"vyapar/internal/repositories"

	"go.uber.org/zap"
)

// DashboardService computes seller dashboard views by reducing over the
// scoped company's product set in memory. The per-seller set is bounded, so
// a full load stays acceptable at this scale.
type DashboardService struct {
	productRepo repositories.ProductRepository
	log         *zap.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(productRepo repositories.ProductRepository, log *zap.Logger) *DashboardService {
	return &DashboardService{productRepo: productRepo, log: log}
}

// ProductSummary is the projected shape used in recent-product lists.
type ProductSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TopProduct ranks a listing by its inventory value (price x stock).
type TopProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Value    float64 `json:"value"`
	IsActive bool    `json:"isActive"`
}

// DashboardSummary aggregates a seller's catalogue. Revenue, inquiry and
// view counters are placeholders: no order or analytics subsystem exists.
type DashboardSummary struct {
	TotalProducts      int `json:"totalProducts"`
	ActiveProducts     int `json:"activeProducts"`
	InactiveProducts   int `json:"inactiveProducts"`
	InStockProducts    int `json:"inStockProducts"`
	OutOfStockProducts int `json:"outOfStockProducts"`

	TotalInventoryValue float64 `json:"totalInventoryValue"`
	AverageProductPrice int     `json:"averageProductPrice"`

	CategoriesCount   int            `json:"categoriesCount"`
	CategoryBreakdown map[string]int `json:"categoryBreakdown"`

	MonthlyRevenue   float64 `json:"monthlyRevenue"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalInquiries   int     `json:"totalInquiries"`
	PendingInquiries int     `json:"pendingInquiries"`
	ViewsToday       int     `json:"viewsToday"`
	ViewsThisMonth   int     `json:"viewsThisMonth"`

	RecentProducts []ProductSummary `json:"recentProducts"`
	TopProducts    []TopProduct     `json:"topProducts"`
}

// Summary loads every product of the scoped company, active and inactive,
// and reduces the set to the dashboard counters.
func (s *DashboardService) Summary(scope *SellerScope) (*DashboardSummary, error) {
	products, err := s.productRepo.ListByCompany(scope.CompanyID())
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TotalProducts:     len(products),
		CategoryBreakdown: make(map[string]int),
		RecentProducts:    []ProductSummary{},
		TopProducts:       []TopProduct{},
	}

	var priceSum float64
	for i := range products {
		p := &products[i]
		if p.IsActive {
			summary.ActiveProducts++
		} else {
			summary.InactiveProducts++
		}
		if p.Stock > 0 {
			summary.InStockProducts++
		} else {
			summary.OutOfStockProducts++
		}
		summary.TotalInventoryValue += p.StockValue()
		priceSum += p.Price
		summary.CategoryBreakdown[p.Category]++
	}
	summary.CategoriesCount = len(summary.CategoryBreakdown)
	if len(products) > 0 {
		summary.AverageProductPrice = int(math.Round(priceSum / float64(len(products))))
	}

	recent := make([]models.Product, len(products))
	copy(recent, products)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	for _, p := range takeProducts(recent, 5) {
		summary.RecentProducts = append(summary.RecentProducts, ProductSummary{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Price:     p.Price,
			Stock:     p.Stock,
			IsActive:  p.IsActive,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}

	top := make([]models.Product, len(products))
	copy(top, products)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].StockValue() > top[j].StockValue()
	})
	for _, p := range takeProducts(top, 5) {
		summary.TopProducts = append(summary.TopProducts, TopProduct{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.Stock,
			Value:    p.StockValue(),
			IsActive: p.IsActive,
		})
	}

	return summary, nil
}

// ActivityItem is one entry of the seller activity feed.
type ActivityItem struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// Activity merges the created-product feed with products updated within the
// last 24 hours into one reverse-chronological list. Products created inside
// that window are excluded from the "updated" side so a new listing never
// appears twice on its first day.
func (s *DashboardService) Activity(scope *SellerScope, limit int) ([]ActivityItem, error) {
	if limit <= 0 {
		limit = 10
	}

	products, err := s.productRepo.ListByCompany(scope.CompanyID())
	if err != nil {
		return nil, err
	}

	activities := make([]ActivityItem, 0, limit)
	for _, p := range takeProducts(products, limit) {
		activities = append(activities, ActivityItem{
			ID:        p.ID,
			Type:      "product_created",
			Message:   fmt.Sprintf("New product %q was added", p.Name),
			Timestamp: p.CreatedAt,
			Data: map[string]interface{}{
				"productId":   p.ID,
				"productName": p.Name,
				"category":    p.Category,
				"price":       p.Price,
			},
		})
	}

	yesterday := time.Now().Add(-24 * time.Hour)
	updated, err := s.productRepo.ListRecentlyUpdated(scope.CompanyID(), yesterday, yesterday, 5)
	if err != nil {
		return nil, err
	}
	for _, p := range updated {
		activities = append(activities, ActivityItem{
			ID:        "update_" + p.ID,
			Type:      "product_updated",
			Message:   fmt.Sprintf("Product %q was updated", p.Name),
			Timestamp: p.UpdatedAt,
			Data: map[string]interface{}{
				"productId":   p.ID,
				"productName": p.Name,
			},
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

// CategoryPerformance rolls up one category's listings in a period.
type CategoryPerformance struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// CategoryCount is one entry of the top-categories list.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DashboardAnalytics summarizes catalogue movement over a trailing window.
// Revenue and stock trend series stay empty until those subsystems exist.
type DashboardAnalytics struct {
	Period    string    `json:"period"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	ProductsCreated int            `json:"productsCreated"`
	ProductsByDay   []ActivityItem `json:"productsByDay"`
	RevenueByDay    []ActivityItem `json:"revenueByDay"`
	TotalRevenue    float64        `json:"totalRevenue"`

	CategoryPerformance map[string]CategoryPerformance `json:"categoryPerformance"`
	StockTrends         []ActivityItem                 `json:"stockTrends"`
	TopCategories       []CategoryCount                `json:"topCategories"`
}

// Analytics rolls up the products created in the requested trailing period
// (7d, 30d or 90d; anything else falls back to 30d).
func (s *DashboardService) Analytics(scope *SellerScope, period string) (*DashboardAnalytics, error) {
	days := 30
	switch period {
	case "7d":
		days = 7
	case "30d":
		days = 30
	case "90d":
		days = 90
	default:
		period = "30d"
	}
	now := time.Now()
	start := now.AddDate(0, 0, -days)

	products, err := s.productRepo.ListCreatedSince(scope.CompanyID(), start)
	if err != nil {
		return nil, err
	}

	analytics := &DashboardAnalytics{
		Period:              period,
		StartDate:           start,
		EndDate:             now,
		ProductsCreated:     len(products),
		ProductsByDay:       []ActivityItem{},
		RevenueByDay:        []ActivityItem{},
		CategoryPerformance: make(map[string]CategoryPerformance),
		StockTrends:         []ActivityItem{},
		TopCategories:       []CategoryCount{},
	}

	counts := make(map[string]int)
	for i := range products {
		p := &products[i]
		perf := analytics.CategoryPerformance[p.Category]
		perf.Count++
		perf.TotalValue += p.StockValue()
		analytics.CategoryPerformance[p.Category] = perf
		counts[p.Category]++
	}

	for category, count := range counts {
		analytics.TopCategories = append(analytics.TopCategories, CategoryCount{Category: category, Count: count})
	}
	sort.SliceStable(analytics.TopCategories, func(i, j int) bool {
		if analytics.TopCategories[i].Count != analytics.TopCategories[j].Count {
			return analytics.TopCategories[i].Count > analytics.TopCategories[j].Count
		}
		return analytics.TopCategories[i].Category < analytics.TopCategories[j].Category
	})
	if len(analytics.TopCategories) > 5 {
		analytics.TopCategories = analytics.TopCategories[:5]
	}

	return analytics, nil
}

func takeProducts(products []models.Product, n int) []models.Product {
	if len(products) < n {
		return products
	}
	return products[:n]
}
