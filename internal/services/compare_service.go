package services

import (
	"errors"

	"vyapar/internal/models"
	"vyapar/internal/repositories"

	"go.uber.org/zap"
)

// CompareService finds competing listings for a product across other seller
// companies and computes the price spread.
type CompareService struct {
	productRepo repositories.ProductRepository
	companyRepo repositories.CompanyRepository
	log         *zap.Logger
}

// NewCompareService creates a new CompareService.
func NewCompareService(productRepo repositories.ProductRepository, companyRepo repositories.CompanyRepository, log *zap.Logger) *CompareService {
	return &CompareService{
		productRepo: productRepo,
		companyRepo: companyRepo,
		log:         log,
	}
}

// SellerInfo is the company display projection attached to catalogue and
// comparison responses.
type SellerInfo struct {
	ID           string `json:"id"`
	CompanyName  string `json:"companyName"`
	BusinessType string `json:"businessType,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	IsVerified   bool   `json:"isVerified"`
}

func newSellerInfo(company *models.Company) *SellerInfo {
	if company == nil {
		return nil
	}
	return &SellerInfo{
		ID:           company.ID,
		CompanyName:  company.CompanyName,
		BusinessType: company.BusinessType,
		City:         company.Address.City,
		State:        company.Address.State,
		IsVerified:   company.IsVerified,
	}
}

// OriginalProduct is the full detail of the product being compared.
type OriginalProduct struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Seller      *SellerInfo      `json:"seller"`
	Images      models.ImageList `json:"images"`
	Stock       int              `json:"stock"`
	MinOrderQty int              `json:"minOrderQty"`
}

// Alternative is one competing listing. PriceDifference is signed: positive
// means the alternative is costlier than the original, never clamped.
type Alternative struct {
	ID              string           `json:"id"`
	Price           float64          `json:"price"`
	Seller          *SellerInfo      `json:"seller"`
	Images          models.ImageList `json:"images"`
	Stock           int              `json:"stock"`
	MinOrderQty     int              `json:"minOrderQty"`
	PriceDifference float64          `json:"priceDifference"`
}

// PriceRange spans the cheapest and costliest alternative.
type PriceRange struct {
	Lowest  float64 `json:"lowest"`
	Highest float64 `json:"highest"`
}

// ComparisonResult is the full comparison payload. PriceRange is nil when no
// alternatives exist; callers must treat that as "no range", not an error.
type ComparisonResult struct {
	OriginalProduct   OriginalProduct `json:"originalProduct"`
	Alternatives      []Alternative   `json:"alternatives"`
	TotalAlternatives int             `json:"totalAlternatives"`
	PriceRange        *PriceRange     `json:"priceRange"`
}

// Compare loads the target product and the active listings that share its
// exact name and category from other companies, sorted ascending by price.
// A seller's own other listings never appear as alternatives.
func (s *CompareService) Compare(productID string) (*ComparisonResult, error) {
	original, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrNotFound, "Product not found")
		}
		return nil, err
	}

	matches, err := s.productRepo.FindAlternatives(original.Name, original.Category, original.SellerCompanyID)
	if err != nil {
		return nil, err
	}

	companyIDs := []string{original.SellerCompanyID}
	for _, m := range matches {
		companyIDs = append(companyIDs, m.SellerCompanyID)
	}
	companies, err := s.companyRepo.ListByIDs(companyIDs)
	if err != nil {
		return nil, err
	}
	sellers := make(map[string]*SellerInfo, len(companies))
	for i := range companies {
		sellers[companies[i].ID] = newSellerInfo(&companies[i])
	}

	alternatives := make([]Alternative, 0, len(matches))
	for _, m := range matches {
		alternatives = append(alternatives, Alternative{
			ID:              m.ID,
			Price:           m.Price,
			Seller:          sellers[m.SellerCompanyID],
			Images:          m.Images,
			Stock:           m.Stock,
			MinOrderQty:     m.MinOrderQty,
			PriceDifference: m.Price - original.Price,
		})
	}

	// Matches arrive sorted ascending by price, so the range is the two ends.
	var priceRange *PriceRange
	if len(matches) > 0 {
		priceRange = &PriceRange{
			Lowest:  matches[0].Price,
			Highest: matches[len(matches)-1].Price,
		}
	}

	return &ComparisonResult{
		OriginalProduct: OriginalProduct{
			ID:          original.ID,
			Name:        original.Name,
			Price:       original.Price,
			Category:    original.Category,
			Description: original.Description,
			Seller:      sellers[original.SellerCompanyID],
			Images:      original.Images,
			Stock:       original.Stock,
			MinOrderQty: original.MinOrderQty,
		},
		Alternatives:      alternatives,
		TotalAlternatives: len(alternatives),
		PriceRange:        priceRange,
	}, nil
}
