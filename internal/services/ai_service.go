package services

import (
	"errors"
	"fmt"

	"vyapar/internal/models"
	"vyapar/internal/repositories"
	"vyapar/pkg/gemini"

	"go.uber.org/zap"
)

// ContentGenerator produces enrichment content for a product. Satisfied by
// the Gemini client; tests substitute a stub.
type ContentGenerator interface {
	GenerateProductDetails(name, category, description string) (*gemini.ProductDetails, error)
	Model() string
}

// Enrichment sources: freshly generated versus served from the cache.
const (
	EnrichmentSourceAI    = "ai"
	EnrichmentSourceCache = "cache"
)

// Enrichment is the response payload for product AI details.
type Enrichment struct {
	Source          string            `json:"-"`
	Highlights      []string          `json:"highlights"`
	Specifications  map[string]string `json:"specifications"`
	LongDescription string            `json:"longDescription"`
}

// AIService serves AI-generated product content, cache-first. Content is
// generated at most once per product and never refreshed automatically.
type AIService struct {
	productRepo repositories.ProductRepository
	aiRepo      repositories.ProductAIRepository
	generator   ContentGenerator
	log         *zap.Logger
}

// NewAIService creates a new AIService.
func NewAIService(productRepo repositories.ProductRepository, aiRepo repositories.ProductAIRepository, generator ContentGenerator, log *zap.Logger) *AIService {
	return &AIService{
		productRepo: productRepo,
		aiRepo:      aiRepo,
		generator:   generator,
		log:         log,
	}
}

// GetProductDetails returns cached enrichment when present, otherwise
// generates, persists and returns fresh content. When two first-time
// requests race, the insert loser re-reads and serves the winner's row, so
// both callers see identical content.
func (s *AIService) GetProductDetails(productID string) (*Enrichment, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrNotFound, "Product not found")
		}
		return nil, err
	}

	cached, err := s.aiRepo.GetByProductID(productID)
	if err == nil {
		return fromRecord(cached, EnrichmentSourceCache), nil
	}
	if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, err
	}

	details, err := s.generator.GenerateProductDetails(product.Name, product.Category, product.Description)
	if err != nil {
		s.log.Error("ai generation failed", zap.String("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("ai generation failed: %w", err)
	}

	record := &models.ProductAI{
		ProductID:       product.ID,
		ProductName:     product.Name,
		Highlights:      details.Highlights,
		Specifications:  details.Specifications,
		LongDescription: details.LongDescription,
		ModelUsed:       s.generator.Model(),
	}
	if err := s.aiRepo.Create(record); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			// Lost the first-enrichment race; serve the winner's row.
			winner, readErr := s.aiRepo.GetByProductID(productID)
			if readErr != nil {
				return nil, readErr
			}
			return fromRecord(winner, EnrichmentSourceCache), nil
		}
		return nil, err
	}

	s.log.Info("enrichment cached",
		zap.String("product_id", product.ID),
		zap.String("model", record.ModelUsed))
	return &Enrichment{
		Source:          EnrichmentSourceAI,
		Highlights:      details.Highlights,
		Specifications:  details.Specifications,
		LongDescription: details.LongDescription,
	}, nil
}

func fromRecord(record *models.ProductAI, source string) *Enrichment {
	return &Enrichment{
		Source:          source,
		Highlights:      record.Highlights,
		Specifications:  record.Specifications,
		LongDescription: record.LongDescription,
	}
}
