package repositories

import (
	"errors"
	"fmt"

	"vyapar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductAIRepository is a GORM implementation of ProductAIRepository.
type GORMProductAIRepository struct {
	db *gorm.DB
}

// NewGORMProductAIRepository creates a new instance of GORMProductAIRepository.
func NewGORMProductAIRepository(db *gorm.DB) *GORMProductAIRepository {
	return &GORMProductAIRepository{db: db}
}

// Create inserts the cached enrichment row. The unique product index means
// the loser of a concurrent first-enrichment race gets ErrConflict and
// should re-read the winner's row.
func (r *GORMProductAIRepository) Create(record *models.ProductAI) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.ModelUsed == "" {
		record.ModelUsed = models.DefaultAIModel
	}
	if err := r.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("enrichment already cached for product %s: %w", record.ProductID, ErrConflict)
		}
		return fmt.Errorf("failed to cache enrichment: %w", err)
	}
	return nil
}

// GetByProductID retrieves the cached enrichment for a product.
func (r *GORMProductAIRepository) GetByProductID(productID string) (*models.ProductAI, error) {
	var record models.ProductAI
	if err := r.db.First(&record, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrichment for product %s: %w", productID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get enrichment for product %s: %w", productID, err)
	}
	return &record, nil
}
