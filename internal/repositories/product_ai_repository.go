package repositories

import "vyapar/internal/models"

// ProductAIRepository defines the interface for cached AI enrichment rows.
type ProductAIRepository interface {
	Create(record *models.ProductAI) error
	GetByProductID(productID string) (*models.ProductAI, error)
}
