package repositories

import "vyapar/internal/models"

// CompanyRepository defines the interface for company data access.
type CompanyRepository interface {
	Create(company *models.Company) error
	Update(company *models.Company) error
	GetByID(id string) (*models.Company, error)
	GetByOwner(ownerID string) (*models.Company, error)
	GetBySubDomain(subDomain string) (*models.Company, error)
	ListByIDs(ids []string) ([]models.Company, error)
}
