package repositories

import (
	"errors"
	"fmt"

	"vyapar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCompanyRepository is a GORM implementation of CompanyRepository.
type GORMCompanyRepository struct {
	db *gorm.DB
}

// NewGORMCompanyRepository creates a new instance of GORMCompanyRepository.
func NewGORMCompanyRepository(db *gorm.DB) *GORMCompanyRepository {
	return &GORMCompanyRepository{db: db}
}

// Create inserts a new company. The owner and subdomain unique indexes are
// the tenancy guarantees: one company per user, one storefront per subdomain.
func (r *GORMCompanyRepository) Create(company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	if err := r.db.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("company already exists: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// Update saves all fields of an existing company.
func (r *GORMCompanyRepository) Update(company *models.Company) error {
	res := r.db.Save(company)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("subdomain already in use: %w", ErrConflict)
		}
		return fmt.Errorf("failed to update company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("company %s not found for update: %w", company.ID, ErrRecordNotFound)
	}
	return nil
}

// GetByID retrieves a company by id.
func (r *GORMCompanyRepository) GetByID(id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get company by ID %s: %w", id, err)
	}
	return &company, nil
}

// GetByOwner retrieves the company owned by the given user.
func (r *GORMCompanyRepository) GetByOwner(ownerID string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company for owner %s: %w", ownerID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get company by owner %s: %w", ownerID, err)
	}
	return &company, nil
}

// GetBySubDomain retrieves a company by its storefront subdomain.
func (r *GORMCompanyRepository) GetBySubDomain(subDomain string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "sub_domain = ?", subDomain).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company with subdomain %s: %w", subDomain, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get company by subdomain %s: %w", subDomain, err)
	}
	return &company, nil
}

// ListByIDs retrieves the companies with the given ids.
func (r *GORMCompanyRepository) ListByIDs(ids []string) ([]models.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var companies []models.Company
	if err := r.db.Find(&companies, "id IN ?", ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}
